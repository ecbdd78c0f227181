// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package field enumerates every named field of every SMPP PDU and TLV
// value. Its only consumer is the error-chain tracing in pkg/smpp/smpperr:
// when a decode step fails, the engine attaches the field.ID it was
// decoding before propagating the error, so a caller can tell exactly
// which field of which PDU did not parse.
package field

// ID names a single wire field for error-tracing purposes. It carries no
// behaviour of its own.
type ID uint16

const (
	Unknown ID = iota

	// Command envelope.
	CommandLength
	CommandID
	CommandStatus
	SequenceNumber
	Body

	// Bind family.
	SystemID
	Password
	SystemType
	InterfaceVersion
	AddrTON
	AddrNPI
	AddressRange
	ScInterfaceVersion

	// Addressing (shared across submit/deliver/data/cancel/replace/query).
	ServiceType
	SourceAddrTON
	SourceAddrNPI
	SourceAddr
	DestAddrTON
	DestAddrNPI
	DestinationAddr
	ESMEAddrTON
	ESMEAddrNPI
	ESMEAddr

	// submit_sm / deliver_sm / data_sm family.
	EsmClass
	ProtocolID
	PriorityFlag
	ScheduleDeliveryTime
	ValidityPeriod
	RegisteredDelivery
	ReplaceIfPresentFlag
	DataCoding
	SmDefaultMsgID
	SmLength
	ShortMessage
	MessageID
	FinalDate
	MessageState
	ErrorCode

	// submit_multi.
	NumberOfDests
	DestFlag
	DlName
	DestinationAddresses
	NoUnsuccess
	UnsuccessSmes
	UnsuccessSmeAddr
	UnsuccessSmeError

	// broadcast family.
	MessageID2
	BroadcastAreaIdentifier
	BroadcastContentType
	BroadcastFrequencyInterval

	// query/cancel/replace.
	MessageIDRef

	// alert_notification.
	MsAvailabilityStatus

	// TLV container and generic escape.
	Tag
	ValueLength
	Value
	Tlvs

	// TLV-typed value payloads.
	MessagePayload
	CallbackNum
	ReceiptedMessageID
	UserMessageReference
	NetworkErrorCode
	Subaddress
	NumberOfMessages
	UssdServiceOp
	MsMsgWaitFacilities
	MsValidity
	CallbackNumPresInd
	ConcatenatedShortMessage
	DpfResult
	DeliveryFailureReason

	// Framer.
	FrameLength
	FrameBody
)

var names = map[ID]string{
	Unknown:                    "unknown",
	CommandLength:              "command_length",
	CommandID:                  "command_id",
	CommandStatus:              "command_status",
	SequenceNumber:             "sequence_number",
	Body:                       "body",
	SystemID:                   "system_id",
	Password:                   "password",
	SystemType:                 "system_type",
	InterfaceVersion:           "interface_version",
	AddrTON:                    "addr_ton",
	AddrNPI:                    "addr_npi",
	AddressRange:               "address_range",
	ScInterfaceVersion:         "sc_interface_version",
	ServiceType:                "service_type",
	SourceAddrTON:              "source_addr_ton",
	SourceAddrNPI:              "source_addr_npi",
	SourceAddr:                 "source_addr",
	DestAddrTON:                "dest_addr_ton",
	DestAddrNPI:                "dest_addr_npi",
	DestinationAddr:            "destination_addr",
	ESMEAddrTON:                "esme_addr_ton",
	ESMEAddrNPI:                "esme_addr_npi",
	ESMEAddr:                   "esme_addr",
	EsmClass:                   "esm_class",
	ProtocolID:                 "protocol_id",
	PriorityFlag:               "priority_flag",
	ScheduleDeliveryTime:       "schedule_delivery_time",
	ValidityPeriod:             "validity_period",
	RegisteredDelivery:         "registered_delivery",
	ReplaceIfPresentFlag:       "replace_if_present_flag",
	DataCoding:                 "data_coding",
	SmDefaultMsgID:             "sm_default_msg_id",
	SmLength:                   "sm_length",
	ShortMessage:               "short_message",
	MessageID:                  "message_id",
	FinalDate:                  "final_date",
	MessageState:               "message_state",
	ErrorCode:                  "error_code",
	NumberOfDests:              "number_of_dests",
	DestFlag:                   "dest_flag",
	DlName:                     "dl_name",
	DestinationAddresses:       "dest_addresses",
	NoUnsuccess:                "no_unsuccess",
	UnsuccessSmes:              "unsuccess_smes",
	UnsuccessSmeAddr:           "unsuccess_sme_addr",
	UnsuccessSmeError:          "unsuccess_sme_error",
	MessageID2:                 "message_id",
	BroadcastAreaIdentifier:    "broadcast_area_identifier",
	BroadcastContentType:       "broadcast_content_type",
	BroadcastFrequencyInterval: "broadcast_frequency_interval",
	MessageIDRef:               "message_id",
	MsAvailabilityStatus:       "ms_availability_status",
	Tag:                        "tag",
	ValueLength:                "value_length",
	Value:                      "value",
	Tlvs:                       "tlvs",
	MessagePayload:             "message_payload",
	CallbackNum:                "callback_num",
	ReceiptedMessageID:         "receipted_message_id",
	UserMessageReference:       "user_message_reference",
	NetworkErrorCode:           "network_error_code",
	Subaddress:                 "subaddress",
	NumberOfMessages:           "number_of_messages",
	UssdServiceOp:              "ussd_service_op",
	MsMsgWaitFacilities:        "ms_msg_wait_facilities",
	MsValidity:                 "ms_validity",
	CallbackNumPresInd:         "callback_num_pres_ind",
	ConcatenatedShortMessage:   "concatenated_short_message",
	DpfResult:                  "dpf_result",
	DeliveryFailureReason:      "delivery_failure_reason",
	FrameLength:                "frame_length",
	FrameBody:                  "frame_body",
}

// String renders the field symbol the way it appears in the wire spec
// (snake_case), used verbatim in decode error chains.
func (i ID) String() string {
	if s, ok := names[i]; ok {
		return s
	}
	return "field(?)"
}
