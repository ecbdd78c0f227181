// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package values implements every leaf value type of the protocol:
// single-octet/double-octet enumerations, bitfield packs and the
// composite structs TLV values are built from (spec.md §3/§4.2).
//
// Every enumeration here is an open enumeration (spec.md §9: "every
// enumeration has an Other(raw) escape so unknown wire values survive
// round-tripping"). In Go a named integer type already behaves this way
// with no wrapper: any byte/uint16 value is a valid instance of the type,
// known values simply have names. Unknown wire values decode to the same
// Go value an `Other(raw)` variant would hold, so nothing is lost on
// round-trip and there is no extra indirection on the common path — this
// is the Go-idiomatic reading of the "tagged union, last variant carries
// raw value" design note.
package values

// Ton is the type of number of an SME address.
type Ton uint8

const (
	TonUnknown          Ton = 0b00000000
	TonInternational    Ton = 0b00000001
	TonNational         Ton = 0b00000010
	TonNetworkSpecific  Ton = 0b00000011
	TonSubscriberNumber Ton = 0b00000100
	TonAlphanumeric     Ton = 0b00000101
	TonAbbreviated      Ton = 0b00000110
)

// Npi is the numbering plan indicator of an SME address.
type Npi uint8

const (
	NpiUnknown     Npi = 0b00000000
	NpiIsdn        Npi = 0b00000001
	NpiData        Npi = 0b00000011
	NpiTelex       Npi = 0b00000100
	NpiLandMobile  Npi = 0b00000110
	NpiNational    Npi = 0b00001000
	NpiPrivate     Npi = 0b00001001
	NpiErmes       Npi = 0b00001010
	NpiInternet    Npi = 0b00001110
	NpiWapClientID Npi = 0b00010010
)

// InterfaceVersion is the SMPP protocol version a bind operation declares.
type InterfaceVersion uint8

const (
	InterfaceVersionSmpp33 InterfaceVersion = 0x33
	InterfaceVersionSmpp34 InterfaceVersion = 0x34
	InterfaceVersionSmpp50 InterfaceVersion = 0x50
)

// ReplaceIfPresentFlag controls whether submit_sm replaces an
// already-queued message with the same key.
type ReplaceIfPresentFlag uint8

const (
	ReplaceIfPresentFlagDoNotReplace ReplaceIfPresentFlag = 0x00
	ReplaceIfPresentFlagReplace      ReplaceIfPresentFlag = 0x01
)

// UssdServiceOp is the ussd_service_op TLV value.
type UssdServiceOp uint8

const (
	UssdServiceOpPssdIndication UssdServiceOp = 0
	UssdServiceOpPssrIndication UssdServiceOp = 1
	UssdServiceOpUssrRequest    UssdServiceOp = 2
	UssdServiceOpUssnRequest    UssdServiceOp = 3
	UssdServiceOpPssdResponse   UssdServiceOp = 16
	UssdServiceOpPssrResponse   UssdServiceOp = 17
	UssdServiceOpUssrConfirm    UssdServiceOp = 18
	UssdServiceOpUssnConfirm    UssdServiceOp = 19
)

// ErrorCodeNetworkType discriminates the network_error_code TLV's
// error_code field.
type ErrorCodeNetworkType uint8

const (
	ErrorCodeNetworkTypeAnsi136AccessDenied ErrorCodeNetworkType = 1
	ErrorCodeNetworkTypeIs95AccessDenied    ErrorCodeNetworkType = 2
	ErrorCodeNetworkTypeGsm                 ErrorCodeNetworkType = 3
	ErrorCodeNetworkTypeAnsi136Cause        ErrorCodeNetworkType = 4
	ErrorCodeNetworkTypeIs95Cause           ErrorCodeNetworkType = 5
	ErrorCodeNetworkTypeAnsi41Error         ErrorCodeNetworkType = 6
	ErrorCodeNetworkTypeSmppError           ErrorCodeNetworkType = 7
	ErrorCodeNetworkTypeMessageCenter       ErrorCodeNetworkType = 8
)

// SubaddressTag discriminates a Subaddress value's addr encoding.
type SubaddressTag uint8

const (
	SubaddressTagNsapEven      SubaddressTag = 0b10000000
	SubaddressTagNsapOdd       SubaddressTag = 0b10001000
	SubaddressTagUserSpecified SubaddressTag = 0b10100000
)

// BroadcastAreaFormat discriminates a BroadcastAreaIdentifier's details
// encoding.
type BroadcastAreaFormat uint8

const (
	BroadcastAreaFormatAliasName    BroadcastAreaFormat = 0x00
	BroadcastAreaFormatEllipsoidArc BroadcastAreaFormat = 0x01
	BroadcastAreaFormatPolygon      BroadcastAreaFormat = 0x02
)

// TypeOfNetwork is broadcast_content_type's network discriminator.
type TypeOfNetwork uint8

const (
	TypeOfNetworkGeneric TypeOfNetwork = 0
	TypeOfNetworkGsm     TypeOfNetwork = 1
	TypeOfNetworkTdma    TypeOfNetwork = 2
	TypeOfNetworkCdma    TypeOfNetwork = 3
)

// EncodingContentType is broadcast_content_type's content category.
type EncodingContentType uint16

const (
	EncodingContentTypeIndex                    EncodingContentType = 0x0000
	EncodingContentTypeEmergencyBroadcasts       EncodingContentType = 0x0001
	EncodingContentTypeIrdbDownload              EncodingContentType = 0x0002
	EncodingContentTypeNewsFlashes               EncodingContentType = 0x0003
	EncodingContentTypeGeneralNewsLocal          EncodingContentType = 0x0011
	EncodingContentTypeGeneralNewsRegional       EncodingContentType = 0x0012
	EncodingContentTypeGeneralNewsNational       EncodingContentType = 0x0013
	EncodingContentTypeGeneralNewsInternational  EncodingContentType = 0x0014
	EncodingContentTypeWeather                   EncodingContentType = 0x0033
	EncodingContentTypeMultiCategoryServices     EncodingContentType = 0x0100
)

// BroadcastMessageClass is the broadcast_message_class TLV value.
type BroadcastMessageClass uint8

const (
	BroadcastMessageClassNoClassSpecified BroadcastMessageClass = 0x00
	BroadcastMessageClassClass1           BroadcastMessageClass = 0x01
	BroadcastMessageClassClass2           BroadcastMessageClass = 0x02
	BroadcastMessageClassClass3           BroadcastMessageClass = 0x03
)

// BroadcastChannelIndicator is the broadcast_channel_indicator TLV value.
type BroadcastChannelIndicator uint8

const (
	BroadcastChannelIndicatorBasic    BroadcastChannelIndicator = 0x00
	BroadcastChannelIndicatorExtended BroadcastChannelIndicator = 0x01
)

// UnitOfTime discriminates a BroadcastFrequencyInterval's value unit.
type UnitOfTime uint8

const (
	UnitOfTimeAsFrequentlyAsPossible UnitOfTime = 0x00
	UnitOfTimeSeconds                UnitOfTime = 0x08
	UnitOfTimeMinutes                UnitOfTime = 0x09
	UnitOfTimeHours                  UnitOfTime = 0x0A
	UnitOfTimeDays                   UnitOfTime = 0x0B
	UnitOfTimeWeeks                  UnitOfTime = 0x0C
	UnitOfTimeMonths                 UnitOfTime = 0x0D
	UnitOfTimeYears                  UnitOfTime = 0x0E
)

// MsValidityBehavior is the ms_validity TLV's validity_behavior field.
type MsValidityBehavior uint8

const (
	MsValidityBehaviorStoreIndefinitely                 MsValidityBehavior = 0
	MsValidityBehaviorPowerDown                         MsValidityBehavior = 1
	MsValidityBehaviorValidUntilRegistrationAreaChanges MsValidityBehavior = 2
	MsValidityBehaviorDisplayOnly                       MsValidityBehavior = 3
)

// MsAvailabilityStatus is the alert_notification ms_availability_status
// TLV value.
type MsAvailabilityStatus uint8

const (
	MsAvailabilityStatusAvailable   MsAvailabilityStatus = 0
	MsAvailabilityStatusDenied      MsAvailabilityStatus = 1
	MsAvailabilityStatusUnavailable MsAvailabilityStatus = 2
)

// DpfResult is the dpf_result TLV value (submit_sm_resp).
type DpfResult uint8

const (
	DpfResultNotSet DpfResult = 0
	DpfResultSet    DpfResult = 1
)

// DeliveryFailureReason is the delivery_failure_reason TLV value
// (data_sm_resp).
type DeliveryFailureReason uint8

const (
	DeliveryFailureReasonDestinationUnavailable    DeliveryFailureReason = 0
	DeliveryFailureReasonDestinationAddressInvalid DeliveryFailureReason = 1
	DeliveryFailureReasonPermanentNetworkError      DeliveryFailureReason = 2
	DeliveryFailureReasonTemporaryNetworkError     DeliveryFailureReason = 3
)


// MessageState is the message_state TLV value (deliver_sm receipts,
// query_sm_resp).
type MessageState uint8

const (
	MessageStateEnroute       MessageState = 1
	MessageStateDelivered     MessageState = 2
	MessageStateExpired       MessageState = 3
	MessageStateDeleted       MessageState = 4
	MessageStateUndeliverable MessageState = 5
	MessageStateAccepted      MessageState = 6
	MessageStateUnknown       MessageState = 7
	MessageStateRejected      MessageState = 8
	MessageStateSkipped       MessageState = 9
)

// DataCoding is the data_coding mandatory field. Two pairs of wire values
// are historically distinct-but-equivalent ("OctetUnspecified" /
// "OctetUnspecified2", spec.md §9's first bullet); both are kept as
// separate named constants with the same underlying byte family they had
// in the source protocol and are never collapsed into one canonical name.
type DataCoding uint8

const (
	DataCodingMcSpecific            DataCoding = 0b00000000
	DataCodingIa5                   DataCoding = 0b00000001
	DataCodingOctetUnspecified      DataCoding = 0b00000010
	DataCodingLatin1                DataCoding = 0b00000011
	DataCodingOctetUnspecified2     DataCoding = 0b00000100
	DataCodingJis                   DataCoding = 0b00000101
	DataCodingCyrillic              DataCoding = 0b00000110
	DataCodingLatinHebrew           DataCoding = 0b00000111
	DataCodingUcs2                  DataCoding = 0b00001000
	DataCodingPictogramEncoding     DataCoding = 0b00001001
	DataCodingIso2022JpMusicCodes   DataCoding = 0b00001010
	DataCodingExtendedKanjiJis      DataCoding = 0b00001101
	DataCodingKsc5601               DataCoding = 0b00001110
	DataCodingGsmMwiControl         DataCoding = 0b11000000
	DataCodingGsmMwiControl2        DataCoding = 0b11010000
	DataCodingGsmMessageClassControl DataCoding = 0b11100000
)
