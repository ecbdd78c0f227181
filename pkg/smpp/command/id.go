// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package command implements the SMPP v5.0 command envelope: the 16-byte
// header (command_length, command_id, command_status, sequence_number)
// that precedes every PDU body, plus the command_id and command_status
// enumerations. Unknown command_id values are never rejected — they
// round-trip as Other(raw), matching how every enumeration in this
// module handles values outside its known set.
package command

import "strconv"

// ID is the four-byte command identifier. The high bit (0x80000000)
// marks a response to the corresponding request.
type ID uint32

// SMPP v5.0 command set (spec.md §4.4, cross-checked against the
// command-id constants reused below).
const (
	IDGenericNack           ID = 0x80000000
	IDBindReceiver          ID = 0x00000001
	IDBindReceiverResp      ID = 0x80000001
	IDBindTransmitter       ID = 0x00000002
	IDBindTransmitterResp   ID = 0x80000002
	IDQuerySm               ID = 0x00000003
	IDQuerySmResp           ID = 0x80000003
	IDSubmitSm              ID = 0x00000004
	IDSubmitSmResp          ID = 0x80000004
	IDDeliverSm             ID = 0x00000005
	IDDeliverSmResp         ID = 0x80000005
	IDUnbind                ID = 0x00000006
	IDUnbindResp            ID = 0x80000006
	IDReplaceSm             ID = 0x00000007
	IDReplaceSmResp         ID = 0x80000007
	IDCancelSm              ID = 0x00000008
	IDCancelSmResp          ID = 0x80000008
	IDBindTransceiver       ID = 0x00000009
	IDBindTransceiverResp   ID = 0x80000009
	IDOutbind               ID = 0x0000000B
	IDEnquireLink           ID = 0x00000015
	IDEnquireLinkResp       ID = 0x80000015
	IDSubmitMulti           ID = 0x00000021
	IDSubmitMultiResp       ID = 0x80000021
	IDAlertNotification     ID = 0x00000102
	IDDataSm                ID = 0x00000103
	IDDataSmResp            ID = 0x80000103

	// SMPP v5.0 broadcast family, absent from the v3.4-era constant
	// table above — added per spec.md's broadcast module.
	IDBroadcastSm           ID = 0x00000111
	IDBroadcastSmResp       ID = 0x80000111
	IDQueryBroadcastSm      ID = 0x00000112
	IDQueryBroadcastSmResp  ID = 0x80000112
	IDCancelBroadcastSm     ID = 0x00000113
	IDCancelBroadcastSmResp ID = 0x80000113
)

var idNames = map[ID]string{
	IDGenericNack:           "generic_nack",
	IDBindReceiver:          "bind_receiver",
	IDBindReceiverResp:      "bind_receiver_resp",
	IDBindTransmitter:       "bind_transmitter",
	IDBindTransmitterResp:   "bind_transmitter_resp",
	IDQuerySm:               "query_sm",
	IDQuerySmResp:           "query_sm_resp",
	IDSubmitSm:              "submit_sm",
	IDSubmitSmResp:          "submit_sm_resp",
	IDDeliverSm:             "deliver_sm",
	IDDeliverSmResp:         "deliver_sm_resp",
	IDUnbind:                "unbind",
	IDUnbindResp:            "unbind_resp",
	IDReplaceSm:             "replace_sm",
	IDReplaceSmResp:         "replace_sm_resp",
	IDCancelSm:              "cancel_sm",
	IDCancelSmResp:          "cancel_sm_resp",
	IDBindTransceiver:       "bind_transceiver",
	IDBindTransceiverResp:   "bind_transceiver_resp",
	IDOutbind:               "outbind",
	IDEnquireLink:           "enquire_link",
	IDEnquireLinkResp:       "enquire_link_resp",
	IDSubmitMulti:           "submit_multi",
	IDSubmitMultiResp:       "submit_multi_resp",
	IDAlertNotification:     "alert_notification",
	IDDataSm:                "data_sm",
	IDDataSmResp:            "data_sm_resp",
	IDBroadcastSm:           "broadcast_sm",
	IDBroadcastSmResp:       "broadcast_sm_resp",
	IDQueryBroadcastSm:      "query_broadcast_sm",
	IDQueryBroadcastSmResp:  "query_broadcast_sm_resp",
	IDCancelBroadcastSm:     "cancel_broadcast_sm",
	IDCancelBroadcastSmResp: "cancel_broadcast_sm_resp",
}

// String renders the known operation name, or "id(0x...)" for anything
// outside the table above.
func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return "id(0x" + strconv.FormatUint(uint64(id), 16) + ")"
}

// IsResponse reports whether id's high bit marks it as a response pdu.
func (id ID) IsResponse() bool { return id&0x80000000 != 0 }
