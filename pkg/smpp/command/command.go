// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"reflect"

	"github.com/absmach/smpp/pkg/smpp/codec"
	"github.com/absmach/smpp/pkg/smpp/ioutil"
	"github.com/absmach/smpp/pkg/smpp/pdu"
	"github.com/absmach/smpp/pkg/smpp/smpperr"
)

const headerLength = 16

// Body is any PDU body (pkg/smpp/pdu) usable inside a Command.
type Body = codec.Encoder

// Command is the 16-byte envelope plus body described by spec.md §4.6:
// command-id, command-status, sequence-number, then the body bytes whose
// shape command-id dictates.
type Command struct {
	ID     ID
	Status Status
	Seq    uint32
	Body   Body
}

// Length reports the wire length of cmd, including the 16-byte header.
func (cmd Command) Length() int {
	n := headerLength
	if cmd.Body != nil {
		n += cmd.Body.Length()
	}
	return n
}

// Encode writes cmd to buf, including the 4-byte command_length prefix,
// and returns the bytes written.
func (cmd Command) Encode(buf []byte) int {
	total := cmd.Length()
	n := ioutil.PutUint32(buf, uint32(total))
	n += ioutil.PutUint32(buf[n:], uint32(cmd.ID))
	n += ioutil.PutUint32(buf[n:], uint32(cmd.Status))
	n += ioutil.PutUint32(buf[n:], cmd.Seq)
	if cmd.Body != nil {
		n += cmd.Body.Encode(buf[n:])
	}
	return n
}

// Validate checks the command/body coherence invariant (spec.md §4.3
// item 4): cmd.ID must match the Go body type the registry associates
// with that command-id. A nil Body is valid only for command-ids whose
// registered type is pdu.Empty.
func (cmd Command) Validate() error {
	wantType, ok := bodyTypes[cmd.ID]
	if !ok {
		// Unknown command-id: no coherence constraint to check (Other
		// escape, spec.md §4.3's command-id enumeration).
		return nil
	}
	if cmd.Body == nil {
		if wantType == reflect.TypeOf(pdu.Empty{}) {
			return nil
		}
		return smpperr.New(smpperr.UnsupportedKey, "command: %s requires a %s body, got none", cmd.ID, wantType)
	}
	gotType := reflect.TypeOf(cmd.Body)
	if gotType != wantType {
		return smpperr.New(smpperr.UnsupportedKey, "command: %s requires a %s body, got %s", cmd.ID, wantType, gotType)
	}
	return nil
}

// bodyTypes maps each known command-id to the Go type its body must have.
// Several ids share one body type (Empty serves five of them; Bind serves
// the three bind_* requests; BindResp serves their three responses) since
// command-id — not Go type — is what distinguishes the operation.
var bodyTypes = map[ID]reflect.Type{
	IDGenericNack:         reflect.TypeOf(pdu.Empty{}),
	IDUnbind:              reflect.TypeOf(pdu.Empty{}),
	IDUnbindResp:          reflect.TypeOf(pdu.Empty{}),
	IDEnquireLink:         reflect.TypeOf(pdu.Empty{}),
	IDEnquireLinkResp:     reflect.TypeOf(pdu.Empty{}),
	IDBindReceiver:        reflect.TypeOf(pdu.Bind{}),
	IDBindTransmitter:     reflect.TypeOf(pdu.Bind{}),
	IDBindTransceiver:     reflect.TypeOf(pdu.Bind{}),
	IDBindReceiverResp:    reflect.TypeOf(pdu.BindResp{}),
	IDBindTransmitterResp: reflect.TypeOf(pdu.BindResp{}),
	IDBindTransceiverResp: reflect.TypeOf(pdu.BindResp{}),
	IDOutbind:             reflect.TypeOf(pdu.Outbind{}),
	IDSubmitSm:            reflect.TypeOf(pdu.SubmitSm{}),
	IDSubmitSmResp:        reflect.TypeOf(pdu.SubmitOrDataSmResp{}),
	IDDeliverSm:           reflect.TypeOf(pdu.DeliverSm{}),
	IDDeliverSmResp:       reflect.TypeOf(pdu.DeliverSmResp{}),
	IDDataSm:              reflect.TypeOf(pdu.DataSm{}),
	IDDataSmResp:          reflect.TypeOf(pdu.SubmitOrDataSmResp{}),
	IDSubmitMulti:         reflect.TypeOf(pdu.SubmitMulti{}),
	IDSubmitMultiResp:     reflect.TypeOf(pdu.SubmitMultiResp{}),
	IDQuerySm:             reflect.TypeOf(pdu.QuerySm{}),
	IDQuerySmResp:         reflect.TypeOf(pdu.QuerySmResp{}),
	IDCancelSm:            reflect.TypeOf(pdu.CancelSm{}),
	IDCancelSmResp:        reflect.TypeOf(pdu.Empty{}),
	IDReplaceSm:           reflect.TypeOf(pdu.ReplaceSm{}),
	IDReplaceSmResp:       reflect.TypeOf(pdu.Empty{}),
	IDAlertNotification:   reflect.TypeOf(pdu.AlertNotification{}),
	IDBroadcastSm:         reflect.TypeOf(pdu.BroadcastSm{}),
	IDBroadcastSmResp:     reflect.TypeOf(pdu.BroadcastSmResp{}),
	IDQueryBroadcastSm:      reflect.TypeOf(pdu.QueryBroadcastSm{}),
	IDQueryBroadcastSmResp:  reflect.TypeOf(pdu.QueryBroadcastSmResp{}),
	IDCancelBroadcastSm:     reflect.TypeOf(pdu.CancelBroadcastSm{}),
	IDCancelBroadcastSmResp: reflect.TypeOf(pdu.Empty{}),
}
