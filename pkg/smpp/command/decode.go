// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/absmach/smpp/pkg/smpp/ioutil"
	"github.com/absmach/smpp/pkg/smpp/pdu"
	"github.com/absmach/smpp/pkg/smpp/smpperr"
)

// Header is the decoded form of a command's fixed 16-byte prefix.
type Header struct {
	Length int
	ID     ID
	Status Status
	Seq    uint32
}

// DecodeHeader decodes the 16-byte command header from the head of src.
// Length is command_length as read from the wire (including these 16
// bytes); it is the caller's responsibility to have already validated it
// against a minimum/maximum (pkg/smpp/framer does this before calling
// Decode).
func DecodeHeader(src []byte) (Header, error) {
	if len(src) < headerLength {
		return Header{}, smpperr.New(smpperr.UnexpectedEOF, "command header: need %d bytes, got %d", headerLength, len(src))
	}
	length, _, _ := ioutil.GetUint32(src[0:4])
	id, _, _ := ioutil.GetUint32(src[4:8])
	status, _, _ := ioutil.GetUint32(src[8:12])
	seq, _, _ := ioutil.GetUint32(src[12:16])
	return Header{Length: int(length), ID: ID(id), Status: Status(status), Seq: seq}, nil
}

// bodyDecoder decodes a body occupying exactly body's full length.
type bodyDecoder func(body []byte) (Body, error)

// exact wraps a fixed-shape pdu decoder (no trailing TLV list) into a
// bodyDecoder, verifying it consumed every byte of body.
func exact[T Body](decode func([]byte) (T, int, error)) bodyDecoder {
	return func(body []byte) (Body, error) {
		v, n, err := decode(body)
		if err != nil {
			return nil, err
		}
		if n != len(body) {
			return nil, smpperr.New(smpperr.UnexpectedEOF, "body: decoded %d of %d bytes", n, len(body))
		}
		return v, nil
	}
}

// budgeted wraps a pdu decoder that takes an explicit length budget
// (every body ending in a TLV list) into a bodyDecoder.
func budgeted[T Body](decode func([]byte, int) (T, int, error)) bodyDecoder {
	return func(body []byte) (Body, error) {
		v, n, err := decode(body, len(body))
		if err != nil {
			return nil, err
		}
		if n != len(body) {
			return nil, smpperr.New(smpperr.UnexpectedEOF, "body: decoded %d of %d bytes", n, len(body))
		}
		return v, nil
	}
}

var bodyDecoders = map[ID]bodyDecoder{
	IDGenericNack:     exact(pdu.DecodeEmpty),
	IDUnbind:          exact(pdu.DecodeEmpty),
	IDUnbindResp:      exact(pdu.DecodeEmpty),
	IDEnquireLink:     exact(pdu.DecodeEmpty),
	IDEnquireLinkResp: exact(pdu.DecodeEmpty),

	IDBindReceiver:        exact(pdu.DecodeBind),
	IDBindTransmitter:     exact(pdu.DecodeBind),
	IDBindTransceiver:     exact(pdu.DecodeBind),
	IDBindReceiverResp:    budgeted(pdu.DecodeBindResp),
	IDBindTransmitterResp: budgeted(pdu.DecodeBindResp),
	IDBindTransceiverResp: budgeted(pdu.DecodeBindResp),
	IDOutbind:             exact(pdu.DecodeOutbind),

	IDSubmitSm:     budgeted(pdu.DecodeSubmitSm),
	IDSubmitSmResp: budgeted(pdu.DecodeSubmitOrDataSmResp),
	IDDeliverSm:    budgeted(pdu.DecodeDeliverSm),
	IDDeliverSmResp: budgeted(pdu.DecodeDeliverSmResp),
	IDDataSm:        budgeted(pdu.DecodeDataSm),
	IDDataSmResp:    budgeted(pdu.DecodeSubmitOrDataSmResp),

	IDSubmitMulti:     budgeted(pdu.DecodeSubmitMulti),
	IDSubmitMultiResp: budgeted(pdu.DecodeSubmitMultiResp),

	IDQuerySm:      exact(pdu.DecodeQuerySm),
	IDQuerySmResp:  exact(pdu.DecodeQuerySmResp),
	IDCancelSm:     exact(pdu.DecodeCancelSm),
	IDCancelSmResp: exact(pdu.DecodeEmpty),
	IDReplaceSm:    exact(pdu.DecodeReplaceSm),
	IDReplaceSmResp: exact(pdu.DecodeEmpty),

	IDAlertNotification: budgeted(pdu.DecodeAlertNotification),

	IDBroadcastSm:           budgeted(pdu.DecodeBroadcastSm),
	IDBroadcastSmResp:       budgeted(pdu.DecodeBroadcastSmResp),
	IDQueryBroadcastSm:      budgeted(pdu.DecodeQueryBroadcastSm),
	IDQueryBroadcastSmResp:  budgeted(pdu.DecodeQueryBroadcastSmResp),
	IDCancelBroadcastSm:     budgeted(pdu.DecodeCancelBroadcastSm),
	IDCancelBroadcastSmResp: exact(pdu.DecodeEmpty),
}

// Decode decodes a whole command occupying exactly length bytes of src
// (length as read by DecodeHeader, the framer's unit of reassembly).
// Unknown command-ids decode as a pdu.Other carrying the raw body bytes
// (spec.md §4.3's Other(u32) escape), so the command re-encodes
// byte-identically even though its shape is unrecognized.
func Decode(src []byte, length int) (Command, error) {
	if len(src) < length {
		return Command{}, smpperr.New(smpperr.UnexpectedEOF, "command: need %d bytes, got %d", length, len(src))
	}
	hdr, err := DecodeHeader(src)
	if err != nil {
		return Command{}, err
	}
	bodyBytes := src[headerLength:length]
	decode, ok := bodyDecoders[hdr.ID]
	if !ok {
		body, _, _ := pdu.DecodeOther(bodyBytes)
		return Command{ID: hdr.ID, Status: hdr.Status, Seq: hdr.Seq, Body: body}, nil
	}
	body, err := decode(bodyBytes)
	if err != nil {
		return Command{}, err
	}
	return Command{ID: hdr.ID, Status: hdr.Status, Seq: hdr.Seq, Body: body}, nil
}
