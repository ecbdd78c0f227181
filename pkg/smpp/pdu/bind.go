// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package pdu

import (
	"github.com/absmach/smpp/pkg/smpp/field"
	"github.com/absmach/smpp/pkg/smpp/ioutil"
	"github.com/absmach/smpp/pkg/smpp/smpperr"
	"github.com/absmach/smpp/pkg/smpp/tlv"
	"github.com/absmach/smpp/pkg/smpp/values"
)

// Bind is the shared mandatory-parameter body for bind_transmitter,
// bind_receiver and bind_transceiver (all three share one wire shape;
// which operation it is lives in the command envelope's command_id, not
// the body).
type Bind struct {
	SystemID         []byte
	Password         []byte
	SystemType       []byte
	InterfaceVersion values.InterfaceVersion
	AddrTon          values.Ton
	AddrNpi          values.Npi
	AddressRange     []byte
}

// Length reports the wire length of b.
func (b Bind) Length() int {
	return (len(b.SystemID) + 1) + (len(b.Password) + 1) + (len(b.SystemType) + 1) + 1 + 1 + 1 + (len(b.AddressRange) + 1)
}

// Encode writes b to buf and returns the bytes written.
func (b Bind) Encode(buf []byte) int {
	n := ioutil.EncodeCOctetString(buf, b.SystemID)
	n += ioutil.EncodeCOctetString(buf[n:], b.Password)
	n += ioutil.EncodeCOctetString(buf[n:], b.SystemType)
	buf[n] = byte(b.InterfaceVersion)
	n++
	buf[n] = byte(b.AddrTon)
	n++
	buf[n] = byte(b.AddrNpi)
	n++
	n += ioutil.EncodeCOctetString(buf[n:], b.AddressRange)
	return n
}

// DecodeBind decodes a Bind from the head of src.
func DecodeBind(src []byte) (Bind, int, error) {
	systemID, n, err := ioutil.DecodeCOctetString(src, 1, 16)
	if err != nil {
		return Bind{}, 0, smpperr.WrapField(field.SystemID, err)
	}
	password, c, err := ioutil.DecodeCOctetString(src[n:], 1, 9)
	if err != nil {
		return Bind{}, 0, smpperr.WrapField(field.Password, err)
	}
	n += c
	systemType, c, err := ioutil.DecodeCOctetString(src[n:], 1, 13)
	if err != nil {
		return Bind{}, 0, smpperr.WrapField(field.SystemType, err)
	}
	n += c
	if len(src)-n < 3 {
		return Bind{}, 0, smpperr.WrapField(field.InterfaceVersion, smpperr.New(smpperr.UnexpectedEOF, "bind: need 3 more bytes, got %d", len(src)-n))
	}
	ifVer := values.InterfaceVersion(src[n])
	n++
	ton := values.Ton(src[n])
	n++
	npi := values.Npi(src[n])
	n++
	addressRange, c, err := ioutil.DecodeCOctetString(src[n:], 1, 41)
	if err != nil {
		return Bind{}, 0, smpperr.WrapField(field.AddressRange, err)
	}
	n += c
	return Bind{
		SystemID: systemID, Password: password, SystemType: systemType,
		InterfaceVersion: ifVer, AddrTon: ton, AddrNpi: npi, AddressRange: addressRange,
	}, n, nil
}

// Clone returns a deep copy of b.
func (b Bind) Clone() Bind {
	return Bind{
		SystemID:         append([]byte(nil), b.SystemID...),
		Password:         append([]byte(nil), b.Password...),
		SystemType:       append([]byte(nil), b.SystemType...),
		InterfaceVersion: b.InterfaceVersion,
		AddrTon:          b.AddrTon,
		AddrNpi:          b.AddrNpi,
		AddressRange:     append([]byte(nil), b.AddressRange...),
	}
}

// BindResp is the shared response body for bind_transmitter_resp,
// bind_receiver_resp and bind_transceiver_resp: a system_id plus an
// optional sc_interface_version TLV.
type BindResp struct {
	SystemID []byte
	Tlvs     []tlv.TLV
}

// Length reports the wire length of b.
func (b BindResp) Length() int {
	return len(b.SystemID) + 1 + tlv.ListLength(b.Tlvs)
}

// Encode writes b to buf and returns the bytes written.
func (b BindResp) Encode(buf []byte) int {
	n := ioutil.EncodeCOctetString(buf, b.SystemID)
	return n + tlv.EncodeList(buf[n:], b.Tlvs)
}

// DecodeBindResp decodes a BindResp occupying exactly length bytes of
// src.
func DecodeBindResp(src []byte, length int) (BindResp, int, error) {
	systemID, n, err := ioutil.DecodeCOctetString(src, 1, 16)
	if err != nil {
		return BindResp{}, 0, smpperr.WrapField(field.SystemID, err)
	}
	list, c, err := tlv.DecodeList(src[n:], length-n)
	if err != nil {
		return BindResp{}, 0, smpperr.WrapField(field.Tlvs, err)
	}
	return BindResp{SystemID: systemID, Tlvs: list}, n + c, nil
}

// Clone returns a deep copy of b.
func (b BindResp) Clone() BindResp {
	return BindResp{SystemID: append([]byte(nil), b.SystemID...), Tlvs: tlv.CloneList(b.Tlvs)}
}

// Outbind is the mc-initiated session-establishment body: just a system
// id and password, no interface negotiation.
type Outbind struct {
	SystemID []byte
	Password []byte
}

// Length reports the wire length of o.
func (o Outbind) Length() int {
	return len(o.SystemID) + 1 + len(o.Password) + 1
}

// Encode writes o to buf and returns the bytes written.
func (o Outbind) Encode(buf []byte) int {
	n := ioutil.EncodeCOctetString(buf, o.SystemID)
	return n + ioutil.EncodeCOctetString(buf[n:], o.Password)
}

// DecodeOutbind decodes an Outbind from the head of src.
func DecodeOutbind(src []byte) (Outbind, int, error) {
	systemID, n, err := ioutil.DecodeCOctetString(src, 1, 16)
	if err != nil {
		return Outbind{}, 0, smpperr.WrapField(field.SystemID, err)
	}
	password, c, err := ioutil.DecodeCOctetString(src[n:], 1, 9)
	if err != nil {
		return Outbind{}, 0, smpperr.WrapField(field.Password, err)
	}
	return Outbind{SystemID: systemID, Password: password}, n + c, nil
}

// Clone returns a deep copy of o.
func (o Outbind) Clone() Outbind {
	return Outbind{SystemID: append([]byte(nil), o.SystemID...), Password: append([]byte(nil), o.Password...)}
}
