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

// SSm ("short message") is the mandatory-parameter block shared by
// submit_sm and deliver_sm (rusmpp names it the same way: a single
// struct reused by both bodies since they carry identical fields).
type SSm struct {
	ServiceType          []byte
	SourceAddr           Address
	DestAddr             Address
	EsmClass             values.EsmClass
	ProtocolID           uint8
	PriorityFlag         values.PriorityFlag
	ScheduleDeliveryTime []byte // empty, or exactly 16 chars + NUL
	ValidityPeriod       []byte // empty, or exactly 16 chars + NUL
	RegisteredDelivery   values.RegisteredDelivery
	ReplaceIfPresentFlag values.ReplaceIfPresentFlag
	DataCoding           values.DataCoding
	SmDefaultMsgID       uint8
	ShortMessage         []byte // at most 255 bytes
}

// Length reports the wire length of s.
func (s SSm) Length() int {
	return len(s.ServiceType) + 1 +
		s.SourceAddr.Length() + s.DestAddr.Length() +
		1 + 1 + 1 +
		len(s.ScheduleDeliveryTime) + 1 +
		len(s.ValidityPeriod) + 1 +
		1 + 1 + 1 + 1 + 1 +
		len(s.ShortMessage)
}

// Encode writes s to buf and returns the bytes written. When tlvs carries
// a message_payload TLV, the caller must have already zeroed
// ShortMessage (see SanitizeForMessagePayload) — Encode itself does not
// inspect tlvs.
func (s SSm) Encode(buf []byte) int {
	n := ioutil.EncodeCOctetString(buf, s.ServiceType)
	n += s.SourceAddr.Encode(buf[n:])
	n += s.DestAddr.Encode(buf[n:])
	buf[n] = s.EsmClass.Byte()
	n++
	buf[n] = s.ProtocolID
	n++
	buf[n] = byte(s.PriorityFlag)
	n++
	n += ioutil.EncodeEmptyOrFullCOctetString(buf[n:], s.ScheduleDeliveryTime)
	n += ioutil.EncodeEmptyOrFullCOctetString(buf[n:], s.ValidityPeriod)
	buf[n] = s.RegisteredDelivery.Byte()
	n++
	buf[n] = byte(s.ReplaceIfPresentFlag)
	n++
	buf[n] = byte(s.DataCoding)
	n++
	buf[n] = s.SmDefaultMsgID
	n++
	buf[n] = uint8(len(s.ShortMessage))
	n++
	n += copy(buf[n:], s.ShortMessage)
	return n
}

// DecodeSSm decodes an SSm from the head of src.
func DecodeSSm(src []byte) (SSm, int, error) {
	serviceType, n, err := ioutil.DecodeCOctetString(src, 1, 6)
	if err != nil {
		return SSm{}, 0, smpperr.WrapField(field.ServiceType, err)
	}
	srcAddr, c, err := decodeAddress(src[n:], 21, field.SourceAddrTON, field.SourceAddrNPI, field.SourceAddr)
	if err != nil {
		return SSm{}, 0, err
	}
	n += c
	dstAddr, c, err := decodeAddress(src[n:], 21, field.DestAddrTON, field.DestAddrNPI, field.DestinationAddr)
	if err != nil {
		return SSm{}, 0, err
	}
	n += c
	if len(src)-n < 3 {
		return SSm{}, 0, smpperr.WrapField(field.EsmClass, smpperr.New(smpperr.UnexpectedEOF, "ssm: need 3 more bytes, got %d", len(src)-n))
	}
	esmClass := values.EsmClassFromByte(src[n])
	n++
	protocolID := src[n]
	n++
	priorityFlag := values.PriorityFlag(src[n])
	n++
	schedDelivery, c, err := ioutil.DecodeEmptyOrFullCOctetString(src[n:], 17)
	if err != nil {
		return SSm{}, 0, smpperr.WrapField(field.ScheduleDeliveryTime, err)
	}
	n += c
	validity, c, err := ioutil.DecodeEmptyOrFullCOctetString(src[n:], 17)
	if err != nil {
		return SSm{}, 0, smpperr.WrapField(field.ValidityPeriod, err)
	}
	n += c
	if len(src)-n < 5 {
		return SSm{}, 0, smpperr.WrapField(field.RegisteredDelivery, smpperr.New(smpperr.UnexpectedEOF, "ssm: need 5 more bytes, got %d", len(src)-n))
	}
	registeredDelivery := values.RegisteredDeliveryFromByte(src[n])
	n++
	replaceFlag := values.ReplaceIfPresentFlag(src[n])
	n++
	dataCoding := values.DataCoding(src[n])
	n++
	smDefaultMsgID := src[n]
	n++
	smLength := int(src[n])
	n++
	shortMessage, c, err := ioutil.DecodeOctetString(src[n:], smLength, 0, 255)
	if err != nil {
		return SSm{}, 0, smpperr.WrapField(field.ShortMessage, err)
	}
	n += c
	return SSm{
		ServiceType: serviceType, SourceAddr: srcAddr, DestAddr: dstAddr,
		EsmClass: esmClass, ProtocolID: protocolID, PriorityFlag: priorityFlag,
		ScheduleDeliveryTime: schedDelivery, ValidityPeriod: validity,
		RegisteredDelivery: registeredDelivery, ReplaceIfPresentFlag: replaceFlag,
		DataCoding: dataCoding, SmDefaultMsgID: smDefaultMsgID, ShortMessage: shortMessage,
	}, n, nil
}

// SanitizeForMessagePayload zeroes s.ShortMessage when tlvs carries a
// message_payload TLV, matching the mc-side rule that short_message and
// message_payload are mutually exclusive carriers for the same text
// (rusmpp's SSm::check_for_message_payload_and_update). Callers building
// an SSm by hand should run this before Encode; Decode never needs it
// since it reports exactly what was on the wire.
func SanitizeForMessagePayload(s SSm, tlvs []tlv.TLV) SSm {
	if _, ok := tlv.Find(tlvs, tlv.TagMessagePayload); ok {
		s.ShortMessage = nil
	}
	return s
}

// Clone returns a deep copy of s.
func (s SSm) Clone() SSm {
	s.ServiceType = append([]byte(nil), s.ServiceType...)
	s.SourceAddr = s.SourceAddr.Clone()
	s.DestAddr = s.DestAddr.Clone()
	s.ScheduleDeliveryTime = append([]byte(nil), s.ScheduleDeliveryTime...)
	s.ValidityPeriod = append([]byte(nil), s.ValidityPeriod...)
	s.ShortMessage = append([]byte(nil), s.ShortMessage...)
	return s
}

// SubmitSm is the submit_sm command body.
type SubmitSm struct {
	Ssm  SSm
	Tlvs []tlv.TLV
}

// Length reports the wire length of s.
func (s SubmitSm) Length() int { return s.Ssm.Length() + tlv.ListLength(s.Tlvs) }

// Encode writes s to buf and returns the bytes written.
func (s SubmitSm) Encode(buf []byte) int {
	n := s.Ssm.Encode(buf)
	return n + tlv.EncodeList(buf[n:], s.Tlvs)
}

// DecodeSubmitSm decodes a SubmitSm occupying exactly length bytes of
// src.
func DecodeSubmitSm(src []byte, length int) (SubmitSm, int, error) {
	ssm, n, err := DecodeSSm(src)
	if err != nil {
		return SubmitSm{}, 0, err
	}
	list, c, err := tlv.DecodeList(src[n:], length-n)
	if err != nil {
		return SubmitSm{}, 0, smpperr.WrapField(field.Tlvs, err)
	}
	return SubmitSm{Ssm: ssm, Tlvs: list}, n + c, nil
}

// DeliverSm is the deliver_sm command body; identical wire shape to
// SubmitSm.
type DeliverSm struct {
	Ssm  SSm
	Tlvs []tlv.TLV
}

// Length reports the wire length of d.
func (d DeliverSm) Length() int { return d.Ssm.Length() + tlv.ListLength(d.Tlvs) }

// Encode writes d to buf and returns the bytes written.
func (d DeliverSm) Encode(buf []byte) int {
	n := d.Ssm.Encode(buf)
	return n + tlv.EncodeList(buf[n:], d.Tlvs)
}

// DecodeDeliverSm decodes a DeliverSm occupying exactly length bytes of
// src.
func DecodeDeliverSm(src []byte, length int) (DeliverSm, int, error) {
	ssm, n, err := DecodeSSm(src)
	if err != nil {
		return DeliverSm{}, 0, err
	}
	list, c, err := tlv.DecodeList(src[n:], length-n)
	if err != nil {
		return DeliverSm{}, 0, smpperr.WrapField(field.Tlvs, err)
	}
	return DeliverSm{Ssm: ssm, Tlvs: list}, n + c, nil
}

// SubmitOrDataSmResp is the shared response body for submit_sm_resp and
// data_sm_resp: a message_id plus a trailing TLV list.
type SubmitOrDataSmResp struct {
	MessageID []byte
	Tlvs      []tlv.TLV
}

// Length reports the wire length of r.
func (r SubmitOrDataSmResp) Length() int {
	return len(r.MessageID) + 1 + tlv.ListLength(r.Tlvs)
}

// Encode writes r to buf and returns the bytes written.
func (r SubmitOrDataSmResp) Encode(buf []byte) int {
	n := ioutil.EncodeCOctetString(buf, r.MessageID)
	return n + tlv.EncodeList(buf[n:], r.Tlvs)
}

// DecodeSubmitOrDataSmResp decodes a SubmitOrDataSmResp occupying exactly
// length bytes of src.
func DecodeSubmitOrDataSmResp(src []byte, length int) (SubmitOrDataSmResp, int, error) {
	messageID, n, err := ioutil.DecodeCOctetString(src, 1, 65)
	if err != nil {
		return SubmitOrDataSmResp{}, 0, smpperr.WrapField(field.MessageID, err)
	}
	list, c, err := tlv.DecodeList(src[n:], length-n)
	if err != nil {
		return SubmitOrDataSmResp{}, 0, smpperr.WrapField(field.Tlvs, err)
	}
	return SubmitOrDataSmResp{MessageID: messageID, Tlvs: list}, n + c, nil
}

// DeliverSmResp is the deliver_sm_resp body; identical wire shape to
// SubmitOrDataSmResp.
type DeliverSmResp struct {
	MessageID []byte
	Tlvs      []tlv.TLV
}

// Length reports the wire length of r.
func (r DeliverSmResp) Length() int { return len(r.MessageID) + 1 + tlv.ListLength(r.Tlvs) }

// Encode writes r to buf and returns the bytes written.
func (r DeliverSmResp) Encode(buf []byte) int {
	n := ioutil.EncodeCOctetString(buf, r.MessageID)
	return n + tlv.EncodeList(buf[n:], r.Tlvs)
}

// DecodeDeliverSmResp decodes a DeliverSmResp occupying exactly length
// bytes of src.
func DecodeDeliverSmResp(src []byte, length int) (DeliverSmResp, int, error) {
	messageID, n, err := ioutil.DecodeCOctetString(src, 1, 65)
	if err != nil {
		return DeliverSmResp{}, 0, smpperr.WrapField(field.MessageID, err)
	}
	list, c, err := tlv.DecodeList(src[n:], length-n)
	if err != nil {
		return DeliverSmResp{}, 0, smpperr.WrapField(field.Tlvs, err)
	}
	return DeliverSmResp{MessageID: messageID, Tlvs: list}, n + c, nil
}

// DataSm is the data_sm command body: a reduced-field SSm without the
// scheduling/priority/text-length fields (the short message, if any, is
// carried entirely via the message_payload TLV).
type DataSm struct {
	ServiceType        []byte
	SourceAddr         Address
	DestAddr           Address
	EsmClass           values.EsmClass
	RegisteredDelivery values.RegisteredDelivery
	DataCoding         values.DataCoding
	Tlvs               []tlv.TLV
}

// Length reports the wire length of d.
func (d DataSm) Length() int {
	return len(d.ServiceType) + 1 + d.SourceAddr.Length() + d.DestAddr.Length() + 1 + 1 + 1 + tlv.ListLength(d.Tlvs)
}

// Encode writes d to buf and returns the bytes written.
func (d DataSm) Encode(buf []byte) int {
	n := ioutil.EncodeCOctetString(buf, d.ServiceType)
	n += d.SourceAddr.Encode(buf[n:])
	n += d.DestAddr.Encode(buf[n:])
	buf[n] = d.EsmClass.Byte()
	n++
	buf[n] = d.RegisteredDelivery.Byte()
	n++
	buf[n] = byte(d.DataCoding)
	n++
	return n + tlv.EncodeList(buf[n:], d.Tlvs)
}

// DecodeDataSm decodes a DataSm occupying exactly length bytes of src.
func DecodeDataSm(src []byte, length int) (DataSm, int, error) {
	serviceType, n, err := ioutil.DecodeCOctetString(src, 1, 6)
	if err != nil {
		return DataSm{}, 0, smpperr.WrapField(field.ServiceType, err)
	}
	srcAddr, c, err := decodeAddress(src[n:], 21, field.SourceAddrTON, field.SourceAddrNPI, field.SourceAddr)
	if err != nil {
		return DataSm{}, 0, err
	}
	n += c
	dstAddr, c, err := decodeAddress(src[n:], 21, field.DestAddrTON, field.DestAddrNPI, field.DestinationAddr)
	if err != nil {
		return DataSm{}, 0, err
	}
	n += c
	if len(src)-n < 3 {
		return DataSm{}, 0, smpperr.WrapField(field.EsmClass, smpperr.New(smpperr.UnexpectedEOF, "data_sm: need 3 more bytes, got %d", len(src)-n))
	}
	esmClass := values.EsmClassFromByte(src[n])
	n++
	registeredDelivery := values.RegisteredDeliveryFromByte(src[n])
	n++
	dataCoding := values.DataCoding(src[n])
	n++
	list, c, err := tlv.DecodeList(src[n:], length-n)
	if err != nil {
		return DataSm{}, 0, smpperr.WrapField(field.Tlvs, err)
	}
	return DataSm{
		ServiceType: serviceType, SourceAddr: srcAddr, DestAddr: dstAddr,
		EsmClass: esmClass, RegisteredDelivery: registeredDelivery, DataCoding: dataCoding,
		Tlvs: list,
	}, n + c, nil
}
