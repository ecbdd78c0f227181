// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package pdu

import (
	"github.com/absmach/smpp/pkg/smpp/codec"
	"github.com/absmach/smpp/pkg/smpp/field"
	"github.com/absmach/smpp/pkg/smpp/ioutil"
	"github.com/absmach/smpp/pkg/smpp/smpperr"
	"github.com/absmach/smpp/pkg/smpp/tlv"
	"github.com/absmach/smpp/pkg/smpp/values"
)

// SubmitMulti is the submit_multi command body: an SSm-shaped mandatory
// block addressed to a list of destinations rather than a single one.
type SubmitMulti struct {
	ServiceType          []byte
	SourceAddr           Address
	DestAddresses        []values.DestAddress
	EsmClass             values.EsmClass
	ProtocolID           uint8
	PriorityFlag         values.PriorityFlag
	ScheduleDeliveryTime []byte
	ValidityPeriod       []byte
	RegisteredDelivery   values.RegisteredDelivery
	ReplaceIfPresentFlag values.ReplaceIfPresentFlag
	DataCoding           values.DataCoding
	SmDefaultMsgID       uint8
	ShortMessage         []byte
	Tlvs                 []tlv.TLV
}

// Length reports the wire length of s.
func (s SubmitMulti) Length() int {
	n := len(s.ServiceType) + 1 + s.SourceAddr.Length() + 1
	for _, d := range s.DestAddresses {
		n += d.Length()
	}
	n += 1 + 1 + 1 + len(s.ScheduleDeliveryTime) + 1 + len(s.ValidityPeriod) + 1
	n += 1 + 1 + 1 + 1 + 1 + len(s.ShortMessage)
	return n + tlv.ListLength(s.Tlvs)
}

// Encode writes s to buf and returns the bytes written.
func (s SubmitMulti) Encode(buf []byte) int {
	n := ioutil.EncodeCOctetString(buf, s.ServiceType)
	n += s.SourceAddr.Encode(buf[n:])
	buf[n] = uint8(len(s.DestAddresses))
	n++
	for _, d := range s.DestAddresses {
		n += d.Encode(buf[n:])
	}
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
	return n + tlv.EncodeList(buf[n:], s.Tlvs)
}

// DecodeSubmitMulti decodes a SubmitMulti occupying exactly length bytes
// of src.
func DecodeSubmitMulti(src []byte, length int) (SubmitMulti, int, error) {
	serviceType, n, err := ioutil.DecodeCOctetString(src, 1, 6)
	if err != nil {
		return SubmitMulti{}, 0, smpperr.WrapField(field.ServiceType, err)
	}
	srcAddr, c, err := decodeAddress(src[n:], 21, field.SourceAddrTON, field.SourceAddrNPI, field.SourceAddr)
	if err != nil {
		return SubmitMulti{}, 0, err
	}
	n += c
	if len(src)-n < 1 {
		return SubmitMulti{}, 0, smpperr.WrapField(field.DestinationAddresses, smpperr.New(smpperr.UnexpectedEOF, "submit_multi: missing number_of_dests"))
	}
	numDests := int(src[n])
	n++
	dests, c, err := codec.Counted(src[n:], numDests, values.DecodeDestAddress)
	if err != nil {
		return SubmitMulti{}, 0, smpperr.WrapField(field.DestinationAddresses, err)
	}
	n += c
	if len(src)-n < 3 {
		return SubmitMulti{}, 0, smpperr.WrapField(field.EsmClass, smpperr.New(smpperr.UnexpectedEOF, "submit_multi: need 3 more bytes, got %d", len(src)-n))
	}
	esmClass := values.EsmClassFromByte(src[n])
	n++
	protocolID := src[n]
	n++
	priorityFlag := values.PriorityFlag(src[n])
	n++
	schedDelivery, c, err := ioutil.DecodeEmptyOrFullCOctetString(src[n:], 17)
	if err != nil {
		return SubmitMulti{}, 0, smpperr.WrapField(field.ScheduleDeliveryTime, err)
	}
	n += c
	validity, c, err := ioutil.DecodeEmptyOrFullCOctetString(src[n:], 17)
	if err != nil {
		return SubmitMulti{}, 0, smpperr.WrapField(field.ValidityPeriod, err)
	}
	n += c
	if len(src)-n < 5 {
		return SubmitMulti{}, 0, smpperr.WrapField(field.RegisteredDelivery, smpperr.New(smpperr.UnexpectedEOF, "submit_multi: need 5 more bytes, got %d", len(src)-n))
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
		return SubmitMulti{}, 0, smpperr.WrapField(field.ShortMessage, err)
	}
	n += c
	list, c, err := tlv.DecodeList(src[n:], length-n)
	if err != nil {
		return SubmitMulti{}, 0, smpperr.WrapField(field.Tlvs, err)
	}
	n += c
	return SubmitMulti{
		ServiceType: serviceType, SourceAddr: srcAddr, DestAddresses: dests,
		EsmClass: esmClass, ProtocolID: protocolID, PriorityFlag: priorityFlag,
		ScheduleDeliveryTime: schedDelivery, ValidityPeriod: validity,
		RegisteredDelivery: registeredDelivery, ReplaceIfPresentFlag: replaceFlag,
		DataCoding: dataCoding, SmDefaultMsgID: smDefaultMsgID, ShortMessage: shortMessage,
		Tlvs: list,
	}, n, nil
}

// SubmitMultiResp is the submit_multi_resp body: a message_id plus the
// list of destinations the mc could not deliver to.
type SubmitMultiResp struct {
	MessageID    []byte
	UnsuccessSme []values.UnsuccessSme
	Tlvs         []tlv.TLV
}

// Length reports the wire length of r.
func (r SubmitMultiResp) Length() int {
	n := len(r.MessageID) + 1 + 1
	for _, u := range r.UnsuccessSme {
		n += u.Length()
	}
	return n + tlv.ListLength(r.Tlvs)
}

// Encode writes r to buf and returns the bytes written.
func (r SubmitMultiResp) Encode(buf []byte) int {
	n := ioutil.EncodeCOctetString(buf, r.MessageID)
	buf[n] = uint8(len(r.UnsuccessSme))
	n++
	for _, u := range r.UnsuccessSme {
		n += u.Encode(buf[n:])
	}
	return n + tlv.EncodeList(buf[n:], r.Tlvs)
}

// DecodeSubmitMultiResp decodes a SubmitMultiResp occupying exactly
// length bytes of src.
func DecodeSubmitMultiResp(src []byte, length int) (SubmitMultiResp, int, error) {
	messageID, n, err := ioutil.DecodeCOctetString(src, 1, 65)
	if err != nil {
		return SubmitMultiResp{}, 0, smpperr.WrapField(field.MessageID, err)
	}
	if len(src)-n < 1 {
		return SubmitMultiResp{}, 0, smpperr.New(smpperr.UnexpectedEOF, "submit_multi_resp: missing no_unsuccess")
	}
	count := int(src[n])
	n++
	unsuccess, c, err := codec.Counted(src[n:], count, values.DecodeUnsuccessSme)
	if err != nil {
		return SubmitMultiResp{}, 0, err
	}
	n += c
	list, c, err := tlv.DecodeList(src[n:], length-n)
	if err != nil {
		return SubmitMultiResp{}, 0, smpperr.WrapField(field.Tlvs, err)
	}
	n += c
	return SubmitMultiResp{MessageID: messageID, UnsuccessSme: unsuccess, Tlvs: list}, n, nil
}

// Clone returns a deep copy of s.
func (s SubmitMulti) Clone() SubmitMulti {
	dests := make([]values.DestAddress, len(s.DestAddresses))
	for i, d := range s.DestAddresses {
		dests[i] = d.Clone()
	}
	return SubmitMulti{
		ServiceType: append([]byte(nil), s.ServiceType...), SourceAddr: s.SourceAddr.Clone(),
		DestAddresses: dests, EsmClass: s.EsmClass, ProtocolID: s.ProtocolID, PriorityFlag: s.PriorityFlag,
		ScheduleDeliveryTime: append([]byte(nil), s.ScheduleDeliveryTime...),
		ValidityPeriod:       append([]byte(nil), s.ValidityPeriod...),
		RegisteredDelivery:   s.RegisteredDelivery, ReplaceIfPresentFlag: s.ReplaceIfPresentFlag,
		DataCoding: s.DataCoding, SmDefaultMsgID: s.SmDefaultMsgID,
		ShortMessage: append([]byte(nil), s.ShortMessage...), Tlvs: tlv.CloneList(s.Tlvs),
	}
}

// Clone returns a deep copy of r.
func (r SubmitMultiResp) Clone() SubmitMultiResp {
	unsuccess := make([]values.UnsuccessSme, len(r.UnsuccessSme))
	for i, u := range r.UnsuccessSme {
		unsuccess[i] = u.Clone()
	}
	return SubmitMultiResp{MessageID: append([]byte(nil), r.MessageID...), UnsuccessSme: unsuccess, Tlvs: tlv.CloneList(r.Tlvs)}
}
