// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package pdu

import (
	"github.com/absmach/smpp/pkg/smpp/field"
	"github.com/absmach/smpp/pkg/smpp/ioutil"
	"github.com/absmach/smpp/pkg/smpp/smpperr"
	"github.com/absmach/smpp/pkg/smpp/values"
)

// QuerySm is the query_sm command body: no optional parameters.
type QuerySm struct {
	MessageID    []byte
	SourceAddrTon values.Ton
	SourceAddrNpi values.Npi
	SourceAddr   []byte
}

// Length reports the wire length of q.
func (q QuerySm) Length() int {
	return len(q.MessageID) + 1 + 1 + 1 + len(q.SourceAddr) + 1
}

// Encode writes q to buf and returns the bytes written.
func (q QuerySm) Encode(buf []byte) int {
	n := ioutil.EncodeCOctetString(buf, q.MessageID)
	buf[n] = byte(q.SourceAddrTon)
	n++
	buf[n] = byte(q.SourceAddrNpi)
	n++
	return n + ioutil.EncodeCOctetString(buf[n:], q.SourceAddr)
}

// DecodeQuerySm decodes a QuerySm from the head of src.
func DecodeQuerySm(src []byte) (QuerySm, int, error) {
	messageID, n, err := ioutil.DecodeCOctetString(src, 1, 65)
	if err != nil {
		return QuerySm{}, 0, smpperr.WrapField(field.MessageID, err)
	}
	if len(src)-n < 2 {
		return QuerySm{}, 0, smpperr.WrapField(field.SourceAddrTON, smpperr.New(smpperr.UnexpectedEOF, "query_sm: need 2 more bytes, got %d", len(src)-n))
	}
	ton := values.Ton(src[n])
	n++
	npi := values.Npi(src[n])
	n++
	sourceAddr, c, err := ioutil.DecodeCOctetString(src[n:], 1, 21)
	if err != nil {
		return QuerySm{}, 0, smpperr.WrapField(field.SourceAddr, err)
	}
	n += c
	return QuerySm{MessageID: messageID, SourceAddrTon: ton, SourceAddrNpi: npi, SourceAddr: sourceAddr}, n, nil
}

// Clone returns a deep copy of q.
func (q QuerySm) Clone() QuerySm {
	return QuerySm{
		MessageID: append([]byte(nil), q.MessageID...), SourceAddrTon: q.SourceAddrTon,
		SourceAddrNpi: q.SourceAddrNpi, SourceAddr: append([]byte(nil), q.SourceAddr...),
	}
}

// QuerySmResp is the query_sm_resp command body.
type QuerySmResp struct {
	MessageID   []byte
	FinalDate   []byte // empty, or exactly 16 chars + NUL
	MessageState values.MessageState
	ErrorCode   uint8
}

// Length reports the wire length of q.
func (q QuerySmResp) Length() int {
	return len(q.MessageID) + 1 + len(q.FinalDate) + 1 + 1 + 1
}

// Encode writes q to buf and returns the bytes written.
func (q QuerySmResp) Encode(buf []byte) int {
	n := ioutil.EncodeCOctetString(buf, q.MessageID)
	n += ioutil.EncodeEmptyOrFullCOctetString(buf[n:], q.FinalDate)
	buf[n] = byte(q.MessageState)
	n++
	buf[n] = q.ErrorCode
	n++
	return n
}

// DecodeQuerySmResp decodes a QuerySmResp from the head of src.
func DecodeQuerySmResp(src []byte) (QuerySmResp, int, error) {
	messageID, n, err := ioutil.DecodeCOctetString(src, 1, 65)
	if err != nil {
		return QuerySmResp{}, 0, smpperr.WrapField(field.MessageID, err)
	}
	finalDate, c, err := ioutil.DecodeEmptyOrFullCOctetString(src[n:], 17)
	if err != nil {
		return QuerySmResp{}, 0, err
	}
	n += c
	if len(src)-n < 2 {
		return QuerySmResp{}, 0, smpperr.New(smpperr.UnexpectedEOF, "query_sm_resp: need 2 more bytes, got %d", len(src)-n)
	}
	state := values.MessageState(src[n])
	n++
	errorCode := src[n]
	n++
	return QuerySmResp{MessageID: messageID, FinalDate: finalDate, MessageState: state, ErrorCode: errorCode}, n, nil
}

// Clone returns a deep copy of q.
func (q QuerySmResp) Clone() QuerySmResp {
	return QuerySmResp{
		MessageID: append([]byte(nil), q.MessageID...), FinalDate: append([]byte(nil), q.FinalDate...),
		MessageState: q.MessageState, ErrorCode: q.ErrorCode,
	}
}

// CancelSm is the cancel_sm command body: no optional parameters.
type CancelSm struct {
	ServiceType []byte
	MessageID   []byte
	SourceAddr  Address
	DestAddr    Address
}

// Length reports the wire length of c.
func (c CancelSm) Length() int {
	return len(c.ServiceType) + 1 + len(c.MessageID) + 1 + c.SourceAddr.Length() + c.DestAddr.Length()
}

// Encode writes c to buf and returns the bytes written.
func (c CancelSm) Encode(buf []byte) int {
	n := ioutil.EncodeCOctetString(buf, c.ServiceType)
	n += ioutil.EncodeCOctetString(buf[n:], c.MessageID)
	n += c.SourceAddr.Encode(buf[n:])
	return n + c.DestAddr.Encode(buf[n:])
}

// DecodeCancelSm decodes a CancelSm from the head of src.
func DecodeCancelSm(src []byte) (CancelSm, int, error) {
	serviceType, n, err := ioutil.DecodeCOctetString(src, 1, 6)
	if err != nil {
		return CancelSm{}, 0, smpperr.WrapField(field.ServiceType, err)
	}
	messageID, c, err := ioutil.DecodeCOctetString(src[n:], 1, 65)
	if err != nil {
		return CancelSm{}, 0, smpperr.WrapField(field.MessageID, err)
	}
	n += c
	srcAddr, c, err := decodeAddress(src[n:], 21, field.SourceAddrTON, field.SourceAddrNPI, field.SourceAddr)
	if err != nil {
		return CancelSm{}, 0, err
	}
	n += c
	dstAddr, c, err := decodeAddress(src[n:], 21, field.DestAddrTON, field.DestAddrNPI, field.DestinationAddr)
	if err != nil {
		return CancelSm{}, 0, err
	}
	n += c
	return CancelSm{ServiceType: serviceType, MessageID: messageID, SourceAddr: srcAddr, DestAddr: dstAddr}, n, nil
}

// Clone returns a deep copy of c.
func (c CancelSm) Clone() CancelSm {
	return CancelSm{
		ServiceType: append([]byte(nil), c.ServiceType...), MessageID: append([]byte(nil), c.MessageID...),
		SourceAddr: c.SourceAddr.Clone(), DestAddr: c.DestAddr.Clone(),
	}
}

// ReplaceSm is the replace_sm command body: no optional parameters.
type ReplaceSm struct {
	MessageID            []byte
	SourceAddrTon        values.Ton
	SourceAddrNpi        values.Npi
	SourceAddr           []byte
	ScheduleDeliveryTime []byte
	ValidityPeriod       []byte
	RegisteredDelivery   values.RegisteredDelivery
	SmDefaultMsgID       uint8
	ShortMessage         []byte
}

// Length reports the wire length of r.
func (r ReplaceSm) Length() int {
	return len(r.MessageID) + 1 + 1 + 1 + len(r.SourceAddr) + 1 +
		len(r.ScheduleDeliveryTime) + 1 + len(r.ValidityPeriod) + 1 +
		1 + 1 + 1 + len(r.ShortMessage)
}

// Encode writes r to buf and returns the bytes written.
func (r ReplaceSm) Encode(buf []byte) int {
	n := ioutil.EncodeCOctetString(buf, r.MessageID)
	buf[n] = byte(r.SourceAddrTon)
	n++
	buf[n] = byte(r.SourceAddrNpi)
	n++
	n += ioutil.EncodeCOctetString(buf[n:], r.SourceAddr)
	n += ioutil.EncodeEmptyOrFullCOctetString(buf[n:], r.ScheduleDeliveryTime)
	n += ioutil.EncodeEmptyOrFullCOctetString(buf[n:], r.ValidityPeriod)
	buf[n] = r.RegisteredDelivery.Byte()
	n++
	buf[n] = r.SmDefaultMsgID
	n++
	buf[n] = uint8(len(r.ShortMessage))
	n++
	n += copy(buf[n:], r.ShortMessage)
	return n
}

// DecodeReplaceSm decodes a ReplaceSm from the head of src.
func DecodeReplaceSm(src []byte) (ReplaceSm, int, error) {
	messageID, n, err := ioutil.DecodeCOctetString(src, 1, 65)
	if err != nil {
		return ReplaceSm{}, 0, smpperr.WrapField(field.MessageID, err)
	}
	if len(src)-n < 2 {
		return ReplaceSm{}, 0, smpperr.WrapField(field.SourceAddrTON, smpperr.New(smpperr.UnexpectedEOF, "replace_sm: need 2 more bytes, got %d", len(src)-n))
	}
	ton := values.Ton(src[n])
	n++
	npi := values.Npi(src[n])
	n++
	sourceAddr, c, err := ioutil.DecodeCOctetString(src[n:], 1, 21)
	if err != nil {
		return ReplaceSm{}, 0, smpperr.WrapField(field.SourceAddr, err)
	}
	n += c
	schedDelivery, c, err := ioutil.DecodeEmptyOrFullCOctetString(src[n:], 17)
	if err != nil {
		return ReplaceSm{}, 0, smpperr.WrapField(field.ScheduleDeliveryTime, err)
	}
	n += c
	validity, c, err := ioutil.DecodeEmptyOrFullCOctetString(src[n:], 17)
	if err != nil {
		return ReplaceSm{}, 0, smpperr.WrapField(field.ValidityPeriod, err)
	}
	n += c
	if len(src)-n < 3 {
		return ReplaceSm{}, 0, smpperr.WrapField(field.RegisteredDelivery, smpperr.New(smpperr.UnexpectedEOF, "replace_sm: need 3 more bytes, got %d", len(src)-n))
	}
	registeredDelivery := values.RegisteredDeliveryFromByte(src[n])
	n++
	smDefaultMsgID := src[n]
	n++
	smLength := int(src[n])
	n++
	shortMessage, c, err := ioutil.DecodeOctetString(src[n:], smLength, 0, 255)
	if err != nil {
		return ReplaceSm{}, 0, smpperr.WrapField(field.ShortMessage, err)
	}
	n += c
	return ReplaceSm{
		MessageID: messageID, SourceAddrTon: ton, SourceAddrNpi: npi, SourceAddr: sourceAddr,
		ScheduleDeliveryTime: schedDelivery, ValidityPeriod: validity,
		RegisteredDelivery: registeredDelivery, SmDefaultMsgID: smDefaultMsgID, ShortMessage: shortMessage,
	}, n, nil
}

// Clone returns a deep copy of r.
func (r ReplaceSm) Clone() ReplaceSm {
	return ReplaceSm{
		MessageID: append([]byte(nil), r.MessageID...), SourceAddrTon: r.SourceAddrTon, SourceAddrNpi: r.SourceAddrNpi,
		SourceAddr:           append([]byte(nil), r.SourceAddr...),
		ScheduleDeliveryTime: append([]byte(nil), r.ScheduleDeliveryTime...),
		ValidityPeriod:       append([]byte(nil), r.ValidityPeriod...),
		RegisteredDelivery:   r.RegisteredDelivery, SmDefaultMsgID: r.SmDefaultMsgID,
		ShortMessage: append([]byte(nil), r.ShortMessage...),
	}
}
