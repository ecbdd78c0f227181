// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package pdu_test

import (
	"testing"

	"github.com/absmach/smpp/pkg/smpp/pdu"
	"github.com/absmach/smpp/pkg/smpp/tlv"
	"github.com/absmach/smpp/pkg/smpp/values"
	"github.com/stretchr/testify/assert"
)

func TestBindRoundTrip(t *testing.T) {
	b := pdu.Bind{
		SystemID: []byte("smppclient1"), Password: []byte("secret08"), SystemType: []byte("VMS"),
		InterfaceVersion: values.InterfaceVersionSmpp50, AddrTon: values.Ton(1), AddrNpi: values.Npi(1),
		AddressRange: []byte(""),
	}
	buf := make([]byte, b.Length())
	n := b.Encode(buf)
	assert.Equal(t, b.Length(), n)

	got, m, err := pdu.DecodeBind(buf)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, b, got)
}

func TestBindRespRoundTrip(t *testing.T) {
	r := pdu.BindResp{SystemID: []byte("mc1"), Tlvs: []tlv.TLV{{Tag: tlv.TagScInterfaceVersion, Value: []byte{0x50}}}}
	buf := make([]byte, r.Length())
	n := r.Encode(buf)

	got, m, err := pdu.DecodeBindResp(buf, n)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, r, got)
}

func TestOutbindRoundTrip(t *testing.T) {
	o := pdu.Outbind{SystemID: []byte("mc1"), Password: []byte("pw")}
	buf := make([]byte, o.Length())
	n := o.Encode(buf)

	got, m, err := pdu.DecodeOutbind(buf)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, o, got)
}

func TestEmptyRoundTrip(t *testing.T) {
	e := pdu.Empty{}
	assert.Equal(t, 0, e.Length())
	got, n, err := pdu.DecodeEmpty(nil)
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, e, got)
}

func sampleAddress(addr string) pdu.Address {
	return pdu.Address{Ton: values.Ton(1), Npi: values.Npi(1), Addr: []byte(addr)}
}

func TestSubmitSmRoundTrip(t *testing.T) {
	s := pdu.SubmitSm{
		Ssm: pdu.SSm{
			ServiceType: []byte(""), SourceAddr: sampleAddress("1234"), DestAddr: sampleAddress("5678"),
			EsmClass: values.EsmClassFromByte(0), ProtocolID: 0, PriorityFlag: 0,
			ScheduleDeliveryTime: []byte(""), ValidityPeriod: []byte(""),
			RegisteredDelivery: values.RegisteredDeliveryFromByte(1), ReplaceIfPresentFlag: 0,
			DataCoding: values.DataCoding(0), SmDefaultMsgID: 0, ShortMessage: []byte("hello"),
		},
		Tlvs: nil,
	}
	buf := make([]byte, s.Length())
	n := s.Encode(buf)

	got, m, err := pdu.DecodeSubmitSm(buf, n)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, s, got)
}

func TestSubmitSmWithMessagePayloadZerosShortMessage(t *testing.T) {
	s := pdu.SSm{
		ServiceType: []byte(""), SourceAddr: sampleAddress("1234"), DestAddr: sampleAddress("5678"),
		ShortMessage: []byte("should be dropped"),
	}
	payload := []byte("the real payload, longer than 255 octets worth of signaling")
	tlvs := []tlv.TLV{{Tag: tlv.TagMessagePayload, Value: payload}}

	sanitized := pdu.SanitizeForMessagePayload(s, tlvs)
	assert.Empty(t, sanitized.ShortMessage)
	assert.Equal(t, 0, len(sanitized.ShortMessage))
}

func TestDeliverSmRoundTrip(t *testing.T) {
	d := pdu.DeliverSm{
		Ssm: pdu.SSm{
			ServiceType: []byte(""), SourceAddr: sampleAddress("1234"), DestAddr: sampleAddress("5678"),
			RegisteredDelivery: values.RegisteredDeliveryFromByte(0), ShortMessage: []byte("delivered"),
			ScheduleDeliveryTime: []byte(""), ValidityPeriod: []byte(""),
		},
	}
	buf := make([]byte, d.Length())
	n := d.Encode(buf)

	got, m, err := pdu.DecodeDeliverSm(buf, n)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, d, got)
}

func TestSubmitOrDataSmRespRoundTrip(t *testing.T) {
	r := pdu.SubmitOrDataSmResp{MessageID: []byte("1234567"), Tlvs: nil}
	buf := make([]byte, r.Length())
	n := r.Encode(buf)

	got, m, err := pdu.DecodeSubmitOrDataSmResp(buf, n)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, r, got)
}

func TestDataSmRoundTrip(t *testing.T) {
	d := pdu.DataSm{
		ServiceType: []byte(""), SourceAddr: sampleAddress("1234"), DestAddr: sampleAddress("5678"),
		EsmClass: values.EsmClassFromByte(0), RegisteredDelivery: values.RegisteredDeliveryFromByte(0),
		DataCoding: values.DataCoding(0),
		Tlvs:       []tlv.TLV{{Tag: tlv.TagMessagePayload, Value: []byte("payload text")}},
	}
	buf := make([]byte, d.Length())
	n := d.Encode(buf)

	got, m, err := pdu.DecodeDataSm(buf, n)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, d, got)
}

func TestSubmitMultiRoundTrip(t *testing.T) {
	s := pdu.SubmitMulti{
		ServiceType: []byte(""), SourceAddr: sampleAddress("1234"),
		DestAddresses: []values.DestAddress{
			{Flag: values.DestFlagSmeAddress, Ton: values.Ton(1), Npi: values.Npi(1), Addr: []byte("111")},
			{Flag: values.DestFlagDistributionList, DlName: []byte("listA")},
		},
		ScheduleDeliveryTime: []byte(""), ValidityPeriod: []byte(""), ShortMessage: []byte("multi"),
	}
	buf := make([]byte, s.Length())
	n := s.Encode(buf)

	got, m, err := pdu.DecodeSubmitMulti(buf, n)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, s, got)
}

func TestSubmitMultiRespRoundTrip(t *testing.T) {
	r := pdu.SubmitMultiResp{
		MessageID: []byte("msgid1"),
		UnsuccessSme: []values.UnsuccessSme{
			{Ton: values.Ton(1), Npi: values.Npi(1), Addr: []byte("222"), ErrorCode: 11},
			{Ton: values.Ton(1), Npi: values.Npi(1), Addr: []byte("333"), ErrorCode: 0},
		},
		Tlvs: []tlv.TLV{{Tag: tlv.TagSourcePort, Value: []byte{0x13, 0x88}}},
	}
	buf := make([]byte, r.Length())
	n := r.Encode(buf)

	got, m, err := pdu.DecodeSubmitMultiResp(buf, n)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, r, got)
}

func TestQuerySmRoundTrip(t *testing.T) {
	q := pdu.QuerySm{MessageID: []byte("msg1"), SourceAddrTon: values.Ton(1), SourceAddrNpi: values.Npi(1), SourceAddr: []byte("1234")}
	buf := make([]byte, q.Length())
	n := q.Encode(buf)

	got, m, err := pdu.DecodeQuerySm(buf)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, q, got)
}

func TestQuerySmRespRoundTrip(t *testing.T) {
	q := pdu.QuerySmResp{MessageID: []byte("msg1"), FinalDate: []byte(""), MessageState: values.MessageStateDelivered, ErrorCode: 0}
	buf := make([]byte, q.Length())
	n := q.Encode(buf)

	got, m, err := pdu.DecodeQuerySmResp(buf)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, q, got)
}

func TestCancelSmRoundTrip(t *testing.T) {
	c := pdu.CancelSm{ServiceType: []byte(""), MessageID: []byte("msg1"), SourceAddr: sampleAddress("1234"), DestAddr: sampleAddress("5678")}
	buf := make([]byte, c.Length())
	n := c.Encode(buf)

	got, m, err := pdu.DecodeCancelSm(buf)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, c, got)
}

func TestReplaceSmRoundTrip(t *testing.T) {
	r := pdu.ReplaceSm{
		MessageID: []byte("msg1"), SourceAddrTon: values.Ton(1), SourceAddrNpi: values.Npi(1), SourceAddr: []byte("1234"),
		ScheduleDeliveryTime: []byte(""), ValidityPeriod: []byte(""),
		RegisteredDelivery: values.RegisteredDeliveryFromByte(0), SmDefaultMsgID: 0, ShortMessage: []byte("replaced"),
	}
	buf := make([]byte, r.Length())
	n := r.Encode(buf)

	got, m, err := pdu.DecodeReplaceSm(buf)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, r, got)
}

func TestAlertNotificationRoundTrip(t *testing.T) {
	a := pdu.AlertNotification{
		SourceAddrTon: values.Ton(1), SourceAddrNpi: values.Npi(1), SourceAddr: []byte("1234"),
		EsmeAddrTon: values.Ton(1), EsmeAddrNpi: values.Npi(1), EsmeAddr: []byte("5678"),
	}
	buf := make([]byte, a.Length())
	n := a.Encode(buf)

	got, m, err := pdu.DecodeAlertNotification(buf, n)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, a, got)
}

func TestBroadcastSmRoundTrip(t *testing.T) {
	b := pdu.BroadcastSm{
		ServiceType: []byte(""), SourceAddr: sampleAddress("1234"), MessageID: []byte("bmsg1"),
		ScheduleDeliveryTime: []byte(""), ValidityPeriod: []byte(""),
		Tlvs: []tlv.TLV{{Tag: tlv.TagBroadcastRepNum, Value: []byte{0x00, 0x03}}},
	}
	buf := make([]byte, b.Length())
	n := b.Encode(buf)

	got, m, err := pdu.DecodeBroadcastSm(buf, n)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, b, got)
}

func TestBroadcastSmRespRoundTrip(t *testing.T) {
	r := pdu.BroadcastSmResp{MessageID: []byte("bmsg1")}
	buf := make([]byte, r.Length())
	n := r.Encode(buf)

	got, m, err := pdu.DecodeBroadcastSmResp(buf, n)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, r, got)
}

func TestQueryBroadcastSmRoundTrip(t *testing.T) {
	q := pdu.QueryBroadcastSm{
		MessageID: []byte("bmsg1"), SourceAddrTon: values.Ton(1), SourceAddrNpi: values.Npi(1), SourceAddr: []byte("1234"),
		Tlvs: []tlv.TLV{{Tag: tlv.TagUserMessageReference, Value: []byte{0x00, 0x01}}},
	}
	buf := make([]byte, q.Length())
	n := q.Encode(buf)

	got, m, err := pdu.DecodeQueryBroadcastSm(buf, n)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, q, got)
}

func TestQueryBroadcastSmRespRoundTrip(t *testing.T) {
	r := pdu.QueryBroadcastSmResp{
		MessageID: []byte("bmsg1"),
		Tlvs: []tlv.TLV{
			{Tag: tlv.TagMessageState, Value: []byte{0x02}},
			{Tag: tlv.TagBroadcastAreaIdentifier, Value: []byte{0x00, 0x41, 0x42}},
		},
	}
	buf := make([]byte, r.Length())
	n := r.Encode(buf)

	got, m, err := pdu.DecodeQueryBroadcastSmResp(buf, n)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, r, got)
}

func TestCancelBroadcastSmRoundTrip(t *testing.T) {
	c := pdu.CancelBroadcastSm{
		ServiceType: []byte(""), MessageID: []byte("bmsg1"), SourceAddrTon: values.Ton(1), SourceAddrNpi: values.Npi(1),
		SourceAddr: []byte("1234"),
	}
	buf := make([]byte, c.Length())
	n := c.Encode(buf)

	got, m, err := pdu.DecodeCancelBroadcastSm(buf, n)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, c, got)
}
