// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package values_test

import (
	"testing"

	"github.com/absmach/smpp/pkg/smpp/values"
	"github.com/stretchr/testify/assert"
)

func TestEsmClassRoundTrip(t *testing.T) {
	e := values.EsmClass{
		MessagingMode: values.MessagingModeDatagram,
		MessageType:   values.MessageTypeDeliveryReceipt,
		GsmFeatures:   values.GsmFeaturesUdhiIndicator,
	}
	got := values.EsmClassFromByte(e.Byte())
	assert.Equal(t, e, got)
}

func TestRegisteredDeliveryRoundTrip(t *testing.T) {
	r := values.RegisteredDelivery{
		MCDeliveryReceipt:        values.MCDeliveryReceiptOnSuccessOrFailure,
		SmeOriginatedAcks:        values.SmeOriginatedAcksBoth,
		IntermediateNotification: values.IntermediateNotificationRequested,
	}
	got := values.RegisteredDeliveryFromByte(r.Byte())
	assert.Equal(t, r, got)
}

func TestMsMsgWaitFacilitiesRoundTrip(t *testing.T) {
	m := values.MsMsgWaitFacilities{Indicator: values.MwiIndicatorActive, TypeOfMessage: values.MwiTypeOfMessageFax}
	got := values.MsMsgWaitFacilitiesFromByte(m.Byte())
	assert.Equal(t, m, got)
}

func TestCallbackNumPresIndRoundTrip(t *testing.T) {
	c := values.CallbackNumPresInd{Presentation: values.PresentationRestricted, Screening: values.ScreeningNetworkProvided}
	got := values.CallbackNumPresIndFromByte(c.Byte())
	assert.Equal(t, c, got)
}

func TestSubaddressRoundTrip(t *testing.T) {
	s := values.Subaddress{Tag: values.SubaddressTagNsapEven, Addr: []byte{0x12, 0x34}}
	buf := make([]byte, s.Length())
	n := s.Encode(buf)
	assert.Equal(t, s.Length(), n)

	got, m, err := values.DecodeSubaddress(buf)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, s, got)
}

func TestBroadcastContentTypeRoundTrip(t *testing.T) {
	b := values.BroadcastContentType{Network: values.TypeOfNetworkGsm, Content: values.EncodingContentTypeWeather}
	buf := make([]byte, b.Length())
	b.Encode(buf)

	got, n, err := values.DecodeBroadcastContentType(buf)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, b, got)
}

func TestBroadcastFrequencyIntervalRoundTrip(t *testing.T) {
	b := values.BroadcastFrequencyInterval{Unit: values.UnitOfTimeHours, Value: 24}
	buf := make([]byte, b.Length())
	b.Encode(buf)

	got, n, err := values.DecodeBroadcastFrequencyInterval(buf)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, b, got)
}

func TestNumberOfMessagesBounds(t *testing.T) {
	_, _, err := values.DecodeNumberOfMessages([]byte{100})
	assert.Error(t, err)

	v, n, err := values.DecodeNumberOfMessages([]byte{99})
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, values.NumberOfMessages(99), v)
}

func TestMsValidityRoundTrip(t *testing.T) {
	m := values.MsValidity{
		Behavior: values.MsValidityBehaviorValidUntilRegistrationAreaChanges,
		Information: []values.MsValidityInformation{
			{UnitsOfTime: values.UnitOfTimeDays, NumberOfTU: 3},
			{UnitsOfTime: values.UnitOfTimeWeeks, NumberOfTU: 1},
		},
	}
	buf := make([]byte, m.Length())
	n := m.Encode(buf)
	assert.Equal(t, m.Length(), n)

	got, c, err := values.DecodeMsValidity(buf)
	assert.NoError(t, err)
	assert.Equal(t, n, c)
	assert.Equal(t, m, got)
}

func TestUnsuccessSmeRoundTrip(t *testing.T) {
	u := values.UnsuccessSme{Ton: values.TonInternational, Npi: values.NpiIsdn, Addr: []byte("12025550123"), ErrorCode: 8}
	buf := make([]byte, u.Length())
	n := u.Encode(buf)
	assert.Equal(t, u.Length(), n)

	got, m, err := values.DecodeUnsuccessSme(buf)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, u, got)
}

func TestDestAddressRoundTripSmeAddress(t *testing.T) {
	d := values.DestAddress{Flag: values.DestFlagSmeAddress, Ton: values.TonInternational, Npi: values.NpiIsdn, Addr: []byte("12025550123")}
	buf := make([]byte, d.Length())
	n := d.Encode(buf)
	assert.Equal(t, d.Length(), n)

	got, m, err := values.DecodeDestAddress(buf)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, d.Flag, got.Flag)
	assert.Equal(t, d.Ton, got.Ton)
	assert.Equal(t, d.Npi, got.Npi)
	assert.Equal(t, d.Addr, got.Addr)
}

func TestDestAddressRoundTripDistributionList(t *testing.T) {
	d := values.DestAddress{Flag: values.DestFlagDistributionList, DlName: []byte("MYLIST")}
	buf := make([]byte, d.Length())
	n := d.Encode(buf)
	assert.Equal(t, d.Length(), n)

	got, m, err := values.DecodeDestAddress(buf)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, d.Flag, got.Flag)
	assert.Equal(t, d.DlName, got.DlName)
}

func TestPriorityFlagIsRawOctet(t *testing.T) {
	var p values.PriorityFlag = 2
	assert.Equal(t, values.PriorityFlagGSMCBSHigh, values.PriorityFlagGSMCBS(p))
	assert.Equal(t, values.PriorityFlagANSI136Urgent, values.PriorityFlagANSI136(p))
}
