// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package command_test

import (
	"strings"
	"testing"

	"github.com/absmach/smpp/pkg/smpp/command"
	"github.com/absmach/smpp/pkg/smpp/pdu"
	"github.com/absmach/smpp/pkg/smpp/smpperr"
	"github.com/absmach/smpp/pkg/smpp/tlv"
	"github.com/absmach/smpp/pkg/smpp/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bindTransmitterSample builds the bind_transmitter sample command:
// system_id="SMPP3TEST", password="secret08", system_type="SUBMIT1",
// interface_version=0x50, addr_ton=1, addr_npi=1, addr_range="".
func bindTransmitterSample() command.Command {
	return command.Command{
		ID: command.IDBindTransmitter, Status: command.StatusOK, Seq: 1,
		Body: pdu.Bind{
			SystemID: []byte("SMPP3TEST"), Password: []byte("secret08"), SystemType: []byte("SUBMIT1"),
			InterfaceVersion: values.InterfaceVersionSmpp50, AddrTon: values.Ton(1), AddrNpi: values.Npi(1),
			AddressRange: []byte(""),
		},
	}
}

// TestBindTransmitterSampleExactBytes covers scenario S2: command_length
// 47, id 2, status 0, seq 1, the mandatory parameters above.
func TestBindTransmitterSampleExactBytes(t *testing.T) {
	cmd := bindTransmitterSample()
	want := []byte{
		// header: command_length=47, id=2 (bind_transmitter), status=0, seq=1
		0x00, 0x00, 0x00, 0x2f,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x01,
		// body: system_id
		'S', 'M', 'P', 'P', '3', 'T', 'E', 'S', 'T', 0x00,
		// password
		's', 'e', 'c', 'r', 'e', 't', '0', '8', 0x00,
		// system_type
		'S', 'U', 'B', 'M', 'I', 'T', '1', 0x00,
		// interface_version, addr_ton, addr_npi, addr_range
		0x50, 0x01, 0x01, 0x00,
	}
	require.Equal(t, 47, cmd.Length())

	buf := make([]byte, cmd.Length())
	n := cmd.Encode(buf)
	assert.Equal(t, 47, n)
	assert.Equal(t, want, buf)

	got, err := command.Decode(buf, n)
	require.NoError(t, err)
	assert.Equal(t, cmd, got)
}

// TestBindTransmitterCorruptedPasswordFailsWithFieldSymbol covers
// scenario S3: drop the NUL terminator after "secret08" so the
// password's C-octet string runs past its 9-byte maximum into the
// system_type bytes without ever finding one; decode must fail with the
// password field symbol present in the verbose error chain.
func TestBindTransmitterCorruptedPasswordFailsWithFieldSymbol(t *testing.T) {
	cmd := bindTransmitterSample()
	buf := make([]byte, cmd.Length())
	cmd.Encode(buf)

	const headerLength = 16
	nulIdx := headerLength + strings.IndexByte(string(buf[headerLength:]), 0)
	require.Equal(t, byte(0), buf[nulIdx])
	passwordStart := nulIdx + 1
	passwordNul := passwordStart + len("secret08")
	require.Equal(t, byte(0), buf[passwordNul])

	corrupt := append([]byte(nil), buf[:passwordNul]...)
	corrupt = append(corrupt, buf[passwordNul+1:]...)
	// command_length still claims the original (now one-byte-longer) body,
	// so pad back to the declared length with a trailing non-NUL byte;
	// the point is that the NUL after "secret08" no longer exists at all.
	corrupt = append(corrupt, 0xff)

	defer func(v bool) { smpperr.Verbose = v }(smpperr.Verbose)
	smpperr.Verbose = true

	_, err := command.Decode(corrupt, len(corrupt))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}

// TestSubmitSmMessagePayloadInvariants covers scenario S4: short_message
// "Hi" plus one message_payload TLV of 5 bytes — sm_length on the wire
// must read 2 (Encode never auto-sanitizes; see
// pdu.SanitizeForMessagePayload for the opt-in zeroing helper, exercised
// separately), the TLV header must read tag=message_payload length=5,
// and the whole thing must round-trip.
func TestSubmitSmMessagePayloadInvariants(t *testing.T) {
	ssm := pdu.SSm{
		ServiceType: []byte(""),
		SourceAddr:  pdu.Address{Ton: values.Ton(1), Npi: values.Npi(1), Addr: []byte("1234")},
		DestAddr:    pdu.Address{Ton: values.Ton(1), Npi: values.Npi(1), Addr: []byte("5678")},
		ScheduleDeliveryTime: []byte(""), ValidityPeriod: []byte(""),
		ShortMessage: []byte("Hi"),
	}
	payload := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	tlvs := []tlv.TLV{{Tag: tlv.TagMessagePayload, Value: payload}}

	body := pdu.SubmitSm{Ssm: ssm, Tlvs: tlvs}
	cmd := command.Command{ID: command.IDSubmitSm, Status: command.StatusOK, Seq: 9, Body: body}

	buf := make([]byte, cmd.Length())
	n := cmd.Encode(buf)
	require.Equal(t, cmd.Length(), n)

	// sm_length sits one byte before the short_message run, which in turn
	// sits immediately before the TLV list.
	smLengthIdx := n - tlv.ListLength(tlvs) - 1 - len(ssm.ShortMessage)
	assert.Equal(t, byte(len(ssm.ShortMessage)), buf[smLengthIdx], "sm_length must read 2")

	// the message_payload TLV occupies the last 4+5 bytes: tag (2),
	// length (2), value (5).
	tlvStart := n - tlv.ListLength(tlvs)
	tag := uint16(buf[tlvStart])<<8 | uint16(buf[tlvStart+1])
	length := uint16(buf[tlvStart+2])<<8 | uint16(buf[tlvStart+3])
	assert.Equal(t, uint16(tlv.TagMessagePayload), tag)
	assert.Equal(t, uint16(5), length)
	assert.Equal(t, payload, buf[tlvStart+4:tlvStart+4+5])

	got, err := command.Decode(buf, n)
	require.NoError(t, err)
	assert.Equal(t, cmd, got)
}

// TestSubmitMultiRespScenario covers scenario S5: no_unsuccess=2, two
// UnsuccessSme records, one response TLV, full round-trip.
func TestSubmitMultiRespScenario(t *testing.T) {
	body := pdu.SubmitMultiResp{
		MessageID: []byte("msg-001"),
		UnsuccessSme: []values.UnsuccessSme{
			{Ton: values.Ton(1), Npi: values.Npi(1), Addr: []byte("1111"), ErrorCode: 11},
			{Ton: values.Ton(2), Npi: values.Npi(1), Addr: []byte("2222"), ErrorCode: 22},
		},
		Tlvs: []tlv.TLV{{Tag: tlv.TagScInterfaceVersion, Value: []byte{0x50}}},
	}
	cmd := command.Command{ID: command.IDSubmitMultiResp, Status: command.StatusOK, Seq: 3, Body: body}

	buf := make([]byte, cmd.Length())
	n := cmd.Encode(buf)

	noUnsuccessIdx := n - tlv.ListLength(body.Tlvs) - 1
	for _, u := range body.UnsuccessSme {
		noUnsuccessIdx -= u.Length()
	}
	assert.Equal(t, byte(len(body.UnsuccessSme)), buf[noUnsuccessIdx])

	got, err := command.Decode(buf, n)
	require.NoError(t, err)
	assert.Equal(t, cmd, got)
	assert.Len(t, got.Body.(pdu.SubmitMultiResp).UnsuccessSme, 2)
	assert.Len(t, got.Body.(pdu.SubmitMultiResp).Tlvs, 1)
}
