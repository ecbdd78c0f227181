// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package command_test

import (
	"testing"

	"github.com/absmach/smpp/pkg/smpp/command"
	"github.com/absmach/smpp/pkg/smpp/pdu"
	"github.com/absmach/smpp/pkg/smpp/values"
	"github.com/stretchr/testify/assert"
)

// TestEnquireLinkExactBytes covers scenario S1: status=EsmeRok (0), seq=1,
// body=enquire_link, expected bytes 00 00 00 10 00 00 00 15 00 00 00 00 00 00 00 01.
func TestEnquireLinkExactBytes(t *testing.T) {
	cmd := command.Command{ID: command.IDEnquireLink, Status: command.StatusOK, Seq: 1, Body: pdu.Empty{}}
	buf := make([]byte, cmd.Length())
	n := cmd.Encode(buf)
	assert.Equal(t, 16, n)
	assert.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x10,
		0x00, 0x00, 0x00, 0x15,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x01,
	}, buf)

	got, err := command.Decode(buf, n)
	assert.NoError(t, err)
	assert.Equal(t, cmd, got)
}

func TestBindTransmitterRoundTrip(t *testing.T) {
	cmd := command.Command{
		ID: command.IDBindTransmitter, Status: command.StatusOK, Seq: 1,
		Body: pdu.Bind{
			SystemID: []byte("SMPP3TEST"), Password: []byte("secret08"), SystemType: []byte("SUBMIT1"),
			InterfaceVersion: values.InterfaceVersionSmpp50, AddrTon: values.Ton(1), AddrNpi: values.Npi(1),
			AddressRange: []byte(""),
		},
	}
	buf := make([]byte, cmd.Length())
	n := cmd.Encode(buf)

	got, err := command.Decode(buf, n)
	assert.NoError(t, err)
	assert.Equal(t, cmd, got)
	assert.NoError(t, got.Validate())
}

func TestValidateRejectsMismatchedBody(t *testing.T) {
	cmd := command.Command{ID: command.IDEnquireLink, Status: command.StatusOK, Seq: 1, Body: pdu.Outbind{}}
	assert.Error(t, cmd.Validate())
}

func TestValidateAcceptsNilEmptyBody(t *testing.T) {
	cmd := command.Command{ID: command.IDUnbind, Status: command.StatusOK, Seq: 1}
	assert.NoError(t, cmd.Validate())
}

func TestDecodeUnknownIDPassesThrough(t *testing.T) {
	buf := make([]byte, 16)
	cmd := command.Command{ID: command.ID(0x00099999), Status: command.StatusOK, Seq: 7}
	cmd.Encode(buf)

	got, err := command.Decode(buf, 16)
	assert.NoError(t, err)
	assert.Equal(t, command.ID(0x00099999), got.ID)
	assert.Equal(t, pdu.Other{Body: []byte{}}, got.Body)
}

// TestDecodeUnknownIDWithBodyRoundTrips covers spec.md §4.3/§8's Other(u32)
// escape: an unrecognized command-id's body bytes must survive decode and
// re-encode byte-identically, not just the header.
func TestDecodeUnknownIDWithBodyRoundTrips(t *testing.T) {
	cmd := command.Command{
		ID: command.ID(0x00099999), Status: command.StatusOK, Seq: 7,
		Body: pdu.Other{Body: []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}},
	}
	buf := make([]byte, cmd.Length())
	n := cmd.Encode(buf)
	assert.Equal(t, 22, n)

	got, err := command.Decode(buf, n)
	assert.NoError(t, err)
	assert.Equal(t, cmd, got)

	reEncoded := make([]byte, got.Length())
	got.Encode(reEncoded)
	assert.Equal(t, buf, reEncoded)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ok", command.StatusOK.String())
	assert.Equal(t, "invalid_password", command.StatusInvPaswd.String())
}

func TestIDIsResponse(t *testing.T) {
	assert.True(t, command.IDSubmitSmResp.IsResponse())
	assert.False(t, command.IDSubmitSm.IsResponse())
}
