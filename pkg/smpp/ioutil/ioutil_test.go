// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package ioutil_test

import (
	"testing"

	"github.com/absmach/smpp/pkg/smpp/ioutil"
	"github.com/absmach/smpp/pkg/smpp/smpperr"
	"github.com/stretchr/testify/assert"
)

func TestIntegers(t *testing.T) {
	buf := make([]byte, 4)
	n := ioutil.PutUint32(buf, 0x01020304)
	assert.Equal(t, 4, n)
	v, n, err := ioutil.GetUint32(buf)
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, uint32(0x01020304), v)

	_, _, err = ioutil.GetUint32(buf[:3])
	assert.Error(t, err)
}

func TestCOctetStringBounds(t *testing.T) {
	cases := []struct {
		desc    string
		in      []byte
		min     int
		max     int
		wantErr smpperr.Kind
		wantOK  bool
	}{
		{desc: "just a NUL at min=1", in: []byte{0x00}, min: 1, max: 16, wantOK: true},
		{desc: "exactly at max", in: append([]byte("123456789012345"), 0x00), min: 1, max: 16, wantOK: true},
		{desc: "one over max", in: append([]byte("1234567890123456"), 0x00), min: 1, max: 16, wantErr: smpperr.TooManyBytes},
		{desc: "missing terminator at end of buffer", in: []byte("SMPP3TEST"), min: 1, max: 16, wantErr: smpperr.NotNullTerminated},
		{desc: "non-ascii", in: []byte{0xff, 0x00}, min: 1, max: 16, wantErr: smpperr.NotAscii},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			v, n, err := ioutil.DecodeCOctetString(c.in, c.min, c.max)
			if c.wantOK {
				assert.NoError(t, err)
				assert.Equal(t, len(c.in), n)
				assert.Equal(t, c.in[:len(c.in)-1], v)
				return
			}
			if assert.Error(t, err) {
				k, ok := smpperr.KindOf(err)
				assert.True(t, ok)
				assert.Equal(t, c.wantErr, k)
			}
		})
	}
}

func TestCOctetStringRoundTrip(t *testing.T) {
	buf := make([]byte, 32)
	n := ioutil.EncodeCOctetString(buf, []byte("SMPP3TEST"))
	v, m, err := ioutil.DecodeCOctetString(buf[:n], 1, 16)
	assert.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, "SMPP3TEST", string(v))
}

func TestEmptyOrFullCOctetString(t *testing.T) {
	v, n, err := ioutil.DecodeEmptyOrFullCOctetString([]byte{0x00, 0xAA}, 17)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, v)

	full := make([]byte, 17)
	copy(full, "2024010112000000")
	full[16] = 0x00
	v, n, err = ioutil.DecodeEmptyOrFullCOctetString(full, 17)
	assert.NoError(t, err)
	assert.Equal(t, 17, n)
	assert.Equal(t, "2024010112000000", string(v))

	_, _, err = ioutil.DecodeEmptyOrFullCOctetString([]byte("short"), 17)
	assert.Error(t, err)
}

func TestOctetString(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5}
	v, n, err := ioutil.DecodeOctetString(src, 5, 0, 255)
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, src, v)

	_, _, err = ioutil.DecodeOctetString(src, 6, 0, 255)
	assert.Error(t, err)
}
