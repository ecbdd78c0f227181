// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package ioutil implements the fixed-width integer and bounded
// byte-string primitives spec.md §4.1 describes: the leaf building blocks
// every TLV value, PDU field and the command header is made of. Every
// decoder here returns the number of bytes consumed alongside the value,
// never allocates beyond what a caller-visible slice already requires, and
// never panics on malformed input — callers get an error instead.
package ioutil

import (
	"encoding/binary"

	"github.com/absmach/smpp/pkg/smpp/smpperr"
)

// PutUint8 writes v into buf[0] and returns 1.
func PutUint8(buf []byte, v uint8) int {
	buf[0] = v
	return 1
}

// PutUint16 writes v big-endian into buf[0:2] and returns 2.
func PutUint16(buf []byte, v uint16) int {
	binary.BigEndian.PutUint16(buf, v)
	return 2
}

// PutUint32 writes v big-endian into buf[0:4] and returns 4.
func PutUint32(buf []byte, v uint32) int {
	binary.BigEndian.PutUint32(buf, v)
	return 4
}

// GetUint8 reads one byte from src.
func GetUint8(src []byte) (uint8, int, error) {
	if len(src) < 1 {
		return 0, 0, smpperr.New(smpperr.UnexpectedEOF, "need 1 byte, have %d", len(src))
	}
	return src[0], 1, nil
}

// GetUint16 reads a big-endian uint16 from src.
func GetUint16(src []byte) (uint16, int, error) {
	if len(src) < 2 {
		return 0, 0, smpperr.New(smpperr.UnexpectedEOF, "need 2 bytes, have %d", len(src))
	}
	return binary.BigEndian.Uint16(src), 2, nil
}

// GetUint32 reads a big-endian uint32 from src.
func GetUint32(src []byte) (uint32, int, error) {
	if len(src) < 4 {
		return 0, 0, smpperr.New(smpperr.UnexpectedEOF, "need 4 bytes, have %d", len(src))
	}
	return binary.BigEndian.Uint32(src), 4, nil
}

// COctetString bounds check helpers are shared by the three bounded string
// flavors below. isASCII reports whether every byte is 7-bit clean,
// matching the SMPP spec's requirement for C-octet string content.
func isASCII(b []byte) bool {
	for _, c := range b {
		if c > 0x7f {
			return false
		}
	}
	return true
}

// DecodeCOctetString scans src for a NUL terminator, enforcing that the
// total encoded length (including the NUL) lies in [min,max]. It returns
// the string payload without its terminator (a subslice of src: this is
// the "borrowed" read spec.md §3a describes) and the number of bytes
// consumed, including the NUL.
func DecodeCOctetString(src []byte, min, max int) ([]byte, int, error) {
	limit := len(src)
	if max < limit {
		limit = max
	}
	nul := -1
	for i := 0; i < limit; i++ {
		if src[i] == 0x00 {
			nul = i
			break
		}
	}
	if nul == -1 {
		if limit < len(src) {
			return nil, 0, smpperr.New(smpperr.TooManyBytes, "no NUL within max %d bytes", max)
		}
		return nil, 0, smpperr.New(smpperr.NotNullTerminated, "no NUL terminator found in remaining %d bytes", len(src))
	}
	total := nul + 1
	if total < min {
		return nil, 0, smpperr.New(smpperr.TooFewBytes, "c-octet string length %d below min %d", total, min)
	}
	if !isASCII(src[:nul]) {
		return nil, 0, smpperr.New(smpperr.NotAscii, "c-octet string contains non-ascii byte")
	}
	return src[:nul], total, nil
}

// EncodeCOctetString writes value followed by a NUL into buf and returns
// the bytes written (len(value)+1).
func EncodeCOctetString(buf []byte, value []byte) int {
	n := copy(buf, value)
	buf[n] = 0x00
	return n + 1
}

// DecodeEmptyOrFullCOctetString decodes either a lone NUL (the "empty"
// case) or exactly n bytes ending in NUL (the "full" case), per spec.md
// §3's empty-or-full C-octet string[N] definition.
func DecodeEmptyOrFullCOctetString(src []byte, n int) ([]byte, int, error) {
	if len(src) < 1 {
		return nil, 0, smpperr.New(smpperr.UnexpectedEOF, "need at least 1 byte")
	}
	if src[0] == 0x00 {
		return src[:0], 1, nil
	}
	if len(src) < n {
		return nil, 0, smpperr.New(smpperr.UnexpectedEOF, "need %d bytes for full form, have %d", n, len(src))
	}
	if src[n-1] != 0x00 {
		return nil, 0, smpperr.New(smpperr.NotNullTerminated, "full form must end in NUL")
	}
	if !isASCII(src[:n-1]) {
		return nil, 0, smpperr.New(smpperr.NotAscii, "empty-or-full c-octet string contains non-ascii byte")
	}
	return src[:n-1], n, nil
}

// EncodeEmptyOrFullCOctetString writes either a lone NUL (value is empty)
// or value followed by a NUL, and returns the bytes written
// (len(value)+1). It neither pads nor truncates, and it does not check
// that len(value) is the full form's length minus one.
func EncodeEmptyOrFullCOctetString(buf []byte, value []byte) int {
	if len(value) == 0 {
		buf[0] = 0x00
		return 1
	}
	n := copy(buf, value)
	buf[n] = 0x00
	return n + 1
}

// DecodeOctetString consumes exactly n bytes from src with no terminator,
// enforcing n is within [min,max].
func DecodeOctetString(src []byte, n, min, max int) ([]byte, int, error) {
	if n < min {
		return nil, 0, smpperr.New(smpperr.TooFewBytes, "octet string length %d out of bounds [%d,%d]", n, min, max)
	}
	if n > max {
		return nil, 0, smpperr.New(smpperr.TooManyBytes, "octet string length %d out of bounds [%d,%d]", n, min, max)
	}
	if len(src) < n {
		return nil, 0, smpperr.New(smpperr.UnexpectedEOF, "need %d bytes, have %d", n, len(src))
	}
	return src[:n], n, nil
}

// DecodeAnyOctetString consumes exactly n bytes from src with no
// terminator and no bound (the "any-octet string" flavor).
func DecodeAnyOctetString(src []byte, n int) ([]byte, int, error) {
	if len(src) < n {
		return nil, 0, smpperr.New(smpperr.UnexpectedEOF, "need %d bytes, have %d", n, len(src))
	}
	return src[:n], n, nil
}
