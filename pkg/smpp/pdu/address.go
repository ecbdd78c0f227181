// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package pdu implements every SMPP v5.0 command body (spec.md §4.4): the
// fixed mandatory-parameter layout plus trailing TLV list each operation
// carries. Every body type exposes Length/Encode/a package-level Decode
// function, grounded file-by-file on the corresponding
// original_source/rusmpp body in rusmpp/src/pdus/body/bodies/.
package pdu

import (
	"github.com/absmach/smpp/pkg/smpp/field"
	"github.com/absmach/smpp/pkg/smpp/ioutil"
	"github.com/absmach/smpp/pkg/smpp/smpperr"
	"github.com/absmach/smpp/pkg/smpp/values"
)

// Address is the (ton, npi, addr) triple shared by every source/destination
// address field across the PDU set.
type Address struct {
	Ton  values.Ton
	Npi  values.Npi
	Addr []byte
}

// Length reports the wire length of a.
func (a Address) Length() int {
	return 1 + 1 + len(a.Addr) + 1
}

// Encode writes a to buf and returns the bytes written.
func (a Address) Encode(buf []byte) int {
	n := 0
	buf[n] = byte(a.Ton)
	n++
	buf[n] = byte(a.Npi)
	n++
	return n + ioutil.EncodeCOctetString(buf[n:], a.Addr)
}

// decodeAddress decodes an Address from src, tagging a short-input failure
// with tonField and an address-string failure with addrField for the error
// chain. npiField is accepted but never attached to an error.
func decodeAddress(src []byte, max int, tonField, npiField, addrField field.ID) (Address, int, error) {
	if len(src) < 2 {
		return Address{}, 0, smpperr.WrapField(tonField, smpperr.New(smpperr.UnexpectedEOF, "address: need at least 2 bytes, got %d", len(src)))
	}
	ton := values.Ton(src[0])
	npi := values.Npi(src[1])
	addr, n, err := ioutil.DecodeCOctetString(src[2:], 1, max)
	if err != nil {
		return Address{}, 0, smpperr.WrapField(addrField, err)
	}
	_ = npiField
	return Address{Ton: ton, Npi: npi, Addr: addr}, 2 + n, nil
}

// Clone returns a deep copy of a.
func (a Address) Clone() Address {
	return Address{Ton: a.Ton, Npi: a.Npi, Addr: append([]byte(nil), a.Addr...)}
}
