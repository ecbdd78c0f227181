// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package pdu

// Empty is the shared zero-length body for unbind, unbind_resp,
// enquire_link, enquire_link_resp and generic_nack: the command envelope
// carries everything these operations need, so the body contributes no
// bytes.
type Empty struct{}

// Length is always 0.
func (Empty) Length() int { return 0 }

// Encode writes nothing and returns 0.
func (Empty) Encode([]byte) int { return 0 }

// DecodeEmpty consumes nothing from src and always succeeds.
func DecodeEmpty(src []byte) (Empty, int, error) {
	return Empty{}, 0, nil
}

// Clone returns e unchanged (Empty carries no state to copy).
func (e Empty) Clone() Empty { return e }

// Other is the body of a command whose command-id is outside the known
// set (spec.md §4.3's Other(u32) escape; rusmpp's PduBody::Other carries
// the same raw octet string under NoFixedSizeOctetString). The command
// envelope already holds the unrecognized command-id, so Other keeps
// only the body's raw bytes, captured verbatim so the command re-encodes
// byte-identically.
type Other struct {
	Body []byte
}

// Length reports the wire length of o.
func (o Other) Length() int { return len(o.Body) }

// Encode writes o to buf and returns the bytes written.
func (o Other) Encode(buf []byte) int { return copy(buf, o.Body) }

// DecodeOther consumes all of src as o's raw body.
func DecodeOther(src []byte) (Other, int, error) {
	return Other{Body: append([]byte{}, src...)}, len(src), nil
}

// Clone returns a deep copy of o.
func (o Other) Clone() Other { return Other{Body: append([]byte(nil), o.Body...)} }
