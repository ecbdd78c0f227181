// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package codec defines the three interfaces spec.md §4.1/§4.2 calls the
// codec surface (Length / Encode / Decode) plus the small set of shared
// helpers that implement the schema DSL's repeated-element decode rules
// (length=unchecked, count=<field>) without a code generator: every
// hand-written PDU/TLV decoder with a trailing vector or counted list
// calls into these instead of re-deriving the budget/counting logic
// each time.
package codec

import "github.com/absmach/smpp/pkg/smpp/smpperr"

// Length reports the exact number of bytes Encode will write.
type Length interface {
	Length() int
}

// Encoder writes a value's wire bytes into buf, which must be at least
// Length() bytes long, and returns the number of bytes written.
type Encoder interface {
	Length
	Encode(buf []byte) int
}

// Decoder parses a value of a fixed, self-describing wire shape from src.
// It returns the number of bytes consumed.
type Decoder[T any] func(src []byte) (T, int, error)

// WithLengthBudget decodes repeated elements until the given budget
// (spec.md §4.2's length="unchecked" rule: "decode until the remaining
// byte budget reaches zero") is exhausted, failing if an element decode
// does not land exactly on the budget boundary.
func WithLengthBudget[T any](src []byte, budget int, decode Decoder[T]) ([]T, int, error) {
	if budget < 0 || budget > len(src) {
		return nil, 0, smpperr.New(smpperr.UnexpectedEOF, "length budget %d exceeds %d available bytes", budget, len(src))
	}
	var out []T
	consumed := 0
	for consumed < budget {
		v, n, err := decode(src[consumed:budget])
		if err != nil {
			return nil, 0, err
		}
		if n <= 0 {
			return nil, 0, smpperr.New(smpperr.UnexpectedEOF, "element decode made no progress within budget")
		}
		out = append(out, v)
		consumed += n
	}
	if consumed != budget {
		return nil, 0, smpperr.New(smpperr.UnexpectedEOF, "vector decode ended mid-element: consumed %d of budget %d", consumed, budget)
	}
	return out, consumed, nil
}

// Counted decodes exactly n elements from src (spec.md §4.2's
// count=<field> rule), returning the total bytes consumed.
func Counted[T any](src []byte, n int, decode Decoder[T]) ([]T, int, error) {
	if n == 0 {
		return nil, 0, nil
	}
	out := make([]T, 0, n)
	consumed := 0
	for i := 0; i < n; i++ {
		v, c, err := decode(src[consumed:])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, v)
		consumed += c
	}
	return out, consumed, nil
}
