// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package smpperr defines the decode/encode fault taxonomy shared by every
// codec package (pkg/smpp/ioutil, tlv, pdu, command, framer). It builds on
// errors.Error (github.com/absmach/smpp/errors) the same way the rest of
// this codebase does: a sentinel Kind wrapped, field by field, by
// errors.Wrap as a decode call unwinds.
package smpperr

import (
	"fmt"

	"github.com/absmach/smpp/errors"
	"github.com/absmach/smpp/pkg/smpp/field"
)

// Verbose controls whether WrapField chains carry the full field-path
// trace (spec.md's "verbose" feature) or collapse to their innermost Kind
// with no chain allocation. Default true; set false for the allocation-
// free mode described in spec.md §9's last bullet.
var Verbose = true

// Kind is the closed set of decode/encode fault kinds. It never carries
// its own payload beyond what the specific error constructor below adds.
type Kind int

const (
	// UnexpectedEOF: fewer bytes available than required at the current step.
	UnexpectedEOF Kind = iota
	// TooFewBytes: a bounded octet string decoded shorter than its minimum.
	TooFewBytes
	// TooManyBytes: a bounded octet string decoded longer than its maximum.
	TooManyBytes
	// NotAscii: a C-octet string contains a non-ASCII byte.
	NotAscii
	// NotNullTerminated: a C-octet string ran out of budget before a NUL.
	NotNullTerminated
	// UnsupportedKey: a tag/command-id dispatch found no matching variant
	// and the context does not permit passthrough.
	UnsupportedKey
	// MinLength: a framed command length was below the 16-byte header minimum.
	MinLength
	// MaxLength: a framed command length exceeded the configured maximum;
	// values.DecodeNumberOfMessages also reports it for a count above 99.
	MaxLength
	// BufferTooSmall: a framed command does not fit the caller's buffer.
	BufferTooSmall
)

func (k Kind) String() string {
	switch k {
	case UnexpectedEOF:
		return "unexpected eof"
	case TooFewBytes:
		return "too few bytes"
	case TooManyBytes:
		return "too many bytes"
	case NotAscii:
		return "not ascii"
	case NotNullTerminated:
		return "not null terminated"
	case UnsupportedKey:
		return "unsupported key"
	case MinLength:
		return "below minimum command length"
	case MaxLength:
		return "exceeds maximum command length"
	case BufferTooSmall:
		return "buffer too small"
	default:
		return "unknown"
	}
}

// kindError is the leaf errors.Error carrying a Kind plus its formatted
// detail. It never wraps another error: WrapField chains are built by
// wrapping kindError with errors.Wrap, one field.ID per layer.
type kindError struct {
	kind Kind
	msg  string
}

func (e *kindError) Error() string     { return e.msg }
func (e *kindError) Msg() string       { return e.msg }
func (e *kindError) Err() errors.Error { return nil }
func (e *kindError) Kind() Kind        { return e.kind }

// New builds a leaf decode/encode error of the given kind.
func New(kind Kind, format string, args ...any) errors.Error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// KindOf walks an errors.Error chain and returns the innermost Kind, if
// any layer in the chain is a smpperr leaf. Used by tests and by callers
// running with Verbose = false who only ever see a bare Kind-carrying
// error and still want to branch on it.
func KindOf(err error) (Kind, bool) {
	for cur := err; cur != nil; {
		if ke, ok := cur.(*kindError); ok {
			return ke.kind, true
		}
		ee, ok := cur.(errors.Error)
		if !ok {
			return 0, false
		}
		inner := ee.Err()
		if inner == nil {
			return 0, false
		}
		cur = inner
	}
	return 0, false
}

// WrapField annotates err with the field.ID currently being decoded,
// building the source chain spec.md §4.2/§7 describes. When Verbose is
// false, it returns err unchanged so no chain is allocated — the caller
// is still left with the innermost Kind via KindOf.
func WrapField(f field.ID, err error) errors.Error {
	if err == nil {
		return nil
	}
	if !Verbose {
		if ee, ok := err.(errors.Error); ok {
			return ee
		}
		return errors.New(err.Error())
	}
	return errors.Wrap(errors.New(f.String()), err)
}
