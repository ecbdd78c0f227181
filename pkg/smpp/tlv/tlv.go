// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package tlv

import (
	"github.com/absmach/smpp/pkg/smpp/codec"
	"github.com/absmach/smpp/pkg/smpp/field"
	"github.com/absmach/smpp/pkg/smpp/ioutil"
	"github.com/absmach/smpp/pkg/smpp/smpperr"
)

// TLV is the raw wire container every optional parameter shares: a tag, a
// 16-bit value length, and that many bytes of tag-specific value (spec.md
// §4.5). Decode never interprets the value — call DecodeValue in
// value.go to get a typed view for a known tag.
type TLV struct {
	Tag   Tag
	Value []byte
}

// Length reports the wire length of t (4-byte header + value).
func (t TLV) Length() int {
	return 4 + len(t.Value)
}

// Encode writes t to buf and returns the bytes written.
func (t TLV) Encode(buf []byte) int {
	n := ioutil.PutUint16(buf, uint16(t.Tag))
	n += ioutil.PutUint16(buf[n:], uint16(len(t.Value)))
	n += copy(buf[n:], t.Value)
	return n
}

// Decode parses one TLV from the head of src.
func Decode(src []byte) (TLV, int, error) {
	if len(src) < 4 {
		return TLV{}, 0, smpperr.WrapField(field.Tag, smpperr.New(smpperr.UnexpectedEOF, "tlv: need 4-byte header, got %d bytes", len(src)))
	}
	tag, n, err := ioutil.GetUint16(src)
	if err != nil {
		return TLV{}, 0, smpperr.WrapField(field.Tag, err)
	}
	length, c, err := ioutil.GetUint16(src[n:])
	if err != nil {
		return TLV{}, 0, smpperr.WrapField(field.ValueLength, err)
	}
	n += c
	value, c, err := ioutil.DecodeAnyOctetString(src[n:], int(length))
	if err != nil {
		return TLV{}, 0, smpperr.WrapField(field.Value, err)
	}
	n += c
	return TLV{Tag: Tag(tag), Value: value}, n, nil
}

// Clone returns a deep copy of t.
func (t TLV) Clone() TLV {
	return TLV{Tag: t.Tag, Value: append([]byte(nil), t.Value...)}
}

// DecodeList decodes a sequence of TLVs occupying the entire remaining
// budget (spec.md §4.5: "a PDU's optional parameters run to the end of
// the command body, with no count or terminator"), via the codec
// engine's length="unchecked" decode rule.
func DecodeList(src []byte, budget int) ([]TLV, int, error) {
	return codec.WithLengthBudget(src, budget, Decode)
}

// EncodeList writes every TLV in list to buf in order and returns the
// total bytes written.
func EncodeList(buf []byte, list []TLV) int {
	n := 0
	for _, t := range list {
		n += t.Encode(buf[n:])
	}
	return n
}

// ListLength reports the total wire length of list.
func ListLength(list []TLV) int {
	n := 0
	for _, t := range list {
		n += t.Length()
	}
	return n
}

// Find returns the first TLV in list with the given tag.
func Find(list []TLV, tag Tag) (TLV, bool) {
	for _, t := range list {
		if t.Tag == tag {
			return t, true
		}
	}
	return TLV{}, false
}

// CloneList returns a deep copy of list.
func CloneList(list []TLV) []TLV {
	out := make([]TLV, len(list))
	for i, t := range list {
		out[i] = t.Clone()
	}
	return out
}
