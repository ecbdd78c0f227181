// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package values

import (
	"github.com/absmach/smpp/pkg/smpp/codec"
	"github.com/absmach/smpp/pkg/smpp/ioutil"
	"github.com/absmach/smpp/pkg/smpp/smpperr"
)

// Subaddress is the subaddress TLV value: a tag byte followed by up to 22
// raw address octets.
type Subaddress struct {
	Tag  SubaddressTag
	Addr []byte
}

// Length reports the wire length of s.
func (s Subaddress) Length() int {
	return 1 + len(s.Addr)
}

// Encode writes s to buf and returns the bytes written.
func (s Subaddress) Encode(buf []byte) int {
	buf[0] = byte(s.Tag)
	return 1 + copy(buf[1:], s.Addr)
}

// DecodeSubaddress decodes a Subaddress occupying all of src (subaddress
// is only ever carried inside a length-prefixed TLV, so its own length is
// implicit in len(src)).
func DecodeSubaddress(src []byte) (Subaddress, int, error) {
	if len(src) < 1 {
		return Subaddress{}, 0, smpperr.New(smpperr.UnexpectedEOF, "subaddress: empty value")
	}
	addr := append([]byte(nil), src[1:]...)
	return Subaddress{Tag: SubaddressTag(src[0]), Addr: addr}, len(src), nil
}

// Clone returns a deep copy of s.
func (s Subaddress) Clone() Subaddress {
	return Subaddress{Tag: s.Tag, Addr: append([]byte(nil), s.Addr...)}
}

// BroadcastContentType is the broadcast_content_type TLV value.
type BroadcastContentType struct {
	Network TypeOfNetwork
	Content EncodingContentType
}

// Length reports the wire length of b (always 3: 1-byte network + 2-byte
// content).
func (b BroadcastContentType) Length() int { return 3 }

// Encode writes b to buf and returns the bytes written.
func (b BroadcastContentType) Encode(buf []byte) int {
	buf[0] = byte(b.Network)
	return 1 + ioutil.PutUint16(buf[1:], uint16(b.Content))
}

// DecodeBroadcastContentType decodes a BroadcastContentType from src.
func DecodeBroadcastContentType(src []byte) (BroadcastContentType, int, error) {
	if len(src) < 3 {
		return BroadcastContentType{}, 0, smpperr.New(smpperr.UnexpectedEOF, "broadcast_content_type: need 3 bytes, got %d", len(src))
	}
	content, _, err := ioutil.GetUint16(src[1:3])
	if err != nil {
		return BroadcastContentType{}, 0, err
	}
	return BroadcastContentType{Network: TypeOfNetwork(src[0]), Content: EncodingContentType(content)}, 3, nil
}

// BroadcastAreaIdentifier is the broadcast_area_identifier TLV value: a
// format byte followed by format-specific raw details.
type BroadcastAreaIdentifier struct {
	Format  BroadcastAreaFormat
	Details []byte
}

// Length reports the wire length of b.
func (b BroadcastAreaIdentifier) Length() int { return 1 + len(b.Details) }

// Encode writes b to buf and returns the bytes written.
func (b BroadcastAreaIdentifier) Encode(buf []byte) int {
	buf[0] = byte(b.Format)
	return 1 + copy(buf[1:], b.Details)
}

// DecodeBroadcastAreaIdentifier decodes a BroadcastAreaIdentifier
// occupying all of src.
func DecodeBroadcastAreaIdentifier(src []byte) (BroadcastAreaIdentifier, int, error) {
	if len(src) < 1 {
		return BroadcastAreaIdentifier{}, 0, smpperr.New(smpperr.UnexpectedEOF, "broadcast_area_identifier: empty value")
	}
	details := append([]byte(nil), src[1:]...)
	return BroadcastAreaIdentifier{Format: BroadcastAreaFormat(src[0]), Details: details}, len(src), nil
}

// Clone returns a deep copy of b.
func (b BroadcastAreaIdentifier) Clone() BroadcastAreaIdentifier {
	return BroadcastAreaIdentifier{Format: b.Format, Details: append([]byte(nil), b.Details...)}
}

// BroadcastFrequencyInterval is the broadcast_frequency_interval TLV
// value: a time unit plus a 2-byte count in that unit.
type BroadcastFrequencyInterval struct {
	Unit  UnitOfTime
	Value uint16
}

// Length reports the wire length of b (always 3).
func (b BroadcastFrequencyInterval) Length() int { return 3 }

// Encode writes b to buf and returns the bytes written.
func (b BroadcastFrequencyInterval) Encode(buf []byte) int {
	buf[0] = byte(b.Unit)
	return 1 + ioutil.PutUint16(buf[1:], b.Value)
}

// DecodeBroadcastFrequencyInterval decodes a BroadcastFrequencyInterval
// from src.
func DecodeBroadcastFrequencyInterval(src []byte) (BroadcastFrequencyInterval, int, error) {
	if len(src) < 3 {
		return BroadcastFrequencyInterval{}, 0, smpperr.New(smpperr.UnexpectedEOF, "broadcast_frequency_interval: need 3 bytes, got %d", len(src))
	}
	v, _, err := ioutil.GetUint16(src[1:3])
	if err != nil {
		return BroadcastFrequencyInterval{}, 0, err
	}
	return BroadcastFrequencyInterval{Unit: UnitOfTime(src[0]), Value: v}, 3, nil
}

// NetworkErrorCode is the network_error_code TLV value.
type NetworkErrorCode struct {
	NetworkType ErrorCodeNetworkType
	ErrorCode   uint16
}

// Length reports the wire length of n (always 3).
func (n NetworkErrorCode) Length() int { return 3 }

// Encode writes n to buf and returns the bytes written.
func (n NetworkErrorCode) Encode(buf []byte) int {
	buf[0] = byte(n.NetworkType)
	return 1 + ioutil.PutUint16(buf[1:], n.ErrorCode)
}

// DecodeNetworkErrorCode decodes a NetworkErrorCode from src.
func DecodeNetworkErrorCode(src []byte) (NetworkErrorCode, int, error) {
	if len(src) < 3 {
		return NetworkErrorCode{}, 0, smpperr.New(smpperr.UnexpectedEOF, "network_error_code: need 3 bytes, got %d", len(src))
	}
	v, _, err := ioutil.GetUint16(src[1:3])
	if err != nil {
		return NetworkErrorCode{}, 0, err
	}
	return NetworkErrorCode{NetworkType: ErrorCodeNetworkType(src[0]), ErrorCode: v}, 3, nil
}

// NumberOfMessages is the number_of_messages TLV value: a count in the
// inclusive range [0, 99], carried as a single octet.
type NumberOfMessages uint8

// Length reports the wire length of n (always 1).
func (n NumberOfMessages) Length() int { return 1 }

// Encode writes n to buf and returns the bytes written.
func (n NumberOfMessages) Encode(buf []byte) int {
	buf[0] = uint8(n)
	return 1
}

// DecodeNumberOfMessages decodes a NumberOfMessages from src, rejecting
// values outside [0, 99].
func DecodeNumberOfMessages(src []byte) (NumberOfMessages, int, error) {
	if len(src) < 1 {
		return 0, 0, smpperr.New(smpperr.UnexpectedEOF, "number_of_messages: empty value")
	}
	if src[0] > 99 {
		return 0, 0, smpperr.New(smpperr.MaxLength, "number_of_messages: %d exceeds maximum of 99", src[0])
	}
	return NumberOfMessages(src[0]), 1, nil
}

// UserMessageReference is the user_message_reference TLV value: a 2-byte
// reference number assigned by the originating application.
type UserMessageReference uint16

// Length reports the wire length of u (always 2).
func (u UserMessageReference) Length() int { return 2 }

// Encode writes u to buf and returns the bytes written.
func (u UserMessageReference) Encode(buf []byte) int {
	return ioutil.PutUint16(buf, uint16(u))
}

// DecodeUserMessageReference decodes a UserMessageReference from src.
func DecodeUserMessageReference(src []byte) (UserMessageReference, int, error) {
	v, n, err := ioutil.GetUint16(src)
	return UserMessageReference(v), n, err
}

// MsValidityInformation is one entry of an ms_validity TLV's optional
// extension list (units beyond the base validity_behavior octet).
type MsValidityInformation struct {
	UnitsOfTime UnitOfTime
	NumberOfTU  uint16
}

// Length reports the wire length of m (always 3).
func (m MsValidityInformation) Length() int { return 3 }

// Encode writes m to buf and returns the bytes written.
func (m MsValidityInformation) Encode(buf []byte) int {
	buf[0] = byte(m.UnitsOfTime)
	return 1 + ioutil.PutUint16(buf[1:], m.NumberOfTU)
}

func decodeMsValidityInformation(src []byte) (MsValidityInformation, int, error) {
	if len(src) < 3 {
		return MsValidityInformation{}, 0, smpperr.New(smpperr.UnexpectedEOF, "ms_validity_information: need 3 bytes, got %d", len(src))
	}
	v, _, err := ioutil.GetUint16(src[1:3])
	if err != nil {
		return MsValidityInformation{}, 0, err
	}
	return MsValidityInformation{UnitsOfTime: UnitOfTime(src[0]), NumberOfTU: v}, 3, nil
}

// MsValidity is the ms_validity TLV value: a validity behaviour plus a
// variable-length list of additional validity-information entries.
type MsValidity struct {
	Behavior    MsValidityBehavior
	Information []MsValidityInformation
}

// Length reports the wire length of m.
func (m MsValidity) Length() int { return 1 + 3*len(m.Information) }

// Encode writes m to buf and returns the bytes written.
func (m MsValidity) Encode(buf []byte) int {
	buf[0] = byte(m.Behavior)
	n := 1
	for _, info := range m.Information {
		n += info.Encode(buf[n:])
	}
	return n
}

// DecodeMsValidity decodes an MsValidity occupying all of src (the
// enclosing TLV's length field is the only bound on the Information
// list).
func DecodeMsValidity(src []byte) (MsValidity, int, error) {
	if len(src) < 1 {
		return MsValidity{}, 0, smpperr.New(smpperr.UnexpectedEOF, "ms_validity: empty value")
	}
	info, n, err := codec.WithLengthBudget(src[1:], len(src)-1, decodeMsValidityInformation)
	if err != nil {
		return MsValidity{}, 0, err
	}
	return MsValidity{Behavior: MsValidityBehavior(src[0]), Information: info}, 1 + n, nil
}

// Clone returns a deep copy of m.
func (m MsValidity) Clone() MsValidity {
	info := append([]MsValidityInformation(nil), m.Information...)
	return MsValidity{Behavior: m.Behavior, Information: info}
}

// UnsuccessSme is one entry of submit_multi_resp's unsuccess_sme list: an
// SME address plus the error encountered submitting to it.
type UnsuccessSme struct {
	Ton       Ton
	Npi       Npi
	Addr      []byte
	ErrorCode uint32
}

// Length reports the wire length of u.
func (u UnsuccessSme) Length() int {
	return 1 + 1 + len(u.Addr) + 1 + 4
}

// Encode writes u to buf and returns the bytes written.
func (u UnsuccessSme) Encode(buf []byte) int {
	n := 0
	buf[n] = byte(u.Ton)
	n++
	buf[n] = byte(u.Npi)
	n++
	n += ioutil.EncodeCOctetString(buf[n:], u.Addr)
	n += ioutil.PutUint32(buf[n:], u.ErrorCode)
	return n
}

// DecodeUnsuccessSme decodes an UnsuccessSme from src.
func DecodeUnsuccessSme(src []byte) (UnsuccessSme, int, error) {
	if len(src) < 2 {
		return UnsuccessSme{}, 0, smpperr.New(smpperr.UnexpectedEOF, "unsuccess_sme: need at least 2 bytes, got %d", len(src))
	}
	n := 0
	ton := Ton(src[n])
	n++
	npi := Npi(src[n])
	n++
	addr, c, err := ioutil.DecodeCOctetString(src[n:], 1, 21)
	if err != nil {
		return UnsuccessSme{}, 0, err
	}
	n += c
	errCode, c, err := ioutil.GetUint32(src[n:])
	if err != nil {
		return UnsuccessSme{}, 0, err
	}
	n += c
	return UnsuccessSme{Ton: ton, Npi: npi, Addr: addr, ErrorCode: errCode}, n, nil
}

// Clone returns a deep copy of u.
func (u UnsuccessSme) Clone() UnsuccessSme {
	return UnsuccessSme{Ton: u.Ton, Npi: u.Npi, Addr: append([]byte(nil), u.Addr...), ErrorCode: u.ErrorCode}
}

// DestFlag discriminates a submit_multi DestinationAddress entry's shape:
// a plain SME address, or a reference to a previously-defined
// distribution list.
type DestFlag uint8

const (
	DestFlagSmeAddress      DestFlag = 1
	DestFlagDistributionList DestFlag = 2
)

// DestAddress is one entry of submit_multi's dest_address list.
type DestAddress struct {
	Flag DestFlag
	// SME address fields, populated when Flag == DestFlagSmeAddress.
	Ton  Ton
	Npi  Npi
	Addr []byte
	// DlName, populated when Flag == DestFlagDistributionList.
	DlName []byte
}

// Length reports the wire length of d.
func (d DestAddress) Length() int {
	if d.Flag == DestFlagDistributionList {
		return 1 + len(d.DlName) + 1
	}
	return 1 + 1 + 1 + len(d.Addr) + 1
}

// Encode writes d to buf and returns the bytes written.
func (d DestAddress) Encode(buf []byte) int {
	buf[0] = byte(d.Flag)
	if d.Flag == DestFlagDistributionList {
		return 1 + ioutil.EncodeCOctetString(buf[1:], d.DlName)
	}
	n := 1
	buf[n] = byte(d.Ton)
	n++
	buf[n] = byte(d.Npi)
	n++
	n += ioutil.EncodeCOctetString(buf[n:], d.Addr)
	return n
}

// DecodeDestAddress decodes a DestAddress from src, dispatching on the
// leading flag octet.
func DecodeDestAddress(src []byte) (DestAddress, int, error) {
	if len(src) < 1 {
		return DestAddress{}, 0, smpperr.New(smpperr.UnexpectedEOF, "dest_address: empty value")
	}
	flag := DestFlag(src[0])
	if flag == DestFlagDistributionList {
		name, n, err := ioutil.DecodeCOctetString(src[1:], 1, 21)
		if err != nil {
			return DestAddress{}, 0, err
		}
		return DestAddress{Flag: flag, DlName: name}, 1 + n, nil
	}
	if len(src) < 3 {
		return DestAddress{}, 0, smpperr.New(smpperr.UnexpectedEOF, "dest_address: need at least 3 bytes for sme_address, got %d", len(src))
	}
	ton := Ton(src[1])
	npi := Npi(src[2])
	addr, n, err := ioutil.DecodeCOctetString(src[3:], 1, 21)
	if err != nil {
		return DestAddress{}, 0, err
	}
	return DestAddress{Flag: flag, Ton: ton, Npi: npi, Addr: addr}, 3 + n, nil
}

// Clone returns a deep copy of d.
func (d DestAddress) Clone() DestAddress {
	return DestAddress{
		Flag:   d.Flag,
		Ton:    d.Ton,
		Npi:    d.Npi,
		Addr:   append([]byte(nil), d.Addr...),
		DlName: append([]byte(nil), d.DlName...),
	}
}
