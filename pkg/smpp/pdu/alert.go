// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package pdu

import (
	"github.com/absmach/smpp/pkg/smpp/field"
	"github.com/absmach/smpp/pkg/smpp/ioutil"
	"github.com/absmach/smpp/pkg/smpp/smpperr"
	"github.com/absmach/smpp/pkg/smpp/tlv"
	"github.com/absmach/smpp/pkg/smpp/values"
)

// AlertNotification is the alert_notification command body: the mc
// tells an ESME that a previously-unavailable destination is now
// reachable. It has no response (alert_notification is a one-way
// operation) and, unlike every other address pair in this package, bounds
// both addresses to 65 octets rather than 21.
type AlertNotification struct {
	SourceAddrTon values.Ton
	SourceAddrNpi values.Npi
	SourceAddr    []byte
	EsmeAddrTon   values.Ton
	EsmeAddrNpi   values.Npi
	EsmeAddr      []byte
	Tlvs          []tlv.TLV
}

// Length reports the wire length of a.
func (a AlertNotification) Length() int {
	return 1 + 1 + len(a.SourceAddr) + 1 + 1 + 1 + len(a.EsmeAddr) + 1 + tlv.ListLength(a.Tlvs)
}

// Encode writes a to buf and returns the bytes written.
func (a AlertNotification) Encode(buf []byte) int {
	n := 0
	buf[n] = byte(a.SourceAddrTon)
	n++
	buf[n] = byte(a.SourceAddrNpi)
	n++
	n += ioutil.EncodeCOctetString(buf[n:], a.SourceAddr)
	buf[n] = byte(a.EsmeAddrTon)
	n++
	buf[n] = byte(a.EsmeAddrNpi)
	n++
	n += ioutil.EncodeCOctetString(buf[n:], a.EsmeAddr)
	return n + tlv.EncodeList(buf[n:], a.Tlvs)
}

// DecodeAlertNotification decodes an AlertNotification occupying exactly
// length bytes of src.
func DecodeAlertNotification(src []byte, length int) (AlertNotification, int, error) {
	if len(src) < 2 {
		return AlertNotification{}, 0, smpperr.WrapField(field.SourceAddrTON, smpperr.New(smpperr.UnexpectedEOF, "alert_notification: need at least 2 bytes, got %d", len(src)))
	}
	sourceTon := values.Ton(src[0])
	sourceNpi := values.Npi(src[1])
	sourceAddr, n, err := ioutil.DecodeCOctetString(src[2:], 1, 65)
	if err != nil {
		return AlertNotification{}, 0, smpperr.WrapField(field.SourceAddr, err)
	}
	n += 2
	if len(src)-n < 2 {
		return AlertNotification{}, 0, smpperr.WrapField(field.ESMEAddrTON, smpperr.New(smpperr.UnexpectedEOF, "alert_notification: need 2 more bytes, got %d", len(src)-n))
	}
	esmeTon := values.Ton(src[n])
	n++
	esmeNpi := values.Npi(src[n])
	n++
	esmeAddr, c, err := ioutil.DecodeCOctetString(src[n:], 1, 65)
	if err != nil {
		return AlertNotification{}, 0, smpperr.WrapField(field.ESMEAddr, err)
	}
	n += c
	list, c, err := tlv.DecodeList(src[n:], length-n)
	if err != nil {
		return AlertNotification{}, 0, smpperr.WrapField(field.Tlvs, err)
	}
	n += c
	return AlertNotification{
		SourceAddrTon: sourceTon, SourceAddrNpi: sourceNpi, SourceAddr: sourceAddr,
		EsmeAddrTon: esmeTon, EsmeAddrNpi: esmeNpi, EsmeAddr: esmeAddr, Tlvs: list,
	}, n, nil
}

// Clone returns a deep copy of a.
func (a AlertNotification) Clone() AlertNotification {
	return AlertNotification{
		SourceAddrTon: a.SourceAddrTon, SourceAddrNpi: a.SourceAddrNpi, SourceAddr: append([]byte(nil), a.SourceAddr...),
		EsmeAddrTon: a.EsmeAddrTon, EsmeAddrNpi: a.EsmeAddrNpi, EsmeAddr: append([]byte(nil), a.EsmeAddr...),
		Tlvs: tlv.CloneList(a.Tlvs),
	}
}
