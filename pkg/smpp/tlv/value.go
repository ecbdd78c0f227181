// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package tlv

import (
	"github.com/absmach/smpp/pkg/smpp/ioutil"
	"github.com/absmach/smpp/pkg/smpp/smpperr"
	"github.com/absmach/smpp/pkg/smpp/values"
)

// Decoded is a typed view of a TLV's value. Tags this package does not
// model a concrete Go type for land in Raw, the same "Other(raw)"
// passthrough pattern package values documents for enumerations, here applied
// at the tag-dispatch level (spec.md §4.5: "an implementation need not
// interpret every tag it carries").
type Decoded struct {
	Tag Tag
	// Exactly one of the typed fields below is meaningful, selected by Tag;
	// Raw always holds the original bytes regardless.
	Raw                        []byte
	Uint16                     uint16
	Uint8                      uint8
	NetworkErrorCode           values.NetworkErrorCode
	Subaddress                 values.Subaddress
	CallbackNumPresInd         values.CallbackNumPresInd
	MsMsgWaitFacilities        values.MsMsgWaitFacilities
	MsValidity                 values.MsValidity
	NumberOfMessages           values.NumberOfMessages
	UserMessageReference       values.UserMessageReference
	BroadcastAreaIdentifier    values.BroadcastAreaIdentifier
	BroadcastContentType       values.BroadcastContentType
	BroadcastFrequencyInterval values.BroadcastFrequencyInterval
}

// DecodeValue interprets raw according to tag, returning a Decoded with
// the matching typed field populated. Unrecognized tags decode to a
// Decoded holding only Raw, never an error — an implementation is always
// free to forward an optional parameter it does not understand (spec.md
// §4.5).
func DecodeValue(tag Tag, raw []byte) (Decoded, error) {
	d := Decoded{Tag: tag, Raw: raw}
	switch tag {
	case TagNetworkErrorCode:
		v, _, err := values.DecodeNetworkErrorCode(raw)
		if err != nil {
			return Decoded{}, err
		}
		d.NetworkErrorCode = v
	case TagSourceSubaddress, TagDestSubaddress:
		v, _, err := values.DecodeSubaddress(raw)
		if err != nil {
			return Decoded{}, err
		}
		d.Subaddress = v
	case TagCallbackNumPresInd:
		if len(raw) < 1 {
			return Decoded{}, smpperr.New(smpperr.UnexpectedEOF, "callback_num_pres_ind: empty value")
		}
		d.CallbackNumPresInd = values.CallbackNumPresIndFromByte(raw[0])
	case TagMsMsgWaitFacilities:
		if len(raw) < 1 {
			return Decoded{}, smpperr.New(smpperr.UnexpectedEOF, "ms_msg_wait_facilities: empty value")
		}
		d.MsMsgWaitFacilities = values.MsMsgWaitFacilitiesFromByte(raw[0])
	case TagMsValidity:
		v, _, err := values.DecodeMsValidity(raw)
		if err != nil {
			return Decoded{}, err
		}
		d.MsValidity = v
	case TagNumberOfMessages:
		v, _, err := values.DecodeNumberOfMessages(raw)
		if err != nil {
			return Decoded{}, err
		}
		d.NumberOfMessages = v
	case TagUserMessageReference:
		v, _, err := values.DecodeUserMessageReference(raw)
		if err != nil {
			return Decoded{}, err
		}
		d.UserMessageReference = v
	case TagBroadcastAreaIdentifier:
		v, _, err := values.DecodeBroadcastAreaIdentifier(raw)
		if err != nil {
			return Decoded{}, err
		}
		d.BroadcastAreaIdentifier = v
	case TagBroadcastContentType:
		v, _, err := values.DecodeBroadcastContentType(raw)
		if err != nil {
			return Decoded{}, err
		}
		d.BroadcastContentType = v
	case TagBroadcastFrequencyInterval:
		v, _, err := values.DecodeBroadcastFrequencyInterval(raw)
		if err != nil {
			return Decoded{}, err
		}
		d.BroadcastFrequencyInterval = v
	case TagSourcePort, TagDestinationPort, TagSarMsgRefNum, TagSarTotalSegments, TagSarSegmentSeqnum, TagSmsSignal, TagUserResponseCode:
		v, _, err := ioutil.GetUint16(raw)
		if err != nil {
			return Decoded{}, err
		}
		d.Uint16 = v
	case TagDestAddrSubunit, TagSourceAddrSubunit, TagDestNetworkType, TagSourceNetworkType, TagPayloadType,
		TagMsAvailabilityStatus, TagDpfResult, TagSetDpf, TagDeliveryFailureReason, TagMoreMessagesToSend,
		TagMessageState, TagCongestionState, TagUssdServiceOp, TagBroadcastChannelIndicator,
		TagBroadcastMessageClass, TagBroadcastAreaSuccess, TagAlertOnMessageDelivery, TagItsReplyType:
		if len(raw) < 1 {
			return Decoded{}, smpperr.New(smpperr.UnexpectedEOF, "%s: empty value", tag)
		}
		d.Uint8 = raw[0]
	}
	return d, nil
}
