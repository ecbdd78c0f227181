// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package tlv

import "github.com/absmach/smpp/pkg/smpp/smpperr"

// Family groups the PDUs that share one legal-tag set (spec.md §4.5; the
// source models this as one closed enum of allowed TlvValue variants per
// PDU group — BroadcastRequestTlvValue, MessageSubmissionRequestTlvValue,
// and so on). A Go named-integer Tag has no compiler-enforced membership
// in a family, so membership is checked at runtime by Validate instead.
type Family int

const (
	FamilyBroadcastRequest Family = iota
	FamilyBroadcastResponse
	FamilyCancelBroadcast
	FamilyMessageDeliveryRequest
	FamilyMessageDeliveryResponse
	FamilyMessageSubmissionRequest
	FamilyMessageSubmissionResponse
	FamilyQueryBroadcastResponse
)

var familyTags = map[Family]map[Tag]bool{
	FamilyBroadcastRequest: tagSet(
		TagBroadcastAreaIdentifier, TagBroadcastContentType, TagBroadcastFrequencyInterval,
		TagBroadcastRepNum, TagAlertOnMessageDelivery, TagBroadcastChannelIndicator,
		TagBroadcastContentTypeInfo, TagBroadcastMessageClass, TagBroadcastServiceGroup,
		TagCallbackNum, TagCallbackNumAtag, TagCallbackNumPresInd, TagDestAddrSubunit,
		TagDestSubaddress, TagDestinationPort, TagDisplayTime, TagLanguageIndicator,
		TagMessagePayload, TagMsValidity, TagPayloadType, TagPrivacyIndicator, TagSmsSignal,
		TagSourceAddrSubunit, TagSourcePort, TagSourceSubaddress, TagUserMessageReference,
	),
	FamilyBroadcastResponse: tagSet(
		TagBroadcastErrorStatus, TagBroadcastAreaIdentifier, TagBroadcastAreaSuccess,
	),
	FamilyCancelBroadcast: tagSet(
		TagBroadcastContentType, TagUserMessageReference,
	),
	FamilyMessageDeliveryRequest: tagSet(
		TagUserMessageReference, TagSourcePort, TagDestinationPort, TagSarMsgRefNum,
		TagSarTotalSegments, TagSarSegmentSeqnum, TagUserResponseCode, TagPrivacyIndicator,
		TagPayloadType, TagMessagePayload, TagDeliveryFailureReason, TagMoreMessagesToSend,
		TagMessageState, TagNetworkErrorCode, TagReceiptedMessageID, TagDestAddrSubunit,
		TagDestNetworkType, TagDestBearerType, TagDestTelematicsID, TagSourceAddrSubunit,
		TagSourceNetworkType, TagSourceBearerType, TagSourceTelematicsID, TagAdditionalStatusInfoText,
		TagDestSubaddress, TagSourceSubaddress, TagCallbackNum, TagLanguageIndicator,
		TagItsSessionInfo, TagUssdServiceOp, TagBillingIdentification,
	),
	FamilyMessageDeliveryResponse: tagSet(),
	FamilyMessageSubmissionRequest: tagSet(
		TagUserMessageReference, TagSourcePort, TagDestinationPort, TagSarMsgRefNum,
		TagSarTotalSegments, TagSarSegmentSeqnum, TagMoreMessagesToSend, TagPayloadType,
		TagMessagePayload, TagPrivacyIndicator, TagCallbackNum, TagCallbackNumPresInd,
		TagCallbackNumAtag, TagSourceSubaddress, TagDestSubaddress, TagUserResponseCode,
		TagDisplayTime, TagSmsSignal, TagMsValidity, TagMsMsgWaitFacilities, TagNumberOfMessages,
		TagAlertOnMessageDelivery, TagLanguageIndicator, TagDestAddrSubunit, TagDestNetworkType,
		TagDestBearerType, TagDestTelematicsID, TagSourceAddrSubunit, TagSourceNetworkType,
		TagSourceBearerType, TagSourceTelematicsID, TagQosTimeToLive, TagSetDpf, TagItsReplyType,
		TagItsSessionInfo, TagUssdServiceOp, TagBillingIdentification,
	),
	FamilyMessageSubmissionResponse: tagSet(
		TagAdditionalStatusInfoText, TagDpfResult,
	),
	FamilyQueryBroadcastResponse: tagSet(
		TagMessageState, TagBroadcastAreaIdentifier, TagBroadcastAreaSuccess,
		TagUserMessageReference,
	),
}

func tagSet(tags ...Tag) map[Tag]bool {
	m := make(map[Tag]bool, len(tags))
	for _, t := range tags {
		m[t] = true
	}
	return m
}

// Validate reports whether every tag in list is legal for family f,
// returning the first offending Tag wrapped in an UnsupportedKey error
// if not.
func Validate(f Family, list []TLV) error {
	allowed := familyTags[f]
	for _, t := range list {
		if !allowed[t.Tag] {
			return smpperr.New(smpperr.UnsupportedKey, "tag %s is not legal in this command", t.Tag)
		}
	}
	return nil
}
