// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package values

// Bitfield packs: a fixed number of named sub-fields packed into one
// octet, each with an explicit pack/unpack function rather than a
// compiler-dependent bit-field struct layout (spec.md §9: "the bit
// positions are part of the wire format and must not depend on host
// ABI").

// EsmClass packs esm_class's messaging_mode/message_type/gsm_features
// sub-fields into one octet.
type EsmClass struct {
	MessagingMode  MessagingMode
	MessageType    MessageType
	GsmFeatures    GsmFeatures
}

// EsmClassFromByte unpacks an EsmClass from its wire octet.
func EsmClassFromByte(b uint8) EsmClass {
	return EsmClass{
		MessagingMode: MessagingMode(b & 0b00000011),
		MessageType:   MessageType(b & 0b00111100),
		GsmFeatures:   GsmFeatures(b & 0b11000000),
	}
}

// Byte packs an EsmClass back into its wire octet.
func (e EsmClass) Byte() uint8 {
	return uint8(e.MessagingMode) | uint8(e.MessageType) | uint8(e.GsmFeatures)
}

// MessagingMode is esm_class bits 0-1.
type MessagingMode uint8

const (
	MessagingModeDefault               MessagingMode = 0b00000000
	MessagingModeDatagram               MessagingMode = 0b00000001
	MessagingModeForward                MessagingMode = 0b00000010
	MessagingModeStoreAndForward        MessagingMode = 0b00000011
)

// MessageType is esm_class bits 2-5.
type MessageType uint8

const (
	MessageTypeDefault                        MessageType = 0b00000000
	MessageTypeDeliveryReceipt                 MessageType = 0b00000100
	MessageTypeDeliveryAcknowledgement          MessageType = 0b00001000
	MessageTypeUserAcknowledgement               MessageType = 0b00010000
	MessageTypeConversationAbort                 MessageType = 0b00011000
	MessageTypeIntermediateDeliveryNotification  MessageType = 0b00100000
)

// GsmFeatures is esm_class bits 6-7.
type GsmFeatures uint8

const (
	GsmFeaturesNone                 GsmFeatures = 0b00000000
	GsmFeaturesUdhiIndicator        GsmFeatures = 0b01000000
	GsmFeaturesSetReplyPath         GsmFeatures = 0b10000000
	GsmFeaturesUdhiAndReplyPath     GsmFeatures = 0b11000000
)

// RegisteredDelivery packs registered_delivery's
// mc_delivery_receipt/sme_originated_acks/intermediate_notification
// sub-fields into one octet.
type RegisteredDelivery struct {
	MCDeliveryReceipt        MCDeliveryReceipt
	SmeOriginatedAcks        SmeOriginatedAcks
	IntermediateNotification IntermediateNotification
}

// RegisteredDeliveryFromByte unpacks a RegisteredDelivery from its wire
// octet.
func RegisteredDeliveryFromByte(b uint8) RegisteredDelivery {
	return RegisteredDelivery{
		MCDeliveryReceipt:        MCDeliveryReceipt(b & 0b00000011),
		SmeOriginatedAcks:        SmeOriginatedAcks(b & 0b00001100),
		IntermediateNotification: IntermediateNotification(b & 0b00010000),
	}
}

// Byte packs a RegisteredDelivery back into its wire octet.
func (r RegisteredDelivery) Byte() uint8 {
	return uint8(r.MCDeliveryReceipt) | uint8(r.SmeOriginatedAcks) | uint8(r.IntermediateNotification)
}

// MCDeliveryReceipt is registered_delivery bits 0-1.
type MCDeliveryReceipt uint8

const (
	MCDeliveryReceiptNotRequested                 MCDeliveryReceipt = 0b00000000
	MCDeliveryReceiptOnSuccessOrFailure            MCDeliveryReceipt = 0b00000001
	MCDeliveryReceiptOnFailure                     MCDeliveryReceipt = 0b00000010
)

// SmeOriginatedAcks is registered_delivery bits 2-3.
type SmeOriginatedAcks uint8

const (
	SmeOriginatedAcksNone              SmeOriginatedAcks = 0b00000000
	SmeOriginatedAcksDeliveryAck       SmeOriginatedAcks = 0b00000100
	SmeOriginatedAcksUserAck           SmeOriginatedAcks = 0b00001000
	SmeOriginatedAcksBoth              SmeOriginatedAcks = 0b00001100
)

// IntermediateNotification is registered_delivery bit 4.
type IntermediateNotification uint8

const (
	IntermediateNotificationNotRequested IntermediateNotification = 0b00000000
	IntermediateNotificationRequested    IntermediateNotification = 0b00010000
)

// MsMsgWaitFacilities packs ms_msg_wait_facilities's
// indicator/type_of_message sub-fields into one octet.
type MsMsgWaitFacilities struct {
	Indicator     MwiIndicator
	TypeOfMessage MwiTypeOfMessage
}

// MsMsgWaitFacilitiesFromByte unpacks MsMsgWaitFacilities from its wire
// octet.
func MsMsgWaitFacilitiesFromByte(b uint8) MsMsgWaitFacilities {
	return MsMsgWaitFacilities{
		Indicator:     MwiIndicator(b & 0b10000000),
		TypeOfMessage: MwiTypeOfMessage(b & 0b00000011),
	}
}

// Byte packs MsMsgWaitFacilities back into its wire octet.
func (m MsMsgWaitFacilities) Byte() uint8 {
	return uint8(m.Indicator) | uint8(m.TypeOfMessage)
}

// MwiIndicator is ms_msg_wait_facilities bit 7.
type MwiIndicator uint8

const (
	MwiIndicatorInactive MwiIndicator = 0b00000000
	MwiIndicatorActive   MwiIndicator = 0b10000000
)

// MwiTypeOfMessage is ms_msg_wait_facilities bits 0-1.
type MwiTypeOfMessage uint8

const (
	MwiTypeOfMessageVoicemail      MwiTypeOfMessage = 0b00000000
	MwiTypeOfMessageFax            MwiTypeOfMessage = 0b00000001
	MwiTypeOfMessageElectronicMail MwiTypeOfMessage = 0b00000010
	MwiTypeOfMessageOther          MwiTypeOfMessage = 0b00000011
)

// CallbackNumPresInd packs callback_num_pres_ind's
// presentation/screening sub-fields into one octet.
type CallbackNumPresInd struct {
	Presentation Presentation
	Screening    Screening
}

// CallbackNumPresIndFromByte unpacks CallbackNumPresInd from its wire
// octet.
func CallbackNumPresIndFromByte(b uint8) CallbackNumPresInd {
	return CallbackNumPresInd{
		Presentation: Presentation(b & 0b00000011),
		Screening:    Screening(b & 0b00001100),
	}
}

// Byte packs CallbackNumPresInd back into its wire octet.
func (c CallbackNumPresInd) Byte() uint8 {
	return uint8(c.Presentation) | uint8(c.Screening)
}

// Presentation is callback_num_pres_ind bits 0-1.
type Presentation uint8

const (
	PresentationAllowed      Presentation = 0b00000000
	PresentationRestricted   Presentation = 0b00000001
	PresentationNotAvailable Presentation = 0b00000010
)

// Screening is callback_num_pres_ind bits 2-3.
type Screening uint8

const (
	ScreeningNotScreened       Screening = 0b00000000
	ScreeningVerifiedAndPassed Screening = 0b00000100
	ScreeningVerifiedAndFailed Screening = 0b00001000
	ScreeningNetworkProvided   Screening = 0b00001100
)

// PriorityFlag is stored as a raw octet (spec.md §9: "the priority-flag
// octet is defined differently per network family... the source stores it
// as a raw u8 with helper enums per family"). Interpret it through one of
// the PriorityFlagGSM*/IS95/ANSI* helpers below depending on which network the
// session belongs to; there is no single canonical enum.
type PriorityFlag uint8

// PriorityFlagGSMSMS interprets PriorityFlag for the GSM (SMS) family.
type PriorityFlagGSMSMS uint8

const (
	PriorityFlagGSMSMSNone    PriorityFlagGSMSMS = 0
	PriorityFlagGSMSMSLevel1  PriorityFlagGSMSMS = 1
	PriorityFlagGSMSMSLevel2  PriorityFlagGSMSMS = 2
	PriorityFlagGSMSMSLevel3  PriorityFlagGSMSMS = 3
)

// PriorityFlagGSMCBS interprets PriorityFlag for the GSM (CBS) family.
type PriorityFlagGSMCBS uint8

const (
	PriorityFlagGSMCBSNormal     PriorityFlagGSMCBS = 0
	PriorityFlagGSMCBSImmediate  PriorityFlagGSMCBS = 1
	PriorityFlagGSMCBSHigh       PriorityFlagGSMCBS = 2
	PriorityFlagGSMCBSRotating   PriorityFlagGSMCBS = 3
)

// PriorityFlagANSI136 interprets PriorityFlag for the ANSI-136 family.
type PriorityFlagANSI136 uint8

const (
	PriorityFlagANSI136Bulk     PriorityFlagANSI136 = 0
	PriorityFlagANSI136Normal   PriorityFlagANSI136 = 1
	PriorityFlagANSI136Urgent   PriorityFlagANSI136 = 2
	PriorityFlagANSI136VeryUrgent PriorityFlagANSI136 = 3
)

// PriorityFlagIS95 interprets PriorityFlag for the IS-95 family.
type PriorityFlagIS95 uint8

const (
	PriorityFlagIS95Normal     PriorityFlagIS95 = 0
	PriorityFlagIS95Interactive PriorityFlagIS95 = 1
	PriorityFlagIS95Urgent      PriorityFlagIS95 = 2
	PriorityFlagIS95Emergency   PriorityFlagIS95 = 3
)

// PriorityFlagANSI41CBS interprets PriorityFlag for the ANSI-41 CBS
// family.
type PriorityFlagANSI41CBS uint8

const (
	PriorityFlagANSI41CBSNormal    PriorityFlagANSI41CBS = 0
	PriorityFlagANSI41CBSInteractive PriorityFlagANSI41CBS = 1
	PriorityFlagANSI41CBSUrgent     PriorityFlagANSI41CBS = 2
	PriorityFlagANSI41CBSEmergency  PriorityFlagANSI41CBS = 3
)
