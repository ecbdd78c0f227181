// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package smpptest provides fixtures shared by the rest of pkg/smpp's test
// suites. TestCommands mirrors rusmpp-core's TestInstance-driven
// test_commands helper (original_source/rusmpp-core/src/tests/owned.go,
// consumed by framez/tests.rs's encode_decode test): one representative
// Command per known command-id, used to round-trip the whole command set
// through a single encode/decode or frame/deframe pass instead of
// hand-writing one fixture per test file.
package smpptest

import (
	"github.com/absmach/smpp/pkg/smpp/command"
	"github.com/absmach/smpp/pkg/smpp/pdu"
	"github.com/absmach/smpp/pkg/smpp/tlv"
	"github.com/absmach/smpp/pkg/smpp/values"
)

// TestCommands returns one representative Command per command-id
// command.go's bodyTypes registry knows about. Fields hold sample values;
// several mandatory fields are left zero or empty, and several bodies that
// can carry TLVs are built without any.
func TestCommands() []command.Command {
	seq := uint32(0)
	next := func() uint32 {
		seq++
		return seq
	}

	addr := func(ton values.Ton, npi values.Npi, digits string) pdu.Address {
		return pdu.Address{Ton: ton, Npi: npi, Addr: []byte(digits)}
	}

	bind := pdu.Bind{
		SystemID: []byte("SMPP3TEST"), Password: []byte("secret08"), SystemType: []byte("SUBMIT1"),
		InterfaceVersion: values.InterfaceVersionSmpp50, AddrTon: values.Ton(1), AddrNpi: values.Npi(1),
		AddressRange: []byte(""),
	}
	bindResp := pdu.BindResp{
		SystemID: []byte("SMSCSIM"),
		Tlvs:     []tlv.TLV{{Tag: tlv.TagScInterfaceVersion, Value: []byte{0x50}}},
	}

	ssm := pdu.SSm{
		ServiceType:          []byte(""),
		SourceAddr:           addr(values.Ton(1), values.Npi(1), "12345"),
		DestAddr:             addr(values.Ton(1), values.Npi(1), "67890"),
		EsmClass:             values.EsmClassFromByte(0),
		ProtocolID:           0,
		PriorityFlag:         values.PriorityFlag(1),
		ScheduleDeliveryTime: []byte(""),
		ValidityPeriod:       []byte(""),
		RegisteredDelivery:   values.RegisteredDeliveryFromByte(1),
		ReplaceIfPresentFlag: values.ReplaceIfPresentFlag(0),
		DataCoding:           values.DataCoding(0),
		SmDefaultMsgID:       0,
		ShortMessage:         []byte("Hello, world"),
	}

	msgIDResp := func(id string) pdu.SubmitOrDataSmResp {
		return pdu.SubmitOrDataSmResp{MessageID: []byte(id)}
	}

	cmds := []command.Command{
		{ID: command.IDGenericNack, Status: command.StatusInvCmdID, Seq: next(), Body: pdu.Empty{}},

		{ID: command.IDBindReceiver, Status: command.StatusOK, Seq: next(), Body: bind},
		{ID: command.IDBindReceiverResp, Status: command.StatusOK, Seq: next(), Body: bindResp},
		{ID: command.IDBindTransmitter, Status: command.StatusOK, Seq: next(), Body: bind},
		{ID: command.IDBindTransmitterResp, Status: command.StatusOK, Seq: next(), Body: bindResp},
		{ID: command.IDBindTransceiver, Status: command.StatusOK, Seq: next(), Body: bind},
		{ID: command.IDBindTransceiverResp, Status: command.StatusOK, Seq: next(), Body: bindResp},
		{ID: command.IDOutbind, Status: command.StatusOK, Seq: next(), Body: pdu.Outbind{
			SystemID: []byte("SMSCSIM"), Password: []byte("secret08"),
		}},
		{ID: command.IDUnbind, Status: command.StatusOK, Seq: next(), Body: pdu.Empty{}},
		{ID: command.IDUnbindResp, Status: command.StatusOK, Seq: next(), Body: pdu.Empty{}},
		{ID: command.IDEnquireLink, Status: command.StatusOK, Seq: next(), Body: pdu.Empty{}},
		{ID: command.IDEnquireLinkResp, Status: command.StatusOK, Seq: next(), Body: pdu.Empty{}},

		{ID: command.IDSubmitSm, Status: command.StatusOK, Seq: next(), Body: pdu.SubmitSm{Ssm: ssm}},
		{ID: command.IDSubmitSmResp, Status: command.StatusOK, Seq: next(), Body: msgIDResp("msg-0001")},
		{ID: command.IDDeliverSm, Status: command.StatusOK, Seq: next(), Body: pdu.DeliverSm{Ssm: ssm}},
		{ID: command.IDDeliverSmResp, Status: command.StatusOK, Seq: next(), Body: pdu.DeliverSmResp{MessageID: []byte("")}},
		{ID: command.IDDataSm, Status: command.StatusOK, Seq: next(), Body: pdu.DataSm{
			ServiceType:        []byte(""),
			SourceAddr:         addr(values.Ton(1), values.Npi(1), "12345"),
			DestAddr:           addr(values.Ton(1), values.Npi(1), "67890"),
			EsmClass:           values.EsmClassFromByte(0),
			RegisteredDelivery: values.RegisteredDeliveryFromByte(0),
			DataCoding:         values.DataCoding(0),
			Tlvs:               []tlv.TLV{{Tag: tlv.TagMessagePayload, Value: []byte("Hello")}},
		}},
		{ID: command.IDDataSmResp, Status: command.StatusOK, Seq: next(), Body: msgIDResp("msg-0002")},

		{ID: command.IDSubmitMulti, Status: command.StatusOK, Seq: next(), Body: pdu.SubmitMulti{
			ServiceType: []byte(""),
			SourceAddr:  addr(values.Ton(1), values.Npi(1), "12345"),
			DestAddresses: []values.DestAddress{
				{Flag: values.DestFlagSmeAddress, Ton: values.Ton(1), Npi: values.Npi(1), Addr: []byte("1111")},
				{Flag: values.DestFlagDistributionList, DlName: []byte("list1")},
			},
			EsmClass:             values.EsmClassFromByte(0),
			ProtocolID:           0,
			PriorityFlag:         values.PriorityFlag(0),
			ScheduleDeliveryTime: []byte(""),
			ValidityPeriod:       []byte(""),
			RegisteredDelivery:   values.RegisteredDeliveryFromByte(0),
			ReplaceIfPresentFlag: values.ReplaceIfPresentFlag(0),
			DataCoding:           values.DataCoding(0),
			SmDefaultMsgID:       0,
			ShortMessage:         []byte("Multi"),
		}},
		{ID: command.IDSubmitMultiResp, Status: command.StatusOK, Seq: next(), Body: pdu.SubmitMultiResp{
			MessageID: []byte("msg-0003"),
			UnsuccessSme: []values.UnsuccessSme{
				{Ton: values.Ton(1), Npi: values.Npi(1), Addr: []byte("1111"), ErrorCode: 11},
			},
			Tlvs: []tlv.TLV{{Tag: tlv.TagScInterfaceVersion, Value: []byte{0x50}}},
		}},

		{ID: command.IDQuerySm, Status: command.StatusOK, Seq: next(), Body: pdu.QuerySm{
			MessageID: []byte("msg-0001"), SourceAddrTon: values.Ton(1), SourceAddrNpi: values.Npi(1),
			SourceAddr: []byte("12345"),
		}},
		{ID: command.IDQuerySmResp, Status: command.StatusOK, Seq: next(), Body: pdu.QuerySmResp{
			MessageID: []byte("msg-0001"), FinalDate: []byte(""),
			MessageState: values.MessageStateDelivered, ErrorCode: 0,
		}},
		{ID: command.IDCancelSm, Status: command.StatusOK, Seq: next(), Body: pdu.CancelSm{
			ServiceType: []byte(""), MessageID: []byte("msg-0001"),
			SourceAddr: addr(values.Ton(1), values.Npi(1), "12345"),
			DestAddr:   addr(values.Ton(1), values.Npi(1), "67890"),
		}},
		{ID: command.IDCancelSmResp, Status: command.StatusOK, Seq: next(), Body: pdu.Empty{}},
		{ID: command.IDReplaceSm, Status: command.StatusOK, Seq: next(), Body: pdu.ReplaceSm{
			MessageID: []byte("msg-0001"), SourceAddrTon: values.Ton(1), SourceAddrNpi: values.Npi(1),
			SourceAddr: []byte("12345"), ScheduleDeliveryTime: []byte(""), ValidityPeriod: []byte(""),
			RegisteredDelivery: values.RegisteredDeliveryFromByte(1), SmDefaultMsgID: 0,
			ShortMessage: []byte("Replaced"),
		}},
		{ID: command.IDReplaceSmResp, Status: command.StatusOK, Seq: next(), Body: pdu.Empty{}},

		{ID: command.IDAlertNotification, Status: command.StatusOK, Seq: next(), Body: pdu.AlertNotification{
			SourceAddrTon: values.Ton(1), SourceAddrNpi: values.Npi(1), SourceAddr: []byte("12345"),
			EsmeAddrTon: values.Ton(1), EsmeAddrNpi: values.Npi(1), EsmeAddr: []byte("67890"),
		}},

		{ID: command.IDBroadcastSm, Status: command.StatusOK, Seq: next(), Body: pdu.BroadcastSm{
			ServiceType: []byte(""), SourceAddr: addr(values.Ton(1), values.Npi(1), "12345"),
			MessageID: []byte("msg-0004"), PriorityFlag: values.PriorityFlag(1),
			ScheduleDeliveryTime: []byte(""), ValidityPeriod: []byte(""),
			ReplaceIfPresentFlag: values.ReplaceIfPresentFlag(0), DataCoding: values.DataCoding(0),
			SmDefaultMsgID: 0,
			Tlvs: []tlv.TLV{{Tag: tlv.TagMessagePayload, Value: []byte("Broadcast text")}},
		}},
		{ID: command.IDBroadcastSmResp, Status: command.StatusOK, Seq: next(), Body: pdu.BroadcastSmResp{
			MessageID: []byte("msg-0004"),
		}},
		{ID: command.IDQueryBroadcastSm, Status: command.StatusOK, Seq: next(), Body: pdu.QueryBroadcastSm{
			MessageID: []byte("msg-0004"), SourceAddrTon: values.Ton(1), SourceAddrNpi: values.Npi(1),
			SourceAddr: []byte("12345"),
		}},
		{ID: command.IDQueryBroadcastSmResp, Status: command.StatusOK, Seq: next(), Body: pdu.QueryBroadcastSmResp{
			MessageID: []byte("msg-0004"),
			Tlvs:      []tlv.TLV{{Tag: tlv.TagMessageState, Value: []byte{byte(values.MessageStateDelivered)}}},
		}},
		{ID: command.IDCancelBroadcastSm, Status: command.StatusOK, Seq: next(), Body: pdu.CancelBroadcastSm{
			ServiceType: []byte(""), MessageID: []byte("msg-0004"),
			SourceAddrTon: values.Ton(1), SourceAddrNpi: values.Npi(1), SourceAddr: []byte("12345"),
		}},
		{ID: command.IDCancelBroadcastSmResp, Status: command.StatusOK, Seq: next(), Body: pdu.Empty{}},
	}

	return cmds
}
