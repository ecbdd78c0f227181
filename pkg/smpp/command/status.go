// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package command

import "strconv"

// Status is the four-byte command_status field. Zero means success;
// everything else is an mc- or ESME-reported error code.
type Status uint32

// SMPP command status set.
const (
	StatusOK              Status = 0x00000000
	StatusInvMsgLen       Status = 0x00000001
	StatusInvCmdLen       Status = 0x00000002
	StatusInvCmdID        Status = 0x00000003
	StatusInvBnd          Status = 0x00000004
	StatusAlyBnd          Status = 0x00000005
	StatusInvPrtFlg       Status = 0x00000006
	StatusInvRegDlvFlg    Status = 0x00000007
	StatusSysErr          Status = 0x00000008
	StatusInvSrcAdr       Status = 0x0000000A
	StatusInvDstAdr       Status = 0x0000000B
	StatusInvMsgID        Status = 0x0000000C
	StatusBindFail        Status = 0x0000000D
	StatusInvPaswd        Status = 0x0000000E
	StatusInvSysID        Status = 0x0000000F
	StatusCancelFail      Status = 0x00000011
	StatusReplaceFail     Status = 0x00000013
	StatusMsgQFul         Status = 0x00000014
	StatusInvSerTyp       Status = 0x00000015
	StatusInvNumDe        Status = 0x00000033
	StatusInvDLName       Status = 0x00000034
	StatusInvDestFlag     Status = 0x00000040
	StatusInvSubRep       Status = 0x00000042
	StatusInvEsmClass     Status = 0x00000043
	StatusCntSubDL        Status = 0x00000044
	StatusSubmitFail      Status = 0x00000045
	StatusInvSrcTON       Status = 0x00000048
	StatusInvSrcNPI       Status = 0x00000049
	StatusInvDstTON       Status = 0x00000050
	StatusInvDstNPI       Status = 0x00000051
	StatusInvSysTyp       Status = 0x00000053
	StatusInvRepFlag      Status = 0x00000054
	StatusInvNumMsgs      Status = 0x00000055
	StatusThrottled       Status = 0x00000058
	StatusInvSched        Status = 0x00000061
	StatusInvExpiry       Status = 0x00000062
	StatusInvDftMsgID     Status = 0x00000063
	StatusTempAppErr      Status = 0x00000064
	StatusPermAppErr      Status = 0x00000065
	StatusRejeAppErr      Status = 0x00000066
	StatusQueryFail       Status = 0x00000067
	StatusInvOptParStream Status = 0x000000C0
	StatusOptParNotAllwd  Status = 0x000000C1
	StatusInvParLen       Status = 0x000000C2
	StatusMissingOptParam Status = 0x000000C3
	StatusInvOptParamVal  Status = 0x000000C4
	StatusDeliveryFailure Status = 0x000000FE
	StatusUnknownErr      Status = 0x000000FF

	// SMPP v5.0 additions (broadcast family).
	StatusQueryFailBcast     Status = 0x00000110
	StatusInvTranNetworkID   Status = 0x00000112
	StatusInvMappingDestaddr Status = 0x00000114
)

var statusNames = map[Status]string{
	StatusOK:                 "ok",
	StatusInvMsgLen:          "invalid_message_length",
	StatusInvCmdLen:          "invalid_command_length",
	StatusInvCmdID:           "invalid_command_id",
	StatusInvBnd:             "incorrect_bind_status",
	StatusAlyBnd:             "already_bound",
	StatusInvPrtFlg:          "invalid_priority_flag",
	StatusInvRegDlvFlg:       "invalid_registered_delivery_flag",
	StatusSysErr:             "system_error",
	StatusInvSrcAdr:          "invalid_source_address",
	StatusInvDstAdr:          "invalid_dest_address",
	StatusInvMsgID:           "invalid_message_id",
	StatusBindFail:           "bind_failed",
	StatusInvPaswd:           "invalid_password",
	StatusInvSysID:           "invalid_system_id",
	StatusCancelFail:         "cancel_sm_failed",
	StatusReplaceFail:        "replace_sm_failed",
	StatusMsgQFul:            "message_queue_full",
	StatusInvSerTyp:          "invalid_service_type",
	StatusInvNumDe:           "invalid_number_of_destinations",
	StatusInvDLName:          "invalid_distribution_list_name",
	StatusInvDestFlag:        "invalid_destination_flag",
	StatusInvSubRep:          "invalid_submit_with_replace",
	StatusInvEsmClass:        "invalid_esm_class",
	StatusCntSubDL:           "cannot_submit_to_distribution_list",
	StatusSubmitFail:         "submit_sm_failed",
	StatusInvSrcTON:          "invalid_source_addr_ton",
	StatusInvSrcNPI:          "invalid_source_addr_npi",
	StatusInvDstTON:          "invalid_dest_addr_ton",
	StatusInvDstNPI:          "invalid_dest_addr_npi",
	StatusInvSysTyp:          "invalid_system_type",
	StatusInvRepFlag:         "invalid_replace_if_present_flag",
	StatusInvNumMsgs:         "invalid_number_of_messages",
	StatusThrottled:          "throttling_error",
	StatusInvSched:           "invalid_schedule_delivery_time",
	StatusInvExpiry:          "invalid_validity_period",
	StatusInvDftMsgID:        "predefined_message_not_found",
	StatusTempAppErr:         "temporary_app_error",
	StatusPermAppErr:         "permanent_app_error",
	StatusRejeAppErr:         "rejected_app_error",
	StatusQueryFail:          "query_sm_failed",
	StatusInvOptParStream:    "invalid_optional_param_stream",
	StatusOptParNotAllwd:     "optional_param_not_allowed",
	StatusInvParLen:          "invalid_param_length",
	StatusMissingOptParam:    "missing_mandatory_optional_param",
	StatusInvOptParamVal:     "invalid_optional_param_value",
	StatusDeliveryFailure:    "delivery_failure",
	StatusUnknownErr:         "unknown_error",
	StatusQueryFailBcast:     "query_broadcast_sm_failed",
	StatusInvTranNetworkID:   "invalid_transaction_network_id",
	StatusInvMappingDestaddr: "invalid_mapping_dest_addr",
}

// String renders the known status name, or "status(0x...)" for anything
// outside the table above.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "status(0x" + strconv.FormatUint(uint64(s), 16) + ")"
}

// OK reports whether s is the success status.
func (s Status) OK() bool { return s == StatusOK }
