// Package msg implements the control-message codec: the tagged-union
// record types exchanged across the interconnect, their sub-object
// composition, and the table-driven walker that serializes,
// deserializes, measures and deep-frees any variant.
package msg

// Ordinal is the wire discriminator carried in every message
// envelope's type field. The declared order and numeric values below
// mirror the msg_type_t enum of the original kernel headers; ordinals
// are not renumbered or reordered so that RINA_C_MIN/RINA_C_MAX style
// range checks keep their original meaning.
type Ordinal uint16

const (
	Min Ordinal = iota // unused sentinel, mirrors RINA_C_MIN

	AssignToDIFRequest
	AssignToDIFResponse
	UpdateDIFConfigRequest
	UpdateDIFConfigResponse
	IPCProcessDIFRegistrationNotification
	IPCProcessDIFUnregistrationNotification
	AllocateFlowRequest
	AllocateFlowRequestArrived
	AllocateFlowRequestResult
	AllocateFlowResponse
	DeallocateFlowRequest
	FlowDeallocatedNotification
	RegisterApplicationRequest
	RegisterApplicationResponse
	UnregisterApplicationRequest
	UnregisterApplicationResponse
	QueryRIBRequest
	QueryRIBResponse
	RMTModifyFTERequest
	RMTDumpFTRequest
	RMTDumpFTReply
	ConnCreateRequest
	ConnCreateResponse
	ConnCreateArrived
	ConnCreateResult
	ConnUpdateRequest
	ConnUpdateResult
	ConnDestroyRequest
	ConnDestroyResult
	SetPolicySetParamRequest
	SetPolicySetParamResponse
	SelectPolicySetRequest
	SelectPolicySetResponse
	UpdateCryptoStateRequest
	UpdateCryptoStateResponse
	AddressChangeRequest
	AllocatePortRequest
	AllocatePortResponse
	DeallocatePortRequest
	DeallocatePortResponse
	ManagementSDUWriteRequest
	ManagementSDUWriteResponse
	ManagementSDUReadNotif
	CreateIPCPRequest
	CreateIPCPResponse
	DestroyIPCPRequest
	DestroyIPCPResponse
	EnrollToDIFRequest
	EnrollToDIFResponse
	DisconnectFromNeighborRequest
	DisconnectFromNeighborResponse
	IPCProcessInitialized
	AppAllocateFlowRequest
	AppAllocateFlowRequestResult
	AppAllocateFlowRequestArrived
	AppAllocateFlowResponse
	AppDeallocateFlowRequest
	AppFlowDeallocatedNotification
	AppRegisterApplicationRequest
	AppRegisterApplicationResponse
	AppUnregisterApplicationRequest
	AppUnregisterApplicationResponse
	AppApplicationRegistrationCanceledNotification
	AppGetDIFPropertiesRequest
	AppGetDIFPropertiesResponse
	PluginLoadRequest
	PluginLoadResponse
	FwdCDAPMsgRequest
	FwdCDAPMsgResponse
	MediaReportOrdinal
	FinalizeRequest
	ConnModifyRequest
	ScanMediaRequest

	Max // unused sentinel, mirrors RINA_C_MAX
)

var ordinalNames = [...]string{
	Min:                                    "MIN",
	AssignToDIFRequest:                     "ASSIGN_TO_DIF_REQUEST",
	AssignToDIFResponse:                    "ASSIGN_TO_DIF_RESPONSE",
	UpdateDIFConfigRequest:                 "UPDATE_DIF_CONFIG_REQUEST",
	UpdateDIFConfigResponse:                "UPDATE_DIF_CONFIG_RESPONSE",
	IPCProcessDIFRegistrationNotification:  "IPC_PROCESS_DIF_REGISTRATION_NOTIFICATION",
	IPCProcessDIFUnregistrationNotification: "IPC_PROCESS_DIF_UNREGISTRATION_NOTIFICATION",
	AllocateFlowRequest:                    "ALLOCATE_FLOW_REQUEST",
	AllocateFlowRequestArrived:             "ALLOCATE_FLOW_REQUEST_ARRIVED",
	AllocateFlowRequestResult:              "ALLOCATE_FLOW_REQUEST_RESULT",
	AllocateFlowResponse:                   "ALLOCATE_FLOW_RESPONSE",
	DeallocateFlowRequest:                  "DEALLOCATE_FLOW_REQUEST",
	FlowDeallocatedNotification:            "FLOW_DEALLOCATED_NOTIFICATION",
	RegisterApplicationRequest:             "REGISTER_APPLICATION_REQUEST",
	RegisterApplicationResponse:            "REGISTER_APPLICATION_RESPONSE",
	UnregisterApplicationRequest:           "UNREGISTER_APPLICATION_REQUEST",
	UnregisterApplicationResponse:          "UNREGISTER_APPLICATION_RESPONSE",
	QueryRIBRequest:                        "QUERY_RIB_REQUEST",
	QueryRIBResponse:                       "QUERY_RIB_RESPONSE",
	RMTModifyFTERequest:                    "RMT_MODIFY_FTE_REQUEST",
	RMTDumpFTRequest:                       "RMT_DUMP_FT_REQUEST",
	RMTDumpFTReply:                         "RMT_DUMP_FT_REPLY",
	ConnCreateRequest:                      "IPCP_CONN_CREATE_REQUEST",
	ConnCreateResponse:                     "IPCP_CONN_CREATE_RESPONSE",
	ConnCreateArrived:                      "IPCP_CONN_CREATE_ARRIVED",
	ConnCreateResult:                       "IPCP_CONN_CREATE_RESULT",
	ConnUpdateRequest:                      "IPCP_CONN_UPDATE_REQUEST",
	ConnUpdateResult:                       "IPCP_CONN_UPDATE_RESULT",
	ConnDestroyRequest:                     "IPCP_CONN_DESTROY_REQUEST",
	ConnDestroyResult:                      "IPCP_CONN_DESTROY_RESULT",
	SetPolicySetParamRequest:               "IPCP_SET_POLICY_SET_PARAM_REQUEST",
	SetPolicySetParamResponse:              "IPCP_SET_POLICY_SET_PARAM_RESPONSE",
	SelectPolicySetRequest:                 "IPCP_SELECT_POLICY_SET_REQUEST",
	SelectPolicySetResponse:                "IPCP_SELECT_POLICY_SET_RESPONSE",
	UpdateCryptoStateRequest:               "IPCP_UPDATE_CRYPTO_STATE_REQUEST",
	UpdateCryptoStateResponse:              "IPCP_UPDATE_CRYPTO_STATE_RESPONSE",
	AddressChangeRequest:                   "IPCP_ADDRESS_CHANGE_REQUEST",
	AllocatePortRequest:                    "IPCP_ALLOCATE_PORT_REQUEST",
	AllocatePortResponse:                   "IPCP_ALLOCATE_PORT_RESPONSE",
	DeallocatePortRequest:                  "IPCP_DEALLOCATE_PORT_REQUEST",
	DeallocatePortResponse:                 "IPCP_DEALLOCATE_PORT_RESPONSE",
	ManagementSDUWriteRequest:              "IPCP_MANAGEMENT_SDU_WRITE_REQUEST",
	ManagementSDUWriteResponse:             "IPCP_MANAGEMENT_SDU_WRITE_RESPONSE",
	ManagementSDUReadNotif:                 "IPCP_MANAGEMENT_SDU_READ_NOTIF",
	CreateIPCPRequest:                      "CREATE_IPCP_REQUEST",
	CreateIPCPResponse:                     "CREATE_IPCP_RESPONSE",
	DestroyIPCPRequest:                     "DESTROY_IPCP_REQUEST",
	DestroyIPCPResponse:                    "DESTROY_IPCP_RESPONSE",
	EnrollToDIFRequest:                     "ENROLL_TO_DIF_REQUEST",
	EnrollToDIFResponse:                    "ENROLL_TO_DIF_RESPONSE",
	DisconnectFromNeighborRequest:          "DISCONNECT_FROM_NEIGHBOR_REQUEST",
	DisconnectFromNeighborResponse:         "DISCONNECT_FROM_NEIGHBOR_RESPONSE",
	IPCProcessInitialized:                  "IPC_PROCESS_INITIALIZED",
	AppAllocateFlowRequest:                 "APP_ALLOCATE_FLOW_REQUEST",
	AppAllocateFlowRequestResult:           "APP_ALLOCATE_FLOW_REQUEST_RESULT",
	AppAllocateFlowRequestArrived:          "APP_ALLOCATE_FLOW_REQUEST_ARRIVED",
	AppAllocateFlowResponse:                "APP_ALLOCATE_FLOW_RESPONSE",
	AppDeallocateFlowRequest:               "APP_DEALLOCATE_FLOW_REQUEST",
	AppFlowDeallocatedNotification:         "APP_FLOW_DEALLOCATED_NOTIFICATION",
	AppRegisterApplicationRequest:          "APP_REGISTER_APPLICATION_REQUEST",
	AppRegisterApplicationResponse:         "APP_REGISTER_APPLICATION_RESPONSE",
	AppUnregisterApplicationRequest:        "APP_UNREGISTER_APPLICATION_REQUEST",
	AppUnregisterApplicationResponse:       "APP_UNREGISTER_APPLICATION_RESPONSE",
	AppApplicationRegistrationCanceledNotification: "APP_APPLICATION_REGISTRATION_CANCELED_NOTIFICATION",
	AppGetDIFPropertiesRequest:                     "APP_GET_DIF_PROPERTIES_REQUEST",
	AppGetDIFPropertiesResponse:                    "APP_GET_DIF_PROPERTIES_RESPONSE",
	PluginLoadRequest:                              "IPCM_PLUGIN_LOAD_REQUEST",
	PluginLoadResponse:                             "IPCM_PLUGIN_LOAD_RESPONSE",
	FwdCDAPMsgRequest:                              "IPCM_FWD_CDAP_MSG_REQUEST",
	FwdCDAPMsgResponse:                             "IPCM_FWD_CDAP_MSG_RESPONSE",
	MediaReportOrdinal:                              "IPCM_MEDIA_REPORT",
	FinalizeRequest:                                "IPCM_FINALIZE_REQUEST",
	ConnModifyRequest:                              "IPCP_CONN_MODIFY_REQUEST",
	ScanMediaRequest:                               "IPCM_SCAN_MEDIA_REQUEST",
	Max:                                            "MAX",
}

func (o Ordinal) String() string {
	if int(o) < len(ordinalNames) && ordinalNames[o] != "" {
		return ordinalNames[o]
	}
	return "ORDINAL(?)"
}

// Valid reports whether o names a real message type. This is the
// corrected form of irati_handler_register's range check: the
// original source wrote `msg_type <= MIN && msg_type >= MAX`, which
// is never true for any value, silently accepting every registration
// attempt including out-of-range ones. The intended check rejects
// ordinals at or outside the sentinel bounds.
func (o Ordinal) Valid() bool {
	return o > Min && o < Max
}
