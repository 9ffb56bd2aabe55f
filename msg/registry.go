package msg

// registry maps every ordinal to the shape that represents it on the
// wire. Many ordinals share a shape, mirroring the original source's
// own struct reuse (one wire record serving many message types); see
// shapes.go.
var registry = map[Ordinal]func() Message{
	AssignToDIFRequest:                     func() Message { return &ShapeAssignToDIF{} },
	AssignToDIFResponse:                    func() Message { return &ShapeResult{} },
	UpdateDIFConfigRequest:                 func() Message { return &ShapeAssignToDIF{} },
	UpdateDIFConfigResponse:                func() Message { return &ShapeResult{} },
	IPCProcessDIFRegistrationNotification:  func() Message { return &ShapeTwoNames{} },
	IPCProcessDIFUnregistrationNotification: func() Message { return &ShapeTwoNames{} },
	AllocateFlowRequest:                    func() Message { return &ShapeFlowRequest{} },
	AllocateFlowRequestArrived:             func() Message { return &ShapeFlowRequest{} },
	AllocateFlowRequestResult:              func() Message { return &ShapePortResult{} },
	AllocateFlowResponse:                   func() Message { return &ShapePortResult{} },
	DeallocateFlowRequest:                  func() Message { return &ShapePortResult{} },
	FlowDeallocatedNotification:            func() Message { return &ShapeFlowDeallocNotif{} },
	RegisterApplicationRequest:             func() Message { return &ShapeTwoNames{} },
	RegisterApplicationResponse:            func() Message { return &ShapeResult{} },
	UnregisterApplicationRequest:           func() Message { return &ShapeTwoNames{} },
	UnregisterApplicationResponse:          func() Message { return &ShapeResult{} },
	QueryRIBRequest:                        func() Message { return &ShapeQueryRIBRequest{} },
	QueryRIBResponse:                       func() Message { return &ShapeQueryRIBResponse{} },
	RMTModifyFTERequest:                    func() Message { return &ShapeRMTModifyFTRequest{} },
	RMTDumpFTRequest:                       func() Message { return &ShapeEmpty{} },
	RMTDumpFTReply:                         func() Message { return &ShapeRMTDumpFTReply{} },
	ConnCreateRequest:                      func() Message { return &ShapeConnCreate{} },
	ConnCreateResponse:                     func() Message { return &ShapePortResult{} },
	ConnCreateArrived:                      func() Message { return &ShapeConnCreate{} },
	ConnCreateResult:                       func() Message { return &ShapePortResult{} },
	ConnUpdateRequest:                      func() Message { return &ShapeConnCreate{} },
	ConnUpdateResult:                       func() Message { return &ShapePortResult{} },
	ConnDestroyRequest:                     func() Message { return &ShapePortResult{} },
	ConnDestroyResult:                      func() Message { return &ShapePortResult{} },
	SetPolicySetParamRequest:               func() Message { return &ShapePolicySetParam{} },
	SetPolicySetParamResponse:              func() Message { return &ShapeResult{} },
	SelectPolicySetRequest:                 func() Message { return &ShapeSelectPolicySet{} },
	SelectPolicySetResponse:                func() Message { return &ShapeResult{} },
	UpdateCryptoStateRequest:               func() Message { return &ShapeCryptoState{} },
	UpdateCryptoStateResponse:              func() Message { return &ShapeResult{} },
	AddressChangeRequest:                   func() Message { return &ShapeAddressChange{} },
	AllocatePortRequest:                    func() Message { return &ShapeAllocatePort{} },
	AllocatePortResponse:                   func() Message { return &ShapeAllocatePort{} },
	DeallocatePortRequest:                  func() Message { return &ShapePortResult{} },
	DeallocatePortResponse:                 func() Message { return &ShapeResult{} },
	ManagementSDUWriteRequest:              func() Message { return &ShapeManagementSDU{} },
	ManagementSDUWriteResponse:             func() Message { return &ShapeResult{} },
	ManagementSDUReadNotif:                 func() Message { return &ShapeManagementSDU{} },
	CreateIPCPRequest:                      func() Message { return &ShapeCreateIPCP{} },
	CreateIPCPResponse:                     func() Message { return &ShapeResult{} },
	DestroyIPCPRequest:                     func() Message { return &ShapeIPCPIDResult{} },
	DestroyIPCPResponse:                    func() Message { return &ShapeResult{} },
	EnrollToDIFRequest:                     func() Message { return &ShapeTwoNames{} },
	EnrollToDIFResponse:                    func() Message { return &ShapeEnrollResponse{} },
	DisconnectFromNeighborRequest:          func() Message { return &ShapeName{} },
	DisconnectFromNeighborResponse:         func() Message { return &ShapeResult{} },
	IPCProcessInitialized:                  func() Message { return &ShapeName{} },
	AppAllocateFlowRequest:                 func() Message { return &ShapeFlowRequest{} },
	AppAllocateFlowRequestResult:           func() Message { return &ShapePortResult{} },
	AppAllocateFlowRequestArrived:          func() Message { return &ShapeFlowRequest{} },
	AppAllocateFlowResponse:                func() Message { return &ShapePortResult{} },
	AppDeallocateFlowRequest:               func() Message { return &ShapePortResult{} },
	AppFlowDeallocatedNotification:         func() Message { return &ShapeFlowDeallocNotif{} },
	AppRegisterApplicationRequest:          func() Message { return &ShapeTwoNames{} },
	AppRegisterApplicationResponse:         func() Message { return &ShapeResult{} },
	AppUnregisterApplicationRequest:        func() Message { return &ShapeTwoNames{} },
	AppUnregisterApplicationResponse:       func() Message { return &ShapeResult{} },
	AppApplicationRegistrationCanceledNotification: func() Message { return &ShapeTwoNames{} },
	AppGetDIFPropertiesRequest:                     func() Message { return &ShapeTwoNames{} },
	AppGetDIFPropertiesResponse:                    func() Message { return &ShapeGetDIFPropertiesResponse{} },
	PluginLoadRequest:                              func() Message { return &ShapePluginLoad{} },
	PluginLoadResponse:                             func() Message { return &ShapeResult{} },
	FwdCDAPMsgRequest:                              func() Message { return &ShapeCDAPFwd{} },
	FwdCDAPMsgResponse:                             func() Message { return &ShapeCDAPFwd{} },
	MediaReportOrdinal:                             func() Message { return &ShapeMediaReport{} },
	FinalizeRequest:                                func() Message { return &ShapeEmpty{} },
	ConnModifyRequest:                              func() Message { return &ShapeConnCreate{} },
	ScanMediaRequest:                               func() Message { return &ShapeEmpty{} },
}
