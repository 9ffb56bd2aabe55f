package msg

import "github.com/irati-go/ctrlplane/wire"

// The shapes in this file mirror the original source's own struct
// reuse across message ordinals (SPEC_FULL.md's SUPPLEMENTED FEATURES
// note): many distinct ordinals carry an identical in-memory and wire
// shape, so one Go type backs all of them. The registry in
// registry.go maps every ordinal to the shape that represents it.

// ShapeEmpty carries nothing beyond the envelope.
type ShapeEmpty struct{ baseMessage }

// ShapeResult carries a single signed result code (scenario A).
type ShapeResult struct {
	baseMessage
	Result int32
}

func (m *ShapeResult) scalarLen() int                  { return 4 }
func (m *ShapeResult) encodeScalars(w *wire.Writer)      { w.I32(m.Result) }
func (m *ShapeResult) decodeScalars(r *wire.Reader) error {
	v, err := r.I32()
	m.Result = v
	return err
}

// ShapeName carries a single Name sub-object (scenario B).
type ShapeName struct {
	baseMessage
	Nm *Name
}

func (m *ShapeName) nameSlots() []**Name { return []**Name{&m.Nm} }

// ShapeNameResult carries a Name plus a result code.
type ShapeNameResult struct {
	baseMessage
	Nm     *Name
	Result int32
}

func (m *ShapeNameResult) scalarLen() int                   { return 4 }
func (m *ShapeNameResult) encodeScalars(w *wire.Writer)      { w.I32(m.Result) }
func (m *ShapeNameResult) decodeScalars(r *wire.Reader) error {
	v, err := r.I32()
	m.Result = v
	return err
}
func (m *ShapeNameResult) nameSlots() []**Name { return []**Name{&m.Nm} }

// ShapeTwoNames carries two Name sub-objects plus one boolean flag
// (e.g. application/DIF name pairs, registration flags).
type ShapeTwoNames struct {
	baseMessage
	First, Second *Name
	Flag          bool
}

func (m *ShapeTwoNames) scalarLen() int                   { return 1 }
func (m *ShapeTwoNames) encodeScalars(w *wire.Writer)      { w.Bool(m.Flag) }
func (m *ShapeTwoNames) decodeScalars(r *wire.Reader) error {
	v, err := r.Bool()
	m.Flag = v
	return err
}
func (m *ShapeTwoNames) nameSlots() []**Name { return []**Name{&m.First, &m.Second} }

// ShapeAssignToDIF carries the DIF name plus its full configuration
// (scenario C).
type ShapeAssignToDIF struct {
	baseMessage
	DIFNm  *Name
	Config *DIFConfig
}

func (m *ShapeAssignToDIF) nameSlots() []**Name           { return []**Name{&m.DIFNm} }
func (m *ShapeAssignToDIF) difConfigSlots() []**DIFConfig { return []**DIFConfig{&m.Config} }

// ShapeFlowRequest carries the source/destination application names,
// the requested QoS, and addressing scalars for an allocation
// request.
type ShapeFlowRequest struct {
	baseMessage
	Source, Dest *Name
	DIFNm        *Name
	Spec         *FlowSpec
	PortID       uint32
	IPCPID       uint16
}

func (m *ShapeFlowRequest) scalarLen() int { return 4 + 2 }
func (m *ShapeFlowRequest) encodeScalars(w *wire.Writer) {
	w.U32(m.PortID)
	w.U16(m.IPCPID)
}
func (m *ShapeFlowRequest) decodeScalars(r *wire.Reader) error {
	var err error
	if m.PortID, err = r.U32(); err != nil {
		return err
	}
	m.IPCPID, err = r.U16()
	return err
}
func (m *ShapeFlowRequest) nameSlots() []**Name         { return []**Name{&m.Source, &m.Dest, &m.DIFNm} }
func (m *ShapeFlowRequest) flowSpecSlots() []**FlowSpec { return []**FlowSpec{&m.Spec} }

// ShapePortResult carries a port id plus a result code — the common
// shape of flow- and connection-lifecycle acknowledgements.
type ShapePortResult struct {
	baseMessage
	PortID uint32
	Result int32
}

func (m *ShapePortResult) scalarLen() int { return 4 + 4 }
func (m *ShapePortResult) encodeScalars(w *wire.Writer) {
	w.U32(m.PortID)
	w.I32(m.Result)
}
func (m *ShapePortResult) decodeScalars(r *wire.Reader) error {
	var err error
	if m.PortID, err = r.U32(); err != nil {
		return err
	}
	m.Result, err = r.I32()
	return err
}

// ShapeFlowDeallocNotif carries the deallocated port and the reason
// code.
type ShapeFlowDeallocNotif struct {
	baseMessage
	PortID uint32
	Code   int32
}

func (m *ShapeFlowDeallocNotif) scalarLen() int { return 4 + 4 }
func (m *ShapeFlowDeallocNotif) encodeScalars(w *wire.Writer) {
	w.U32(m.PortID)
	w.I32(m.Code)
}
func (m *ShapeFlowDeallocNotif) decodeScalars(r *wire.Reader) error {
	var err error
	if m.PortID, err = r.U32(); err != nil {
		return err
	}
	m.Code, err = r.I32()
	return err
}

// ShapeQueryRIBRequest carries the RIB query's object selector.
type ShapeQueryRIBRequest struct {
	baseMessage
	ObjectClass    string
	ObjectName     string
	FilterStr      string
	ObjectInstance uint64
	ScopeLevel     uint32
}

func (m *ShapeQueryRIBRequest) scalarLen() int { return 8 + 4 }
func (m *ShapeQueryRIBRequest) encodeScalars(w *wire.Writer) {
	w.U64(m.ObjectInstance)
	w.U32(m.ScopeLevel)
}
func (m *ShapeQueryRIBRequest) decodeScalars(r *wire.Reader) error {
	var err error
	if m.ObjectInstance, err = r.U64(); err != nil {
		return err
	}
	m.ScopeLevel, err = r.U32()
	return err
}
func (m *ShapeQueryRIBRequest) stringSlots() []*string {
	return []*string{&m.ObjectClass, &m.ObjectName, &m.FilterStr}
}

// ShapeQueryRIBResponse carries the result code and the RIB objects
// retrieved.
type ShapeQueryRIBResponse struct {
	baseMessage
	Result int32
	Resp   *QueryRIBResp
}

func (m *ShapeQueryRIBResponse) scalarLen() int             { return 4 }
func (m *ShapeQueryRIBResponse) encodeScalars(w *wire.Writer) { w.I32(m.Result) }
func (m *ShapeQueryRIBResponse) decodeScalars(r *wire.Reader) error {
	v, err := r.I32()
	m.Result = v
	return err
}
func (m *ShapeQueryRIBResponse) queryRIBRespSlots() []**QueryRIBResp {
	return []**QueryRIBResp{&m.Resp}
}

// ShapeRMTModifyFTRequest carries the forwarding-table edit mode plus
// the entries to apply.
type ShapeRMTModifyFTRequest struct {
	baseMessage
	Mode    uint32
	Entries *PFFEntryList
}

func (m *ShapeRMTModifyFTRequest) scalarLen() int              { return 4 }
func (m *ShapeRMTModifyFTRequest) encodeScalars(w *wire.Writer) { w.U32(m.Mode) }
func (m *ShapeRMTModifyFTRequest) decodeScalars(r *wire.Reader) error {
	v, err := r.U32()
	m.Mode = v
	return err
}
func (m *ShapeRMTModifyFTRequest) pffEntryListSlots() []**PFFEntryList {
	return []**PFFEntryList{&m.Entries}
}

// ShapeRMTDumpFTReply carries the result code plus the current
// forwarding table.
type ShapeRMTDumpFTReply struct {
	baseMessage
	Result  int32
	Entries *PFFEntryList
}

func (m *ShapeRMTDumpFTReply) scalarLen() int              { return 4 }
func (m *ShapeRMTDumpFTReply) encodeScalars(w *wire.Writer) { w.I32(m.Result) }
func (m *ShapeRMTDumpFTReply) decodeScalars(r *wire.Reader) error {
	v, err := r.I32()
	m.Result = v
	return err
}
func (m *ShapeRMTDumpFTReply) pffEntryListSlots() []**PFFEntryList {
	return []**PFFEntryList{&m.Entries}
}

// ShapeConnCreate carries an EFCP connection's addressing scalars and
// its negotiated DTP/DTCP configuration.
type ShapeConnCreate struct {
	baseMessage
	PortID              uint32
	SrcCEPID, DstCEPID  uint32
	QoSID               uint32
	SrcAddr, DstAddr    uint32
	Flags               uint32
	DTP                 *DTPConfig
	DTCP                *DTCPConfig
}

func (m *ShapeConnCreate) scalarLen() int { return 4 * 6 }
func (m *ShapeConnCreate) encodeScalars(w *wire.Writer) {
	w.U32(m.PortID)
	w.U32(m.SrcCEPID)
	w.U32(m.DstCEPID)
	w.U32(m.QoSID)
	w.U32(m.SrcAddr)
	w.U32(m.DstAddr)
}
func (m *ShapeConnCreate) decodeScalars(r *wire.Reader) error {
	var err error
	for _, dst := range []*uint32{&m.PortID, &m.SrcCEPID, &m.DstCEPID, &m.QoSID, &m.SrcAddr, &m.DstAddr} {
		if *dst, err = r.U32(); err != nil {
			return err
		}
	}
	return nil
}
func (m *ShapeConnCreate) dtpConfigSlots() []**DTPConfig   { return []**DTPConfig{&m.DTP} }
func (m *ShapeConnCreate) dtcpConfigSlots() []**DTCPConfig { return []**DTCPConfig{&m.DTCP} }

// ShapePolicySetParam carries a dotted component path, a parameter
// name and value, and a result code.
type ShapePolicySetParam struct {
	baseMessage
	ComponentPath string
	ParamName     string
	ParamValue    string
	Result        int32
}

func (m *ShapePolicySetParam) scalarLen() int              { return 4 }
func (m *ShapePolicySetParam) encodeScalars(w *wire.Writer) { w.I32(m.Result) }
func (m *ShapePolicySetParam) decodeScalars(r *wire.Reader) error {
	v, err := r.I32()
	m.Result = v
	return err
}
func (m *ShapePolicySetParam) stringSlots() []*string {
	return []*string{&m.ComponentPath, &m.ParamName, &m.ParamValue}
}

// ShapeSelectPolicySet carries a component path, the policy-set name
// to install, and a result code.
type ShapeSelectPolicySet struct {
	baseMessage
	ComponentPath string
	PolicySetName string
	Result        int32
}

func (m *ShapeSelectPolicySet) scalarLen() int              { return 4 }
func (m *ShapeSelectPolicySet) encodeScalars(w *wire.Writer) { w.I32(m.Result) }
func (m *ShapeSelectPolicySet) decodeScalars(r *wire.Reader) error {
	v, err := r.I32()
	m.Result = v
	return err
}
func (m *ShapeSelectPolicySet) stringSlots() []*string {
	return []*string{&m.ComponentPath, &m.PolicySetName}
}

// ShapeCryptoState carries a port id and the SDU-protection crypto
// state to install for it.
type ShapeCryptoState struct {
	baseMessage
	PortID uint32
	State  *SDUPCryptoState
}

func (m *ShapeCryptoState) scalarLen() int              { return 4 }
func (m *ShapeCryptoState) encodeScalars(w *wire.Writer) { w.U32(m.PortID) }
func (m *ShapeCryptoState) decodeScalars(r *wire.Reader) error {
	v, err := r.U32()
	m.PortID = v
	return err
}
func (m *ShapeCryptoState) sdupCryptoStateSlots() []**SDUPCryptoState {
	return []**SDUPCryptoState{&m.State}
}

// ShapeAddressChange carries an IPCP's old and new network addresses.
type ShapeAddressChange struct {
	baseMessage
	NewAddress, OldAddress uint32
}

func (m *ShapeAddressChange) scalarLen() int { return 4 + 4 }
func (m *ShapeAddressChange) encodeScalars(w *wire.Writer) {
	w.U32(m.NewAddress)
	w.U32(m.OldAddress)
}
func (m *ShapeAddressChange) decodeScalars(r *wire.Reader) error {
	var err error
	if m.NewAddress, err = r.U32(); err != nil {
		return err
	}
	m.OldAddress, err = r.U32()
	return err
}

// ShapeAllocatePort carries the requesting IPCP's name plus the
// result of a logical-port allocation.
type ShapeAllocatePort struct {
	baseMessage
	IPCPNm *Name
	PortID uint32
	Result int32
}

func (m *ShapeAllocatePort) scalarLen() int { return 4 + 4 }
func (m *ShapeAllocatePort) encodeScalars(w *wire.Writer) {
	w.U32(m.PortID)
	w.I32(m.Result)
}
func (m *ShapeAllocatePort) decodeScalars(r *wire.Reader) error {
	var err error
	if m.PortID, err = r.U32(); err != nil {
		return err
	}
	m.Result, err = r.I32()
	return err
}
func (m *ShapeAllocatePort) nameSlots() []**Name { return []**Name{&m.IPCPNm} }

// ShapeIPCPIDResult carries an IPCP id plus a result code.
type ShapeIPCPIDResult struct {
	baseMessage
	IPCPID uint16
	Result int32
}

func (m *ShapeIPCPIDResult) scalarLen() int { return 2 + 4 }
func (m *ShapeIPCPIDResult) encodeScalars(w *wire.Writer) {
	w.U16(m.IPCPID)
	w.I32(m.Result)
}
func (m *ShapeIPCPIDResult) decodeScalars(r *wire.Reader) error {
	var err error
	if m.IPCPID, err = r.U16(); err != nil {
		return err
	}
	m.Result, err = r.I32()
	return err
}

// ShapeManagementSDU carries the tunneled PDU payload for the
// out-of-band management-SDU side channel (spec.md §4.4).
type ShapeManagementSDU struct {
	baseMessage
	PortID  uint32
	Payload *Buffer
}

func (m *ShapeManagementSDU) scalarLen() int              { return 4 }
func (m *ShapeManagementSDU) encodeScalars(w *wire.Writer) { w.U32(m.PortID) }
func (m *ShapeManagementSDU) decodeScalars(r *wire.Reader) error {
	v, err := r.U32()
	m.PortID = v
	return err
}
func (m *ShapeManagementSDU) bufferSlots() []**Buffer { return []**Buffer{&m.Payload} }

// ShapeCreateIPCP carries the new IPCP's name and DIF-type string.
type ShapeCreateIPCP struct {
	baseMessage
	IPCPNm  *Name
	DIFType string
	Result  int32
}

func (m *ShapeCreateIPCP) scalarLen() int              { return 4 }
func (m *ShapeCreateIPCP) encodeScalars(w *wire.Writer) { w.I32(m.Result) }
func (m *ShapeCreateIPCP) decodeScalars(r *wire.Reader) error {
	v, err := r.I32()
	m.Result = v
	return err
}
func (m *ShapeCreateIPCP) nameSlots() []**Name    { return []**Name{&m.IPCPNm} }
func (m *ShapeCreateIPCP) stringSlots() []*string { return []*string{&m.DIFType} }

// ShapeEnrollResponse carries the enrollment result plus the
// neighbor set and DIF properties learned during enrollment.
type ShapeEnrollResponse struct {
	baseMessage
	Result    int32
	Neighbors *IPCPNeighborList
	DIFProps  *DIFPropertiesList
}

func (m *ShapeEnrollResponse) scalarLen() int              { return 4 }
func (m *ShapeEnrollResponse) encodeScalars(w *wire.Writer) { w.I32(m.Result) }
func (m *ShapeEnrollResponse) decodeScalars(r *wire.Reader) error {
	v, err := r.I32()
	m.Result = v
	return err
}
func (m *ShapeEnrollResponse) ipcpNeighborListSlots() []**IPCPNeighborList {
	return []**IPCPNeighborList{&m.Neighbors}
}
func (m *ShapeEnrollResponse) difPropertiesListSlots() []**DIFPropertiesList {
	return []**DIFPropertiesList{&m.DIFProps}
}

// ShapeGetDIFPropertiesResponse carries the result of a DIF-
// properties query.
type ShapeGetDIFPropertiesResponse struct {
	baseMessage
	Result int32
	Props  *DIFPropertiesList
}

func (m *ShapeGetDIFPropertiesResponse) scalarLen() int              { return 4 }
func (m *ShapeGetDIFPropertiesResponse) encodeScalars(w *wire.Writer) { w.I32(m.Result) }
func (m *ShapeGetDIFPropertiesResponse) decodeScalars(r *wire.Reader) error {
	v, err := r.I32()
	m.Result = v
	return err
}
func (m *ShapeGetDIFPropertiesResponse) difPropertiesListSlots() []**DIFPropertiesList {
	return []**DIFPropertiesList{&m.Props}
}

// ShapePluginLoad carries the plugin name and whether to load or
// unload it.
type ShapePluginLoad struct {
	baseMessage
	PluginName string
	Load       bool
}

func (m *ShapePluginLoad) scalarLen() int              { return 1 }
func (m *ShapePluginLoad) encodeScalars(w *wire.Writer) { w.Bool(m.Load) }
func (m *ShapePluginLoad) decodeScalars(r *wire.Reader) error {
	v, err := r.Bool()
	m.Load = v
	return err
}
func (m *ShapePluginLoad) stringSlots() []*string { return []*string{&m.PluginName} }

// ShapeCDAPFwd carries an opaque CDAP message buffer being relayed
// between IPC Manager and an IPCP, plus a result code.
type ShapeCDAPFwd struct {
	baseMessage
	Payload *Buffer
	Result  int32
}

func (m *ShapeCDAPFwd) scalarLen() int              { return 4 }
func (m *ShapeCDAPFwd) encodeScalars(w *wire.Writer) { w.I32(m.Result) }
func (m *ShapeCDAPFwd) decodeScalars(r *wire.Reader) error {
	v, err := r.I32()
	m.Result = v
	return err
}
func (m *ShapeCDAPFwd) bufferSlots() []**Buffer { return []**Buffer{&m.Payload} }

// ShapeMediaReport carries a media-scan report.
type ShapeMediaReport struct {
	baseMessage
	Report *MediaReport
}

func (m *ShapeMediaReport) mediaReportSlots() []**MediaReport {
	return []**MediaReport{&m.Report}
}
