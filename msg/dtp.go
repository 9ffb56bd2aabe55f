package msg

import "github.com/irati-go/ctrlplane/wire"

// DTPConfig is the sub-object kind wire.KindDTPConfig: the per-
// connection data-transfer protocol configuration. Mixes fixed
// scalars with a recursive policy sub-object (spec.md §4.1).
type DTPConfig struct {
	DTCPPresent             bool
	InitialATimer           uint32
	SeqNumRolloverThreshold uint32
	DropWithDRFFlag         bool
	ResetAfterMaxRTXTimes   bool
	InitialSeqNumPolicy     *Policy
	DTPPolicySet            *Policy
}

func dtpConfigWireLen(c *DTPConfig) int {
	if c == nil {
		c = &DTPConfig{}
	}
	return 1 + 4 + 4 + 1 + 1 + policyWireLen(c.InitialSeqNumPolicy) + policyWireLen(c.DTPPolicySet)
}

func dtpConfigEncode(w *wire.Writer, c *DTPConfig) {
	if c == nil {
		c = &DTPConfig{}
	}
	w.Bool(c.DTCPPresent)
	w.U32(c.InitialATimer)
	w.U32(c.SeqNumRolloverThreshold)
	w.Bool(c.DropWithDRFFlag)
	w.Bool(c.ResetAfterMaxRTXTimes)
	policyEncode(w, c.InitialSeqNumPolicy)
	policyEncode(w, c.DTPPolicySet)
}

func dtpConfigDecode(r *wire.Reader) (*DTPConfig, error) {
	c := &DTPConfig{}
	var err error
	if c.DTCPPresent, err = r.Bool(); err != nil {
		return nil, err
	}
	if c.InitialATimer, err = r.U32(); err != nil {
		return nil, err
	}
	if c.SeqNumRolloverThreshold, err = r.U32(); err != nil {
		return nil, err
	}
	if c.DropWithDRFFlag, err = r.Bool(); err != nil {
		return nil, err
	}
	if c.ResetAfterMaxRTXTimes, err = r.Bool(); err != nil {
		return nil, err
	}
	if c.InitialSeqNumPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	if c.DTPPolicySet, err = policyDecode(r); err != nil {
		return nil, err
	}
	return c, nil
}

func freeDTPConfig(c *DTPConfig) {
	if c == nil {
		return
	}
	freePolicy(c.InitialSeqNumPolicy)
	freePolicy(c.DTPPolicySet)
}

// WindowFctrlConfig is the window-based flow-control sub-configuration
// nested inside DTCPFctrlConfig.
type WindowFctrlConfig struct {
	MaxClosedWindowQueueLength uint32
	InitialCredit              uint32
	RcvrFlowCtrlPolicy         *Policy
	TxControlPolicy            *Policy
}

func windowFctrlWireLen(c *WindowFctrlConfig) int {
	if c == nil {
		c = &WindowFctrlConfig{}
	}
	return 4 + 4 + policyWireLen(c.RcvrFlowCtrlPolicy) + policyWireLen(c.TxControlPolicy)
}

func windowFctrlEncode(w *wire.Writer, c *WindowFctrlConfig) {
	if c == nil {
		c = &WindowFctrlConfig{}
	}
	w.U32(c.MaxClosedWindowQueueLength)
	w.U32(c.InitialCredit)
	policyEncode(w, c.RcvrFlowCtrlPolicy)
	policyEncode(w, c.TxControlPolicy)
}

func windowFctrlDecode(r *wire.Reader) (*WindowFctrlConfig, error) {
	c := &WindowFctrlConfig{}
	var err error
	if c.MaxClosedWindowQueueLength, err = r.U32(); err != nil {
		return nil, err
	}
	if c.InitialCredit, err = r.U32(); err != nil {
		return nil, err
	}
	if c.RcvrFlowCtrlPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	if c.TxControlPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	return c, nil
}

// RateFctrlConfig is the rate-based flow-control sub-configuration
// nested inside DTCPFctrlConfig.
type RateFctrlConfig struct {
	SendingRate              uint32
	TimePeriod               uint32
	NoRateSlowDownPolicy     *Policy
	NoOverrideDefaultPeak    *Policy
	RateReductionPolicy      *Policy
}

func rateFctrlWireLen(c *RateFctrlConfig) int {
	if c == nil {
		c = &RateFctrlConfig{}
	}
	return 4 + 4 + policyWireLen(c.NoRateSlowDownPolicy) + policyWireLen(c.NoOverrideDefaultPeak) + policyWireLen(c.RateReductionPolicy)
}

func rateFctrlEncode(w *wire.Writer, c *RateFctrlConfig) {
	if c == nil {
		c = &RateFctrlConfig{}
	}
	w.U32(c.SendingRate)
	w.U32(c.TimePeriod)
	policyEncode(w, c.NoRateSlowDownPolicy)
	policyEncode(w, c.NoOverrideDefaultPeak)
	policyEncode(w, c.RateReductionPolicy)
}

func rateFctrlDecode(r *wire.Reader) (*RateFctrlConfig, error) {
	c := &RateFctrlConfig{}
	var err error
	if c.SendingRate, err = r.U32(); err != nil {
		return nil, err
	}
	if c.TimePeriod, err = r.U32(); err != nil {
		return nil, err
	}
	if c.NoRateSlowDownPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	if c.NoOverrideDefaultPeak, err = policyDecode(r); err != nil {
		return nil, err
	}
	if c.RateReductionPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	return c, nil
}

// DTCPFctrlConfig is DTCP's flow-control sub-configuration, present on
// the wire only when DTCPConfig.FlowControlPresent is true.
type DTCPFctrlConfig struct {
	WindowBased                bool
	WindowConfig               *WindowFctrlConfig
	RateBased                  bool
	RateConfig                 *RateFctrlConfig
	SentBytesThreshold         uint32
	SentBytesPercentThreshold  uint32
	SentBufferedPacketsThreshold uint32
	RcvBytesThreshold          uint32
	RcvBytesPercentThreshold   uint32
	RcvBufferedPacketsThreshold uint32
	ClosedWindowPolicy         *Policy
	FlowControlOverrunPolicy   *Policy
	ReconcileFlowControlPolicy *Policy
}

func dtcpFctrlWireLen(c *DTCPFctrlConfig) int {
	if c == nil {
		c = &DTCPFctrlConfig{}
	}
	n := 1 + windowFctrlWireLen(c.WindowConfig) + 1 + rateFctrlWireLen(c.RateConfig) + 4*6
	n += policyWireLen(c.ClosedWindowPolicy) + policyWireLen(c.FlowControlOverrunPolicy) + policyWireLen(c.ReconcileFlowControlPolicy)
	return n
}

func dtcpFctrlEncode(w *wire.Writer, c *DTCPFctrlConfig) {
	if c == nil {
		c = &DTCPFctrlConfig{}
	}
	w.Bool(c.WindowBased)
	windowFctrlEncode(w, c.WindowConfig)
	w.Bool(c.RateBased)
	rateFctrlEncode(w, c.RateConfig)
	w.U32(c.SentBytesThreshold)
	w.U32(c.SentBytesPercentThreshold)
	w.U32(c.SentBufferedPacketsThreshold)
	w.U32(c.RcvBytesThreshold)
	w.U32(c.RcvBytesPercentThreshold)
	w.U32(c.RcvBufferedPacketsThreshold)
	policyEncode(w, c.ClosedWindowPolicy)
	policyEncode(w, c.FlowControlOverrunPolicy)
	policyEncode(w, c.ReconcileFlowControlPolicy)
}

func dtcpFctrlDecode(r *wire.Reader) (*DTCPFctrlConfig, error) {
	c := &DTCPFctrlConfig{}
	var err error
	if c.WindowBased, err = r.Bool(); err != nil {
		return nil, err
	}
	if c.WindowConfig, err = windowFctrlDecode(r); err != nil {
		return nil, err
	}
	if c.RateBased, err = r.Bool(); err != nil {
		return nil, err
	}
	if c.RateConfig, err = rateFctrlDecode(r); err != nil {
		return nil, err
	}
	for _, dst := range []*uint32{&c.SentBytesThreshold, &c.SentBytesPercentThreshold, &c.SentBufferedPacketsThreshold,
		&c.RcvBytesThreshold, &c.RcvBytesPercentThreshold, &c.RcvBufferedPacketsThreshold} {
		if *dst, err = r.U32(); err != nil {
			return nil, err
		}
	}
	if c.ClosedWindowPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	if c.FlowControlOverrunPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	if c.ReconcileFlowControlPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	return c, nil
}

func freeDTCPFctrlConfig(c *DTCPFctrlConfig) {
	if c == nil {
		return
	}
	if c.WindowConfig != nil {
		freePolicy(c.WindowConfig.RcvrFlowCtrlPolicy)
		freePolicy(c.WindowConfig.TxControlPolicy)
	}
	if c.RateConfig != nil {
		freePolicy(c.RateConfig.NoRateSlowDownPolicy)
		freePolicy(c.RateConfig.NoOverrideDefaultPeak)
		freePolicy(c.RateConfig.RateReductionPolicy)
	}
	freePolicy(c.ClosedWindowPolicy)
	freePolicy(c.FlowControlOverrunPolicy)
	freePolicy(c.ReconcileFlowControlPolicy)
}

// DTCPRxCtrlConfig is DTCP's retransmission-control sub-configuration,
// present on the wire only when DTCPConfig.RtxControlPresent is true.
type DTCPRxCtrlConfig struct {
	DataRxMsExpired       uint32
	InitialRtxTime        uint32
	MaxTimeToRetry        uint32
	DataRtxMaxNum         uint32
	RtxTimerExpiryPolicy  *Policy
	SenderAckPolicy       *Policy
	RecvingAckListPolicy  *Policy
	RcvrAckPolicy         *Policy
	SendingAckPolicy      *Policy
	RcvrControlAckPolicy  *Policy
}

func dtcpRxCtrlWireLen(c *DTCPRxCtrlConfig) int {
	if c == nil {
		c = &DTCPRxCtrlConfig{}
	}
	n := 4 * 4
	n += policyWireLen(c.RtxTimerExpiryPolicy) + policyWireLen(c.SenderAckPolicy) + policyWireLen(c.RecvingAckListPolicy)
	n += policyWireLen(c.RcvrAckPolicy) + policyWireLen(c.SendingAckPolicy) + policyWireLen(c.RcvrControlAckPolicy)
	return n
}

func dtcpRxCtrlEncode(w *wire.Writer, c *DTCPRxCtrlConfig) {
	if c == nil {
		c = &DTCPRxCtrlConfig{}
	}
	w.U32(c.DataRxMsExpired)
	w.U32(c.InitialRtxTime)
	w.U32(c.MaxTimeToRetry)
	w.U32(c.DataRtxMaxNum)
	policyEncode(w, c.RtxTimerExpiryPolicy)
	policyEncode(w, c.SenderAckPolicy)
	policyEncode(w, c.RecvingAckListPolicy)
	policyEncode(w, c.RcvrAckPolicy)
	policyEncode(w, c.SendingAckPolicy)
	policyEncode(w, c.RcvrControlAckPolicy)
}

func dtcpRxCtrlDecode(r *wire.Reader) (*DTCPRxCtrlConfig, error) {
	c := &DTCPRxCtrlConfig{}
	var err error
	if c.DataRxMsExpired, err = r.U32(); err != nil {
		return nil, err
	}
	if c.InitialRtxTime, err = r.U32(); err != nil {
		return nil, err
	}
	if c.MaxTimeToRetry, err = r.U32(); err != nil {
		return nil, err
	}
	if c.DataRtxMaxNum, err = r.U32(); err != nil {
		return nil, err
	}
	if c.RtxTimerExpiryPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	if c.SenderAckPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	if c.RecvingAckListPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	if c.RcvrAckPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	if c.SendingAckPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	if c.RcvrControlAckPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	return c, nil
}

func freeDTCPRxCtrlConfig(c *DTCPRxCtrlConfig) {
	if c == nil {
		return
	}
	freePolicy(c.RtxTimerExpiryPolicy)
	freePolicy(c.SenderAckPolicy)
	freePolicy(c.RecvingAckListPolicy)
	freePolicy(c.RcvrAckPolicy)
	freePolicy(c.SendingAckPolicy)
	freePolicy(c.RcvrControlAckPolicy)
}

// DTCPConfig is the sub-object kind wire.KindDTCPConfig. FlowControl
// and RtxControl are conditionally present: encoded iff their
// respective presence flag is true, and the decoder mirrors this
// exactly (spec.md §4.1).
type DTCPConfig struct {
	FlowControlPresent   bool
	RtxControlPresent    bool
	InitialSeqNumPolicy  *Policy
	RTTEstimatorPolicy   *Policy
	LostControlPDUPolicy *Policy
	DTCPPolicySet        *Policy
	FlowControl          *DTCPFctrlConfig
	RtxControl           *DTCPRxCtrlConfig
}

func dtcpConfigWireLen(c *DTCPConfig) int {
	if c == nil {
		c = &DTCPConfig{}
	}
	n := 1 + 1
	n += policyWireLen(c.InitialSeqNumPolicy) + policyWireLen(c.RTTEstimatorPolicy)
	n += policyWireLen(c.LostControlPDUPolicy) + policyWireLen(c.DTCPPolicySet)
	if c.FlowControlPresent {
		n += dtcpFctrlWireLen(c.FlowControl)
	}
	if c.RtxControlPresent {
		n += dtcpRxCtrlWireLen(c.RtxControl)
	}
	return n
}

func dtcpConfigEncode(w *wire.Writer, c *DTCPConfig) {
	if c == nil {
		c = &DTCPConfig{}
	}
	w.Bool(c.FlowControlPresent)
	w.Bool(c.RtxControlPresent)
	policyEncode(w, c.InitialSeqNumPolicy)
	policyEncode(w, c.RTTEstimatorPolicy)
	policyEncode(w, c.LostControlPDUPolicy)
	policyEncode(w, c.DTCPPolicySet)
	if c.FlowControlPresent {
		dtcpFctrlEncode(w, c.FlowControl)
	}
	if c.RtxControlPresent {
		dtcpRxCtrlEncode(w, c.RtxControl)
	}
}

func dtcpConfigDecode(r *wire.Reader) (*DTCPConfig, error) {
	c := &DTCPConfig{}
	var err error
	if c.FlowControlPresent, err = r.Bool(); err != nil {
		return nil, err
	}
	if c.RtxControlPresent, err = r.Bool(); err != nil {
		return nil, err
	}
	if c.InitialSeqNumPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	if c.RTTEstimatorPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	if c.LostControlPDUPolicy, err = policyDecode(r); err != nil {
		return nil, err
	}
	if c.DTCPPolicySet, err = policyDecode(r); err != nil {
		return nil, err
	}
	if c.FlowControlPresent {
		if c.FlowControl, err = dtcpFctrlDecode(r); err != nil {
			return nil, err
		}
	}
	if c.RtxControlPresent {
		if c.RtxControl, err = dtcpRxCtrlDecode(r); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func freeDTCPConfig(c *DTCPConfig) {
	if c == nil {
		return
	}
	freePolicy(c.InitialSeqNumPolicy)
	freePolicy(c.RTTEstimatorPolicy)
	freePolicy(c.LostControlPDUPolicy)
	freePolicy(c.DTCPPolicySet)
	freeDTCPFctrlConfig(c.FlowControl)
	freeDTCPRxCtrlConfig(c.RtxControl)
}
