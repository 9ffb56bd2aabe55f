package msg

import "github.com/irati-go/ctrlplane/wire"

// FlowSpec is the sub-object kind wire.KindFlowSpec: the numeric QoS
// knobs an application requests from a flow allocation. Fixed layout,
// no variable parts (spec.md §4.1).
type FlowSpec struct {
	AverageBandwidth           uint32
	AverageSDUBandwidth        uint32
	PeakBandwidthDuration      uint32
	PeakSDUBandwidthDuration   uint32
	UndetectedBitErrorRate     uint32
	Jitter                     uint32
	Delay                      uint32
	MaxAllowableGap            int32 // signed: -1 means "unbounded"
	MaxSDUSize                 uint32
	OrderedDelivery            bool
	PartialDelivery            bool
	MaxAllowableLoss           uint32
}

func flowSpecWireLen(f *FlowSpec) int { return 4*9 + 2 + 4 }

func flowSpecEncode(w *wire.Writer, f *FlowSpec) {
	if f == nil {
		f = &FlowSpec{}
	}
	w.U32(f.AverageBandwidth)
	w.U32(f.AverageSDUBandwidth)
	w.U32(f.PeakBandwidthDuration)
	w.U32(f.PeakSDUBandwidthDuration)
	w.U32(f.UndetectedBitErrorRate)
	w.U32(f.Jitter)
	w.U32(f.Delay)
	w.I32(f.MaxAllowableGap)
	w.U32(f.MaxSDUSize)
	w.Bool(f.OrderedDelivery)
	w.Bool(f.PartialDelivery)
	w.U32(f.MaxAllowableLoss)
}

func flowSpecDecode(r *wire.Reader) (*FlowSpec, error) {
	f := &FlowSpec{}
	var err error
	if f.AverageBandwidth, err = r.U32(); err != nil {
		return nil, err
	}
	if f.AverageSDUBandwidth, err = r.U32(); err != nil {
		return nil, err
	}
	if f.PeakBandwidthDuration, err = r.U32(); err != nil {
		return nil, err
	}
	if f.PeakSDUBandwidthDuration, err = r.U32(); err != nil {
		return nil, err
	}
	if f.UndetectedBitErrorRate, err = r.U32(); err != nil {
		return nil, err
	}
	if f.Jitter, err = r.U32(); err != nil {
		return nil, err
	}
	if f.Delay, err = r.U32(); err != nil {
		return nil, err
	}
	if f.MaxAllowableGap, err = r.I32(); err != nil {
		return nil, err
	}
	if f.MaxSDUSize, err = r.U32(); err != nil {
		return nil, err
	}
	if f.OrderedDelivery, err = r.Bool(); err != nil {
		return nil, err
	}
	if f.PartialDelivery, err = r.Bool(); err != nil {
		return nil, err
	}
	if f.MaxAllowableLoss, err = r.U32(); err != nil {
		return nil, err
	}
	return f, nil
}
