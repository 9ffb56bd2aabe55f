package msg

import (
	"testing"

	"github.com/irati-go/ctrlplane/wire"
)

func TestFlowSpecRoundTrip(t *testing.T) {
	f := &FlowSpec{
		AverageBandwidth:       1000,
		AverageSDUBandwidth:    2000,
		PeakBandwidthDuration:  3000,
		PeakSDUBandwidthDuration: 4000,
		UndetectedBitErrorRate: 5,
		MaxAllowableGap:        -1,
		Delay:                  10,
		Jitter:                 20,
		MaxSDUSize:             9000,
		OrderedDelivery:        true,
		PartialDelivery:        false,
		MaxAllowableLoss:       1,
	}
	buf := make([]byte, flowSpecWireLen(f))
	w := wire.NewWriter(buf)
	flowSpecEncode(w, f)
	if w.Off() != len(buf) {
		t.Fatalf("encode wrote %d, wireLen predicted %d", w.Off(), len(buf))
	}
	got, err := flowSpecDecode(wire.NewReader(buf))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if *got != *f {
		t.Fatalf("got %+v, want %+v", *got, *f)
	}
}

func TestFlowSpecNegativeGapPreservesSign(t *testing.T) {
	f := &FlowSpec{MaxAllowableGap: -1}
	buf := make([]byte, flowSpecWireLen(f))
	flowSpecEncode(wire.NewWriter(buf), f)
	got, err := flowSpecDecode(wire.NewReader(buf))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.MaxAllowableGap != -1 {
		t.Fatalf("MaxAllowableGap = %d, want -1 (sign bit preserved)", got.MaxAllowableGap)
	}
}
