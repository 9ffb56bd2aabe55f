package msg

import (
	"testing"

	"github.com/irati-go/ctrlplane/wire"
)

// TestDIFConfigFieldOrder checks that the seven component configs
// following EFCP are always encoded and decoded in the fixed order
// spec.md §4.1 names: RMT, FA, ET, NSM, Routing, ResourceAlloc, SecMan.
func TestDIFConfigFieldOrder(t *testing.T) {
	c := &DIFConfig{
		Address: 1,
		EFCP:    &EFCPConfig{Constants: &DTConstants{}},
		RMT:     &GenericConfig{Params: []ConfigEntry{{Name: "rmt", Value: "1"}}},
		FlowAllocation:   &GenericConfig{Params: []ConfigEntry{{Name: "fa", Value: "2"}}},
		EnrollmentTask:   &GenericConfig{Params: []ConfigEntry{{Name: "et", Value: "3"}}},
		NamespaceManager: &GenericConfig{Params: []ConfigEntry{{Name: "nsm", Value: "4"}}},
		Routing:          &GenericConfig{Params: []ConfigEntry{{Name: "routing", Value: "5"}}},
		ResourceAlloc:    &GenericConfig{Params: []ConfigEntry{{Name: "resall", Value: "6"}}},
		SecurityManager:  &GenericConfig{Params: []ConfigEntry{{Name: "secman", Value: "7"}}},
	}
	buf := make([]byte, difConfigWireLen(c))
	w := wire.NewWriter(buf)
	difConfigEncode(w, c)
	if w.Off() != len(buf) {
		t.Fatalf("encode wrote %d, wireLen predicted %d", w.Off(), len(buf))
	}
	got, err := difConfigDecode(wire.NewReader(buf))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	order := []struct {
		name string
		got  *GenericConfig
	}{
		{"RMT", got.RMT},
		{"FlowAllocation", got.FlowAllocation},
		{"EnrollmentTask", got.EnrollmentTask},
		{"NamespaceManager", got.NamespaceManager},
		{"Routing", got.Routing},
		{"ResourceAlloc", got.ResourceAlloc},
		{"SecurityManager", got.SecurityManager},
	}
	wantVals := []string{"1", "2", "3", "4", "5", "6", "7"}
	for i, o := range order {
		if len(o.got.Params) != 1 || o.got.Params[0].Value != wantVals[i] {
			t.Errorf("%s = %+v, want value %q", o.name, o.got.Params, wantVals[i])
		}
	}
}
