package msg

import (
	"errors"
	"testing"
)

// Scenario A (spec.md §8): ASSIGN_TO_DIF_RESPONSE round-trips with
// src=5 dst=7 src_ipcp=2 dst_ipcp=3 event=0x1234, scalar result=-1,
// and its encoded length is exactly the fixed prefix (no sub-objects).
func TestScenarioA_AssignToDIFResponse(t *testing.T) {
	m, err := New(AssignToDIFResponse)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	env := m.Envelope()
	env.SrcPort, env.DstPort = 5, 7
	env.SrcIPCPID, env.DstIPCPID = 2, 3
	env.EventID = 0x1234
	m.(*ShapeResult).Result = -1

	data, err := Serialize(m)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if len(data) != envelopeWireLen+4 {
		t.Fatalf("encoded length = %d, want %d (copy_len)", len(data), envelopeWireLen+4)
	}

	got, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	gr, ok := got.(*ShapeResult)
	if !ok {
		t.Fatalf("decoded type = %T, want *ShapeResult", got)
	}
	if gr.Result != -1 {
		t.Fatalf("Result = %d, want -1", gr.Result)
	}
	ge := gr.Envelope()
	if *ge != *env {
		t.Fatalf("envelope mismatch: got %+v want %+v", *ge, *env)
	}
}

// Scenario B (spec.md §8): DISCONNECT_FROM_NEIGHBOR_REQUEST with one
// Name sub-object ("app","1","",null). Wire size is envelope + 11
// bytes; decode yields ("app","1","",""), the null/empty distinction
// is not preserved on the wire and the test must assert that.
func TestScenarioB_DisconnectFromNeighbor(t *testing.T) {
	m, err := New(DisconnectFromNeighborRequest)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	shape := m.(*ShapeName)
	shape.Nm = &Name{ProcessName: "app", ProcessInstance: "1", EntityName: "", EntityInstance: ""}

	data, err := Serialize(m)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	// (2+3) + (2+1) + (2+0) + (2+0): one u16 length prefix plus payload
	// per field of the 4-tuple.
	const nameBytes = (2 + 3) + (2 + 1) + (2 + 0) + (2 + 0)
	if len(data) != envelopeWireLen+nameBytes {
		t.Fatalf("encoded length = %d, want %d", len(data), envelopeWireLen+nameBytes)
	}

	got, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	gn := got.(*ShapeName).Nm
	want := &Name{ProcessName: "app", ProcessInstance: "1", EntityName: "", EntityInstance: ""}
	if *gn != *want {
		t.Fatalf("Name round-trip = %+v, want %+v (null/empty indistinguishable on the wire)", *gn, *want)
	}
}

// Scenario C (spec.md §8): ASSIGN_TO_DIF_REQUEST with DIFConfig
// address=42, one config entry ("a","b"), EFCPConfig with one QoSCube
// id=3 and a present-DTCP DTPConfig. Asserts the four-way length
// agreement and that the DIF name, address, config entry, QoS cube id
// and DTCP-present flag survive the round trip.
func TestScenarioC_AssignToDIFRequest(t *testing.T) {
	m, err := New(AssignToDIFRequest)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	shape := m.(*ShapeAssignToDIF)
	shape.DIFNm = &Name{ProcessName: "test-dif"}
	shape.Config = &DIFConfig{
		Address: 42,
		Params:  []ConfigEntry{{Name: "a", Value: "b"}},
		EFCP: &EFCPConfig{
			Constants: &DTConstants{AddressLength: 4, SequenceNumberLength: 4},
			QoSCubes: []*QoSCube{{
				ID:   3,
				Name: "best-effort",
				DTP:  &DTPConfig{DTCPPresent: true},
			}},
		},
	}

	assertFourWayAgreement(t, m)

	data, err := Serialize(m)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	got, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	gs := got.(*ShapeAssignToDIF)
	if gs.DIFNm.ProcessName != "test-dif" {
		t.Fatalf("DIF name = %q", gs.DIFNm.ProcessName)
	}
	if gs.Config.Address != 42 {
		t.Fatalf("Address = %d, want 42", gs.Config.Address)
	}
	if len(gs.Config.Params) != 1 || gs.Config.Params[0] != (ConfigEntry{Name: "a", Value: "b"}) {
		t.Fatalf("Params = %+v", gs.Config.Params)
	}
	if len(gs.Config.EFCP.QoSCubes) != 1 || gs.Config.EFCP.QoSCubes[0].ID != 3 {
		t.Fatalf("QoSCubes = %+v", gs.Config.EFCP.QoSCubes)
	}
	if !gs.Config.EFCP.QoSCubes[0].DTP.DTCPPresent {
		t.Fatalf("DTCPPresent not round-tripped")
	}
}

// assertFourWayAgreement checks spec.md §8 property 3: Serlen(m),
// len(Serialize(m)), the layout descriptor's slot counts, and a
// decode-then-remeasure pass all agree.
func assertFourWayAgreement(t *testing.T, m Message) {
	t.Helper()
	predicted := Serlen(m)
	data, err := Serialize(m)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if len(data) != predicted {
		t.Fatalf("Serlen() = %d, len(Serialize()) = %d", predicted, len(data))
	}
	decoded, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if Serlen(decoded) != predicted {
		t.Fatalf("Serlen(decoded) = %d, want %d", Serlen(decoded), predicted)
	}
	layout, err := Layout(m.Envelope().Type)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if layout.CopyLen != envelopeWireLen+m.scalarLen() {
		t.Fatalf("layout.CopyLen = %d, want %d", layout.CopyLen, envelopeWireLen+m.scalarLen())
	}
	if got := describe(decoded).Counts; got != layout.Counts {
		t.Fatalf("decoded slot counts = %v, layout counts = %v", got, layout.Counts)
	}
}

func TestRoundTripEveryRegisteredOrdinal(t *testing.T) {
	for o := Min + 1; o < Max; o++ {
		o := o
		t.Run(o.String(), func(t *testing.T) {
			m, err := New(o)
			if err != nil {
				t.Fatalf("New(%v): %v", o, err)
			}
			data, err := Serialize(m)
			if err != nil {
				t.Fatalf("Serialize: %v", err)
			}
			if len(data) != Serlen(m) {
				t.Fatalf("Serlen/Serialize disagree: %d vs %d", Serlen(m), len(data))
			}
			got, err := Deserialize(data)
			if err != nil {
				t.Fatalf("Deserialize: %v", err)
			}
			if got.Envelope().Type != o {
				t.Fatalf("decoded Type = %v, want %v", got.Envelope().Type, o)
			}
		})
	}
}

func TestDeserializeUnknownOrdinal(t *testing.T) {
	data := make([]byte, envelopeWireLen)
	data[0], data[1] = 0xFF, 0xFF // Type = 65535, not registered
	_, err := Deserialize(data)
	if !errors.Is(err, ErrUnknownOrdinal) {
		t.Fatalf("err = %v, want ErrUnknownOrdinal", err)
	}
}

func TestDeserializeTruncated(t *testing.T) {
	data := []byte{1, 2, 3}
	_, err := Deserialize(data)
	if !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("err = %v, want ErrTruncatedInput", err)
	}
}

func TestDeserializeTrailingBytes(t *testing.T) {
	m, err := New(AssignToDIFResponse)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	data, err := Serialize(m)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	data = append(data, 0x00)
	if _, err := Deserialize(data); !errors.Is(err, ErrTrailingBytes) {
		t.Fatalf("err = %v, want ErrTrailingBytes", err)
	}
}

func TestOrdinalValidFix(t *testing.T) {
	if Min.Valid() {
		t.Fatal("Min must be invalid (sentinel)")
	}
	if Max.Valid() {
		t.Fatal("Max must be invalid (sentinel)")
	}
	if !AssignToDIFRequest.Valid() {
		t.Fatal("AssignToDIFRequest must be valid")
	}
	if Ordinal(65535).Valid() {
		t.Fatal("out-of-range ordinal must be invalid")
	}
}
