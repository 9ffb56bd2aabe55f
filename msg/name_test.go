package msg

import (
	"testing"

	"github.com/irati-go/ctrlplane/wire"
)

func TestNameRoundTrip(t *testing.T) {
	n := &Name{ProcessName: "app", ProcessInstance: "1", EntityName: "data-transfer", EntityInstance: "2"}
	buf := make([]byte, n.wireLen())
	w := wire.NewWriter(buf)
	n.encode(w)
	if w.Off() != len(buf) {
		t.Fatalf("encode wrote %d bytes, wireLen predicted %d", w.Off(), len(buf))
	}
	got, err := decodeName(wire.NewReader(buf))
	if err != nil {
		t.Fatalf("decodeName: %v", err)
	}
	if *got != *n {
		t.Fatalf("got %+v, want %+v", *got, *n)
	}
}

func TestNameValid(t *testing.T) {
	cases := []struct {
		n    *Name
		want bool
	}{
		{nil, true},
		{&Name{ProcessName: "app"}, true},
		{&Name{ProcessName: ":app"}, false},
		{&Name{ProcessName: "a:b:c:d"}, true},
		{&Name{ProcessName: "a:b:c:d:e"}, false},
	}
	for _, c := range cases {
		if got := c.n.Valid(); got != c.want {
			t.Errorf("Valid(%+v) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestNameNilEncodeDecode(t *testing.T) {
	var n *Name
	buf := make([]byte, n.wireLen())
	n.encode(wire.NewWriter(buf))
	got, err := decodeName(wire.NewReader(buf))
	if err != nil {
		t.Fatalf("decodeName: %v", err)
	}
	if *got != (Name{}) {
		t.Fatalf("got %+v, want zero value", *got)
	}
}
