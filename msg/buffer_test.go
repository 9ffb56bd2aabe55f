package msg

import (
	"testing"

	"github.com/irati-go/ctrlplane/wire"
)

func TestBufferNilVsEmpty(t *testing.T) {
	// A nil Buffer pointer encodes as length 0 and decodes back to a
	// nil *Buffer, not an empty non-nil one.
	var b *Buffer
	buf := make([]byte, b.wireLen())
	b.encode(wire.NewWriter(buf))
	got, err := decodeBuffer(wire.NewReader(buf))
	if err != nil {
		t.Fatalf("decodeBuffer: %v", err)
	}
	if got != nil {
		t.Fatalf("got %+v, want nil", got)
	}
}

func TestBufferRoundTrip(t *testing.T) {
	b := &Buffer{Data: []byte{0xDE, 0xAD, 0xBE, 0xEF}}
	buf := make([]byte, b.wireLen())
	b.encode(wire.NewWriter(buf))
	got, err := decodeBuffer(wire.NewReader(buf))
	if err != nil {
		t.Fatalf("decodeBuffer: %v", err)
	}
	if string(got.Data) != string(b.Data) {
		t.Fatalf("got %x, want %x", got.Data, b.Data)
	}
}
