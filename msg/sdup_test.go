package msg

import (
	"testing"

	"github.com/irati-go/ctrlplane/wire"
)

// TestSDUPCryptoStateFreeEachBufferOnce exercises the REDESIGN FLAG
// fix: the original free routine zeroed encrypt_key_rx twice instead
// of clearing encrypt_key_tx once. freeSDUPCryptoState must clear all
// six buffers independently.
func TestSDUPCryptoStateFreeEachBufferOnce(t *testing.T) {
	s := &SDUPCryptoState{
		EncryptKeyTX: &Buffer{Data: []byte{1}},
		EncryptKeyRX: &Buffer{Data: []byte{2}},
		MACKeyTX:     &Buffer{Data: []byte{3}},
		MACKeyRX:     &Buffer{Data: []byte{4}},
		IVTX:         &Buffer{Data: []byte{5}},
		IVRX:         &Buffer{Data: []byte{6}},
	}
	freeSDUPCryptoState(s)
	for name, b := range map[string]*Buffer{
		"EncryptKeyTX": s.EncryptKeyTX,
		"EncryptKeyRX": s.EncryptKeyRX,
		"MACKeyTX":     s.MACKeyTX,
		"MACKeyRX":     s.MACKeyRX,
		"IVTX":         s.IVTX,
		"IVRX":         s.IVRX,
	} {
		if b.Data != nil {
			t.Errorf("%s.Data = %v, want cleared (nil)", name, b.Data)
		}
	}
}

func TestSDUPCryptoStateRoundTrip(t *testing.T) {
	s := &SDUPCryptoState{
		Enabled:       true,
		EnableEncrypt: true,
		PortID:        7,
		CompressAlg:   "none",
		EncryptAlg:    "AES256",
		MACAlg:        "SHA256",
		EncryptKeyTX:  &Buffer{Data: []byte{0xAA, 0xBB}},
		EncryptKeyRX:  &Buffer{Data: []byte{0xCC}},
		MACKeyTX:      &Buffer{Data: []byte{0xDD, 0xEE, 0xFF}},
	}
	buf := make([]byte, sdupCryptoStateWireLen(s))
	w := wire.NewWriter(buf)
	sdupCryptoStateEncode(w, s)
	if w.Off() != len(buf) {
		t.Fatalf("encode wrote %d, wireLen predicted %d", w.Off(), len(buf))
	}
	got, err := sdupCryptoStateDecode(wire.NewReader(buf))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.PortID != 7 || got.EncryptAlg != "AES256" {
		t.Fatalf("got %+v", got)
	}
	if string(got.EncryptKeyTX.Data) != "\xaa\xbb" {
		t.Fatalf("EncryptKeyTX = %x", got.EncryptKeyTX.Data)
	}
	if got.MACKeyRX != nil {
		t.Fatalf("MACKeyRX should decode nil for an absent buffer, got %+v", got.MACKeyRX)
	}
}
