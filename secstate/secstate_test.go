package secstate

import (
	"bytes"
	"testing"

	"github.com/irati-go/ctrlplane/msg"
)

func enabledState(port uint32) *msg.SDUPCryptoState {
	return &msg.SDUPCryptoState{
		Enabled:       true,
		EnableEncrypt: true,
		PortID:        port,
	}
}

func TestDeriveKeysSealOpenRoundTrip(t *testing.T) {
	secret := []byte("shared master secret material")
	alice := enabledState(10)
	bob := enabledState(10)

	if err := DeriveKeys(alice, secret, nil); err != nil {
		t.Fatalf("derive alice: %v", err)
	}
	if err := DeriveKeys(bob, secret, nil); err != nil {
		t.Fatalf("derive bob: %v", err)
	}

	// Both endpoints derive the same port-scoped key schedule, so
	// their TX keys are identical. TX and RX keys use different
	// labels and differ, which is why bob is handed alice's TX key
	// as his RX key below.
	if !bytes.Equal(alice.EncryptKeyTX.Data, bob.EncryptKeyTX.Data) {
		t.Fatal("same masterSecret+port must derive identical key material")
	}

	plaintext := []byte("hello control plane")
	aad := []byte("envelope-context")

	ct, err := Seal(alice, plaintext, aad)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}

	// Bob decrypts using alice's TX key as his RX key (simulating the
	// peer side of the same derived schedule).
	bob.EncryptKeyRX = alice.EncryptKeyTX
	bob.IVRX = alice.IVTX

	pt, err := Open(bob, ct, aad)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !bytes.Equal(pt, plaintext) {
		t.Fatalf("got %q, want %q", pt, plaintext)
	}
}

func TestOpenWrongAADFails(t *testing.T) {
	secret := []byte("another shared secret")
	s := enabledState(20)
	if err := DeriveKeys(s, secret, nil); err != nil {
		t.Fatalf("derive: %v", err)
	}
	ct, err := Seal(s, []byte("payload"), []byte("aad-a"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if _, err := Open(s, ct, []byte("aad-b")); err == nil {
		t.Fatal("expected authentication failure with mismatched aad")
	}
}

func TestDeriveKeysRejectsDisabledState(t *testing.T) {
	s := &msg.SDUPCryptoState{Enabled: false}
	if err := DeriveKeys(s, []byte("secret"), nil); err != ErrDisabled {
		t.Fatalf("got %v, want ErrDisabled", err)
	}
}

func TestDeriveKeysRejectsUnsupportedAlgorithm(t *testing.T) {
	s := enabledState(1)
	s.EncryptAlg = "aes-256-gcm"
	if err := DeriveKeys(s, []byte("secret"), nil); err == nil {
		t.Fatal("expected error for unsupported algorithm")
	}
}

func TestSealWithoutDeriveFails(t *testing.T) {
	s := enabledState(1)
	if _, err := Seal(s, []byte("x"), nil); err != ErrMissingKey {
		t.Fatalf("got %v, want ErrMissingKey", err)
	}
}
