// Package secstate turns the wire-level SDUPCryptoState sub-object
// (msg.SDUPCryptoState) into runnable AEAD seal/open and key
// derivation operations, rather than leaving its algorithm names and
// key buffers as inert strings (spec.md §3 SDUPCryptoState).
package secstate

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	"github.com/irati-go/ctrlplane/msg"
)

var (
	ErrDisabled             = errors.New("secstate: SDU protection not enabled")
	ErrUnsupportedAlgorithm = errors.New("secstate: unsupported encryption algorithm")
	ErrMissingKey           = errors.New("secstate: key material not derived")
)

// ChaCha20Poly1305 is the only EncryptAlg this package currently
// drives. Other algorithm names round-trip fine through the codec
// (msg.SDUPCryptoState carries them as opaque strings) but DeriveKeys
// and Seal/Open reject them until a cipher is wired in for them.
const ChaCha20Poly1305 = "chacha20poly1305"

// DeriveKeys expands masterSecret into s's six key/IV buffers with
// HKDF-SHA256, keyed off s.PortID and each buffer's role so TX and RX
// never collide. It requires s.Enabled and defaults s.EncryptAlg to
// ChaCha20Poly1305 if unset.
func DeriveKeys(s *msg.SDUPCryptoState, masterSecret, salt []byte) error {
	if s == nil || !s.Enabled {
		return ErrDisabled
	}
	if s.EncryptAlg == "" {
		s.EncryptAlg = ChaCha20Poly1305
	}
	if s.EncryptAlg != ChaCha20Poly1305 {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s.EncryptAlg)
	}

	derive := func(label string, n int) (*msg.Buffer, error) {
		info := []byte(fmt.Sprintf("%s:%s:%d", s.EncryptAlg, label, s.PortID))
		r := hkdf.New(sha256.New, masterSecret, salt, info)
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		return &msg.Buffer{Data: buf}, nil
	}

	var err error
	if s.EncryptKeyTX, err = derive("encrypt-tx", chacha20poly1305.KeySize); err != nil {
		return err
	}
	if s.EncryptKeyRX, err = derive("encrypt-rx", chacha20poly1305.KeySize); err != nil {
		return err
	}
	// MACKeyTX/RX round-trip on the wire for algorithms with a
	// separate MAC key; chacha20poly1305's combined AEAD doesn't need
	// one, but the buffers are still populated so a later Poly1305-
	// only cipher could consume them.
	if s.MACKeyTX, err = derive("mac-tx", chacha20poly1305.KeySize); err != nil {
		return err
	}
	if s.MACKeyRX, err = derive("mac-rx", chacha20poly1305.KeySize); err != nil {
		return err
	}
	if s.IVTX, err = derive("iv-tx", chacha20poly1305.NonceSize); err != nil {
		return err
	}
	if s.IVRX, err = derive("iv-rx", chacha20poly1305.NonceSize); err != nil {
		return err
	}
	return nil
}

// Seal encrypts and authenticates plaintext under s's TX key/nonce,
// binding aad as additional authenticated data. The caller owns
// nonce uniqueness per key; this package does not advance IVTX
// between calls.
func Seal(s *msg.SDUPCryptoState, plaintext, aad []byte) ([]byte, error) {
	aead, err := txAEAD(s)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, s.IVTX.Data, plaintext, aad), nil
}

// Open authenticates and decrypts ciphertext under s's RX key/nonce.
func Open(s *msg.SDUPCryptoState, ciphertext, aad []byte) ([]byte, error) {
	aead, err := rxAEAD(s)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, s.IVRX.Data, ciphertext, aad)
}

func txAEAD(s *msg.SDUPCryptoState) (aeadCipher, error) {
	if s == nil || !s.Enabled || !s.EnableEncrypt {
		return nil, ErrDisabled
	}
	if s.EncryptKeyTX == nil || s.IVTX == nil {
		return nil, ErrMissingKey
	}
	return chacha20poly1305.New(s.EncryptKeyTX.Data)
}

func rxAEAD(s *msg.SDUPCryptoState) (aeadCipher, error) {
	if s == nil || !s.Enabled || !s.EnableEncrypt {
		return nil, ErrDisabled
	}
	if s.EncryptKeyRX == nil || s.IVRX == nil {
		return nil, ErrMissingKey
	}
	return chacha20poly1305.New(s.EncryptKeyRX.Data)
}

// aeadCipher is the subset of cipher.AEAD this package calls.
type aeadCipher interface {
	Seal(dst, nonce, plaintext, additionalData []byte) []byte
	Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
}
