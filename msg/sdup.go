package msg

import "github.com/irati-go/ctrlplane/wire"

// SDUPCryptoState is the sub-object kind wire.KindSDUPCryptoState:
// the per-flow SDU-protection crypto configuration. Two booleans, a
// port id, three algorithm-name strings, and six opaque buffers, in
// that order (spec.md §4.1).
//
// The original source's free routine zeroed EncryptKeyRX twice instead
// of clearing EncryptKeyTX once (spec.md §9 REDESIGN FLAGS);
// freeSDUPCryptoState below clears each of the six buffers exactly
// once.
type SDUPCryptoState struct {
	Enabled       bool
	EnableEncrypt bool
	PortID        uint32
	CompressAlg   string
	EncryptAlg    string
	MACAlg        string
	EncryptKeyTX  *Buffer
	EncryptKeyRX  *Buffer
	MACKeyTX      *Buffer
	MACKeyRX      *Buffer
	IVTX          *Buffer
	IVRX          *Buffer
}

func sdupCryptoStateWireLen(s *SDUPCryptoState) int {
	if s == nil {
		s = &SDUPCryptoState{}
	}
	n := 1 + 1 + 4
	n += stringWireLen(s.CompressAlg) + stringWireLen(s.EncryptAlg) + stringWireLen(s.MACAlg)
	n += s.EncryptKeyTX.wireLen() + s.EncryptKeyRX.wireLen()
	n += s.MACKeyTX.wireLen() + s.MACKeyRX.wireLen()
	n += s.IVTX.wireLen() + s.IVRX.wireLen()
	return n
}

func sdupCryptoStateEncode(w *wire.Writer, s *SDUPCryptoState) {
	if s == nil {
		s = &SDUPCryptoState{}
	}
	w.Bool(s.Enabled)
	w.Bool(s.EnableEncrypt)
	w.U32(s.PortID)
	encodeString(w, s.CompressAlg)
	encodeString(w, s.EncryptAlg)
	encodeString(w, s.MACAlg)
	s.EncryptKeyTX.encode(w)
	s.EncryptKeyRX.encode(w)
	s.MACKeyTX.encode(w)
	s.MACKeyRX.encode(w)
	s.IVTX.encode(w)
	s.IVRX.encode(w)
}

func sdupCryptoStateDecode(r *wire.Reader) (*SDUPCryptoState, error) {
	s := &SDUPCryptoState{}
	var err error
	if s.Enabled, err = r.Bool(); err != nil {
		return nil, err
	}
	if s.EnableEncrypt, err = r.Bool(); err != nil {
		return nil, err
	}
	if s.PortID, err = r.U32(); err != nil {
		return nil, err
	}
	if s.CompressAlg, err = decodeString(r); err != nil {
		return nil, err
	}
	if s.EncryptAlg, err = decodeString(r); err != nil {
		return nil, err
	}
	if s.MACAlg, err = decodeString(r); err != nil {
		return nil, err
	}
	if s.EncryptKeyTX, err = decodeBuffer(r); err != nil {
		return nil, err
	}
	if s.EncryptKeyRX, err = decodeBuffer(r); err != nil {
		return nil, err
	}
	if s.MACKeyTX, err = decodeBuffer(r); err != nil {
		return nil, err
	}
	if s.MACKeyRX, err = decodeBuffer(r); err != nil {
		return nil, err
	}
	if s.IVTX, err = decodeBuffer(r); err != nil {
		return nil, err
	}
	if s.IVRX, err = decodeBuffer(r); err != nil {
		return nil, err
	}
	return s, nil
}

// freeSDUPCryptoState clears each of the six key/IV buffers exactly
// once. This is the fixed form of sdup_crypto_state_free: the
// original zeroed encrypt_key_rx twice and never touched
// encrypt_key_tx.
func freeSDUPCryptoState(s *SDUPCryptoState) {
	if s == nil {
		return
	}
	freeBuffer(s.EncryptKeyTX)
	freeBuffer(s.EncryptKeyRX)
	freeBuffer(s.MACKeyTX)
	freeBuffer(s.MACKeyRX)
	freeBuffer(s.IVTX)
	freeBuffer(s.IVRX)
}
