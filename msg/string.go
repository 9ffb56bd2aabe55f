package msg

import "github.com/irati-go/ctrlplane/wire"

// encodeString writes the String sub-object: a u16 length prefix
// (capped at wire.MaxStringLen) followed by the raw bytes. An empty
// string encodes as length 0; the wire form cannot distinguish it
// from an absent one (spec.md §4.1 String contract).
func encodeString(w *wire.Writer, s string) {
	if len(s) > wire.MaxStringLen {
		s = s[:wire.MaxStringLen]
	}
	w.U16(uint16(len(s)))
	w.Raw([]byte(s))
}

func stringWireLen(s string) int {
	if len(s) > wire.MaxStringLen {
		return 2 + wire.MaxStringLen
	}
	return 2 + len(s)
}

func decodeString(r *wire.Reader) (string, error) {
	n, err := r.U16()
	if err != nil {
		return "", err
	}
	b, err := r.Raw(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// checkStringLen reports ErrOversizeString if s cannot be represented
// by the u16 length prefix. Serialize applies it to top-level string
// and name slots before encoding, so oversize values there are
// rejected rather than truncated; strings nested inside other
// sub-objects are not checked and are cut to wire.MaxStringLen by
// encodeString.
func checkStringLen(s string) error {
	if len(s) > wire.MaxStringLen {
		return ErrOversizeString
	}
	return nil
}
