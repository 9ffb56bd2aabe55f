package msg

import "github.com/irati-go/ctrlplane/wire"

// Buffer is the sub-object kind wire.KindBuffer: a u32-length-prefixed
// opaque byte sequence. A nil Data means "no buffer present" and
// encodes as length 0; decode of a zero-length prefix yields a nil
// Data, not an empty non-nil slice, per spec.md §4.1.
type Buffer struct {
	Data []byte
}

func (b *Buffer) wireLen() int {
	if b == nil {
		return 4
	}
	return 4 + len(b.Data)
}

func (b *Buffer) encode(w *wire.Writer) {
	if b == nil || b.Data == nil {
		w.U32(0)
		return
	}
	w.U32(uint32(len(b.Data)))
	w.Raw(b.Data)
}

func decodeBuffer(r *wire.Reader) (*Buffer, error) {
	n, err := r.U32()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	raw, err := r.Raw(int(n))
	if err != nil {
		return nil, err
	}
	data := make([]byte, len(raw))
	copy(data, raw)
	return &Buffer{Data: data}, nil
}

func freeBuffer(b *Buffer) {
	if b == nil {
		return
	}
	b.Data = nil
}
