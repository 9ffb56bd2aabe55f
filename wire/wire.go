// Package wire provides the low-level primitives shared by every
// control-message sub-object codec: a moving read/write cursor over a
// flat byte buffer and the canonical sub-object kind order that the
// message layout walker traverses.
package wire

import (
	"encoding/binary"
	"errors"
)

// Errors returned by cursor operations. Codec-level errors (unknown
// ordinal, trailing bytes, etc.) live in package msg; these are the
// primitive, kind-agnostic failures.
var (
	ErrTruncated = errors.New("wire: truncated input")
	ErrOversize  = errors.New("wire: value exceeds wire length limit")
)

// MaxStringLen is the largest length a String sub-object's u16
// length prefix can encode.
const MaxStringLen = 1<<16 - 1

// Kind identifies a sub-object type. The declared order of the Kind
// constants is the canonical traversal order used by the layout
// walker (package msg) for encode, decode, length and free passes.
// This order is load-bearing: it must match encode and decode, and
// it is exercised empirically by round-trip tests.
type Kind int

const (
	KindName Kind = iota
	KindString
	KindFlowSpec
	KindDIFConfig
	KindDTPConfig
	KindDTCPConfig
	KindQueryRIBResp
	KindPFFEntryList
	KindSDUPCryptoState
	KindDIFProperties
	KindIPCPNeighborList
	KindMediaReport
	KindBuffer
	numKinds
)

// NumKinds returns the number of distinct sub-object kinds in the
// canonical order.
func NumKinds() int { return int(numKinds) }

func (k Kind) String() string {
	switch k {
	case KindName:
		return "Name"
	case KindString:
		return "String"
	case KindFlowSpec:
		return "FlowSpec"
	case KindDIFConfig:
		return "DIFConfig"
	case KindDTPConfig:
		return "DTPConfig"
	case KindDTCPConfig:
		return "DTCPConfig"
	case KindQueryRIBResp:
		return "QueryRIBResp"
	case KindPFFEntryList:
		return "PFFEntryList"
	case KindSDUPCryptoState:
		return "SDUPCryptoState"
	case KindDIFProperties:
		return "DIFProperties"
	case KindIPCPNeighborList:
		return "IPCPNeighborList"
	case KindMediaReport:
		return "MediaReport"
	case KindBuffer:
		return "Buffer"
	default:
		return "Kind(?)"
	}
}

// Writer is an append-only cursor over a pre-sized output buffer. The
// buffer must be exactly len(buf) == the precomputed wire length;
// writes past the end panic, which is a programmer error (a
// serlen/serialize mismatch), not a runtime condition callers need to
// recover from.
type Writer struct {
	buf []byte
	off int
}

// NewWriter wraps buf (expected to be exactly the precomputed wire
// length) for sequential writes.
func NewWriter(buf []byte) *Writer { return &Writer{buf: buf} }

// Bytes returns the portion of the buffer written so far.
func (w *Writer) Bytes() []byte { return w.buf[:w.off] }

// Off returns the current write offset.
func (w *Writer) Off() int { return w.off }

// Raw appends b verbatim.
func (w *Writer) Raw(b []byte) { w.off += copy(w.buf[w.off:], b) }

func (w *Writer) U8(v uint8) {
	w.buf[w.off] = v
	w.off++
}

func (w *Writer) U16(v uint16) {
	binary.LittleEndian.PutUint16(w.buf[w.off:], v)
	w.off += 2
}

func (w *Writer) U32(v uint32) {
	binary.LittleEndian.PutUint32(w.buf[w.off:], v)
	w.off += 4
}

func (w *Writer) U64(v uint64) {
	binary.LittleEndian.PutUint64(w.buf[w.off:], v)
	w.off += 8
}

func (w *Writer) I8(v int8)   { w.U8(uint8(v)) }
func (w *Writer) I16(v int16) { w.U16(uint16(v)) }
func (w *Writer) I32(v int32) { w.U32(uint32(v)) }
func (w *Writer) I64(v int64) { w.U64(uint64(v)) }

func (w *Writer) Bool(v bool) {
	if v {
		w.U8(1)
	} else {
		w.U8(0)
	}
}

// Reader is a bounds-checked cursor over an input buffer.
type Reader struct {
	buf []byte
	off int
}

func NewReader(buf []byte) *Reader { return &Reader{buf: buf} }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

// Off returns the current read offset (bytes consumed so far).
func (r *Reader) Off() int { return r.off }

func (r *Reader) need(n int) error {
	if r.Remaining() < n {
		return ErrTruncated
	}
	return nil
}

func (r *Reader) Raw(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *Reader) U8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

func (r *Reader) U16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v, nil
}

func (r *Reader) U32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

func (r *Reader) U64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v, nil
}

func (r *Reader) I8() (int8, error) {
	v, err := r.U8()
	return int8(v), err
}
func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}
func (r *Reader) I64() (int64, error) {
	v, err := r.U64()
	return int64(v), err
}

func (r *Reader) Bool() (bool, error) {
	v, err := r.U8()
	return v != 0, err
}
