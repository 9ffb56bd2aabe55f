package ctrldev

import (
	"errors"
	"fmt"
)

// Endpoint error taxonomy (spec.md §7 "Endpoint errors").
var (
	ErrNotBound       = errors.New("ctrldev: endpoint not bound")
	ErrPortInUse      = errors.New("ctrldev: port already bound")
	ErrBadPort        = errors.New("ctrldev: invalid port")
	ErrAlreadyBound   = errors.New("ctrldev: endpoint already bound")
	ErrClosed         = errors.New("ctrldev: endpoint closed")
	ErrWouldBlock     = errors.New("ctrldev: operation would block")
	ErrInterrupted    = errors.New("ctrldev: operation interrupted")
	ErrBufferTooSmall = errors.New("ctrldev: destination buffer too small")
)

// Dispatch error taxonomy (spec.md §7 "Dispatch errors").
var ErrNoHandler = errors.New("ctrldev: no handler registered for ordinal")

// HandlerRejected wraps a handler-supplied rejection code
// (spec.md §7 "HandlerRejected(code)").
type HandlerRejected struct {
	Code int32
}

func (e *HandlerRejected) Error() string {
	return fmt.Sprintf("ctrldev: handler rejected message (code %d)", e.Code)
}
