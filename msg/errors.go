package msg

import "errors"

// Codec error taxonomy (spec.md §7 "Codec errors"). These are
// sentinel values; callers compare with errors.Is, and wrapping call
// sites attach context with fmt.Errorf("...: %w", err).
var (
	ErrUnknownOrdinal    = errors.New("msg: unknown message ordinal")
	ErrTruncatedInput    = errors.New("msg: truncated input")
	ErrTrailingBytes     = errors.New("msg: trailing bytes after decode")
	ErrOversizeString    = errors.New("msg: string exceeds wire length limit")
	ErrAllocFailed       = errors.New("msg: allocation failed")
	ErrInconsistentLength = errors.New("msg: decode consumed length does not match input size")
)
