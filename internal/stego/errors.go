package stego

import (
	"errors"
	"fmt"
)

// Kind classifies a codec failure. Every error returned by this package is an
// *Error carrying one of these kinds.
type Kind int

const (
	// KindInvalidInput reports empty or whitespace-only text, or an unusable
	// Config.
	KindInvalidInput Kind = iota + 1

	// KindCapacity reports a payload that does not fit in the image.
	KindCapacity

	// KindEncoding reports a character outside the single-byte range.
	KindEncoding

	// KindFraming reports a bit count that is not byte aligned, or a header
	// that claims more bits than the image can hold.
	KindFraming

	// KindOverflow reports an integer too wide for its fixed-width field.
	KindOverflow
)

// String returns the kind name used in error messages and tool responses.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindCapacity:
		return "capacity"
	case KindEncoding:
		return "encoding"
	case KindFraming:
		return "framing"
	case KindOverflow:
		return "overflow"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the single error type returned by the codec.
type Error struct {
	Kind Kind   // failure class
	Op   string // operation that failed, e.g. "encode"
	Msg  string // human-readable detail
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s error: %s", e.Op, e.Kind, e.Msg)
}

func newError(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or 0 if err
// does not wrap a codec error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err wraps a codec error of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
