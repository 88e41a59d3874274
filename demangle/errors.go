package demangle

import (
	"errors"
	"fmt"
)

// Sentinel errors for the decode failure kinds. Every failure returned by
// this package wraps exactly one of these.
var (
	// ErrMissingPrefix indicates the input does not start with '?'.
	ErrMissingPrefix = errors.New("demangle: missing '?' prefix")

	// ErrUnexpectedEnd indicates the input ended mid-construct.
	ErrUnexpectedEnd = errors.New("demangle: unexpected end of input")

	// ErrBadNumber indicates a number encoding with no terminator or a
	// byte outside the hex-nibble alphabet.
	ErrBadNumber = errors.New("demangle: bad number")

	// ErrBadArrayDimension indicates an array dimension of zero or less.
	ErrBadArrayDimension = errors.New("demangle: invalid array dimension")

	// ErrUnknownOperator indicates an unrecognized operator code.
	ErrUnknownOperator = errors.New("demangle: unknown operator name")

	// ErrUnknownFuncClass indicates an unrecognized function class byte.
	ErrUnknownFuncClass = errors.New("demangle: unknown function class")

	// ErrUnknownCallingConv indicates an unrecognized calling convention byte.
	ErrUnknownCallingConv = errors.New("demangle: unknown calling convention")

	// ErrUnknownStorageClass indicates an unrecognized storage class byte.
	ErrUnknownStorageClass = errors.New("demangle: unknown storage class")

	// ErrUnknownType indicates an unrecognized type encoding byte.
	ErrUnknownType = errors.New("demangle: unknown type encoding")

	// ErrInvalidBackref indicates a back-reference digit with no
	// corresponding memorized entry.
	ErrInvalidBackref = errors.New("demangle: invalid back-reference")

	// ErrInvalidText indicates an identifier fragment that is not valid text.
	ErrInvalidText = errors.New("demangle: identifier is not valid UTF-8")
)

// DecodeError wraps a sentinel error with the unconsumed remainder of the
// input at the point of failure.
type DecodeError struct {
	Err       error  // One of the sentinel errors above
	Remainder string // Input left unconsumed when decoding failed
}

func (e *DecodeError) Error() string {
	if e.Remainder == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: remaining input %q", e.Err, e.Remainder)
}

func (e *DecodeError) Unwrap() error { return e.Err }
