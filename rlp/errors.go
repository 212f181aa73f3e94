package rlp

import "errors"

var (
	// ErrInputTooShort is returned when the input ends before a complete
	// prefix or payload could be read.
	ErrInputTooShort = errors.New("rlp: input too short")

	// ErrValueTooLong is returned when a payload length exceeds the configured
	// maximum, or an integer does not fit its target type.
	ErrValueTooLong = errors.New("rlp: value length exceeds maximum")

	// ErrNonMinimalEncoding is returned when a size or integer is not in its
	// shortest form.
	ErrNonMinimalEncoding = errors.New("rlp: non-minimal encoding")

	// ErrInvalidLength is returned when an element overruns its enclosing
	// list or a fixed-size target receives the wrong number of bytes.
	ErrInvalidLength = errors.New("rlp: invalid length")

	// ErrUnexpectedString is returned when a string is found where a list was expected.
	ErrUnexpectedString = errors.New("rlp: expected list, got string")

	// ErrUnexpectedList is returned when a list is found where a string was expected.
	ErrUnexpectedList = errors.New("rlp: expected string, got list")

	// ErrUnexpectedTrailing is returned when bytes remain after a value.
	ErrUnexpectedTrailing = errors.New("rlp: unexpected trailing bytes")

	// ErrInvalidUtf8 is returned when decoding text that is not valid UTF-8.
	ErrInvalidUtf8 = errors.New("rlp: invalid utf-8 in string")

	// ErrDepthExceeded is returned when lists nest deeper than the configured limit.
	ErrDepthExceeded = errors.New("rlp: maximum nesting depth exceeded")

	// ErrUnsupportedType is returned when a Go type has no RLP mapping.
	ErrUnsupportedType = errors.New("rlp: unsupported type")

	errNotInList = errors.New("rlp: call of ListEnd outside of any list")
	errNilTarget = errors.New("rlp: decode target must be a non-nil pointer")
)
