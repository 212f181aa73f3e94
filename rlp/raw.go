package rlp

import "math"

// RawValue holds a complete, already-encoded RLP item. It is written
// verbatim by the encoder and captured verbatim by the decoder.
type RawValue []byte

// EncodeRLP implements Encodable.
func (r RawValue) EncodeRLP(b *EncBuffer) { b.WriteRaw(r) }

// Split returns the kind and content of the first item in b and the bytes
// that follow it. For Byte kind the content is the byte itself.
func Split(b []byte) (k Kind, content, rest []byte, err error) {
	k, prefixLen, size, err := ReadLength(b, math.MaxUint64)
	if err != nil {
		return 0, nil, b, err
	}
	end := prefixLen + size
	return k, b[prefixLen:end], b[end:], nil
}

// SplitString splits b into the content of a string item and the rest.
func SplitString(b []byte) (content, rest []byte, err error) {
	k, content, rest, err := Split(b)
	if err != nil {
		return nil, b, err
	}
	if k == List {
		return nil, b, ErrUnexpectedList
	}
	return content, rest, nil
}

// SplitList splits b into the payload of a list item and the rest.
func SplitList(b []byte) (content, rest []byte, err error) {
	k, content, rest, err := Split(b)
	if err != nil {
		return nil, b, err
	}
	if k != List {
		return nil, b, ErrUnexpectedString
	}
	return content, rest, nil
}

// SplitUint64 splits b into a canonical unsigned integer and the rest.
func SplitUint64(b []byte) (x uint64, rest []byte, err error) {
	content, rest, err := SplitString(b)
	if err != nil {
		return 0, b, err
	}
	switch {
	case len(content) > 8:
		return 0, b, ErrValueTooLong
	case len(content) > 0 && content[0] == 0:
		return 0, b, ErrNonMinimalEncoding
	}
	return readBigEndian(content), rest, nil
}

// CountValues counts the encoded items in b, typically a list payload.
func CountValues(b []byte) (int, error) {
	n := 0
	for len(b) > 0 {
		_, _, rest, err := Split(b)
		if err != nil {
			return 0, err
		}
		b = rest
		n++
	}
	return n, nil
}

// BytesSize returns the encoded size of b as a string item.
func BytesSize(b []byte) uint64 {
	if len(b) == 1 && b[0] < offsetShortString {
		return 1
	}
	return uint64(headSize(uint64(len(b))) + len(b))
}

// StringSize returns the encoded size of s as a string item.
func StringSize(s string) uint64 {
	if len(s) == 1 && s[0] < offsetShortString {
		return 1
	}
	return uint64(headSize(uint64(len(s))) + len(s))
}

// ListSize returns the encoded size of a list with the given payload size.
func ListSize(contentSize uint64) uint64 {
	return uint64(headSize(contentSize)) + contentSize
}

// IntSize returns the encoded size of the unsigned integer x.
func IntSize(x uint64) int {
	if x < offsetShortString {
		return 1
	}
	return 1 + uintByteLen(x)
}
