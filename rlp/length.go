package rlp

import "fmt"

// Kind represents the type of an RLP value.
type Kind int

const (
	Byte   Kind = iota // Single byte in [0x00, 0x7f], encoded as itself.
	String             // RLP string (including empty string).
	List               // RLP list.
)

func (k Kind) String() string {
	switch k {
	case Byte:
		return "Byte"
	case String:
		return "String"
	case List:
		return "List"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Prefix offsets. Payloads of up to maxShortSize bytes use the short form.
const (
	offsetShortString = 0x80
	offsetLongString  = 0xb7
	offsetShortList   = 0xc0
	offsetLongList    = 0xf7

	maxShortSize = 55
)

// AppendLength appends the minimal prefix for a payload of the given kind
// and size to dst. Byte kind has no prefix. The single-byte string rule
// depends on payload content and is applied by the callers that see it.
func AppendLength(dst []byte, kind Kind, size uint64) []byte {
	var short, long byte
	switch kind {
	case String:
		short, long = offsetShortString, offsetLongString
	case List:
		short, long = offsetShortList, offsetLongList
	default:
		return dst
	}
	if size <= maxShortSize {
		return append(dst, short+byte(size))
	}
	dst = append(dst, long+byte(uintByteLen(size)))
	return appendUintBE(dst, size)
}

// ReadLength inspects the prefix at the start of buf. It returns the kind,
// the number of prefix bytes and the payload size. Payload bytes begin at
// buf[prefixLen]; for Byte kind the prefix is empty and the payload is
// buf[0] itself.
//
// The prefix must be minimal, the size must not exceed maxLength and buf
// must hold the complete payload.
func ReadLength(buf []byte, maxLength uint64) (kind Kind, prefixLen, size uint64, err error) {
	if len(buf) == 0 {
		return 0, 0, 0, ErrInputTooShort
	}
	b := buf[0]
	switch {
	case b < offsetShortString:
		return Byte, 0, 1, nil
	case b <= offsetLongString:
		kind, prefixLen, size = String, 1, uint64(b-offsetShortString)
	case b < offsetShortList:
		kind = String
		prefixLen, size, err = readLongSize(buf, b-offsetLongString)
	case b <= offsetLongList:
		kind, prefixLen, size = List, 1, uint64(b-offsetShortList)
	default:
		kind = List
		prefixLen, size, err = readLongSize(buf, b-offsetLongList)
	}
	if err != nil {
		return 0, 0, 0, err
	}
	if size > maxLength {
		return 0, 0, 0, ErrValueTooLong
	}
	if uint64(len(buf))-prefixLen < size {
		return 0, 0, 0, ErrInputTooShort
	}
	if kind == String && size == 1 && buf[1] < offsetShortString {
		return 0, 0, 0, ErrNonMinimalEncoding
	}
	return kind, prefixLen, size, nil
}

// readLongSize decodes the big-endian size that follows a long-form prefix
// byte. lenOfLen is always in [1, 8].
func readLongSize(buf []byte, lenOfLen byte) (prefixLen, size uint64, err error) {
	n := uint64(lenOfLen)
	if n == 0 || n > 8 {
		return 0, 0, ErrInvalidLength
	}
	if uint64(len(buf)) < 1+n {
		return 0, 0, ErrInputTooShort
	}
	if buf[1] == 0 {
		return 0, 0, ErrNonMinimalEncoding
	}
	size = readBigEndian(buf[1 : 1+n])
	if size <= maxShortSize {
		return 0, 0, ErrNonMinimalEncoding
	}
	return 1 + n, size, nil
}

// headSize returns the number of prefix bytes for a payload of the given size.
func headSize(size uint64) int {
	if size <= maxShortSize {
		return 1
	}
	return 1 + uintByteLen(size)
}

func readBigEndian(b []byte) uint64 {
	var val uint64
	for _, x := range b {
		val = (val << 8) | uint64(x)
	}
	return val
}

// appendUintBE appends u as big-endian with no leading zeros. Zero appends
// nothing.
func appendUintBE(dst []byte, u uint64) []byte {
	for shift := (uintByteLen(u) - 1) * 8; shift >= 0; shift -= 8 {
		dst = append(dst, byte(u>>uint(shift)))
	}
	return dst
}

// uintByteLen returns the number of bytes needed to encode u in big-endian.
func uintByteLen(u uint64) int {
	switch {
	case u == 0:
		return 0
	case u < (1 << 8):
		return 1
	case u < (1 << 16):
		return 2
	case u < (1 << 24):
		return 3
	case u < (1 << 32):
		return 4
	case u < (1 << 40):
		return 5
	case u < (1 << 48):
		return 6
	case u < (1 << 56):
		return 7
	default:
		return 8
	}
}
