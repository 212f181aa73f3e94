package rlp

import (
	"bytes"
	"errors"
	"math/big"
	"unicode/utf8"

	"github.com/holiman/uint256"
)

// Stream reads RLP items sequentially from an in-memory buffer. List scopes
// opened with List are closed sub-buffers: reads inside a list never see
// bytes past its end. A Stream is not safe for concurrent use.
type Stream struct {
	data     []byte
	pos      int
	stack    []int // exclusive end positions of the open lists
	cfg      Config
	maxDepth int
}

// NewStream returns a Stream over data using the default limits.
func NewStream(data []byte) *Stream {
	return newStream(data, DefaultConfig())
}

func newStream(data []byte, cfg Config) *Stream {
	return &Stream{data: data, cfg: cfg}
}

// Pos returns the offset of the next unread byte.
func (s *Stream) Pos() int { return s.pos }

// Depth returns the number of currently open lists.
func (s *Stream) Depth() int { return len(s.stack) }

// MaxDepth returns the deepest nesting reached so far.
func (s *Stream) MaxDepth() int { return s.maxDepth }

// Remaining returns the number of unread bytes in the current scope.
func (s *Stream) Remaining() int { return s.limit() - s.pos }

// limit returns the current read boundary.
func (s *Stream) limit() int {
	if len(s.stack) > 0 {
		return s.stack[len(s.stack)-1]
	}
	return len(s.data)
}

// header reads the prefix of the next item without consuming it. Inside a
// list, an item that runs past the list end is ErrInvalidLength.
func (s *Stream) header() (kind Kind, prefixLen, size uint64, err error) {
	lim := s.limit()
	if s.pos >= lim {
		return 0, 0, 0, ErrInputTooShort
	}
	kind, prefixLen, size, err = ReadLength(s.data[s.pos:lim], s.cfg.MaxLength)
	if errors.Is(err, ErrInputTooShort) && len(s.stack) > 0 {
		err = ErrInvalidLength
	}
	return kind, prefixLen, size, err
}

// Kind returns the type and payload size of the next item without
// consuming it.
func (s *Stream) Kind() (Kind, uint64, error) {
	kind, _, size, err := s.header()
	return kind, size, err
}

// readItem consumes the next item and returns its kind and payload. For
// Byte kind the payload is the byte itself.
func (s *Stream) readItem() (Kind, []byte, error) {
	kind, prefixLen, size, err := s.header()
	if err != nil {
		return 0, nil, err
	}
	start := s.pos + int(prefixLen)
	end := start + int(size)
	s.pos = end
	return kind, s.data[start:end], nil
}

// Bytes reads a string item. The result aliases the underlying buffer.
func (s *Stream) Bytes() ([]byte, error) {
	kind, _, _, err := s.header()
	if err != nil {
		return nil, err
	}
	if kind == List {
		return nil, ErrUnexpectedList
	}
	_, payload, err := s.readItem()
	return payload, err
}

// Text reads a string item and checks that it is valid UTF-8.
func (s *Stream) Text() (string, error) {
	b, err := s.Bytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUtf8
	}
	return string(b), nil
}

// Raw reads the next item and returns its complete encoding, prefix
// included. The result aliases the underlying buffer.
func (s *Stream) Raw() ([]byte, error) {
	start := s.pos
	if _, _, err := s.readItem(); err != nil {
		return nil, err
	}
	return s.data[start:s.pos], nil
}

// Uint64 reads an unsigned integer.
func (s *Stream) Uint64() (uint64, error) {
	return s.uint(64)
}

// uint reads an unsigned integer that must fit in bits.
func (s *Stream) uint(bits int) (uint64, error) {
	b, err := s.intBytes()
	if err != nil {
		return 0, err
	}
	if len(b) > bits/8 {
		return 0, ErrValueTooLong
	}
	v := readBigEndian(b)
	if bits < 64 && v >= 1<<uint(bits) {
		return 0, ErrValueTooLong
	}
	return v, nil
}

// intBytes reads a string item holding a canonical big-endian integer:
// no leading zero byte, and zero only as the empty string.
func (s *Stream) intBytes() ([]byte, error) {
	b, err := s.Bytes()
	if err != nil {
		return nil, err
	}
	if len(b) > 0 && b[0] == 0 {
		return nil, ErrNonMinimalEncoding
	}
	return b, nil
}

// Bool reads a boolean: the empty string is false, 0x01 is true.
func (s *Stream) Bool() (bool, error) {
	v, err := s.uint(8)
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrValueTooLong
	}
}

// BigInt reads a non-negative integer of arbitrary size.
func (s *Stream) BigInt() (*big.Int, error) {
	b, err := s.intBytes()
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

// Uint256 reads an unsigned integer of at most 256 bits.
func (s *Stream) Uint256() (*uint256.Int, error) {
	b, err := s.intBytes()
	if err != nil {
		return nil, err
	}
	if len(b) > 32 {
		return nil, ErrValueTooLong
	}
	return new(uint256.Int).SetBytes(b), nil
}

// List enters the next item, which must be a list, and returns its payload
// size. Subsequent reads are confined to the list until ListEnd.
func (s *Stream) List() (uint64, error) {
	kind, prefixLen, size, err := s.header()
	if err != nil {
		return 0, err
	}
	if kind != List {
		return 0, ErrUnexpectedString
	}
	if len(s.stack) >= s.cfg.MaxDepth {
		return 0, ErrDepthExceeded
	}
	s.pos += int(prefixLen)
	s.stack = append(s.stack, s.pos+int(size))
	if len(s.stack) > s.maxDepth {
		s.maxDepth = len(s.stack)
	}
	return size, nil
}

// ListEnd leaves the current list. Every byte of the list must have been
// consumed.
func (s *Stream) ListEnd() error {
	if len(s.stack) == 0 {
		return errNotInList
	}
	if s.pos != s.stack[len(s.stack)-1] {
		return ErrUnexpectedTrailing
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

// MoreInList reports whether the current list has unread items.
func (s *Stream) MoreInList() bool {
	return len(s.stack) > 0 && s.pos < s.stack[len(s.stack)-1]
}

// FromList calls fn between List and ListEnd.
func (s *Stream) FromList(fn func() error) error {
	if _, err := s.List(); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}
	return s.ListEnd()
}

// Value reads the next item as a Value. String contents are copied.
func (s *Stream) Value() (Value, error) {
	kind, _, _, err := s.header()
	if err != nil {
		return Value{}, err
	}
	if kind != List {
		b, err := s.Bytes()
		if err != nil {
			return Value{}, err
		}
		return StringValue(bytes.Clone(b)), nil
	}
	if _, err := s.List(); err != nil {
		return Value{}, err
	}
	items := []Value{}
	for s.MoreInList() {
		item, err := s.Value()
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
	if err := s.ListEnd(); err != nil {
		return Value{}, err
	}
	return ListValue(items...), nil
}
