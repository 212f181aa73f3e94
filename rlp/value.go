package rlp

import (
	"bytes"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Value is an RLP item in its structural form: either a byte string or an
// ordered list of values. The zero Value is the empty string.
type Value struct {
	list  bool
	str   []byte
	items []Value
}

// StringValue returns a byte-string Value holding b.
func StringValue(b []byte) Value {
	return Value{str: b}
}

// ListValue returns a list Value holding items in order.
func ListValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{list: true, items: items}
}

// Kind reports String or List. Single bytes are reported as String.
func (v Value) Kind() Kind {
	if v.list {
		return List
	}
	return String
}

// IsList reports whether v is a list.
func (v Value) IsList() bool { return v.list }

// Bytes returns the content of a string value, or nil for a list.
func (v Value) Bytes() []byte {
	if v.list {
		return nil
	}
	return v.str
}

// Items returns the elements of a list value, or nil for a string.
func (v Value) Items() []Value {
	if !v.list {
		return nil
	}
	return v.items
}

// Len returns the byte length of a string or the element count of a list.
func (v Value) Len() int {
	if v.list {
		return len(v.items)
	}
	return len(v.str)
}

// Equal reports whether v and o have the same structure and content.
// A nil and an empty string are equal.
func (v Value) Equal(o Value) bool {
	if v.list != o.list {
		return false
	}
	if !v.list {
		return bytes.Equal(v.str, o.str)
	}
	if len(v.items) != len(o.items) {
		return false
	}
	for i := range v.items {
		if !v.items[i].Equal(o.items[i]) {
			return false
		}
	}
	return true
}

// EncodeRLP implements Encodable.
func (v Value) EncodeRLP(b *EncBuffer) {
	if !v.list {
		b.WriteBytes(v.str)
		return
	}
	idx := b.List()
	for _, item := range v.items {
		item.EncodeRLP(b)
	}
	b.ListEnd(idx)
}

// DecodeRLP implements Decodable.
func (v *Value) DecodeRLP(s *Stream) error {
	dec, err := s.Value()
	if err != nil {
		return err
	}
	*v = dec
	return nil
}

// String renders v for debugging: strings as 0x-prefixed hex, lists in
// square brackets.
func (v Value) String() string {
	var sb strings.Builder
	v.format(&sb)
	return sb.String()
}

func (v Value) format(sb *strings.Builder) {
	if !v.list {
		sb.WriteString(hexutil.Encode(v.str))
		return
	}
	sb.WriteByte('[')
	for i, item := range v.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		item.format(sb)
	}
	sb.WriteByte(']')
}
