package rlp

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
)

var (
	encodableType = reflect.TypeOf((*Encodable)(nil)).Elem()
	bigIntType    = reflect.TypeOf(big.Int{})
	uint256Type   = reflect.TypeOf(uint256.Int{})
	rawValueType  = reflect.TypeOf(RawValue{})

	errNegativeBigInt = errors.New("rlp: cannot encode negative big.Int")
)

// ToBytes returns the canonical encoding of v.
func ToBytes(v Encodable) []byte {
	var b EncBuffer
	v.EncodeRLP(&b)
	return b.Bytes()
}

// Encode writes the RLP encoding of val to w.
func Encode(w io.Writer, val interface{}) error {
	b, err := EncodeToBytes(val)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// EncodeToBytes returns the RLP encoding of val.
//
// Supported: bool, unsigned integers, string, []byte, [N]byte, slices and
// arrays of supported types, pointers (nil encodes as the empty value of the
// element type), *big.Int, *uint256.Int, RawValue, Value and any type
// implementing Encodable. Structs must implement Encodable themselves.
func EncodeToBytes(val interface{}) ([]byte, error) {
	var b EncBuffer
	if err := b.encode(reflect.ValueOf(val), 0); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// encode writes v into b. depth counts enclosing lists, pointers and
// interfaces, and guards against self-referencing values such as an
// []interface{} that contains itself.
func (b *EncBuffer) encode(v reflect.Value, depth int) error {
	if !v.IsValid() {
		b.buf = append(b.buf, offsetShortString)
		return nil
	}
	t := v.Type()
	if t.Implements(encodableType) {
		if t.Kind() == reflect.Ptr && v.IsNil() {
			b.writeEmpty(t.Elem())
			return nil
		}
		v.Interface().(Encodable).EncodeRLP(b)
		return nil
	}
	if v.CanAddr() && reflect.PointerTo(t).Implements(encodableType) {
		v.Addr().Interface().(Encodable).EncodeRLP(b)
		return nil
	}

	switch t {
	case bigIntType:
		if v.CanAddr() {
			return b.encodeBigInt(v.Addr().Interface().(*big.Int))
		}
		i := v.Interface().(big.Int)
		return b.encodeBigInt(&i)
	case uint256Type:
		i := v.Interface().(uint256.Int)
		b.WriteUint256(&i)
		return nil
	}

	switch t.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			b.buf = append(b.buf, offsetShortString)
			return nil
		}
		if depth >= DefaultMaxDepth {
			return ErrDepthExceeded
		}
		return b.encode(v.Elem(), depth+1)

	case reflect.Ptr:
		if v.IsNil() {
			b.writeEmpty(t.Elem())
			return nil
		}
		if depth >= DefaultMaxDepth {
			return ErrDepthExceeded
		}
		return b.encode(v.Elem(), depth+1)

	case reflect.Bool:
		b.WriteBool(v.Bool())
		return nil

	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Uintptr:
		b.WriteUint64(v.Uint())
		return nil

	case reflect.String:
		b.WriteString(v.String())
		return nil

	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			b.WriteBytes(v.Bytes())
			return nil
		}
		return b.encodeList(v, depth)

	case reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			data := make([]byte, v.Len())
			reflect.Copy(reflect.ValueOf(data), v)
			b.WriteBytes(data)
			return nil
		}
		return b.encodeList(v, depth)

	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedType, t)
	}
}

func (b *EncBuffer) encodeList(v reflect.Value, depth int) error {
	if depth >= DefaultMaxDepth {
		return ErrDepthExceeded
	}
	idx := b.List()
	for i := 0; i < v.Len(); i++ {
		if err := b.encode(v.Index(i), depth+1); err != nil {
			b.open--
			return err
		}
	}
	b.ListEnd(idx)
	return nil
}

func (b *EncBuffer) encodeBigInt(i *big.Int) error {
	if i.Sign() < 0 {
		return errNegativeBigInt
	}
	b.WriteBigInt(i)
	return nil
}

// writeEmpty writes the encoding of a nil pointer to t: the empty list for
// list-shaped types, the empty string otherwise.
func (b *EncBuffer) writeEmpty(t reflect.Type) {
	if isListType(t) {
		b.buf = append(b.buf, offsetShortList)
		return
	}
	b.buf = append(b.buf, offsetShortString)
}

func isListType(t reflect.Type) bool {
	if t == rawValueType || t == uint256Type {
		return false
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return t.Elem().Kind() != reflect.Uint8
	}
	return false
}

// AppendUint64 appends the RLP encoding of v to dst and returns the extended
// slice.
func AppendUint64(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, offsetShortString)
	}
	if v < offsetShortString {
		return append(dst, byte(v))
	}
	dst = append(dst, offsetShortString+byte(uintByteLen(v)))
	return appendUintBE(dst, v)
}

// AppendBytes appends the RLP encoding of data to dst.
func AppendBytes(dst, data []byte) []byte {
	if len(data) == 1 && data[0] < offsetShortString {
		return append(dst, data[0])
	}
	dst = AppendLength(dst, String, uint64(len(data)))
	return append(dst, data...)
}

// AppendListHeader appends a list header for a payload of the given size.
// The caller must append exactly payloadSize bytes of encoded items.
func AppendListHeader(dst []byte, payloadSize int) []byte {
	return AppendLength(dst, List, uint64(payloadSize))
}

// WrapList wraps an already-encoded payload in a list header.
func WrapList(payload []byte) []byte {
	out := make([]byte, 0, headSize(uint64(len(payload)))+len(payload))
	out = AppendListHeader(out, len(payload))
	return append(out, payload...)
}
