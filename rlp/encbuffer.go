package rlp

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Encodable is implemented by types that write their own canonical
// encoding. Aggregates encode their fields inside b.List/b.ListEnd in a
// fixed, documented order.
type Encodable interface {
	EncodeRLP(b *EncBuffer)
}

// EncBuffer accumulates RLP output. List headers are inserted in front of
// their payload when the list is closed, so nested lists can be written in
// a single pass.
type EncBuffer struct {
	buf  []byte
	open int
}

// NewEncBuffer returns an empty buffer with the given initial capacity.
func NewEncBuffer(capacity int) *EncBuffer {
	return &EncBuffer{buf: make([]byte, 0, capacity)}
}

// Reset truncates the buffer, keeping its capacity.
func (b *EncBuffer) Reset() {
	b.buf = b.buf[:0]
	b.open = 0
}

// Len returns the number of bytes written so far.
func (b *EncBuffer) Len() int { return len(b.buf) }

// Bytes returns a copy of the encoded output. All lists must be closed.
func (b *EncBuffer) Bytes() []byte {
	return b.AppendTo(nil)
}

// AppendTo appends the encoded output to dst. All lists must be closed.
func (b *EncBuffer) AppendTo(dst []byte) []byte {
	if b.open != 0 {
		panic("rlp: EncBuffer has unclosed lists")
	}
	return append(dst, b.buf...)
}

// WriteBytes writes b as an RLP string.
func (b *EncBuffer) WriteBytes(data []byte) {
	b.buf = AppendBytes(b.buf, data)
}

// WriteString writes s as an RLP string.
func (b *EncBuffer) WriteString(s string) {
	if len(s) == 1 && s[0] < offsetShortString {
		b.buf = append(b.buf, s[0])
		return
	}
	b.buf = AppendLength(b.buf, String, uint64(len(s)))
	b.buf = append(b.buf, s...)
}

// WriteUint64 writes an unsigned integer in its minimal form.
func (b *EncBuffer) WriteUint64(v uint64) {
	b.buf = AppendUint64(b.buf, v)
}

// WriteBool writes true as 0x01 and false as the empty string.
func (b *EncBuffer) WriteBool(v bool) {
	if v {
		b.buf = append(b.buf, 0x01)
		return
	}
	b.buf = append(b.buf, offsetShortString)
}

// WriteBigInt writes a non-negative big integer. A nil i encodes as zero.
// It panics on negative values; callers that accept arbitrary input should
// go through EncodeToBytes, which reports them as an error.
func (b *EncBuffer) WriteBigInt(i *big.Int) {
	if i == nil {
		b.buf = append(b.buf, offsetShortString)
		return
	}
	if i.Sign() < 0 {
		panic("rlp: cannot encode negative big.Int")
	}
	if i.IsUint64() {
		b.WriteUint64(i.Uint64())
		return
	}
	b.WriteBytes(i.Bytes())
}

// WriteUint256 writes a 256-bit unsigned integer. A nil i encodes as zero.
func (b *EncBuffer) WriteUint256(i *uint256.Int) {
	if i == nil || i.IsZero() {
		b.buf = append(b.buf, offsetShortString)
		return
	}
	if i.IsUint64() {
		b.WriteUint64(i.Uint64())
		return
	}
	b.WriteBytes(i.Bytes())
}

// WriteRaw appends data verbatim. data must already be a complete encoding.
func (b *EncBuffer) WriteRaw(data []byte) {
	b.buf = append(b.buf, data...)
}

// Write appends the encoding of v.
func (b *EncBuffer) Write(v Encodable) {
	v.EncodeRLP(b)
}

// List opens a list and returns a handle for the matching ListEnd call.
func (b *EncBuffer) List() int {
	b.open++
	return len(b.buf)
}

// ListEnd closes the list opened at idx and inserts its header.
func (b *EncBuffer) ListEnd(idx int) {
	if b.open == 0 || idx < 0 || idx > len(b.buf) {
		panic("rlp: ListEnd without matching List")
	}
	b.open--
	var head [9]byte
	h := AppendLength(head[:0], List, uint64(len(b.buf)-idx))
	end := len(b.buf)
	b.buf = append(b.buf, h...)
	copy(b.buf[idx+len(h):], b.buf[idx:end])
	copy(b.buf[idx:], h)
}

// InList calls fn between List and ListEnd.
func (b *EncBuffer) InList(fn func()) {
	idx := b.List()
	fn()
	b.ListEnd(idx)
}
