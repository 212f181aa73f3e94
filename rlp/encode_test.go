package rlp

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	gethrlp "github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
)

// record is an aggregate with a fixed field order: [Name, Age, Tags].
type record struct {
	Name string
	Age  uint64
	Tags []string
}

func (r *record) EncodeRLP(b *EncBuffer) {
	idx := b.List()
	b.WriteString(r.Name)
	b.WriteUint64(r.Age)
	tags := b.List()
	for _, tag := range r.Tags {
		b.WriteString(tag)
	}
	b.ListEnd(tags)
	b.ListEnd(idx)
}

func (r *record) DecodeRLP(s *Stream) error {
	return s.FromList(func() error {
		var err error
		if r.Name, err = s.Text(); err != nil {
			return err
		}
		if r.Age, err = s.Uint64(); err != nil {
			return err
		}
		r.Tags = []string{}
		return s.FromList(func() error {
			for s.MoreInList() {
				tag, err := s.Text()
				if err != nil {
					return err
				}
				r.Tags = append(r.Tags, tag)
			}
			return nil
		})
	})
}

func TestEncodeEmptyString(t *testing.T) {
	got, err := EncodeToBytes("")
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x80}
	if !bytes.Equal(got, want) {
		t.Fatalf("empty string: got %x, want %x", got, want)
	}
}

func TestEncodeDog(t *testing.T) {
	got, err := EncodeToBytes("dog")
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x83, 0x64, 0x6f, 0x67}
	if !bytes.Equal(got, want) {
		t.Fatalf("\"dog\": got %x, want %x", got, want)
	}
}

func TestEncodeLongString(t *testing.T) {
	s := "Lorem ipsum dolor sit amet, consectetur adipisicing elit"
	got, err := EncodeToBytes(s)
	if err != nil {
		t.Fatal(err)
	}
	// len(s) = 56, which is >55, so: [0xb8, 0x38, ...data]
	if got[0] != 0xb8 {
		t.Fatalf("long string prefix: got %x, want 0xb8", got[0])
	}
	if got[1] != 0x38 {
		t.Fatalf("long string length: got %x, want 0x38", got[1])
	}
	if !bytes.Equal(got[2:], []byte(s)) {
		t.Fatal("long string data mismatch")
	}
}

func TestEncodeUint(t *testing.T) {
	tests := []struct {
		name string
		val  interface{}
		want []byte
	}{
		{"uint(0)", uint64(0), []byte{0x80}},
		{"uint(15)", uint64(15), []byte{0x0f}},
		{"uint(127)", uint64(127), []byte{0x7f}},
		{"uint(128)", uint64(128), []byte{0x81, 0x80}},
		{"uint(1024)", uint64(1024), []byte{0x82, 0x04, 0x00}},
		{"uint(256)", uint64(256), []byte{0x82, 0x01, 0x00}},
		{"uint(1)", uint64(1), []byte{0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeToBytes(tt.val)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("%s: got %x, want %x", tt.name, got, tt.want)
			}
		})
	}
}

func TestEncodeBool(t *testing.T) {
	tests := []struct {
		name string
		val  bool
		want []byte
	}{
		{"false", false, []byte{0x80}},
		{"true", true, []byte{0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeToBytes(tt.val)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("%s: got %x, want %x", tt.name, got, tt.want)
			}
		})
	}
}

func TestEncodeEmptyList(t *testing.T) {
	got, err := EncodeToBytes([]interface{}{})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xc0}
	if !bytes.Equal(got, want) {
		t.Fatalf("empty list: got %x, want %x", got, want)
	}
}

func TestEncodeCatDog(t *testing.T) {
	got, err := EncodeToBytes([]string{"cat", "dog"})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xc8, 0x83, 0x63, 0x61, 0x74, 0x83, 0x64, 0x6f, 0x67}
	if !bytes.Equal(got, want) {
		t.Fatalf("[\"cat\",\"dog\"]: got %x, want %x", got, want)
	}
}

func TestEncodeBytes(t *testing.T) {
	tests := []struct {
		name string
		val  []byte
		want []byte
	}{
		{"empty bytes", []byte{}, []byte{0x80}},
		{"single byte 0x00", []byte{0x00}, []byte{0x00}},
		{"single byte 0x7f", []byte{0x7f}, []byte{0x7f}},
		{"single byte 0x80", []byte{0x80}, []byte{0x81, 0x80}},
		{"three bytes", []byte{0x01, 0x02, 0x03}, []byte{0x83, 0x01, 0x02, 0x03}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeToBytes(tt.val)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("%s: got %x, want %x", tt.name, got, tt.want)
			}
		})
	}
}

func TestEncodeBigInt(t *testing.T) {
	tests := []struct {
		name string
		val  *big.Int
		want []byte
	}{
		{"big.Int(0)", big.NewInt(0), []byte{0x80}},
		{"big.Int(1)", big.NewInt(1), []byte{0x01}},
		{"big.Int(127)", big.NewInt(127), []byte{0x7f}},
		{"big.Int(128)", big.NewInt(128), []byte{0x81, 0x80}},
		{"big.Int(256)", big.NewInt(256), []byte{0x82, 0x01, 0x00}},
		{"big.Int(1024)", big.NewInt(1024), []byte{0x82, 0x04, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeToBytes(tt.val)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("%s: got %x, want %x", tt.name, got, tt.want)
			}
		})
	}
}

func TestEncodeNestedList(t *testing.T) {
	// Encode a [][]string
	val := [][]string{{"cat"}, {"dog"}}
	got, err := EncodeToBytes(val)
	if err != nil {
		t.Fatal(err)
	}
	// inner1: [0xc4, 0x83, 0x63, 0x61, 0x74] (list of "cat")
	// inner2: [0xc4, 0x83, 0x64, 0x6f, 0x67] (list of "dog")
	// outer payload = 10 bytes
	// outer prefix = 0xc0 + 10 = 0xca
	want := []byte{0xca, 0xc4, 0x83, 0x63, 0x61, 0x74, 0xc4, 0x83, 0x64, 0x6f, 0x67}
	if !bytes.Equal(got, want) {
		t.Fatalf("nested list: got %x, want %x", got, want)
	}
}

func TestEncodeToWriter(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, "dog")
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x83, 0x64, 0x6f, 0x67}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("Encode to writer: got %x, want %x", buf.Bytes(), want)
	}
}

func TestEncodeSingleByte(t *testing.T) {
	// A single byte in [0x00, 0x7f] is its own RLP encoding.
	got, err := EncodeToBytes([]byte{0x42})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x42}
	if !bytes.Equal(got, want) {
		t.Fatalf("single byte: got %x, want %x", got, want)
	}
}

func TestEncodeVectors(t *testing.T) {
	zeros := make([]uint64, 56)
	longZeros := append([]byte{0xf8, 0x38}, bytes.Repeat([]byte{0x80}, 56)...)
	kilo := strings.Repeat("a", 1024)
	tests := []struct {
		name string
		val  interface{}
		want []byte
	}{
		{"uint(0)", uint64(0), []byte{0x80}},
		{"uint(127)", uint64(127), []byte{0x7f}},
		{"uint(128)", uint64(128), []byte{0x81, 0x80}},
		{"dog", "dog", []byte{0x83, 'd', 'o', 'g'}},
		{"empty list", []string{}, []byte{0xc0}},
		{"cat dog pig", []string{"cat", "dog", "pig"}, []byte{
			0xcc, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g', 0x83, 'p', 'i', 'g'}},
		{"55 byte string", strings.Repeat("x", 55), append([]byte{0xb7}, strings.Repeat("x", 55)...)},
		{"1024 byte string", kilo, append([]byte{0xb9, 0x04, 0x00}, kilo...)},
		{"56 zeros", zeros, longZeros},
		{"utf-8", "中文", []byte{0x86, 0xe4, 0xb8, 0xad, 0xe6, 0x96, 0x87}},
		{"list of empty string", []string{""}, []byte{0xc1, 0x80}},
		{"uint8 0xff", uint8(0xff), []byte{0x81, 0xff}},
		{"uint16", uint16(0x0400), []byte{0x82, 0x04, 0x00}},
		{"byte array", [3]byte{1, 2, 3}, []byte{0x83, 1, 2, 3}},
		{"uint array", [2]uint32{1, 2}, []byte{0xc2, 0x01, 0x02}},
		{"raw value", []RawValue{{0xc0}, {0x05}}, []byte{0xc2, 0xc0, 0x05}},
		{"interface list", []interface{}{uint64(1), "a", []interface{}{}}, []byte{0xc3, 0x01, 0x61, 0xc0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeToBytes(tt.val)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("%s: got %x, want %x", tt.name, got, tt.want)
			}
		})
	}
}

func TestEncodeNilPointers(t *testing.T) {
	tests := []struct {
		name string
		val  interface{}
		want []byte
	}{
		{"nil interface", nil, []byte{0x80}},
		{"nil *uint64", (*uint64)(nil), []byte{0x80}},
		{"nil *string", (*string)(nil), []byte{0x80}},
		{"nil *[]string", (*[]string)(nil), []byte{0xc0}},
		{"nil *[]byte", (*[]byte)(nil), []byte{0x80}},
		{"nil *big.Int", (*big.Int)(nil), []byte{0x80}},
		{"nil *uint256.Int", (*uint256.Int)(nil), []byte{0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeToBytes(tt.val)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("%s: got %x, want %x", tt.name, got, tt.want)
			}
		})
	}
}

func TestEncodeUint256(t *testing.T) {
	max := new(uint256.Int).SetAllOne()
	tests := []struct {
		name string
		val  *uint256.Int
		want []byte
	}{
		{"zero", uint256.NewInt(0), []byte{0x80}},
		{"one", uint256.NewInt(1), []byte{0x01}},
		{"1024", uint256.NewInt(1024), []byte{0x82, 0x04, 0x00}},
		{"max", max, append([]byte{0xa0}, bytes.Repeat([]byte{0xff}, 32)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeToBytes(tt.val)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("%s: got %x, want %x", tt.name, got, tt.want)
			}
		})
	}
}

func TestEncodeUnsupported(t *testing.T) {
	for _, val := range []interface{}{int64(5), 1.5, struct{ A uint64 }{1}, map[string]string{}} {
		if _, err := EncodeToBytes(val); !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("%T: got %v, want ErrUnsupportedType", val, err)
		}
	}
	if _, err := EncodeToBytes(big.NewInt(-1)); err == nil {
		t.Fatal("expected error for negative big.Int")
	}
}

func TestEncodeSelfReference(t *testing.T) {
	loop := []interface{}{nil}
	loop[0] = loop
	if _, err := EncodeToBytes(loop); !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("got %v, want ErrDepthExceeded", err)
	}
}

func TestEncodeSelfPointer(t *testing.T) {
	var x interface{}
	x = &x
	if _, err := EncodeToBytes(x); !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("interface cycle: got %v, want ErrDepthExceeded", err)
	}

	type node *interface{}
	var n interface{}
	p := node(&n)
	n = &p
	if _, err := EncodeToBytes(&p); !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("pointer cycle: got %v, want ErrDepthExceeded", err)
	}

	// A finite chain of indirections still encodes.
	v := uint64(7)
	pv := &v
	ppv := &pv
	var iv interface{} = &ppv
	got, err := EncodeToBytes(&iv)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0x07}) {
		t.Fatalf("pointer chain: got %x, want 07", got)
	}
}

func TestEncodeAggregate(t *testing.T) {
	r := &record{Name: "cat", Age: 5, Tags: []string{"a"}}
	// [83 'cat', 05, [61]] -> payload 4+1+2 = 7
	want := []byte{0xc7, 0x83, 'c', 'a', 't', 0x05, 0xc1, 0x61}
	if got := ToBytes(r); !bytes.Equal(got, want) {
		t.Fatalf("ToBytes: got %x, want %x", got, want)
	}
	got, err := EncodeToBytes([]*record{r})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, append([]byte{0xc8}, want...)) {
		t.Fatalf("EncodeToBytes: got %x", got)
	}
}

func TestEncBufferNestedLists(t *testing.T) {
	// [4, [5, 6]]
	var b EncBuffer
	l1 := b.List()
	b.WriteUint64(4)
	l2 := b.List()
	b.WriteUint64(5)
	b.WriteUint64(6)
	b.ListEnd(l2)
	b.ListEnd(l1)
	want := []byte{0xc4, 0x04, 0xc2, 0x05, 0x06}
	if got := b.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestEncBufferLongListHeader(t *testing.T) {
	var b EncBuffer
	b.InList(func() {
		b.WriteBytes(bytes.Repeat([]byte{0xaa}, 60))
	})
	got := b.Bytes()
	// string: b8 3c + 60 bytes = 62 bytes payload -> f8 3e
	if got[0] != 0xf8 || got[1] != 62 || got[2] != 0xb8 || got[3] != 60 {
		t.Fatalf("header: got %x", got[:4])
	}
	if len(got) != 64 {
		t.Fatalf("length: got %d, want 64", len(got))
	}
}

func TestEncBufferUnclosedListPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	var b EncBuffer
	b.List()
	b.Bytes()
}

func TestAppendHelpers(t *testing.T) {
	var dst []byte
	dst = AppendUint64(dst, 0)
	dst = AppendUint64(dst, 0x7f)
	dst = AppendUint64(dst, 0x0400)
	dst = AppendBytes(dst, []byte{0x01})
	dst = AppendBytes(dst, []byte{0x80})
	want := []byte{0x80, 0x7f, 0x82, 0x04, 0x00, 0x01, 0x81, 0x80}
	if !bytes.Equal(dst, want) {
		t.Fatalf("got %x, want %x", dst, want)
	}
	wrapped := WrapList([]byte{0x01, 0x02})
	if !bytes.Equal(wrapped, []byte{0xc2, 0x01, 0x02}) {
		t.Fatalf("WrapList: got %x", wrapped)
	}
}

// TestEncodeMatchesGeth checks the reflection encoder against go-ethereum.
func TestEncodeMatchesGeth(t *testing.T) {
	vals := []interface{}{
		uint64(0), uint64(1), uint64(0x80), uint64(1<<64 - 1),
		"", "a", "dog", strings.Repeat("z", 56), strings.Repeat("z", 70000),
		[]byte{0x00}, []byte{0x80},
		[]string{}, []string{"cat", "dog"}, [][]string{{}, {"a"}},
		true, false,
		big.NewInt(0), new(big.Int).Lsh(big.NewInt(1), 200),
		uint256.NewInt(99),
		[4]byte{1, 2, 3, 4},
		make([]uint64, 100),
	}
	for i, val := range vals {
		want, err := gethrlp.EncodeToBytes(val)
		if err != nil {
			t.Fatalf("%d: geth: %v", i, err)
		}
		got, err := EncodeToBytes(val)
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("%d (%T): got %x, want %x", i, val, got, want)
		}
	}
}
