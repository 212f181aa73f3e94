package rlp

import (
	"bytes"
	"errors"
	"testing"
)

func TestSplit(t *testing.T) {
	k, content, rest, err := Split([]byte{0x83, 'd', 'o', 'g', 0x01})
	if err != nil {
		t.Fatal(err)
	}
	if k != String || string(content) != "dog" || !bytes.Equal(rest, []byte{0x01}) {
		t.Fatalf("got (%v, %q, %x)", k, content, rest)
	}
	k, content, rest, err = Split([]byte{0x7f})
	if err != nil {
		t.Fatal(err)
	}
	if k != Byte || !bytes.Equal(content, []byte{0x7f}) || len(rest) != 0 {
		t.Fatalf("byte: got (%v, %x, %x)", k, content, rest)
	}
}

func TestSplitKindErrors(t *testing.T) {
	if _, _, err := SplitString([]byte{0xc0}); !errors.Is(err, ErrUnexpectedList) {
		t.Fatalf("SplitString on list: got %v", err)
	}
	if _, _, err := SplitList([]byte{0x80}); !errors.Is(err, ErrUnexpectedString) {
		t.Fatalf("SplitList on string: got %v", err)
	}
	content, rest, err := SplitList([]byte{0xc2, 0x01, 0x02, 0xc0})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(content, []byte{0x01, 0x02}) || !bytes.Equal(rest, []byte{0xc0}) {
		t.Fatalf("SplitList: got %x, %x", content, rest)
	}
}

func TestSplitUint64(t *testing.T) {
	tests := []struct {
		input []byte
		want  uint64
		err   error
	}{
		{[]byte{0x80}, 0, nil},
		{[]byte{0x01}, 1, nil},
		{[]byte{0x82, 0x04, 0x00}, 1024, nil},
		{[]byte{0x00}, 0, ErrNonMinimalEncoding},
		{[]byte{0x82, 0x00, 0x80}, 0, ErrNonMinimalEncoding},
		{append([]byte{0x89, 0x01}, make([]byte, 8)...), 0, ErrValueTooLong},
	}
	for _, tt := range tests {
		got, _, err := SplitUint64(tt.input)
		if !errors.Is(err, tt.err) {
			t.Fatalf("%x: got error %v, want %v", tt.input, err, tt.err)
		}
		if err == nil && got != tt.want {
			t.Fatalf("%x: got %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestCountValues(t *testing.T) {
	n, err := CountValues([]byte{0x01, 0x83, 'd', 'o', 'g', 0xc0, 0x80})
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("got %d, want 4", n)
	}
	if _, err := CountValues([]byte{0x01, 0x83}); !errors.Is(err, ErrInputTooShort) {
		t.Fatalf("truncated: got %v", err)
	}
}

func TestSizeHelpers(t *testing.T) {
	for _, b := range [][]byte{nil, {0x00}, {0x80}, make([]byte, 55), make([]byte, 56), make([]byte, 300)} {
		if got, want := BytesSize(b), uint64(len(AppendBytes(nil, b))); got != want {
			t.Errorf("BytesSize(len %d) = %d, want %d", len(b), got, want)
		}
		if got, want := StringSize(string(b)), uint64(len(AppendBytes(nil, b))); got != want {
			t.Errorf("StringSize(len %d) = %d, want %d", len(b), got, want)
		}
	}
	for _, x := range []uint64{0, 1, 127, 128, 1 << 20, 1<<64 - 1} {
		if got, want := IntSize(x), len(AppendUint64(nil, x)); got != want {
			t.Errorf("IntSize(%d) = %d, want %d", x, got, want)
		}
	}
	for _, n := range []uint64{0, 55, 56, 1 << 16} {
		if got, want := ListSize(n), uint64(len(AppendListHeader(nil, int(n))))+n; got != want {
			t.Errorf("ListSize(%d) = %d, want %d", n, got, want)
		}
	}
}
