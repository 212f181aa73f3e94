package rlp

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"math/big"
	"reflect"

	"github.com/bhaskar1001101/rrlp/log"
	"github.com/bhaskar1001101/rrlp/metrics"
)

// Decodable is implemented by types that decode themselves from a Stream.
type Decodable interface {
	DecodeRLP(s *Stream) error
}

var decodableType = reflect.TypeOf((*Decodable)(nil)).Elem()

// Decoder decodes RLP input under a fixed set of limits. It holds no
// per-call state and is safe for concurrent use.
type Decoder struct {
	cfg Config
	log *log.Logger
}

var defaultDecoder = &Decoder{cfg: DefaultConfig()}

// NewDecoder returns a Decoder enforcing cfg.
func NewDecoder(cfg Config) (*Decoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Decoder{cfg: cfg}, nil
}

// Config returns the limits enforced by d.
func (d *Decoder) Config() Config { return d.cfg }

// WithLogger returns a copy of d that reports rejected input to l instead
// of the "rlp" module of the default logger.
func (d *Decoder) WithLogger(l *log.Logger) *Decoder {
	cp := *d
	cp.log = l
	return &cp
}

// NewStream returns a Stream over data that enforces d's limits.
func (d *Decoder) NewStream(data []byte) *Stream {
	return newStream(data, d.cfg)
}

// DecodeAt decodes the single value starting at buf[cursor] and returns it
// together with the number of bytes it occupies. Bytes after the value are
// left alone, so concatenated encodings can be walked by advancing cursor.
func (d *Decoder) DecodeAt(buf []byte, cursor int) (Value, int, error) {
	if cursor < 0 || cursor >= len(buf) {
		d.reject(ErrInputTooShort, len(buf), cursor)
		return Value{}, 0, ErrInputTooShort
	}
	s := d.NewStream(buf[cursor:])
	v, err := s.Value()
	if err != nil {
		d.reject(err, len(buf), cursor)
		return Value{}, 0, err
	}
	d.accept(s)
	return v, s.pos, nil
}

// DecodeValue decodes buf, which must hold exactly one value.
func (d *Decoder) DecodeValue(buf []byte) (Value, error) {
	var v Value
	if err := d.DecodeBytes(buf, &v); err != nil {
		return Value{}, err
	}
	return v, nil
}

// DecodeBytes decodes buf, which must hold exactly one value, into the value
// pointed to by val.
func (d *Decoder) DecodeBytes(buf []byte, val interface{}) error {
	s := d.NewStream(buf)
	err := s.Decode(val)
	if err == nil && s.pos != len(buf) {
		err = ErrUnexpectedTrailing
	}
	if err != nil {
		d.reject(err, len(buf), s.pos)
		return err
	}
	d.accept(s)
	return nil
}

// Decode reads a single encoded value from r into val. At most one maximal
// value is read; longer input is rejected.
func (d *Decoder) Decode(r io.Reader, val interface{}) error {
	// A maximal value is a 9-byte header plus MaxLength payload bytes; one
	// more byte exposes trailing input.
	limit := int64(math.MaxInt64)
	if d.cfg.MaxLength < math.MaxInt64-10 {
		limit = int64(d.cfg.MaxLength) + 9 + 1
	}
	data, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return err
	}
	return d.DecodeBytes(data, val)
}

func (d *Decoder) accept(s *Stream) {
	metrics.DecodeOK.Inc()
	metrics.DecodeBytes.Add(int64(s.pos))
	metrics.DecodeDepth.Observe(float64(s.maxDepth))
}

func (d *Decoder) reject(err error, size, cursor int) {
	metrics.DecodeFailed.Inc()
	l := d.log
	if l == nil {
		l = log.Default().Module("rlp")
	}
	l.Debug("rejected input", "err", err, "len", size, "cursor", cursor)
}

// Decode reads a single encoded value from r into val using the default
// limits.
func Decode(r io.Reader, val interface{}) error {
	return defaultDecoder.Decode(r, val)
}

// DecodeBytes decodes b, which must hold exactly one value, into the value
// pointed to by val, using the default limits.
func DecodeBytes(b []byte, val interface{}) error {
	return defaultDecoder.DecodeBytes(b, val)
}

// DecodeValue decodes b, which must hold exactly one value, using the
// default limits.
func DecodeValue(b []byte) (Value, error) {
	return defaultDecoder.DecodeValue(b)
}

// Decode reads the next item into the value pointed to by val.
func (s *Stream) Decode(val interface{}) error {
	if val == nil {
		return errNilTarget
	}
	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errNilTarget
	}
	return s.decodeInto(rv.Elem())
}

func (s *Stream) decodeInto(v reflect.Value) error {
	t := v.Type()
	if v.CanAddr() && reflect.PointerTo(t).Implements(decodableType) {
		return v.Addr().Interface().(Decodable).DecodeRLP(s)
	}

	switch t {
	case rawValueType:
		b, err := s.Raw()
		if err != nil {
			return err
		}
		v.SetBytes(bytes.Clone(b))
		return nil
	case bigIntType:
		i, err := s.BigInt()
		if err != nil {
			return err
		}
		v.Addr().Interface().(*big.Int).Set(i)
		return nil
	case uint256Type:
		i, err := s.Uint256()
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(*i))
		return nil
	}

	switch t.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			v.Set(reflect.New(t.Elem()))
		}
		return s.decodeInto(v.Elem())

	case reflect.Interface:
		if t.NumMethod() != 0 {
			return fmt.Errorf("%w: %v", ErrUnsupportedType, t)
		}
		val, err := s.Value()
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(val))
		return nil

	case reflect.Bool:
		b, err := s.Bool()
		if err != nil {
			return err
		}
		v.SetBool(b)
		return nil

	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Uintptr:
		u, err := s.uint(t.Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
		return nil

	case reflect.String:
		str, err := s.Text()
		if err != nil {
			return err
		}
		v.SetString(str)
		return nil

	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			b, err := s.Bytes()
			if err != nil {
				return err
			}
			v.SetBytes(bytes.Clone(b))
			return nil
		}
		return s.decodeSlice(v)

	case reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			b, err := s.Bytes()
			if err != nil {
				return err
			}
			if len(b) != v.Len() {
				return fmt.Errorf("%w: got %d bytes for %v", ErrInvalidLength, len(b), t)
			}
			reflect.Copy(v, reflect.ValueOf(b))
			return nil
		}
		return s.decodeArray(v)

	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedType, t)
	}
}

func (s *Stream) decodeSlice(v reflect.Value) error {
	if _, err := s.List(); err != nil {
		return err
	}
	out := reflect.MakeSlice(v.Type(), 0, 0)
	for s.MoreInList() {
		out = reflect.Append(out, reflect.Zero(v.Type().Elem()))
		if err := s.decodeInto(out.Index(out.Len() - 1)); err != nil {
			return err
		}
	}
	v.Set(out)
	return s.ListEnd()
}

func (s *Stream) decodeArray(v reflect.Value) error {
	if _, err := s.List(); err != nil {
		return err
	}
	for i := 0; i < v.Len(); i++ {
		if !s.MoreInList() {
			return fmt.Errorf("%w: list has %d elements, want %d", ErrInvalidLength, i, v.Len())
		}
		if err := s.decodeInto(v.Index(i)); err != nil {
			return err
		}
	}
	return s.ListEnd()
}
