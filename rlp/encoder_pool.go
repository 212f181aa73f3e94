// encoder_pool.go provides a pooled RLP encoder for high-throughput
// encoding such as batch serialization of many values. It uses sync.Pool to
// reuse EncBuffers, reducing GC pressure.
package rlp

import (
	"reflect"
	"sync"

	"github.com/bhaskar1001101/rrlp/metrics"
)

// Default buffer sizes for the encoder pool.
const (
	// defaultBufSize is the initial capacity for pooled encoder buffers.
	defaultBufSize = 4096

	// maxBufSize caps the buffer size to avoid retaining oversized buffers.
	maxBufSize = 1 << 20 // 1 MiB
)

// EncoderPool manages a pool of reusable encoding buffers. It is safe for
// concurrent use.
type EncoderPool struct {
	pool sync.Pool
}

// pooledBuf is the pooled buffer wrapper.
type pooledBuf struct {
	EncBuffer
	reused bool
}

// NewEncoderPool creates a new encoder pool with default buffer sizing.
func NewEncoderPool() *EncoderPool {
	ep := &EncoderPool{}
	ep.pool.New = func() interface{} {
		metrics.PoolMisses.Inc()
		return &pooledBuf{EncBuffer: EncBuffer{buf: make([]byte, 0, defaultBufSize)}}
	}
	return ep
}

// get retrieves a reset buffer from the pool.
func (ep *EncoderPool) get() *pooledBuf {
	pb := ep.pool.Get().(*pooledBuf)
	if pb.reused {
		metrics.PoolHits.Inc()
	}
	metrics.PoolInUse.Inc()
	pb.Reset()
	return pb
}

// put returns a buffer to the pool, discarding oversized buffers.
func (ep *EncoderPool) put(pb *pooledBuf) {
	metrics.PoolInUse.Dec()
	if cap(pb.buf) > maxBufSize {
		return
	}
	pb.reused = true
	ep.pool.Put(pb)
}

func (ep *EncoderPool) record(items, size int) {
	metrics.EncodeOps.Add(int64(items))
	metrics.EncodeBytes.Add(int64(size))
}

// Encode returns the encoding of v using a pooled buffer.
func (ep *EncoderPool) Encode(v Encodable) []byte {
	pb := ep.get()
	defer ep.put(pb)

	v.EncodeRLP(&pb.EncBuffer)
	out := pb.Bytes()
	ep.record(1, len(out))
	return out
}

// EncodeBytes encodes a single value and returns the RLP bytes.
// This is a pooled equivalent of EncodeToBytes.
func (ep *EncoderPool) EncodeBytes(val interface{}) ([]byte, error) {
	pb := ep.get()
	defer ep.put(pb)

	if err := pb.encode(reflect.ValueOf(val), 0); err != nil {
		return nil, err
	}
	out := pb.Bytes()
	ep.record(1, len(out))
	return out, nil
}

// EncodeBatch encodes items into a single RLP list, each item encoded
// individually in order.
func (ep *EncoderPool) EncodeBatch(items []interface{}) ([]byte, error) {
	pb := ep.get()
	defer ep.put(pb)

	idx := pb.List()
	for _, item := range items {
		if err := pb.encode(reflect.ValueOf(item), 1); err != nil {
			return nil, err
		}
	}
	pb.ListEnd(idx)

	out := pb.Bytes()
	ep.record(len(items), len(out))
	return out, nil
}
