package rlp

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultMaxLength bounds the payload size of any single decoded value.
	DefaultMaxLength = 0x0fff_ffff

	// DefaultMaxDepth bounds list nesting during decoding.
	DefaultMaxDepth = 1024
)

// Config holds the resource limits applied by a Decoder.
type Config struct {
	// MaxLength is the largest payload size, in bytes, accepted for a
	// string or list.
	MaxLength uint64

	// MaxDepth is the deepest list nesting accepted. The outermost list has
	// depth 1.
	MaxDepth int
}

// DefaultConfig returns a Config with the default limits.
func DefaultConfig() Config {
	return Config{
		MaxLength: DefaultMaxLength,
		MaxDepth:  DefaultMaxDepth,
	}
}

// Validate checks configuration values for correctness.
func (c *Config) Validate() error {
	if c.MaxLength == 0 {
		return errors.New("config: max length must be positive")
	}
	if c.MaxLength > uint64(math.MaxInt) {
		return fmt.Errorf("config: max length %d exceeds platform int", c.MaxLength)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("config: invalid max depth: %d", c.MaxDepth)
	}
	return nil
}
