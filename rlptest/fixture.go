// Package rlptest loads and runs RLP test vectors in the JSON layout used by
// the Ethereum test suite:
//
//	{
//	  "name": {"in": <value>, "out": "0x..."}
//	}
//
// An "in" value is a string, an integer, a "#"-prefixed decimal big integer
// or a nested array of these. The special inputs "VALID" and "INVALID" mark
// decode-only vectors whose "out" must, or must not, decode.
package rlptest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	inputValid   = "VALID"
	inputInvalid = "INVALID"
)

// Fixture is a single test vector.
type Fixture struct {
	In  json.RawMessage `json:"in"`
	Out string          `json:"out"`
}

// LoadFile reads the fixtures stored in the JSON file at path.
func LoadFile(path string) (map[string]Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fixtures, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fixtures, nil
}

// Load reads fixtures from r.
func Load(r io.Reader) (map[string]Fixture, error) {
	var fixtures map[string]Fixture
	if err := json.NewDecoder(r).Decode(&fixtures); err != nil {
		return nil, fmt.Errorf("parsing fixtures: %w", err)
	}
	return fixtures, nil
}

// Expected returns the decoded "out" bytes. The 0x prefix is optional.
func (f Fixture) Expected() ([]byte, error) {
	out := f.Out
	if !strings.HasPrefix(out, "0x") && !strings.HasPrefix(out, "0X") {
		out = "0x" + out
	}
	if out == "0x" {
		return []byte{}, nil
	}
	return hexutil.Decode(out)
}

// DecodeOnly reports whether f is a decode-only vector, and if so whether
// its output is expected to decode.
func (f Fixture) DecodeOnly() (valid, ok bool) {
	var s string
	if err := json.Unmarshal(f.In, &s); err != nil {
		return false, false
	}
	switch s {
	case inputValid:
		return true, true
	case inputInvalid:
		return false, true
	}
	return false, false
}

// Input converts the "in" value into a Go value accepted by
// rlp.EncodeToBytes: string, uint64, *big.Int or []interface{}.
func (f Fixture) Input() (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(f.In))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing input: %w", err)
	}
	return translate(raw)
}

var errNegative = errors.New("negative integer input")

func translate(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case string:
		if strings.HasPrefix(v, "#") {
			i, ok := new(big.Int).SetString(v[1:], 10)
			if !ok {
				return nil, fmt.Errorf("bad big integer %q", v)
			}
			if i.Sign() < 0 {
				return nil, errNegative
			}
			return i, nil
		}
		return v, nil
	case json.Number:
		i, ok := new(big.Int).SetString(v.String(), 10)
		if !ok {
			return nil, fmt.Errorf("bad integer %q", v)
		}
		if i.Sign() < 0 {
			return nil, errNegative
		}
		if i.IsUint64() {
			return i.Uint64(), nil
		}
		return i, nil
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, elem := range v {
			t, err := translate(elem)
			if err != nil {
				return nil, err
			}
			out[i] = t
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported input type %T", raw)
	}
}
