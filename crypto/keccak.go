// Package crypto provides hashing over canonical RLP encodings.
package crypto

import (
	"github.com/bhaskar1001101/rrlp/rlp"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"
)

// HashLength is the size of a Keccak-256 digest in bytes.
const HashLength = 32

// Hash is a Keccak-256 digest.
type Hash [HashLength]byte

// Hex returns the 0x-prefixed hex form of h.
func (h Hash) Hex() string { return hexutil.Encode(h[:]) }

func (h Hash) String() string { return h.Hex() }

// Keccak256 calculates the Keccak-256 hash of the given data.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Keccak256Hash calculates Keccak-256 and returns it as a Hash.
func Keccak256Hash(data ...[]byte) (h Hash) {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	d.Sum(h[:0])
	return h
}

// HashRLP returns the Keccak-256 hash of the canonical encoding of v.
func HashRLP(v rlp.Encodable) Hash {
	return Keccak256Hash(rlp.ToBytes(v))
}

// HashValue returns the Keccak-256 hash of the encoding of val, which may
// be any type accepted by rlp.EncodeToBytes.
func HashValue(val interface{}) (Hash, error) {
	enc, err := rlp.EncodeToBytes(val)
	if err != nil {
		return Hash{}, err
	}
	return Keccak256Hash(enc), nil
}
