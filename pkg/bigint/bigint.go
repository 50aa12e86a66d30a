// Package bigint converts between arbitrary-precision unsigned integers and
// their big-endian byte representation, as used for RSA and EC key parameters.
package bigint

import (
	"errors"
	"math/big"
)

// ErrNegative indicates a negative integer was passed where only unsigned
// values are meaningful (key parameters are always unsigned).
var ErrNegative = errors.New("negative integer has no unsigned encoding")

// FromBytes interprets b as a big-endian unsigned integer.
// Leading zero bytes are accepted; an empty slice yields zero.
func FromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// ToBytes returns the minimal-length big-endian unsigned encoding of n.
// The result never has a leading zero byte, except for zero itself which
// encodes as a single zero byte.
func ToBytes(n *big.Int) ([]byte, error) {
	if n.Sign() < 0 {
		return nil, ErrNegative
	}
	b := n.Bytes()
	if len(b) == 0 {
		return []byte{0}, nil
	}
	return b, nil
}
