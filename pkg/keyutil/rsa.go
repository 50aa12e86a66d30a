package keyutil

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"io"
	"math"
	"math/big"

	"github.com/sealkit/sealkit/pkg/bigint"
)

// NewRSAPublicKey builds an RSA public key from raw modulus and exponent
// bytes, both big-endian unsigned. Note that if the exponent originates
// from a fixed-width integer it must be supplied big-endian here.
func NewRSAPublicKey(n, e []byte) (*rsa.PublicKey, error) {
	bnN := bigint.FromBytes(n)
	bnE := bigint.FromBytes(e)

	if bnN.BitLen() < 2 {
		return nil, newKeyError("build", fmt.Errorf("%w: degenerate RSA modulus", ErrMalformedKey))
	}
	if !bnE.IsInt64() || bnE.Int64() < 3 || bnE.Int64() > math.MaxInt {
		return nil, newKeyError("build", fmt.Errorf("%w: RSA exponent out of range", ErrMalformedKey))
	}
	if bnE.Bit(0) == 0 {
		return nil, newKeyError("build", fmt.Errorf("%w: RSA exponent must be odd", ErrMalformedKey))
	}

	return &rsa.PublicKey{N: bnN, E: int(bnE.Int64())}, nil
}

// RSAPublicKeyParams returns the modulus and exponent of an RSA public key
// as minimal-length big-endian unsigned bytes.
func RSAPublicKeyParams(pub crypto.PublicKey) (n, e []byte, err error) {
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, nil, newKeyError("extract", fmt.Errorf("%w: have %T, want *rsa.PublicKey", ErrWrongKeyType, pub))
	}

	n, err = bigint.ToBytes(rsaPub.N)
	if err != nil {
		return nil, nil, newKeyError("extract", err)
	}
	e, err = bigint.ToBytes(big.NewInt(int64(rsaPub.E)))
	if err != nil {
		return nil, nil, newKeyError("extract", err)
	}
	return n, e, nil
}

// GenerateRSA generates a new RSA key with the specified number of bits.
func GenerateRSA(bits int) (*rsa.PrivateKey, error) {
	return GenerateRSAWithRand(rand.Reader, bits)
}

// GenerateRSAWithRand generates an RSA key using the provided random source.
// This is useful for testing with deterministic randomness.
func GenerateRSAWithRand(random io.Reader, bits int) (*rsa.PrivateKey, error) {
	priv, err := rsa.GenerateKey(random, bits)
	if err != nil {
		return nil, newKeyError("generate", fmt.Errorf("failed to generate RSA-%d key: %w", bits, err))
	}
	return priv, nil
}

// SuitableSymmetricKeySize returns the recommended size, in bytes, of a
// symmetric key to be wrapped with RSA-PKCS#1 v1.5 under the given public
// key. PKCS#1 padding needs headroom in the modulus, so only half the
// modulus width is used.
func SuitableSymmetricKeySize(pub crypto.PublicKey) (int, error) {
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return 0, newKeyError("size", fmt.Errorf("%w: have %T, want *rsa.PublicKey", ErrWrongKeyType, pub))
	}

	size := rsaPub.N.BitLen() / 8 / 2
	if size < 1 {
		return 0, newKeyError("size", fmt.Errorf("%w: %d-bit RSA modulus", ErrKeyTooSmall, rsaPub.N.BitLen()))
	}
	return size, nil
}
