package signature

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"io"

	"github.com/sealkit/sealkit/pkg/digest"
)

// Sign digests data with the named algorithm and signs the digest with the
// private key. Zero-length data is valid input and signs an empty buffer.
//
// ECDSA signatures are ASN.1-encoded, RSA uses PKCS#1 v1.5, and Ed25519
// signs the message directly (the digest algorithm is not consulted, per
// the Ed25519 construction).
func Sign(priv crypto.PrivateKey, alg digest.Algorithm, data []byte) ([]byte, error) {
	return SignWithRand(rand.Reader, priv, alg, data)
}

// SignWithRand signs using the provided random source.
func SignWithRand(random io.Reader, priv crypto.PrivateKey, alg digest.Algorithm, data []byte) ([]byte, error) {
	if _, ok := priv.(ed25519.PrivateKey); ok {
		return ed25519.Sign(priv.(ed25519.PrivateKey), data), nil
	}

	sum, err := digest.Sum(alg, data)
	if err != nil {
		return nil, err
	}

	switch k := priv.(type) {
	case *ecdsa.PrivateKey:
		sig, err := ecdsa.SignASN1(random, k, sum)
		if err != nil {
			return nil, fmt.Errorf("failed to sign with ECDSA: %w", err)
		}
		return sig, nil
	case *rsa.PrivateKey:
		sig, err := rsa.SignPKCS1v15(random, k, alg.CryptoHash(), sum)
		if err != nil {
			return nil, fmt.Errorf("failed to sign with RSA: %w", err)
		}
		return sig, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, priv)
	}
}

// Verify checks a signature produced by Sign against the original data.
// It returns nil on success and ErrVerification on mismatch.
func Verify(pub crypto.PublicKey, alg digest.Algorithm, data, sig []byte) error {
	if k, ok := pub.(ed25519.PublicKey); ok {
		if !ed25519.Verify(k, data, sig) {
			return ErrVerification
		}
		return nil
	}

	sum, err := digest.Sum(alg, data)
	if err != nil {
		return err
	}

	switch k := pub.(type) {
	case *ecdsa.PublicKey:
		if !ecdsa.VerifyASN1(k, sum, sig) {
			return ErrVerification
		}
		return nil
	case *rsa.PublicKey:
		if err := rsa.VerifyPKCS1v15(k, alg.CryptoHash(), sum, sig); err != nil {
			return ErrVerification
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedKey, pub)
	}
}
