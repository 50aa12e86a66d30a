// Package signature DER-encodes and fingerprints public keys and
// certificates, signs and verifies byte buffers, and wraps short secrets
// with RSA-PKCS#1 v1.5.
package signature

import (
	"crypto"
	"crypto/sha256"
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/sealkit/sealkit/pkg/digest"
)

// Sentinel errors for signing and fingerprinting operations.
var (
	// ErrUnsupportedKey indicates the key's algorithm has no signing or
	// encoding support here.
	ErrUnsupportedKey = errors.New("unsupported key type")

	// ErrVerification indicates a signature did not verify. It carries no
	// detail on purpose.
	ErrVerification = errors.New("signature verification failed")
)

// CertificateFingerprintSize is the size of an X.509 certificate
// fingerprint. Certificate fingerprints are always SHA-256 so they stay
// usable as stable identities regardless of the caller's preferred digest.
const CertificateFingerprintSize = sha256.Size

// MarshalPublicKeyDER returns the canonical DER (PKIX SubjectPublicKeyInfo)
// encoding of a public key.
func MarshalPublicKeyDER(pub crypto.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedKey, err)
	}
	return der, nil
}

// Fingerprint computes a digest of the DER encoding of a public key.
// The result is deterministic for identical key and algorithm.
func Fingerprint(pub crypto.PublicKey, alg digest.Algorithm) ([]byte, error) {
	der, err := MarshalPublicKeyDER(pub)
	if err != nil {
		return nil, err
	}
	return digest.Sum(alg, der)
}

// CertificateFingerprint computes the fixed SHA-256 fingerprint of the DER
// encoding of an X.509 certificate. The result is always exactly
// CertificateFingerprintSize bytes.
func CertificateFingerprint(cert *x509.Certificate) ([]byte, error) {
	if cert == nil || len(cert.Raw) == 0 {
		return nil, errors.New("certificate has no DER encoding")
	}
	sum := sha256.Sum256(cert.Raw)
	return sum[:], nil
}
