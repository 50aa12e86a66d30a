package keyutil

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"encoding/pem"
	"fmt"

	"go.step.sm/crypto/pemutil"
)

// ParsePublicKeyPEM parses a PEM-armored public key block.
// RSA, EC and Ed25519 public keys are accepted.
func ParsePublicKeyPEM(data []byte) (crypto.PublicKey, error) {
	key, err := pemutil.Parse(data)
	if err != nil {
		return nil, newKeyError("parse", fmt.Errorf("%w: %v", ErrParse, err))
	}

	switch pub := key.(type) {
	case *rsa.PublicKey, *ecdsa.PublicKey, ed25519.PublicKey:
		return pub, nil
	default:
		return nil, newKeyError("parse", fmt.Errorf("%w: PEM block holds %T, not a public key", ErrWrongKeyType, key))
	}
}

// EncodePublicKeyPEM encodes a public key as a PEM-armored PKIX block.
func EncodePublicKeyPEM(pub crypto.PublicKey) ([]byte, error) {
	block, err := pemutil.Serialize(pub)
	if err != nil {
		return nil, newKeyError("encode", fmt.Errorf("failed to serialize public key: %w", err))
	}
	return pem.EncodeToMemory(block), nil
}
