package signature

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
)

// EncryptRSA wraps a short plaintext (typically a freshly generated
// symmetric key) with RSA-PKCS#1 v1.5 padding. The plaintext must fit in
// the modulus minus the padding overhead; oversized input surfaces the
// backend's size error.
func EncryptRSA(pub *rsa.PublicKey, plaintext []byte) ([]byte, error) {
	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, pub, plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to RSA-encrypt %d bytes: %w", len(plaintext), err)
	}
	return ciphertext, nil
}

// DecryptRSA unwraps an EncryptRSA ciphertext with the private key.
func DecryptRSA(priv *rsa.PrivateKey, ciphertext []byte) ([]byte, error) {
	plaintext, err := rsa.DecryptPKCS1v15(nil, priv, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to RSA-decrypt: %w", err)
	}
	return plaintext, nil
}
