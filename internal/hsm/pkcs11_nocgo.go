//go:build !cgo

package hsm

import "crypto"

// FetchPublicKey is a stub used when CGO is not available.
// PKCS#11 module loading requires CGO.
func FetchPublicKey(cfg *Config) (crypto.PublicKey, error) {
	return nil, ErrNotAvailable
}
