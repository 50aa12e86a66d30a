package digest

import (
	"crypto/hmac"
	"errors"
	"fmt"
)

// ErrEmptyKey indicates an HMAC was requested with a zero-length key.
var ErrEmptyKey = errors.New("hmac key must not be empty")

// HMACSum computes the HMAC over the logical concatenation of all byte
// views, keyed with key and using the named digest algorithm.
//
// The key may be any non-empty length; keys longer than the algorithm's
// block size are pre-hashed by the HMAC construction itself. The output
// length always equals Size(alg).
func HMACSum(alg Algorithm, key []byte, data ...[]byte) ([]byte, error) {
	info, ok := algorithms[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	m := hmac.New(info.New, key)
	for _, d := range data {
		m.Write(d)
	}

	sum := m.Sum(nil)
	if len(sum) != info.Size {
		panic(fmt.Sprintf("digest: hmac-%s produced %d bytes, registry says %d", alg, len(sum), info.Size))
	}
	return sum, nil
}

// HMACEqual compares two MACs in constant time.
func HMACEqual(a, b []byte) bool {
	return hmac.Equal(a, b)
}
