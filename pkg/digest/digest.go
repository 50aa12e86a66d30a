// Package digest computes fixed-size cryptographic hashes and HMACs over
// one or more byte buffers.
//
// Algorithms are identified by name and resolved through a registry of
// fixed-output-size algorithms. Variable-output algorithms (SHAKE and
// friends) are deliberately absent: every registered algorithm has a known
// output size, so callers can size buffers before hashing.
package digest

import (
	"crypto"
	"crypto/sha1" //nolint:gosec // SHA-1 is required for legacy fingerprints
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"

	"golang.org/x/crypto/sha3"
)

// Algorithm identifies a fixed-size digest algorithm.
type Algorithm string

// Supported digest algorithms.
const (
	SHA1    Algorithm = "sha1"
	SHA224  Algorithm = "sha224"
	SHA256  Algorithm = "sha256"
	SHA384  Algorithm = "sha384"
	SHA512  Algorithm = "sha512"
	SHA3256 Algorithm = "sha3-256"
	SHA3384 Algorithm = "sha3-384"
	SHA3512 Algorithm = "sha3-512"
)

// ErrUnsupportedAlgorithm indicates the digest algorithm is unknown or has
// no fixed output size. It is distinct from backend failures so callers can
// special-case unsupported algorithms.
var ErrUnsupportedAlgorithm = errors.New("unsupported digest algorithm")

// algorithmInfo holds metadata about a digest algorithm.
type algorithmInfo struct {
	Size      int
	BlockSize int
	Hash      crypto.Hash
	New       func() hash.Hash
}

// algorithms maps Algorithm to its metadata. Only fixed-size algorithms are
// registered; every entry has Size > 0.
var algorithms = map[Algorithm]algorithmInfo{
	SHA1:    {Size: sha1.Size, BlockSize: sha1.BlockSize, Hash: crypto.SHA1, New: sha1.New},
	SHA224:  {Size: sha256.Size224, BlockSize: sha256.BlockSize, Hash: crypto.SHA224, New: sha256.New224},
	SHA256:  {Size: sha256.Size, BlockSize: sha256.BlockSize, Hash: crypto.SHA256, New: sha256.New},
	SHA384:  {Size: sha512.Size384, BlockSize: sha512.BlockSize, Hash: crypto.SHA384, New: sha512.New384},
	SHA512:  {Size: sha512.Size, BlockSize: sha512.BlockSize, Hash: crypto.SHA512, New: sha512.New},
	SHA3256: {Size: 32, BlockSize: 136, Hash: crypto.SHA3_256, New: sha3.New256},
	SHA3384: {Size: 48, BlockSize: 104, Hash: crypto.SHA3_384, New: sha3.New384},
	SHA3512: {Size: 64, BlockSize: 72, Hash: crypto.SHA3_512, New: sha3.New512},
}

// IsValid returns true if the algorithm is registered.
func (a Algorithm) IsValid() bool {
	_, ok := algorithms[a]
	return ok
}

// CryptoHash returns the crypto.Hash identifier for this algorithm,
// or 0 if the algorithm is not registered.
func (a Algorithm) CryptoHash() crypto.Hash {
	if info, ok := algorithms[a]; ok {
		return info.Hash
	}
	return 0
}

// String returns the algorithm name.
func (a Algorithm) String() string {
	return string(a)
}

// ParseAlgorithm parses a string into an Algorithm.
// Returns ErrUnsupportedAlgorithm if the name is not registered.
func ParseAlgorithm(s string) (Algorithm, error) {
	alg := Algorithm(s)
	if !alg.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, s)
	}
	return alg, nil
}

// Algorithms returns all registered algorithm names.
func Algorithms() []Algorithm {
	result := make([]Algorithm, 0, len(algorithms))
	for alg := range algorithms {
		result = append(result, alg)
	}
	return result
}

// Size returns the output size in bytes of the algorithm.
func Size(alg Algorithm) (int, error) {
	info, ok := algorithms[alg]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}
	return info.Size, nil
}

// BlockSize returns the internal block size in bytes of the algorithm.
func BlockSize(alg Algorithm) (int, error) {
	info, ok := algorithms[alg]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}
	return info.BlockSize, nil
}

// New returns a fresh hash.Hash for the algorithm. Each call returns an
// independent context; contexts must not be shared across concurrent
// operations.
func New(alg Algorithm) (hash.Hash, error) {
	info, ok := algorithms[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}
	return info.New(), nil
}

// Sum computes the digest over the logical concatenation of all byte views,
// in order, without copying them together first. The result is identical to
// hashing the pre-concatenated input.
func Sum(alg Algorithm, data ...[]byte) ([]byte, error) {
	info, ok := algorithms[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}

	h := info.New()
	for _, d := range data {
		h.Write(d) // hash.Hash.Write never returns an error
	}

	sum := h.Sum(nil)
	if len(sum) != info.Size {
		// Registry and hash implementation disagree on the output size.
		// That is a backend contract violation, not a runtime condition.
		panic(fmt.Sprintf("digest: %s produced %d bytes, registry says %d", alg, len(sum), info.Size))
	}
	return sum, nil
}
