// Package keyutil builds and deconstructs RSA and EC public keys from raw
// numeric parameters, parses PEM key material, and generates new key pairs.
package keyutil

import (
	"errors"
	"fmt"
)

// KeyError represents a key codec operation error with structured context.
// It supports errors.Is() and errors.As() for improved error handling.
type KeyError struct {
	Op  string // Operation: "build", "extract", "generate", "parse", "encode", "size"
	Err error  // Underlying error
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	return fmt.Sprintf("keyutil %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *KeyError) Unwrap() error { return e.Err }

func newKeyError(op string, err error) *KeyError {
	return &KeyError{Op: op, Err: err}
}

// Sentinel errors for key codec operations.
// Use errors.Is() to check for these errors through the error chain.
var (
	// ErrMalformedKey indicates the raw key parameters are degenerate or
	// not representable (e.g. a one-byte RSA modulus).
	ErrMalformedKey = errors.New("malformed key parameters")

	// ErrWrongKeyType indicates the operation was applied to a key of a
	// different algorithm (e.g. reading RSA parameters from an EC key).
	ErrWrongKeyType = errors.New("wrong key type")

	// ErrUnsupportedCurve indicates the named curve is not registered.
	ErrUnsupportedCurve = errors.New("unsupported curve")

	// ErrInvalidPoint indicates the affine coordinates do not lie on the curve.
	ErrInvalidPoint = errors.New("point is not on the curve")

	// ErrParse indicates PEM or DER key material could not be decoded.
	ErrParse = errors.New("key parse failure")

	// ErrKeyTooSmall indicates a degenerate key too small to derive a
	// symmetric key size from.
	ErrKeyTooSmall = errors.New("key size too small")
)
