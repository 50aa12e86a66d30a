package keyutil

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/sealkit/sealkit/pkg/bigint"
)

// CurveID identifies a named elliptic curve.
type CurveID string

// Supported curves.
const (
	CurveP224 CurveID = "p-224"
	CurveP256 CurveID = "p-256"
	CurveP384 CurveID = "p-384"
	CurveP521 CurveID = "p-521"
)

// curves maps CurveID to its parameters.
var curves = map[CurveID]elliptic.Curve{
	CurveP224: elliptic.P224(),
	CurveP256: elliptic.P256(),
	CurveP384: elliptic.P384(),
	CurveP521: elliptic.P521(),
}

// IsValid returns true if the curve is registered.
func (c CurveID) IsValid() bool {
	_, ok := curves[c]
	return ok
}

// String returns the curve name.
func (c CurveID) String() string {
	return string(c)
}

// Params returns the elliptic.Curve for this CurveID, or nil if unknown.
func (c CurveID) Params() elliptic.Curve {
	return curves[c]
}

// ParseCurve parses a string into a CurveID.
// Returns ErrUnsupportedCurve if the name is not registered.
func ParseCurve(s string) (CurveID, error) {
	c := CurveID(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedCurve, s)
	}
	return c, nil
}

// Curves returns all registered curve names.
func Curves() []CurveID {
	result := make([]CurveID, 0, len(curves))
	for c := range curves {
		result = append(result, c)
	}
	return result
}

// curveID maps curve parameters back to a CurveID.
func curveID(curve elliptic.Curve) (CurveID, bool) {
	for id, c := range curves {
		if c == curve {
			return id, true
		}
	}
	return "", false
}

// NewECPublicKey builds an EC public key from a named curve and affine
// coordinates, both big-endian unsigned. The point is validated against
// the curve equation.
func NewECPublicKey(curve CurveID, x, y []byte) (*ecdsa.PublicKey, error) {
	params, ok := curves[curve]
	if !ok {
		return nil, newKeyError("build", fmt.Errorf("%w: %s", ErrUnsupportedCurve, curve))
	}

	bnX := bigint.FromBytes(x)
	bnY := bigint.FromBytes(y)

	//nolint:staticcheck // IsOnCurve is deprecated but point validation on raw coordinates needs it
	if !params.IsOnCurve(bnX, bnY) {
		return nil, newKeyError("build", fmt.Errorf("%w: curve %s", ErrInvalidPoint, curve))
	}

	return &ecdsa.PublicKey{Curve: params, X: bnX, Y: bnY}, nil
}

// ECPublicKeyParams returns the curve and affine coordinates of an EC
// public key, the coordinates as minimal-length big-endian unsigned bytes.
func ECPublicKeyParams(pub crypto.PublicKey) (curve CurveID, x, y []byte, err error) {
	ecPub, ok := pub.(*ecdsa.PublicKey)
	if !ok {
		return "", nil, nil, newKeyError("extract", fmt.Errorf("%w: have %T, want *ecdsa.PublicKey", ErrWrongKeyType, pub))
	}

	id, ok := curveID(ecPub.Curve)
	if !ok {
		return "", nil, nil, newKeyError("extract", fmt.Errorf("%w: %s", ErrUnsupportedCurve, ecPub.Curve.Params().Name))
	}

	x, err = bigint.ToBytes(ecPub.X)
	if err != nil {
		return "", nil, nil, newKeyError("extract", err)
	}
	y, err = bigint.ToBytes(ecPub.Y)
	if err != nil {
		return "", nil, nil, newKeyError("extract", err)
	}
	return id, x, y, nil
}

// GenerateEC generates a new EC key on the specified curve.
func GenerateEC(curve CurveID) (*ecdsa.PrivateKey, error) {
	return GenerateECWithRand(rand.Reader, curve)
}

// GenerateECWithRand generates an EC key using the provided random source.
func GenerateECWithRand(random io.Reader, curve CurveID) (*ecdsa.PrivateKey, error) {
	params, ok := curves[curve]
	if !ok {
		return nil, newKeyError("generate", fmt.Errorf("%w: %s", ErrUnsupportedCurve, curve))
	}

	priv, err := ecdsa.GenerateKey(params, random)
	if err != nil {
		return nil, newKeyError("generate", fmt.Errorf("failed to generate %s key: %w", curve, err))
	}
	return priv, nil
}
