package keyutil

import (
	"crypto"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// KeyType tags the algorithm family of a key descriptor.
type KeyType string

// Supported key types.
const (
	KeyTypeRSA KeyType = "rsa"
	KeyTypeEC  KeyType = "ec"
)

// Descriptor is a compact, self-describing encoding of public-key
// parameters, suitable for embedding in token or header metadata.
// All integer fields are big-endian unsigned bytes, minimal length.
type Descriptor struct {
	Type  KeyType `cbor:"1,keyasint"`
	N     []byte  `cbor:"2,keyasint,omitempty"`
	E     []byte  `cbor:"3,keyasint,omitempty"`
	Curve CurveID `cbor:"4,keyasint,omitempty"`
	X     []byte  `cbor:"5,keyasint,omitempty"`
	Y     []byte  `cbor:"6,keyasint,omitempty"`
}

// descEncMode is the deterministic CBOR encoder for descriptors, so equal
// keys always produce byte-identical descriptors.
var descEncMode, _ = cbor.CoreDetEncOptions().EncMode()

// NewDescriptor deconstructs a public key into a Descriptor.
func NewDescriptor(pub crypto.PublicKey) (*Descriptor, error) {
	if n, e, err := RSAPublicKeyParams(pub); err == nil {
		return &Descriptor{Type: KeyTypeRSA, N: n, E: e}, nil
	}

	curve, x, y, err := ECPublicKeyParams(pub)
	if err != nil {
		return nil, newKeyError("build", fmt.Errorf("%w: %T has no descriptor form", ErrWrongKeyType, pub))
	}
	return &Descriptor{Type: KeyTypeEC, Curve: curve, X: x, Y: y}, nil
}

// PublicKey rebuilds the public key described by d.
func (d *Descriptor) PublicKey() (crypto.PublicKey, error) {
	switch d.Type {
	case KeyTypeRSA:
		return NewRSAPublicKey(d.N, d.E)
	case KeyTypeEC:
		return NewECPublicKey(d.Curve, d.X, d.Y)
	default:
		return nil, newKeyError("build", fmt.Errorf("%w: unknown descriptor type %q", ErrMalformedKey, d.Type))
	}
}

// Marshal encodes the descriptor as deterministic CBOR.
func (d *Descriptor) Marshal() ([]byte, error) {
	data, err := descEncMode.Marshal(d)
	if err != nil {
		return nil, newKeyError("encode", fmt.Errorf("failed to encode descriptor: %w", err))
	}
	return data, nil
}

// ParseDescriptor decodes a CBOR key descriptor.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := cbor.Unmarshal(data, &d); err != nil {
		return nil, newKeyError("parse", fmt.Errorf("%w: %v", ErrParse, err))
	}
	return &d, nil
}
