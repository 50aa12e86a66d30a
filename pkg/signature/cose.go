package signature

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"fmt"

	gocose "github.com/veraison/go-cose"
)

// coseAlgorithm maps a public key to the COSE algorithm used to sign with
// it. ECDSA curves pin their matching SHA-2 digest per RFC 9053; RSA keys
// use RSASSA-PSS with SHA-256.
func coseAlgorithm(pub crypto.PublicKey) (gocose.Algorithm, error) {
	switch k := pub.(type) {
	case *ecdsa.PublicKey:
		switch k.Curve {
		case elliptic.P256():
			return gocose.AlgorithmES256, nil
		case elliptic.P384():
			return gocose.AlgorithmES384, nil
		case elliptic.P521():
			return gocose.AlgorithmES512, nil
		default:
			return 0, fmt.Errorf("%w: no COSE algorithm for curve %s", ErrUnsupportedKey, k.Curve.Params().Name)
		}
	case ed25519.PublicKey:
		return gocose.AlgorithmEdDSA, nil
	case *rsa.PublicKey:
		return gocose.AlgorithmPS256, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedKey, pub)
	}
}

// SignCOSE signs a payload as a COSE_Sign1 message (RFC 9052) and returns
// its CBOR encoding. The COSE algorithm is derived from the key type.
func SignCOSE(priv crypto.Signer, payload []byte) ([]byte, error) {
	alg, err := coseAlgorithm(priv.Public())
	if err != nil {
		return nil, err
	}

	signer, err := gocose.NewSigner(alg, priv)
	if err != nil {
		return nil, fmt.Errorf("failed to create COSE signer: %w", err)
	}

	msg := gocose.NewSign1Message()
	msg.Headers.Protected.SetAlgorithm(alg)
	msg.Payload = payload

	if err := msg.Sign(rand.Reader, nil, signer); err != nil {
		return nil, fmt.Errorf("failed to sign COSE_Sign1 message: %w", err)
	}
	return msg.MarshalCBOR()
}

// VerifyCOSE verifies a CBOR-encoded COSE_Sign1 message against a public
// key and returns the embedded payload.
func VerifyCOSE(pub crypto.PublicKey, data []byte) ([]byte, error) {
	var msg gocose.Sign1Message
	if err := msg.UnmarshalCBOR(data); err != nil {
		return nil, fmt.Errorf("failed to decode COSE_Sign1 message: %w", err)
	}

	alg, err := msg.Headers.Protected.Algorithm()
	if err != nil {
		return nil, fmt.Errorf("COSE_Sign1 message has no algorithm header: %w", err)
	}

	verifier, err := gocose.NewVerifier(alg, pub)
	if err != nil {
		return nil, fmt.Errorf("failed to create COSE verifier: %w", err)
	}
	if err := msg.Verify(nil, verifier); err != nil {
		return nil, ErrVerification
	}
	return msg.Payload, nil
}
