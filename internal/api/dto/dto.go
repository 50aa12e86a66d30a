// Package dto defines the JSON request/response types for the REST API.
package dto

// DigestRequest asks for a digest over the base64 data chunks, hashed in
// list order.
type DigestRequest struct {
	Algorithm string   `json:"algorithm"`
	Data      []string `json:"data"`
}

// DigestResponse carries a hex-encoded digest.
type DigestResponse struct {
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
}

// HMACRequest asks for a keyed digest. Key and data chunks are base64.
type HMACRequest struct {
	Algorithm string   `json:"algorithm"`
	Key       string   `json:"key"`
	Data      []string `json:"data"`
}

// HMACResponse carries a hex-encoded MAC.
type HMACResponse struct {
	Algorithm string `json:"algorithm"`
	MAC       string `json:"mac"`
}

// FingerprintRequest asks for the fingerprint of a PEM public key.
type FingerprintRequest struct {
	Algorithm    string `json:"algorithm"`
	PublicKeyPEM string `json:"public_key_pem"`
}

// FingerprintResponse carries the hex fingerprint and the CBOR key
// descriptor (hex) of the same key.
type FingerprintResponse struct {
	Algorithm   string `json:"algorithm"`
	Fingerprint string `json:"fingerprint"`
	Descriptor  string `json:"descriptor"`
}

// CertFingerprintRequest asks for the SHA-256 identity of a PEM certificate.
type CertFingerprintRequest struct {
	CertificatePEM string `json:"certificate_pem"`
}

// CertFingerprintResponse carries the fixed 32-byte fingerprint, hex encoded.
type CertFingerprintResponse struct {
	Fingerprint string `json:"fingerprint"`
}

// KeyGenRequest asks for a new key pair.
type KeyGenRequest struct {
	Type  string `json:"type"`            // "rsa" or "ec"
	Bits  int    `json:"bits,omitempty"`  // RSA only
	Curve string `json:"curve,omitempty"` // EC only
}

// KeyGenResponse carries the generated pair as PEM.
type KeyGenResponse struct {
	PublicKeyPEM  string `json:"public_key_pem"`
	PrivateKeyPEM string `json:"private_key_pem"`
	Fingerprint   string `json:"fingerprint"`
}

// SignRequest asks for a signature over base64 data with a PEM private key.
type SignRequest struct {
	Algorithm     string `json:"algorithm"`
	PrivateKeyPEM string `json:"private_key_pem"`
	Data          string `json:"data"`
}

// SignResponse carries the base64 signature.
type SignResponse struct {
	Signature string `json:"signature"`
}

// HealthResponse reports service status.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// APIError is the uniform error body.
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}
