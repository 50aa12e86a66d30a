// Package handler provides HTTP handlers for the REST API.
package handler

import (
	"crypto"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"encoding/pem"
	"net/http"

	"go.step.sm/crypto/pemutil"

	"github.com/sealkit/sealkit/internal/api/dto"
	apierrors "github.com/sealkit/sealkit/internal/api/errors"
	"github.com/sealkit/sealkit/pkg/digest"
	"github.com/sealkit/sealkit/pkg/keyutil"
	"github.com/sealkit/sealkit/pkg/signature"
)

// Handler serves the primitive operations over HTTP.
type Handler struct {
	version string
}

// New creates a new Handler.
func New(version string) *Handler {
	return &Handler{version: version}
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok", Version: h.version})
}

// Digest handles POST /v1/digest.
func (h *Handler) Digest(w http.ResponseWriter, r *http.Request) {
	var req dto.DigestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid JSON body")
		return
	}

	alg, err := digest.ParseAlgorithm(req.Algorithm)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	data, err := decodeChunks(req.Data)
	if err != nil {
		respondBadRequest(w, "data chunks must be base64")
		return
	}

	sum, err := digest.Sum(alg, data...)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.DigestResponse{Algorithm: string(alg), Digest: hex.EncodeToString(sum)})
}

// HMAC handles POST /v1/hmac.
func (h *Handler) HMAC(w http.ResponseWriter, r *http.Request) {
	var req dto.HMACRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid JSON body")
		return
	}

	alg, err := digest.ParseAlgorithm(req.Algorithm)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	key, err := base64.StdEncoding.DecodeString(req.Key)
	if err != nil {
		respondBadRequest(w, "key must be base64")
		return
	}
	data, err := decodeChunks(req.Data)
	if err != nil {
		respondBadRequest(w, "data chunks must be base64")
		return
	}

	mac, err := digest.HMACSum(alg, key, data...)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.HMACResponse{Algorithm: string(alg), MAC: hex.EncodeToString(mac)})
}

// Fingerprint handles POST /v1/keys/fingerprint.
func (h *Handler) Fingerprint(w http.ResponseWriter, r *http.Request) {
	var req dto.FingerprintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid JSON body")
		return
	}

	alg, err := digest.ParseAlgorithm(req.Algorithm)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	pub, err := keyutil.ParsePublicKeyPEM([]byte(req.PublicKeyPEM))
	if err != nil {
		respondMappedError(w, err)
		return
	}

	fp, err := signature.Fingerprint(pub, alg)
	if err != nil {
		respondMappedError(w, err)
		return
	}

	desc, err := keyutil.NewDescriptor(pub)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	descData, err := desc.Marshal()
	if err != nil {
		respondMappedError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.FingerprintResponse{
		Algorithm:   string(alg),
		Fingerprint: hex.EncodeToString(fp),
		Descriptor:  hex.EncodeToString(descData),
	})
}

// CertFingerprint handles POST /v1/certificates/fingerprint.
func (h *Handler) CertFingerprint(w http.ResponseWriter, r *http.Request) {
	var req dto.CertFingerprintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid JSON body")
		return
	}

	block, _ := pem.Decode([]byte(req.CertificatePEM))
	if block == nil || block.Type != "CERTIFICATE" {
		respondJSON(w, http.StatusUnprocessableEntity, &dto.APIError{
			Code:    apierrors.CodeParseError,
			Message: "not a PEM certificate",
		})
		return
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, &dto.APIError{
			Code:    apierrors.CodeParseError,
			Message: err.Error(),
		})
		return
	}

	fp, err := signature.CertificateFingerprint(cert)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.CertFingerprintResponse{Fingerprint: hex.EncodeToString(fp)})
}

// KeyGen handles POST /v1/keys.
func (h *Handler) KeyGen(w http.ResponseWriter, r *http.Request) {
	var req dto.KeyGenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid JSON body")
		return
	}

	var (
		priv crypto.Signer
		err  error
	)
	switch req.Type {
	case "rsa":
		bits := req.Bits
		if bits == 0 {
			bits = 2048
		}
		// Bound what a single request can ask the keygen to do.
		if bits < 2048 || bits > 8192 {
			respondBadRequest(w, "bits must be between 2048 and 8192")
			return
		}
		priv, err = keyutil.GenerateRSA(bits)
	case "ec":
		curve := keyutil.CurveID(req.Curve)
		if req.Curve == "" {
			curve = keyutil.CurveP256
		}
		priv, err = keyutil.GenerateEC(curve)
	default:
		respondJSON(w, http.StatusUnprocessableEntity, &dto.APIError{
			Code:    apierrors.CodeWrongKeyType,
			Message: "type must be rsa or ec",
		})
		return
	}
	if err != nil {
		respondMappedError(w, err)
		return
	}

	pubPEM, err := keyutil.EncodePublicKeyPEM(priv.Public())
	if err != nil {
		respondMappedError(w, err)
		return
	}
	privBlock, err := pemutil.Serialize(priv)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	fp, err := signature.Fingerprint(priv.Public(), digest.SHA256)
	if err != nil {
		respondMappedError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.KeyGenResponse{
		PublicKeyPEM:  string(pubPEM),
		PrivateKeyPEM: string(pem.EncodeToMemory(privBlock)),
		Fingerprint:   hex.EncodeToString(fp),
	})
}

// Sign handles POST /v1/sign.
func (h *Handler) Sign(w http.ResponseWriter, r *http.Request) {
	var req dto.SignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid JSON body")
		return
	}

	alg, err := digest.ParseAlgorithm(req.Algorithm)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		respondBadRequest(w, "data must be base64")
		return
	}
	priv, err := pemutil.Parse([]byte(req.PrivateKeyPEM))
	if err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, &dto.APIError{
			Code:    apierrors.CodeParseError,
			Message: err.Error(),
		})
		return
	}

	sig, err := signature.Sign(priv, alg, data)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.SignResponse{Signature: base64.StdEncoding.EncodeToString(sig)})
}

// decodeChunks base64-decodes each data chunk, preserving order.
func decodeChunks(chunks []string) ([][]byte, error) {
	data := make([][]byte, 0, len(chunks))
	for _, c := range chunks {
		b, err := base64.StdEncoding.DecodeString(c)
		if err != nil {
			return nil, err
		}
		data = append(data, b)
	}
	return data, nil
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// respondBadRequest writes a 400 error response.
func respondBadRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, apierrors.NewBadRequest(message))
}

// respondMappedError maps a domain error to a status code and writes it.
func respondMappedError(w http.ResponseWriter, err error) {
	status, apiErr := apierrors.MapError(err)
	respondJSON(w, status, apiErr)
}
