// Package errors provides error handling and HTTP status code mapping.
package errors

import (
	"errors"
	"net/http"

	"github.com/sealkit/sealkit/internal/api/dto"
	"github.com/sealkit/sealkit/pkg/digest"
	"github.com/sealkit/sealkit/pkg/keyutil"
	"github.com/sealkit/sealkit/pkg/signature"
)

// Error codes for API responses.
const (
	CodeBadRequest           = "bad_request"
	CodeUnsupportedAlgorithm = "unsupported_algorithm"
	CodeEmptyKey             = "empty_key"
	CodeWrongKeyType         = "wrong_key_type"
	CodeMalformedKey         = "malformed_key"
	CodeUnsupportedCurve     = "unsupported_curve"
	CodeInvalidPoint         = "invalid_point"
	CodeKeyTooSmall          = "key_too_small"
	CodeParseError           = "parse_error"
	CodeUnsupportedKey       = "unsupported_key"
	CodeVerificationFailed   = "verification_failed"
	CodeInternal             = "internal_error"
)

// MapError maps an internal error to an HTTP status code and APIError.
func MapError(err error) (int, *dto.APIError) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case errors.Is(err, digest.ErrUnsupportedAlgorithm):
		return http.StatusUnprocessableEntity, &dto.APIError{
			Code:    CodeUnsupportedAlgorithm,
			Message: err.Error(),
		}
	case errors.Is(err, digest.ErrEmptyKey):
		return http.StatusUnprocessableEntity, &dto.APIError{
			Code:    CodeEmptyKey,
			Message: err.Error(),
		}
	case errors.Is(err, keyutil.ErrWrongKeyType):
		return http.StatusUnprocessableEntity, &dto.APIError{
			Code:    CodeWrongKeyType,
			Message: err.Error(),
		}
	case errors.Is(err, keyutil.ErrMalformedKey):
		return http.StatusUnprocessableEntity, &dto.APIError{
			Code:    CodeMalformedKey,
			Message: err.Error(),
		}
	case errors.Is(err, keyutil.ErrUnsupportedCurve):
		return http.StatusUnprocessableEntity, &dto.APIError{
			Code:    CodeUnsupportedCurve,
			Message: err.Error(),
		}
	case errors.Is(err, keyutil.ErrInvalidPoint):
		return http.StatusUnprocessableEntity, &dto.APIError{
			Code:    CodeInvalidPoint,
			Message: err.Error(),
		}
	case errors.Is(err, keyutil.ErrKeyTooSmall):
		return http.StatusUnprocessableEntity, &dto.APIError{
			Code:    CodeKeyTooSmall,
			Message: err.Error(),
		}
	case errors.Is(err, keyutil.ErrParse):
		return http.StatusUnprocessableEntity, &dto.APIError{
			Code:    CodeParseError,
			Message: err.Error(),
		}
	case errors.Is(err, signature.ErrUnsupportedKey):
		return http.StatusUnprocessableEntity, &dto.APIError{
			Code:    CodeUnsupportedKey,
			Message: err.Error(),
		}
	case errors.Is(err, signature.ErrVerification):
		return http.StatusUnprocessableEntity, &dto.APIError{
			Code:    CodeVerificationFailed,
			Message: err.Error(),
		}
	}

	// Check for KeyError with operation context
	var keyErr *keyutil.KeyError
	if errors.As(err, &keyErr) {
		return http.StatusUnprocessableEntity, &dto.APIError{
			Code:    CodeMalformedKey,
			Message: keyErr.Error(),
			Details: map[string]string{"operation": keyErr.Op},
		}
	}

	// Default internal error
	return http.StatusInternalServerError, &dto.APIError{
		Code:    CodeInternal,
		Message: "An internal error occurred",
	}
}

// NewBadRequest creates a bad request error.
func NewBadRequest(message string) *dto.APIError {
	return &dto.APIError{
		Code:    CodeBadRequest,
		Message: message,
	}
}
