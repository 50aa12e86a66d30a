package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/sealkit/sealkit/pkg/digest"
	"github.com/sealkit/sealkit/pkg/keyutil"
	"github.com/sealkit/sealkit/pkg/signature"
)

func TestU_MapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"nil error", nil, http.StatusOK, ""},
		{"unsupported algorithm", digest.ErrUnsupportedAlgorithm, http.StatusUnprocessableEntity, CodeUnsupportedAlgorithm},
		{"empty key", digest.ErrEmptyKey, http.StatusUnprocessableEntity, CodeEmptyKey},
		{"wrong key type", keyutil.ErrWrongKeyType, http.StatusUnprocessableEntity, CodeWrongKeyType},
		{"malformed key", keyutil.ErrMalformedKey, http.StatusUnprocessableEntity, CodeMalformedKey},
		{"unsupported curve", keyutil.ErrUnsupportedCurve, http.StatusUnprocessableEntity, CodeUnsupportedCurve},
		{"invalid point", keyutil.ErrInvalidPoint, http.StatusUnprocessableEntity, CodeInvalidPoint},
		{"verification failure", signature.ErrVerification, http.StatusUnprocessableEntity, CodeVerificationFailed},
		{"wrapped sentinel", fmt.Errorf("outer: %w", keyutil.ErrParse), http.StatusUnprocessableEntity, CodeParseError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run("[Unit] "+tt.name, func(t *testing.T) {
			status, apiErr := MapError(tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if tt.err == nil {
				if apiErr != nil {
					t.Errorf("apiErr = %+v, want nil", apiErr)
				}
				return
			}
			if apiErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", apiErr.Code, tt.wantCode)
			}
		})
	}
}
