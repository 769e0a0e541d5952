package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-w3s-wallet/internal/app"
	"github.com/MKhiriev/go-w3s-wallet/internal/service"
	"github.com/MKhiriev/go-w3s-wallet/internal/store"
	"github.com/MKhiriev/go-w3s-wallet/models"
)

func TestAPIErrorFrom(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apiError
	}{
		{"missing header", ErrEmptyUserTokenHeader, apiError{http.StatusUnauthorized, models.ErrorCodeUserTokenMissing}},
		{"invalid token", fmt.Errorf("%w: bad signature", service.ErrTokenIsInvalid), apiError{http.StatusUnauthorized, models.ErrorCodeUserTokenMissing}},
		{"expired token", service.ErrTokenIsExpired, apiError{http.StatusInternalServerError, models.ErrorCodeUserTokenExpired}},
		{"unknown user", fmt.Errorf("%w: %w", service.ErrUserNotFound, store.ErrNoUserWasFound), apiError{http.StatusNotFound, models.ErrorCodeUserNotFound}},
		{"wallet not found", service.ErrWalletNotFound, apiError{http.StatusNotFound, 0}},
		{"bad body", ErrInvalidRequestBody, apiError{http.StatusBadRequest, 0}},
		{"unexpected", errors.New("boom"), apiError{http.StatusInternalServerError, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apiErrorFrom(tt.err))
		})
	}
}

func TestWriteError_HidesInternalMessages(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, errors.New("database password is hunter2"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "hunter2")
	assert.Contains(t, rr.Body.String(), app.MsgInternalServerError)
}

func TestWriteError_ExposesCodedMessages(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, service.ErrTokenIsExpired)

	assert.JSONEq(t, `{"code":155104,"message":"token is expired"}`, rr.Body.String())
}
