package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-w3s-wallet/internal/app"
	"github.com/MKhiriev/go-w3s-wallet/internal/service"
	"github.com/MKhiriev/go-w3s-wallet/internal/store"
	"github.com/MKhiriev/go-w3s-wallet/internal/utils"
	"github.com/MKhiriev/go-w3s-wallet/models"
)

// apiError is the HTTP status and application code an error is answered
// with. A zero code means the body carries no application code.
type apiError struct {
	status int
	code   models.ErrorCode
}

// errorMap is ordered: the first matching entry wins.
var errorMap = []struct {
	target error
	apiError
}{
	{ErrEmptyUserTokenHeader, apiError{http.StatusUnauthorized, models.ErrorCodeUserTokenMissing}},
	{service.ErrTokenIsInvalid, apiError{http.StatusUnauthorized, models.ErrorCodeUserTokenMissing}},
	// the wallet backend answers an expired token with 500 and code 155104
	{service.ErrTokenIsExpired, apiError{http.StatusInternalServerError, models.ErrorCodeUserTokenExpired}},
	{service.ErrUserNotFound, apiError{http.StatusNotFound, models.ErrorCodeUserNotFound}},
	{store.ErrNoUserWasFound, apiError{http.StatusNotFound, models.ErrorCodeUserNotFound}},
	{service.ErrWalletNotFound, apiError{http.StatusNotFound, 0}},
	{ErrInvalidRequestBody, apiError{http.StatusBadRequest, 0}},
	{service.ErrTokenCreationFailed, apiError{http.StatusInternalServerError, 0}},
}

func apiErrorFrom(err error) apiError {
	for _, e := range errorMap {
		if errors.Is(err, e.target) {
			return e.apiError
		}
	}
	return apiError{status: http.StatusInternalServerError}
}

// writeError answers err with the backend's {code, message} payload.
func writeError(w http.ResponseWriter, err error) {
	e := apiErrorFrom(err)

	message := app.MsgInternalServerError
	if e.code != 0 || e.status < http.StatusInternalServerError {
		message = err.Error()
	}

	_, _ = utils.WriteError(w, e.status, e.code, message)
}
