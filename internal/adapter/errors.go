package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-w3s-wallet/models"
)

var (
	ErrNetwork = errors.New("network error")
	ErrDecode  = errors.New("unexpected response body")
	ErrNoToken = errors.New("no user token")
)

// APIError is the backend's application-level error payload together with
// the HTTP status it arrived with.
type APIError struct {
	Status  int
	Code    models.ErrorCode
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (http %d): %s", e.Code, e.Status, e.Message)
}

// IsTokenExpired reports whether err carries the token-expired error code.
func IsTokenExpired(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == models.ErrorCodeUserTokenExpired
}
