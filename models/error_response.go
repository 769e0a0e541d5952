package models

// ErrorCode is an application-level code returned by the wallet backend in
// the body of an error response. It is distinct from the HTTP status.
type ErrorCode int

const (
	// ErrorCodeUserTokenMissing is returned when no X-User-Token header was
	// sent or the token is unknown to the backend.
	ErrorCodeUserTokenMissing ErrorCode = 155101

	// ErrorCodeUserTokenExpired is returned when the user token has expired
	// and must be refreshed via POST /api/user/token.
	ErrorCodeUserTokenExpired ErrorCode = 155104

	// ErrorCodeUserNotFound is returned by the refresh endpoint for an
	// unknown user ID.
	ErrorCodeUserNotFound ErrorCode = 155105
)

// ErrorResponse is the {code, message} payload the backend sends instead of
// the expected body when a request fails at the application level.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}
