package service

import "errors"

// Session client errors.
var (
	// ErrNoSession is returned by wallet operations when no session is
	// current, including polls whose session was signed out or replaced.
	ErrNoSession = errors.New("no active session")

	// ErrTokenExpired is returned when the backend still reports an expired
	// token right after a successful refresh.
	ErrTokenExpired = errors.New("user token expired after refresh")

	// ErrWalletsNotReady is returned when the wallet list stayed empty for
	// the configured maximum number of poll attempts.
	ErrWalletsNotReady = errors.New("wallets not ready")

	// ErrUserNotFound is returned when the backend does not know the user ID
	// a refresh was requested for.
	ErrUserNotFound = errors.New("user not found")
)

// Stub backend errors.
var (
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrWalletNotFound      = errors.New("wallet not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
