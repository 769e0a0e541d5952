package store

import "errors"

// ErrLocalSessionNotFound is returned by [SessionStore.LoadSession] when no
// complete session has been persisted.
var ErrLocalSessionNotFound = errors.New("local session not found")

// Low-level database operation errors. Repository methods wrap them when a
// SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when reading property rows fails.
	ErrScanningRows = errors.New("failed to scan property rows")
)

// Stub backend repository errors.
var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrNoUserWasFound    = errors.New("no user was found")
	ErrWalletNotFound    = errors.New("wallet not found")
)
