package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-w3s-wallet/models"
)

// SessionClient obtains and maintains a user session against the wallet
// backend and keeps an in-memory view of the user's wallets and balances.
//
// All methods are safe for concurrent use. Network calls run without holding
// the client's state lock; every state change is applied under it.
type SessionClient interface {
	// CreateSession provisions a new backend user, persists its user ID and
	// user token, and makes the session current (state Created). On failure
	// the state becomes CreationFailed and no retry is scheduled.
	CreateSession(ctx context.Context) (models.Session, error)

	// RefreshToken exchanges userID for a fresh session, persists it and
	// makes it current (state Active). On success the wallet list is
	// re-polled before RefreshToken returns; failures of that re-poll go to
	// the error handler only.
	RefreshToken(ctx context.Context, userID string) (models.Session, error)

	// ListWallets polls GET /api/wallets until it returns at least one
	// wallet, replaces the in-memory wallet collection and fetches every
	// wallet's balances before returning the resulting snapshot.
	//
	// An expired user token is refreshed once and the refresh's re-poll
	// supplies the result. Returns [ErrNoSession] without touching the
	// network when no session is current.
	ListWallets(ctx context.Context) ([]models.Wallet, error)

	// GetBalances fetches walletID's balances and appends them to the
	// matching in-memory wallet. Repeated calls append repeatedly.
	GetBalances(ctx context.Context, walletID string) ([]models.TokenBalance, error)

	// RestoreSession loads the persisted user ID and user token and makes
	// them current. Returns store.ErrLocalSessionNotFound when nothing was
	// persisted.
	RestoreSession(ctx context.Context) (models.Session, error)

	// SignOut drops the in-memory session and wallets, the adapter's token
	// and the persisted keys. Polls still running for the old session stop
	// with [ErrNoSession].
	SignOut(ctx context.Context) error

	// Session returns the current session (zero when signed out).
	Session() models.Session

	// Wallets returns a deep copy of the current wallet collection.
	Wallets() []models.Wallet

	// State returns the current lifecycle state.
	State() models.SessionState
}

// ErrorHandler receives failures that the wallet and balance paths report
// instead of surfacing: balance fetches fired by ListWallets, the re-poll
// done by RefreshToken, and the background refresh job. op names the failed
// operation.
type ErrorHandler func(ctx context.Context, op string, err error)

// WalletRefreshJob defines the contract for a background worker that
// periodically re-lists wallets for the current session.
type WalletRefreshJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 30 seconds if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
