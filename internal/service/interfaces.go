package service

import (
	"context"

	"github.com/MKhiriev/go-w3s-wallet/models"
)

// UserService provisions stub backend users and issues their sessions.
type UserService interface {
	// CreateUser provisions a new user together with its wallets and returns
	// the user's first session.
	CreateUser(ctx context.Context) (models.Session, error)

	// RefreshToken issues a new session for an existing user.
	RefreshToken(ctx context.Context, userID string) (models.Session, error)

	// ParseToken validates a user token and returns the user ID it was
	// issued for. Returns [ErrTokenIsExpired] or [ErrTokenIsInvalid].
	ParseToken(ctx context.Context, userToken string) (string, error)
}

// WalletService serves the wallets of stub backend users.
type WalletService interface {
	// ListWallets returns the user's wallets, or an empty list while they
	// are still being created.
	ListWallets(ctx context.Context, userID string) ([]models.Wallet, error)

	// ListBalances returns the balances of one of the user's wallets.
	ListBalances(ctx context.Context, userID, walletID string) ([]models.TokenBalance, error)
}

// AppInfoService exposes the build metadata of the running binary.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
