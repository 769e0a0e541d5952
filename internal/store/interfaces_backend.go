package store

import (
	"context"

	"github.com/MKhiriev/go-w3s-wallet/models"
)

// UserRepository keeps the users provisioned by the stub backend.
type UserRepository interface {
	// CreateUser stores user. Returns [ErrUserAlreadyExists] if its ID is
	// taken.
	CreateUser(ctx context.Context, user models.User) error

	// FindUser returns the user with the given ID or [ErrNoUserWasFound].
	FindUser(ctx context.Context, userID string) (models.User, error)
}

// WalletRepository keeps the wallets of stub backend users together with
// their balances.
type WalletRepository interface {
	// SaveWallets replaces the wallets of userID. Each wallet's Balances are
	// stored with it.
	SaveWallets(ctx context.Context, userID string, wallets []models.Wallet) error

	// ListWallets returns the wallets of userID without their balances. A
	// user without wallets gets an empty, non-nil slice.
	ListWallets(ctx context.Context, userID string) ([]models.Wallet, error)

	// ListBalances returns the balances of walletID, which must belong to
	// userID. Returns [ErrWalletNotFound] otherwise.
	ListBalances(ctx context.Context, userID, walletID string) ([]models.TokenBalance, error)
}
