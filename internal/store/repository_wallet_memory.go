package store

import (
	"context"
	"sync"

	"github.com/zyedidia/generic/cache"

	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/models"
)

type walletMemoryRepository struct {
	mu      sync.Mutex
	wallets *cache.Cache[string, []models.Wallet]

	logger *logger.Logger
}

// NewWalletMemoryRepository creates an in-memory [WalletRepository] holding
// the wallets of at most capacity users.
func NewWalletMemoryRepository(capacity int, logger *logger.Logger) WalletRepository {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &walletMemoryRepository{
		wallets: cache.New[string, []models.Wallet](capacity),
		logger:  logger,
	}
}

func (r *walletMemoryRepository) SaveWallets(ctx context.Context, userID string, wallets []models.Wallet) error {
	stored := make([]models.Wallet, len(wallets))
	for i, w := range wallets {
		stored[i] = w.Clone()
	}

	r.mu.Lock()
	r.wallets.Put(userID, stored)
	r.mu.Unlock()

	r.logger.Debug().Str("user_id", userID).Int("wallets", len(stored)).Msg("wallets saved")
	return nil
}

func (r *walletMemoryRepository) ListWallets(ctx context.Context, userID string) ([]models.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, _ := r.wallets.Get(userID)
	out := make([]models.Wallet, len(stored))
	for i, w := range stored {
		out[i] = w
		out[i].Balances = nil
	}
	return out, nil
}

func (r *walletMemoryRepository) ListBalances(ctx context.Context, userID, walletID string) ([]models.TokenBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, _ := r.wallets.Get(userID)
	for _, w := range stored {
		if w.ID == walletID {
			return w.Clone().Balances, nil
		}
	}
	return nil, ErrWalletNotFound
}
