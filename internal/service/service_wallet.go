package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/internal/store"
	"github.com/MKhiriev/go-w3s-wallet/models"
)

type walletService struct {
	users   store.UserRepository
	wallets store.WalletRepository

	now    func() time.Time
	logger *logger.Logger
}

func NewWalletService(users store.UserRepository, wallets store.WalletRepository, logger *logger.Logger) WalletService {
	return &walletService{
		users:   users,
		wallets: wallets,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *walletService) ListWallets(ctx context.Context, userID string) ([]models.Wallet, error) {
	user, err := s.users.FindUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user search failed: %w", err)
	}

	if !user.WalletsReady(s.now()) {
		logger.FromContext(ctx).Debug().Str("user_id", userID).Time("ready_at", user.WalletsReadyAt).Msg("wallets are not created yet")
		return []models.Wallet{}, nil
	}

	wallets, err := s.wallets.ListWallets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wallet search failed: %w", err)
	}
	return wallets, nil
}

func (s *walletService) ListBalances(ctx context.Context, userID, walletID string) ([]models.TokenBalance, error) {
	user, err := s.users.FindUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user search failed: %w", err)
	}

	if !user.WalletsReady(s.now()) {
		return nil, ErrWalletNotFound
	}

	balances, err := s.wallets.ListBalances(ctx, userID, walletID)
	if errors.Is(err, store.ErrWalletNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrWalletNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("balance search failed: %w", err)
	}
	return balances, nil
}
