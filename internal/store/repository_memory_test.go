package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/models"
)

// ── UserRepository ────────────────────────────────────────────────────────────

func TestUserMemoryRepository_CreateAndFind(t *testing.T) {
	repo := NewUserMemoryRepository(0, logger.Nop())
	ctx := context.Background()

	user := models.User{ID: "u1", CreatedAt: time.Now(), WalletsReadyAt: time.Now().Add(time.Second)}
	require.NoError(t, repo.CreateUser(ctx, user))

	got, err := repo.FindUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserMemoryRepository_Duplicate(t *testing.T) {
	repo := NewUserMemoryRepository(0, logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, models.User{ID: "u1"}))
	assert.ErrorIs(t, repo.CreateUser(ctx, models.User{ID: "u1"}), ErrUserAlreadyExists)
}

func TestUserMemoryRepository_NotFound(t *testing.T) {
	repo := NewUserMemoryRepository(0, logger.Nop())

	_, err := repo.FindUser(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestUserMemoryRepository_EvictsLeastRecentlyUsed(t *testing.T) {
	repo := NewUserMemoryRepository(2, logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, models.User{ID: "u1"}))
	require.NoError(t, repo.CreateUser(ctx, models.User{ID: "u2"}))
	_, err := repo.FindUser(ctx, "u1") // u2 is now the oldest
	require.NoError(t, err)
	require.NoError(t, repo.CreateUser(ctx, models.User{ID: "u3"}))

	_, err = repo.FindUser(ctx, "u2")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
	_, err = repo.FindUser(ctx, "u1")
	assert.NoError(t, err)
}

func TestUserMemoryRepository_Concurrent(t *testing.T) {
	repo := NewUserMemoryRepository(0, logger.Nop())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("u%d", i)
			assert.NoError(t, repo.CreateUser(ctx, models.User{ID: id}))
			_, err := repo.FindUser(ctx, id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

// ── WalletRepository ──────────────────────────────────────────────────────────

func testWallets() []models.Wallet {
	return []models.Wallet{
		{ID: "w1", UserID: "u1", Blockchain: "MATIC-AMOY", Balances: []models.TokenBalance{
			{Token: models.TokenInfo{Symbol: "MATIC-AMOY", IsNative: true}, Amount: "0"},
		}},
		{ID: "w2", UserID: "u1", Blockchain: "ETH-SEPOLIA", Balances: []models.TokenBalance{
			{Token: models.TokenInfo{Symbol: "ETH-SEPOLIA", IsNative: true}, Amount: "0"},
			{Token: models.TokenInfo{Symbol: "USDC"}, Amount: "10"},
		}},
	}
}

func TestWalletMemoryRepository_ListWithoutBalances(t *testing.T) {
	repo := NewWalletMemoryRepository(0, logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.SaveWallets(ctx, "u1", testWallets()))

	got, err := repo.ListWallets(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "w1", got[0].ID)
	assert.Equal(t, "w2", got[1].ID)
	for _, w := range got {
		assert.Nil(t, w.Balances)
	}
}

func TestWalletMemoryRepository_UnknownUserHasNoWallets(t *testing.T) {
	repo := NewWalletMemoryRepository(0, logger.Nop())

	got, err := repo.ListWallets(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWalletMemoryRepository_ListBalances(t *testing.T) {
	repo := NewWalletMemoryRepository(0, logger.Nop())
	ctx := context.Background()
	require.NoError(t, repo.SaveWallets(ctx, "u1", testWallets()))

	got, err := repo.ListBalances(ctx, "u1", "w2")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "USDC", got[1].Token.Symbol)

	_, err = repo.ListBalances(ctx, "u1", "w3")
	assert.ErrorIs(t, err, ErrWalletNotFound)

	_, err = repo.ListBalances(ctx, "u2", "w1")
	assert.ErrorIs(t, err, ErrWalletNotFound, "wallet of another user")
}

func TestWalletMemoryRepository_StoredCopyIsIsolated(t *testing.T) {
	repo := NewWalletMemoryRepository(0, logger.Nop())
	ctx := context.Background()

	wallets := testWallets()
	require.NoError(t, repo.SaveWallets(ctx, "u1", wallets))
	wallets[0].Balances[0].Amount = "999"

	got, err := repo.ListBalances(ctx, "u1", "w1")
	require.NoError(t, err)
	assert.Equal(t, "0", got[0].Amount)

	got[0].Amount = "123"
	again, err := repo.ListBalances(ctx, "u1", "w1")
	require.NoError(t, err)
	assert.Equal(t, "0", again[0].Amount)
}

func TestNewStorages(t *testing.T) {
	s := NewStorages(10, logger.Nop())
	require.NotNil(t, s.UserRepository)
	require.NotNil(t, s.WalletRepository)
}
