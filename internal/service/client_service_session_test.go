package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-w3s-wallet/internal/adapter"
	"github.com/MKhiriev/go-w3s-wallet/internal/config"
	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/internal/mock"
	"github.com/MKhiriev/go-w3s-wallet/internal/store"
	"github.com/MKhiriev/go-w3s-wallet/models"
)

const testPollInterval = 5 * time.Millisecond

var (
	testSession = models.Session{UserID: "u1", UserToken: "t1", SecretKey: "s1", ChallengeID: "c1"}

	expiredErr = &adapter.APIError{Status: 500, Code: models.ErrorCodeUserTokenExpired, Message: "token expired"}
)

// errorSink collects everything passed to the client's error handler.
type errorSink struct {
	mu   sync.Mutex
	ops  []string
	errs []error
}

func (s *errorSink) handle(_ context.Context, op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, op)
	s.errs = append(s.errs, err)
}

func (s *errorSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.errs)
}

// newTestSessionClient wires a sessionClient to gomock collaborators.
func newTestSessionClient(
	t *testing.T,
	ctrl *gomock.Controller,
	cfg config.ClientWorkers,
) (*sessionClient, *mock.MockServerAdapter, *mock.MockSessionStore, *errorSink) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockStore := mock.NewMockSessionStore(ctrl)
	sink := &errorSink{}

	if cfg.PollInterval == 0 {
		cfg.PollInterval = testPollInterval
	}

	c := NewSessionClient(mockAdapter, mockStore, cfg, logger.Nop(), WithErrorHandler(sink.handle)).(*sessionClient)
	return c, mockAdapter, mockStore, sink
}

// withSession installs session directly, bypassing the adapter.
func withSession(c *sessionClient, session models.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.session = session
	c.state = models.SessionCreated
}

func wallet(id string) models.Wallet {
	return models.Wallet{ID: id, State: "LIVE", UserID: "u1", Blockchain: "MATIC-AMOY"}
}

func balance(symbol, amount string) models.TokenBalance {
	return models.TokenBalance{Token: models.TokenInfo{ID: "tok-" + symbol, Symbol: symbol}, Amount: amount}
}

func findWallet(t *testing.T, wallets []models.Wallet, id string) models.Wallet {
	t.Helper()
	for _, w := range wallets {
		if w.ID == id {
			return w
		}
	}
	t.Fatalf("wallet %s not found", id)
	return models.Wallet{}
}

// ── CreateSession ────────────────────────────────────────────────────────────

func TestSessionClient_CreateSession_PersistsAndInstalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, mockStore, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})

	gomock.InOrder(
		mockAdapter.EXPECT().CreateUser(gomock.Any()).Return(testSession, nil),
		mockAdapter.EXPECT().SetToken("t1"),
		mockStore.EXPECT().SaveSession(gomock.Any(), "u1", "t1").Return(nil),
	)

	got, err := c.CreateSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testSession, got)
	assert.Equal(t, testSession, c.Session())
	assert.Equal(t, models.SessionCreated, c.State())
}

func TestSessionClient_CreateSession_Failures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "network", err: fmt.Errorf("%w: dial tcp: refused", adapter.ErrNetwork), wantErr: adapter.ErrNetwork},
		{name: "malformed body", err: fmt.Errorf("%w: decode create user response", adapter.ErrDecode), wantErr: adapter.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c, mockAdapter, _, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})

			// exactly one attempt, nothing persisted
			mockAdapter.EXPECT().CreateUser(gomock.Any()).Return(models.Session{}, tt.err).Times(1)

			_, err := c.CreateSession(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, models.SessionCreationFailed, c.State())
			assert.True(t, c.Session().IsZero())
		})
	}
}

func TestSessionClient_CreateSession_PersistFailureIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, mockStore, sink := newTestSessionClient(t, ctrl, config.ClientWorkers{})

	mockAdapter.EXPECT().CreateUser(gomock.Any()).Return(testSession, nil)
	mockAdapter.EXPECT().SetToken("t1")
	mockStore.EXPECT().SaveSession(gomock.Any(), "u1", "t1").Return(errors.New("disk full"))

	got, err := c.CreateSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testSession, got)
	assert.Equal(t, 1, sink.count())
	assert.Equal(t, "persist session", sink.ops[0])
}

// ── ListWallets: empty-list poll ─────────────────────────────────────────────

func TestSessionClient_ListWallets_PollsUntilNonEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, _, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})
	withSession(c, testSession)

	final := []models.Wallet{wallet("w1")}

	var calls atomic.Int32
	mockAdapter.EXPECT().ListWallets(gomock.Any()).
		DoAndReturn(func(context.Context) ([]models.Wallet, error) {
			if calls.Add(1) <= 3 {
				return []models.Wallet{}, nil
			}
			return final, nil
		}).
		Times(4)
	mockAdapter.EXPECT().ListBalances(gomock.Any(), "w1").Return(nil, nil)

	start := time.Now()
	got, err := c.ListWallets(context.Background())
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, int32(4), calls.Load())
	assert.GreaterOrEqual(t, elapsed, 3*testPollInterval, "each empty response waits one poll interval")

	require.Len(t, got, 1)
	assert.Equal(t, "w1", got[0].ID)
	assert.Equal(t, got, c.Wallets())
	assert.Equal(t, models.SessionActive, c.State())
}

func TestSessionClient_ListWallets_MaxPollAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, _, sink := newTestSessionClient(t, ctrl, config.ClientWorkers{MaxPollAttempts: 3})
	withSession(c, testSession)

	mockAdapter.EXPECT().ListWallets(gomock.Any()).Return([]models.Wallet{}, nil).Times(3)

	_, err := c.ListWallets(context.Background())

	assert.ErrorIs(t, err, ErrWalletsNotReady)
	require.Equal(t, 1, sink.count())
	assert.ErrorIs(t, sink.errs[0], ErrWalletsNotReady)
	assert.Equal(t, models.SessionCreated, c.State())
}

func TestSessionClient_ListWallets_ContextCanceledDuringPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, _, sink := newTestSessionClient(t, ctrl, config.ClientWorkers{PollInterval: time.Hour})
	withSession(c, testSession)

	ctx, cancel := context.WithCancel(context.Background())
	mockAdapter.EXPECT().ListWallets(gomock.Any()).
		DoAndReturn(func(context.Context) ([]models.Wallet, error) {
			cancel()
			return []models.Wallet{}, nil
		})

	_, err := c.ListWallets(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, sink.count())
	assert.Equal(t, "list wallets", sink.ops[0])
	assert.ErrorIs(t, sink.errs[0], context.Canceled)
}

// ── ListWallets: expired token ───────────────────────────────────────────────

func TestSessionClient_ListWallets_RefreshesExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, mockStore, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})
	withSession(c, testSession)

	refreshed := models.Session{UserID: "u1", UserToken: "t2", SecretKey: "s2", ChallengeID: "c2"}

	gomock.InOrder(
		mockAdapter.EXPECT().ListWallets(gomock.Any()).Return(nil, expiredErr),
		mockAdapter.EXPECT().RefreshUserToken(gomock.Any(), "u1").Return(refreshed, nil),
		mockAdapter.EXPECT().SetToken("t2"),
		mockStore.EXPECT().SaveSession(gomock.Any(), "u1", "t2").Return(nil),
		mockAdapter.EXPECT().ListWallets(gomock.Any()).Return([]models.Wallet{wallet("w1")}, nil),
		mockAdapter.EXPECT().ListBalances(gomock.Any(), "w1").Return([]models.TokenBalance{balance("USDC", "1")}, nil),
	)

	got, err := c.ListWallets(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "w1", got[0].ID)
	assert.Len(t, got[0].Balances, 1)
	assert.Equal(t, refreshed, c.Session())
	assert.Equal(t, models.SessionActive, c.State())
}

func TestSessionClient_ListWallets_StillExpiredAfterRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, mockStore, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})
	withSession(c, testSession)

	mockAdapter.EXPECT().ListWallets(gomock.Any()).Return(nil, expiredErr).Times(2)
	mockAdapter.EXPECT().RefreshUserToken(gomock.Any(), "u1").Return(testSession, nil).Times(1)
	mockAdapter.EXPECT().SetToken("t1")
	mockStore.EXPECT().SaveSession(gomock.Any(), "u1", "t1").Return(nil)

	_, err := c.ListWallets(context.Background())

	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.True(t, adapter.IsTokenExpired(err))
}

func TestSessionClient_ListWallets_RefreshFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, _, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})
	withSession(c, testSession)

	unknown := &adapter.APIError{Status: 404, Code: models.ErrorCodeUserNotFound, Message: "user not found"}
	mockAdapter.EXPECT().ListWallets(gomock.Any()).Return(nil, expiredErr)
	mockAdapter.EXPECT().RefreshUserToken(gomock.Any(), "u1").Return(models.Session{}, unknown)

	_, err := c.ListWallets(context.Background())

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, models.SessionCreationFailed, c.State())
	assert.Equal(t, testSession, c.Session(), "failed refresh keeps the old session")
}

// ── ListWallets: other failures ──────────────────────────────────────────────

func TestSessionClient_ListWallets_OtherErrorsLeaveStateUnchanged(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "api error", err: &adapter.APIError{Status: 401, Code: models.ErrorCodeUserTokenMissing, Message: "missing"}},
		{name: "decode error", err: fmt.Errorf("%w: http 502: bad gateway", adapter.ErrDecode)},
		{name: "network error", err: fmt.Errorf("%w: reset", adapter.ErrNetwork)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c, mockAdapter, _, sink := newTestSessionClient(t, ctrl, config.ClientWorkers{})
			withSession(c, testSession)
			c.wallets = []models.Wallet{wallet("old")}

			mockAdapter.EXPECT().ListWallets(gomock.Any()).Return(nil, tt.err)

			_, err := c.ListWallets(context.Background())

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, 1, sink.count())
			assert.Equal(t, "list wallets", sink.ops[0])
			assert.Equal(t, models.SessionCreated, c.State())
			require.Len(t, c.Wallets(), 1)
			assert.Equal(t, "old", c.Wallets()[0].ID)
		})
	}
}

func TestSessionClient_ListWallets_ReplacesWholeSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, _, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})
	withSession(c, testSession)
	c.wallets = []models.Wallet{wallet("old")}

	mockAdapter.EXPECT().ListWallets(gomock.Any()).Return([]models.Wallet{wallet("w1")}, nil)
	mockAdapter.EXPECT().ListBalances(gomock.Any(), "w1").Return(nil, nil)

	got, err := c.ListWallets(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "w1", got[0].ID)
}

// ── Balances ─────────────────────────────────────────────────────────────────

func TestSessionClient_ListWallets_BalancesMatchedByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, _, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})
	withSession(c, testSession)

	w2Done := make(chan struct{})
	mockAdapter.EXPECT().ListWallets(gomock.Any()).Return([]models.Wallet{wallet("w1"), wallet("w2")}, nil)
	// w1 answers only after w2 so that completion order differs from list order
	mockAdapter.EXPECT().ListBalances(gomock.Any(), "w1").
		DoAndReturn(func(context.Context, string) ([]models.TokenBalance, error) {
			<-w2Done
			return []models.TokenBalance{balance("MATIC-AMOY", "0.5")}, nil
		}).Times(1)
	mockAdapter.EXPECT().ListBalances(gomock.Any(), "w2").
		DoAndReturn(func(context.Context, string) ([]models.TokenBalance, error) {
			defer close(w2Done)
			return []models.TokenBalance{balance("USDC", "10"), balance("ETH-SEPOLIA", "1")}, nil
		}).Times(1)

	got, err := c.ListWallets(context.Background())

	require.NoError(t, err)
	w1 := findWallet(t, got, "w1")
	w2 := findWallet(t, got, "w2")

	require.Len(t, w1.Balances, 1)
	assert.Equal(t, "MATIC-AMOY", w1.Balances[0].Token.Symbol)

	require.Len(t, w2.Balances, 2)
	assert.Equal(t, "USDC", w2.Balances[0].Token.Symbol)
	assert.Equal(t, "ETH-SEPOLIA", w2.Balances[1].Token.Symbol)
}

func TestSessionClient_ListWallets_BalanceFailureIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, _, sink := newTestSessionClient(t, ctrl, config.ClientWorkers{})
	withSession(c, testSession)

	mockAdapter.EXPECT().ListWallets(gomock.Any()).Return([]models.Wallet{wallet("w1"), wallet("w2")}, nil)
	mockAdapter.EXPECT().ListBalances(gomock.Any(), "w1").Return(nil, fmt.Errorf("%w: bad body", adapter.ErrDecode))
	mockAdapter.EXPECT().ListBalances(gomock.Any(), "w2").Return([]models.TokenBalance{balance("USDC", "1")}, nil)

	got, err := c.ListWallets(context.Background())

	require.NoError(t, err)
	assert.Empty(t, findWallet(t, got, "w1").Balances)
	assert.Len(t, findWallet(t, got, "w2").Balances, 1)
	require.Equal(t, 1, sink.count())
	assert.ErrorIs(t, sink.errs[0], adapter.ErrDecode)
}

func TestSessionClient_GetBalances_AppendsOnRepeat(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, _, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})
	withSession(c, testSession)
	c.wallets = []models.Wallet{wallet("w1")}

	mockAdapter.EXPECT().ListBalances(gomock.Any(), "w1").Return([]models.TokenBalance{balance("USDC", "10")}, nil).Times(2)

	_, err := c.GetBalances(context.Background(), "w1")
	require.NoError(t, err)
	_, err = c.GetBalances(context.Background(), "w1")
	require.NoError(t, err)

	w1 := c.Wallets()[0]
	require.Len(t, w1.Balances, 2, "balances are appended, not deduplicated")
	assert.Equal(t, w1.Balances[0], w1.Balances[1])
	assert.Equal(t, "20", w1.Total("USDC").String())
}

func TestSessionClient_GetBalances_FailureLeavesStateUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, _, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})
	withSession(c, testSession)
	c.wallets = []models.Wallet{wallet("w1")}

	mockAdapter.EXPECT().ListBalances(gomock.Any(), "w1").Return(nil, fmt.Errorf("%w: reset", adapter.ErrNetwork))

	_, err := c.GetBalances(context.Background(), "w1")

	assert.ErrorIs(t, err, adapter.ErrNetwork)
	assert.Empty(t, c.Wallets()[0].Balances)
}

func TestSessionClient_GetBalances_UnlistedWalletDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, _, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})
	withSession(c, testSession)
	c.wallets = []models.Wallet{wallet("w1")}

	mockAdapter.EXPECT().ListBalances(gomock.Any(), "gone").Return([]models.TokenBalance{balance("USDC", "1")}, nil)

	got, err := c.GetBalances(context.Background(), "gone")

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Empty(t, c.Wallets()[0].Balances)
}

func TestSessionClient_GetBalances_ConcurrentAppendsAreNotLost(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, _, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})
	withSession(c, testSession)
	c.wallets = []models.Wallet{wallet("w1"), wallet("w2")}

	const n = 50
	mockAdapter.EXPECT().ListBalances(gomock.Any(), gomock.Any()).Return([]models.TokenBalance{balance("USDC", "1")}, nil).Times(2 * n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		for _, id := range []string{"w1", "w2"} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = c.GetBalances(context.Background(), id)
			}()
		}
	}
	wg.Wait()

	for _, w := range c.Wallets() {
		assert.Len(t, w.Balances, n, "wallet %s", w.ID)
	}
}

// ── RefreshToken ─────────────────────────────────────────────────────────────

func TestSessionClient_RefreshToken_RepollsBeforeReturning(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, mockStore, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})

	refreshed := models.Session{UserID: "u1", UserToken: "t2", SecretKey: "s2", ChallengeID: "c2"}
	gomock.InOrder(
		mockAdapter.EXPECT().RefreshUserToken(gomock.Any(), "u1").Return(refreshed, nil),
		mockAdapter.EXPECT().SetToken("t2"),
		mockStore.EXPECT().SaveSession(gomock.Any(), "u1", "t2").Return(nil),
		mockAdapter.EXPECT().ListWallets(gomock.Any()).Return([]models.Wallet{wallet("w1")}, nil),
		mockAdapter.EXPECT().ListBalances(gomock.Any(), "w1").Return(nil, nil),
	)

	got, err := c.RefreshToken(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, refreshed, got)
	assert.Equal(t, models.SessionActive, c.State())
	assert.Len(t, c.Wallets(), 1, "re-poll completed before RefreshToken returned")
}

func TestSessionClient_RefreshToken_RepollFailureOnlyReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, mockStore, sink := newTestSessionClient(t, ctrl, config.ClientWorkers{})

	mockAdapter.EXPECT().RefreshUserToken(gomock.Any(), "u1").Return(testSession, nil)
	mockAdapter.EXPECT().SetToken("t1")
	mockStore.EXPECT().SaveSession(gomock.Any(), "u1", "t1").Return(nil)
	mockAdapter.EXPECT().ListWallets(gomock.Any()).Return(nil, fmt.Errorf("%w: bad body", adapter.ErrDecode))

	got, err := c.RefreshToken(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, testSession, got)
	require.Equal(t, 1, sink.count())
	assert.Equal(t, "refresh token: list wallets", sink.ops[0])
	assert.ErrorIs(t, sink.errs[0], adapter.ErrDecode)
}

func TestSessionClient_RefreshToken_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, _, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})

	mockAdapter.EXPECT().RefreshUserToken(gomock.Any(), "u1").Return(models.Session{}, fmt.Errorf("%w: refused", adapter.ErrNetwork))

	_, err := c.RefreshToken(context.Background(), "u1")

	assert.ErrorIs(t, err, adapter.ErrNetwork)
	assert.Equal(t, models.SessionCreationFailed, c.State())
}

// ── SignOut ──────────────────────────────────────────────────────────────────

func TestSessionClient_SignOut_ClearsEverythingAndFailsFast(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, mockStore, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})
	withSession(c, testSession)
	c.wallets = []models.Wallet{wallet("w1")}

	mockAdapter.EXPECT().SetToken("")
	mockStore.EXPECT().ClearSession(gomock.Any()).Return(nil)
	// no ListWallets / ListBalances expectations: any network call fails the test

	require.NoError(t, c.SignOut(context.Background()))

	assert.True(t, c.Session().IsZero())
	assert.Empty(t, c.Wallets())
	assert.Equal(t, models.SessionNotCreated, c.State())

	_, err := c.ListWallets(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = c.GetBalances(context.Background(), "w1")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionClient_SignOut_StopsInFlightPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, mockStore, sink := newTestSessionClient(t, ctrl, config.ClientWorkers{})
	withSession(c, testSession)

	mockAdapter.EXPECT().SetToken("")
	mockStore.EXPECT().ClearSession(gomock.Any()).Return(nil)
	mockAdapter.EXPECT().ListWallets(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]models.Wallet, error) {
			require.NoError(t, c.SignOut(ctx))
			return []models.Wallet{}, nil
		}).Times(1)

	_, err := c.ListWallets(context.Background())

	assert.ErrorIs(t, err, ErrNoSession)
	assert.Zero(t, sink.count(), "a poll stopped by sign-out is not a failure")
}

func TestSessionClient_SignOut_DuringFailingRefreshKeepsNotCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, mockStore, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})
	withSession(c, testSession)

	mockAdapter.EXPECT().SetToken("")
	mockStore.EXPECT().ClearSession(gomock.Any()).Return(nil)
	mockAdapter.EXPECT().RefreshUserToken(gomock.Any(), "u1").
		DoAndReturn(func(ctx context.Context, _ string) (models.Session, error) {
			require.NoError(t, c.SignOut(ctx))
			return models.Session{}, fmt.Errorf("%w: reset", adapter.ErrNetwork)
		})

	_, err := c.RefreshToken(context.Background(), "u1")

	assert.ErrorIs(t, err, adapter.ErrNetwork)
	assert.Equal(t, models.SessionNotCreated, c.State())
}

func TestSessionClient_SignOut_DuringFailingCreateKeepsNotCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, mockStore, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})
	withSession(c, testSession)

	mockAdapter.EXPECT().SetToken("")
	mockStore.EXPECT().ClearSession(gomock.Any()).Return(nil)
	mockAdapter.EXPECT().CreateUser(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (models.Session, error) {
			require.NoError(t, c.SignOut(ctx))
			return models.Session{}, fmt.Errorf("%w: reset", adapter.ErrNetwork)
		})

	_, err := c.CreateSession(context.Background())

	assert.ErrorIs(t, err, adapter.ErrNetwork)
	assert.Equal(t, models.SessionNotCreated, c.State())
}

func TestSessionClient_SignOut_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, mockStore, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})
	withSession(c, testSession)

	mockAdapter.EXPECT().SetToken("")
	mockStore.EXPECT().ClearSession(gomock.Any()).Return(store.ErrExecutingStatement)

	err := c.SignOut(context.Background())

	assert.ErrorIs(t, err, store.ErrExecutingStatement)
	assert.True(t, c.Session().IsZero(), "memory is cleared even if the store fails")
}

// ── RestoreSession ───────────────────────────────────────────────────────────

func TestSessionClient_RestoreSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockAdapter, mockStore, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})

	persisted := models.Session{UserID: "u1", UserToken: "t1"}
	mockStore.EXPECT().LoadSession(gomock.Any()).Return(persisted, nil)
	mockAdapter.EXPECT().SetToken("t1")

	got, err := c.RestoreSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, persisted, got)
	assert.Equal(t, persisted, c.Session())
	assert.Equal(t, models.SessionCreated, c.State())
}

func TestSessionClient_RestoreSession_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _, mockStore, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})

	mockStore.EXPECT().LoadSession(gomock.Any()).Return(models.Session{}, store.ErrLocalSessionNotFound)

	_, err := c.RestoreSession(context.Background())

	assert.ErrorIs(t, err, store.ErrLocalSessionNotFound)
	assert.Equal(t, models.SessionNotCreated, c.State())
}

// ── snapshots ────────────────────────────────────────────────────────────────

func TestSessionClient_WalletsSnapshotIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _, _, _ := newTestSessionClient(t, ctrl, config.ClientWorkers{})
	c.wallets = []models.Wallet{{ID: "w1", Balances: []models.TokenBalance{balance("USDC", "1")}}}

	snapshot := c.Wallets()
	snapshot[0].ID = "changed"
	snapshot[0].Balances[0].Amount = "999"

	assert.Equal(t, "w1", c.Wallets()[0].ID)
	assert.Equal(t, "1", c.Wallets()[0].Balances[0].Amount)
}

func TestNewSessionClient_DefaultPollInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := NewSessionClient(mock.NewMockServerAdapter(ctrl), mock.NewMockSessionStore(ctrl), config.ClientWorkers{}, logger.Nop()).(*sessionClient)

	assert.Equal(t, time.Second, c.pollInterval)
	assert.Equal(t, defaultBalanceConcurrency, c.balanceConcurrency)
	assert.NotNil(t, c.onError)
}
