package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-w3s-wallet/internal/adapter"
	"github.com/MKhiriev/go-w3s-wallet/internal/config"
	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/internal/store"
	"github.com/MKhiriev/go-w3s-wallet/models"
)

const (
	defaultPollInterval       = time.Second
	defaultBalanceConcurrency = 8
)

type sessionClient struct {
	adapter      adapter.ServerAdapter
	sessionStore store.SessionStore

	pollInterval       time.Duration
	maxPollAttempts    int
	balanceConcurrency int
	onError            ErrorHandler

	logger *logger.Logger

	mu      sync.Mutex
	session models.Session
	wallets []models.Wallet
	state   models.SessionState
	// generation changes whenever the current session is replaced by a new
	// user or dropped; polls started for an older generation stop.
	generation uint64
}

// SessionClientOption customises a [SessionClient] built by
// [NewSessionClient].
type SessionClientOption func(*sessionClient)

// WithErrorHandler replaces the default error handler, which logs at error
// level.
func WithErrorHandler(h ErrorHandler) SessionClientOption {
	return func(c *sessionClient) {
		if h != nil {
			c.onError = h
		}
	}
}

// WithBalanceConcurrency caps the number of balance requests ListWallets
// keeps in flight.
func WithBalanceConcurrency(n int) SessionClientOption {
	return func(c *sessionClient) {
		if n > 0 {
			c.balanceConcurrency = n
		}
	}
}

// NewSessionClient creates a SessionClient talking to the backend through
// serverAdapter and persisting credentials in sessionStore. cfg supplies the
// empty-list poll interval and attempt cap.
func NewSessionClient(serverAdapter adapter.ServerAdapter, sessionStore store.SessionStore, cfg config.ClientWorkers, log *logger.Logger, opts ...SessionClientOption) SessionClient {
	c := &sessionClient{
		adapter:            serverAdapter,
		sessionStore:       sessionStore,
		pollInterval:       cfg.PollInterval,
		maxPollAttempts:    cfg.MaxPollAttempts,
		balanceConcurrency: defaultBalanceConcurrency,
		logger:             log,
	}
	if c.pollInterval <= 0 {
		c.pollInterval = defaultPollInterval
	}
	c.onError = func(_ context.Context, op string, err error) {
		log.Err(err).Str("op", op).Msg("wallet operation failed")
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *sessionClient) CreateSession(ctx context.Context) (models.Session, error) {
	c.mu.Lock()
	gen := c.generation
	c.mu.Unlock()

	session, err := c.adapter.CreateUser(ctx)
	if err != nil {
		c.markFailed(gen)
		c.logger.Err(err).Str("func", "*sessionClient.CreateSession").Msg("error creating session")
		return models.Session{}, fmt.Errorf("create session: %w", mapAdapterError(err))
	}

	c.mu.Lock()
	c.generation++
	c.installLocked(session, models.SessionCreated)
	c.mu.Unlock()

	c.persist(ctx, session)
	c.logger.Info().
		Str("user_id", session.UserID).
		Time("token_expires_at", session.ExpiresAt()).
		Msg("session created")

	return session, nil
}

func (c *sessionClient) RefreshToken(ctx context.Context, userID string) (models.Session, error) {
	c.mu.Lock()
	gen := c.generation
	c.mu.Unlock()

	session, err := c.refresh(ctx, gen, userID)
	if err != nil {
		return models.Session{}, err
	}

	if _, err = c.listWallets(ctx, gen, false); err != nil {
		c.report(ctx, "refresh token: list wallets", err)
	}

	return session, nil
}

// refresh exchanges userID for a new session and makes it current, provided
// the session generation is still gen.
func (c *sessionClient) refresh(ctx context.Context, gen uint64, userID string) (models.Session, error) {
	session, err := c.adapter.RefreshUserToken(ctx, userID)
	if err != nil {
		c.markFailed(gen)
		c.logger.Err(err).Str("func", "*sessionClient.refresh").Str("user_id", userID).Msg("error refreshing user token")
		return models.Session{}, fmt.Errorf("refresh token: %w", mapAdapterError(err))
	}

	c.mu.Lock()
	if c.generation != gen {
		c.mu.Unlock()
		return models.Session{}, ErrNoSession
	}
	c.installLocked(session, models.SessionActive)
	c.mu.Unlock()

	c.persist(ctx, session)
	c.logger.Info().
		Str("user_id", session.UserID).
		Time("token_expires_at", session.ExpiresAt()).
		Msg("user token refreshed")

	return session, nil
}

func (c *sessionClient) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := c.sessionStore.LoadSession(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	c.mu.Lock()
	c.generation++
	c.installLocked(session, models.SessionCreated)
	c.mu.Unlock()

	c.logger.Debug().Str("user_id", session.UserID).Msg("session restored")
	return session, nil
}

func (c *sessionClient) SignOut(ctx context.Context) error {
	c.mu.Lock()
	userID := c.session.UserID
	c.generation++
	c.session = models.Session{}
	c.wallets = nil
	c.state = models.SessionNotCreated
	c.adapter.SetToken("")
	c.mu.Unlock()

	if err := c.sessionStore.ClearSession(ctx); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}

	c.logger.Info().Str("user_id", userID).Msg("signed out")
	return nil
}

func (c *sessionClient) Session() models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *sessionClient) Wallets() []models.Wallet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneWallets(c.wallets)
}

func (c *sessionClient) State() models.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// installLocked makes session current. c.mu must be held.
func (c *sessionClient) installLocked(session models.Session, state models.SessionState) {
	c.session = session
	c.state = state
	c.adapter.SetToken(session.UserToken)
}

// markFailed records a failed create or refresh unless the session was
// signed out or replaced while the request was in flight.
func (c *sessionClient) markFailed(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation == gen {
		c.state = models.SessionCreationFailed
	}
}

// report hands a swallowed failure to the error handler. Stale polls are
// not failures.
func (c *sessionClient) report(ctx context.Context, op string, err error) {
	if errors.Is(err, ErrNoSession) {
		return
	}
	c.onError(ctx, op, err)
}

// persist stores the credentials. The in-memory session stays usable when
// the local database is unavailable, so failures are only reported.
func (c *sessionClient) persist(ctx context.Context, session models.Session) {
	if err := c.sessionStore.SaveSession(ctx, session.UserID, session.UserToken); err != nil {
		c.onError(ctx, "persist session", err)
	}
}

func cloneWallets(wallets []models.Wallet) []models.Wallet {
	if wallets == nil {
		return nil
	}
	out := make([]models.Wallet, len(wallets))
	for i, w := range wallets {
		out[i] = w.Clone()
	}
	return out
}
