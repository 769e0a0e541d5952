package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-w3s-wallet/internal/adapter"
	"github.com/MKhiriev/go-w3s-wallet/models"
)

func (c *sessionClient) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	c.mu.Lock()
	gen := c.generation
	hasSession := !c.session.IsZero()
	c.mu.Unlock()

	if !hasSession {
		return nil, ErrNoSession
	}

	wallets, err := c.listWallets(ctx, gen, true)
	if err != nil {
		c.report(ctx, "list wallets", err)
		return nil, err
	}
	return wallets, nil
}

// listWallets polls until the backend returns a non-empty wallet list for
// session generation gen. When allowRefresh is set an expired token is
// refreshed once and the refresh's re-poll produces the result. Failures are
// returned unreported; callers report them once.
func (c *sessionClient) listWallets(ctx context.Context, gen uint64, allowRefresh bool) ([]models.Wallet, error) {
	log := c.logger.GetChildLogger()

	for attempt := 1; ; attempt++ {
		if !c.isCurrent(gen) {
			return nil, ErrNoSession
		}

		wallets, err := c.adapter.ListWallets(ctx)
		switch {
		case adapter.IsTokenExpired(err):
			if !allowRefresh {
				return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
			}
			userID := c.Session().UserID
			log.Info().Str("user_id", userID).Msg("user token expired, refreshing")

			if _, err = c.refresh(ctx, gen, userID); err != nil {
				return nil, err
			}
			return c.listWallets(ctx, gen, false)

		case err != nil:
			return nil, fmt.Errorf("list wallets: %w", mapAdapterError(err))

		case len(wallets) == 0:
			if c.maxPollAttempts > 0 && attempt >= c.maxPollAttempts {
				return nil, fmt.Errorf("%w after %d attempts", ErrWalletsNotReady, attempt)
			}
			log.Debug().Int("attempt", attempt).Dur("retry_in", c.pollInterval).Msg("wallet list is empty")

			if err = sleepContext(ctx, c.pollInterval); err != nil {
				return nil, err
			}
			continue
		}

		if !c.replaceWallets(gen, wallets) {
			return nil, ErrNoSession
		}
		log.Debug().Int("wallets", len(wallets)).Msg("wallets listed")

		c.fetchBalances(ctx, gen, wallets)
		return c.Wallets(), nil
	}
}

// fetchBalances requests the balances of every wallet concurrently and waits
// for all of them. Individual failures are reported, not returned.
func (c *sessionClient) fetchBalances(ctx context.Context, gen uint64, wallets []models.Wallet) {
	var g errgroup.Group
	g.SetLimit(c.balanceConcurrency)

	for _, w := range wallets {
		g.Go(func() error {
			if _, err := c.getBalances(ctx, gen, w.ID); err != nil {
				c.report(ctx, "get balances", err)
			}
			return nil
		})
	}

	_ = g.Wait()
}

func (c *sessionClient) GetBalances(ctx context.Context, walletID string) ([]models.TokenBalance, error) {
	c.mu.Lock()
	gen := c.generation
	hasSession := !c.session.IsZero()
	c.mu.Unlock()

	if !hasSession {
		return nil, ErrNoSession
	}

	return c.getBalances(ctx, gen, walletID)
}

func (c *sessionClient) getBalances(ctx context.Context, gen uint64, walletID string) ([]models.TokenBalance, error) {
	balances, err := c.adapter.ListBalances(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("get balances of wallet %s: %w", walletID, mapAdapterError(err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != gen {
		return nil, ErrNoSession
	}

	for i := range c.wallets {
		if c.wallets[i].ID == walletID {
			c.wallets[i].Balances = append(c.wallets[i].Balances, balances...)
			return balances, nil
		}
	}

	// the wallet set was replaced while the request was in flight
	c.logger.Debug().Str("wallet_id", walletID).Msg("balances for unlisted wallet dropped")
	return balances, nil
}

// replaceWallets swaps in a freshly listed wallet set and marks the session
// active. Returns false if gen is no longer current.
func (c *sessionClient) replaceWallets(gen uint64, wallets []models.Wallet) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != gen {
		return false
	}

	c.wallets = cloneWallets(wallets)
	for i := range c.wallets {
		c.wallets[i].Balances = nil
	}
	c.state = models.SessionActive
	return true
}

func (c *sessionClient) isCurrent(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation == gen && !c.session.IsZero()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
