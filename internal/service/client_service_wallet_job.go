package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
)

const defaultRefreshInterval = 30 * time.Second

type walletRefreshJob struct {
	client SessionClient
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWalletRefreshJob creates a job that calls client.ListWallets on a
// ticker. The job is idle until Start is called.
func NewWalletRefreshJob(client SessionClient, logger *logger.Logger) WalletRefreshJob {
	return &walletRefreshJob{client: client, logger: logger}
}

// Start implements WalletRefreshJob. Ticks are skipped while no session is
// current. Errors are not propagated; the client has already reported them
// through its error handler.
func (j *walletRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	// j.mu is held across stop-and-replace so concurrent Starts cannot
	// orphan a running goroutine.
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopLocked()

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *walletRefreshJob) tick(ctx context.Context) {
	if j.client.Session().IsZero() {
		return
	}

	wallets, err := j.client.ListWallets(ctx)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, ErrNoSession):
		return
	case err != nil:
		j.logger.Debug().Err(err).Msg("wallet refresh failed")
		return
	}

	j.logger.Debug().Int("wallets", len(wallets)).Msg("wallets refreshed")
}

// Stop implements WalletRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *walletRefreshJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopLocked()
}

// stopLocked cancels the running goroutine and waits for it. j.mu must be
// held; the goroutine never takes it.
func (j *walletRefreshJob) stopLocked() {
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.wg.Wait()
}
