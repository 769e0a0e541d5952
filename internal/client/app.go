package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-w3s-wallet/internal/config"
	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/internal/service"
	"github.com/MKhiriev/go-w3s-wallet/internal/store"
	"github.com/MKhiriev/go-w3s-wallet/models"
)

const defaultRenderInterval = 30 * time.Second

var writeClipboard = clipboard.WriteAll

// App runs the CLI flows on top of the client services.
type App struct {
	services *service.ClientServices
	workers  config.ClientWorkers
	out      io.Writer
	logger   *logger.Logger
}

// NewApp returns an App writing command output to out.
func NewApp(services *service.ClientServices, workers config.ClientWorkers, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil || services.SessionClient == nil {
		return nil, ErrNoServicesProvided
	}
	if out == nil {
		out = io.Discard
	}

	return &App{
		services: services,
		workers:  workers,
		out:      out,
		logger:   logger,
	}, nil
}

func (a *App) SignIn(ctx context.Context, forceNew bool) error {
	client := a.services.SessionClient

	if !forceNew {
		session, err := client.RestoreSession(ctx)
		switch {
		case err == nil:
			a.logger.Info().Str("user_id", session.UserID).Msg("reusing persisted session")
			fmt.Fprintf(a.out, "Signed in as %s (restored)\n", session.UserID)
			return a.printWallets(ctx, false)
		case !errors.Is(err, store.ErrLocalSessionNotFound):
			return err
		}
	}

	session, err := client.CreateSession(ctx)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", session.UserID)
	fmt.Fprintf(a.out, "Challenge ID: %s\n", session.ChallengeID)
	return a.printWallets(ctx, false)
}

func (a *App) Refresh(ctx context.Context) error {
	session, err := a.restore(ctx)
	if err != nil {
		return err
	}

	session, err = a.services.SessionClient.RefreshToken(ctx, session.UserID)
	if err != nil {
		return fmt.Errorf("refresh: %w", err)
	}

	if exp := session.ExpiresAt(); !exp.IsZero() {
		fmt.Fprintf(a.out, "Token refreshed, expires at %s\n", exp.Format(time.RFC3339))
	} else {
		fmt.Fprintln(a.out, "Token refreshed")
	}
	return renderWallets(a.out, a.services.SessionClient.Wallets())
}

func (a *App) Wallets(ctx context.Context, asJSON bool) error {
	if _, err := a.restore(ctx); err != nil {
		return err
	}
	return a.printWallets(ctx, asJSON)
}

func (a *App) Watch(ctx context.Context) error {
	if _, err := a.restore(ctx); err != nil {
		return err
	}
	if err := a.printWallets(ctx, false); err != nil {
		return err
	}

	interval := a.workers.RefreshInterval
	if interval <= 0 {
		interval = defaultRenderInterval
	}

	job := a.services.WalletRefreshJob
	if job != nil {
		job.Start(ctx, interval)
		defer job.Stop()
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			fmt.Fprintf(a.out, "\n%s\n", time.Now().Format(time.TimeOnly))
			if err := renderWallets(a.out, a.services.SessionClient.Wallets()); err != nil {
				return err
			}
		}
	}
}

func (a *App) SignOut(ctx context.Context) error {
	client := a.services.SessionClient

	if _, err := client.RestoreSession(ctx); err != nil && !errors.Is(err, store.ErrLocalSessionNotFound) {
		return err
	}
	if err := client.SignOut(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) Token(ctx context.Context, copyToClipboard bool) error {
	session, err := a.restore(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, session.UserToken)

	if copyToClipboard {
		if err = writeClipboard(session.UserToken); err != nil {
			return fmt.Errorf("copy token: %w", err)
		}
		a.logger.Debug().Str("user_id", session.UserID).Msg("user token copied to clipboard")
	}
	return nil
}

func (a *App) restore(ctx context.Context) (models.Session, error) {
	session, err := a.services.SessionClient.RestoreSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, ErrNotSignedIn
	}
	return session, err
}

func (a *App) printWallets(ctx context.Context, asJSON bool) error {
	wallets, err := a.services.SessionClient.ListWallets(ctx)
	if err != nil {
		return fmt.Errorf("list wallets: %w", err)
	}

	if asJSON {
		return jsonPrint(a.out, walletViews(wallets))
	}
	return renderWallets(a.out, wallets)
}
