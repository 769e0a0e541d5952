// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the session client and
// the wallet backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Failures are mapped onto a small taxonomy so that callers can use
// [errors.Is] and [errors.As]: [ErrNetwork] for transport failures,
// [ErrDecode] for bodies that do not match the expected shape, [*APIError] for
// the backend's {code, message} payload and [ErrNoToken] for authenticated
// calls attempted without a user token.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-w3s-wallet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the wallet
// backend. Implementations are responsible for serialisation, user token
// header management, and mapping transport-level errors to the values defined
// in this package.
type ServerAdapter interface {
	// SetToken stores the user token attached to all subsequent
	// authenticated requests. An empty token clears it.
	SetToken(token string)

	// Token returns the user token currently stored in the adapter, or an
	// empty string if none is set.
	Token() string

	// CreateUser provisions a new backend user (POST /api/user, empty body)
	// and returns the issued session. The adapter token is not changed.
	CreateUser(ctx context.Context) (models.Session, error)

	// RefreshUserToken requests a new session for userID
	// (POST /api/user/token). The adapter token is not changed.
	RefreshUserToken(ctx context.Context, userID string) (models.Session, error)

	// ListWallets returns the wallets of the user owning the current token
	// (GET /api/wallets). Returns [ErrNoToken] without a network call when
	// no token is set.
	ListWallets(ctx context.Context) ([]models.Wallet, error)

	// ListBalances returns the token balances of walletID
	// (GET /api/wallets/{id}/balances). Returns [ErrNoToken] without a
	// network call when no token is set.
	ListBalances(ctx context.Context, walletID string) ([]models.TokenBalance, error)
}
