// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the client's session credentials between runs.
//
// The user token and user ID are kept as key-value properties in a local
// SQLite database whose schema is managed by goose migrations.
package store

import (
	"context"

	"github.com/MKhiriev/go-w3s-wallet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore keeps the persisted copy of a session: its user ID and user
// token. The secret key and challenge ID are never written to disk.
type SessionStore interface {
	// SaveSession stores userID and userToken, replacing any previous values.
	SaveSession(ctx context.Context, userID, userToken string) error

	// LoadSession returns a session holding the persisted UserID and
	// UserToken. Returns [ErrLocalSessionNotFound] when either is missing.
	LoadSession(ctx context.Context) (models.Session, error)

	// ClearSession removes both persisted keys. Clearing an empty store is
	// not an error.
	ClearSession(ctx context.Context) error
}
