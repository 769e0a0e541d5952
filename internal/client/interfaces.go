// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the flows the CLI commands run. Every flow writes its
// result to the output the client was created with.
type Client interface {
	// SignIn reuses the persisted session or provisions a new user when
	// none exists or forceNew is set, then prints the user's wallets.
	SignIn(ctx context.Context, forceNew bool) error

	// Refresh exchanges the persisted user ID for a fresh token and prints
	// the re-polled wallets.
	Refresh(ctx context.Context) error

	// Wallets prints the wallets of the persisted session as a table, or as
	// JSON when asJSON is set.
	Wallets(ctx context.Context, asJSON bool) error

	// Watch prints the wallets and keeps re-printing them while the
	// background refresh job runs, until ctx is done.
	Watch(ctx context.Context) error

	// SignOut forgets the persisted session.
	SignOut(ctx context.Context) error

	// Token prints the persisted user token and optionally copies it to the
	// system clipboard.
	Token(ctx context.Context, copyToClipboard bool) error
}
