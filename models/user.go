package models

import "time"

// User is a user provisioned by the stub backend.
type User struct {
	ID        string
	CreatedAt time.Time

	// WalletsReadyAt is when the user's wallets become visible. Until then
	// the wallet list is empty, as it is while real wallets are being
	// created on chain.
	WalletsReadyAt time.Time
}

// WalletsReady reports whether the user's wallets are visible at now.
func (u User) WalletsReady(now time.Time) bool {
	return !now.Before(u.WalletsReadyAt)
}
