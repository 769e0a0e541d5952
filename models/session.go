// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the authenticated pairing of a user token and the encryption key
// used to authorize wallet operations. It is issued by the user-provisioning
// endpoint and replaced wholesale by every token refresh.
type Session struct {
	// UserID identifies the backend user the session belongs to.
	UserID string `json:"userId"`

	// UserToken is the short-lived credential sent in the X-User-Token header
	// of every authenticated request.
	UserToken string `json:"userToken"`

	// SecretKey is the encryption key handed to the wallet SDK together with
	// UserToken when a challenge is executed.
	SecretKey string `json:"secretKey"`

	// ChallengeID identifies the pending wallet SDK operation (e.g. PIN
	// setup) created together with the user.
	ChallengeID string `json:"challengeId"`
}

// IsZero reports whether s carries no credential at all.
func (s Session) IsZero() bool {
	return s.UserID == "" && s.UserToken == ""
}

// Validate reports whether every field required by the backend contract is
// present. Decoded responses missing any of them are treated as malformed.
func (s Session) Validate() bool {
	return s.UserID != "" && s.UserToken != "" && s.SecretKey != "" && s.ChallengeID != ""
}

// ExpiresAt returns the expiry encoded in UserToken. The token is parsed
// without verification; opaque or malformed tokens yield the zero time.
func (s Session) ExpiresAt() time.Time {
	claims, err := ParseUserTokenClaims(s.UserToken)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// RefreshTokenRequest is the body of POST /api/user/token.
type RefreshTokenRequest struct {
	UserID string `json:"userId" valid:"uuid,required"`
}

// SessionState tracks where a session is in its lifecycle.
type SessionState int

const (
	// SessionNotCreated is the initial state and the state after sign-out.
	SessionNotCreated SessionState = iota
	// SessionCreated means a user token and secret key were obtained.
	SessionCreated
	// SessionCreationFailed means the last create or refresh attempt failed.
	// No automatic retry follows.
	SessionCreationFailed
	// SessionActive means the session has been used successfully against the
	// wallet endpoints or refreshed after expiry.
	SessionActive
)

func (s SessionState) String() string {
	switch s {
	case SessionNotCreated:
		return "not_created"
	case SessionCreated:
		return "created"
	case SessionCreationFailed:
		return "creation_failed"
	case SessionActive:
		return "active"
	default:
		return "unknown"
	}
}
