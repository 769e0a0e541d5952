// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the stub
// backend handlers.
//
// All Msg* constants are human-readable message strings written into the
// message field of {code, message} error bodies or into log entries.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (e.g. a userId that is not a UUID).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError replaces the message of uncoded 5xx errors so
	// that internal details do not leak to the client.
	MsgInternalServerError = "internal server error"

	// MsgUserTokenIsMissing is returned when a wallet endpoint is called
	// without the X-User-Token header.
	MsgUserTokenIsMissing = "empty `X-User-Token` header"

	// MsgNoUserIDProvided is logged when an authenticated handler finds no
	// user ID in the request context.
	MsgNoUserIDProvided = "no user ID provided"
)
