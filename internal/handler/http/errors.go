// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-w3s-wallet/internal/app"
)

var (
	// ErrEmptyUserTokenHeader is returned by the auth middleware when the
	// request carries no X-User-Token header.
	ErrEmptyUserTokenHeader = errors.New(app.MsgUserTokenIsMissing)

	// ErrInvalidRequestBody is returned when a request body is not valid JSON
	// or fails validation.
	ErrInvalidRequestBody = errors.New(app.MsgInvalidDataProvided)
)
