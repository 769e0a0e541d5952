// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-w3s-wallet/internal/adapter"
	"github.com/MKhiriev/go-w3s-wallet/models"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The original error stays in the chain so that adapter sentinels and
// [*adapter.APIError] remain matchable.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	switch {
	case errors.Is(err, adapter.ErrNoToken):
		return fmt.Errorf("%w: %w", ErrNoSession, err)
	case errors.As(err, &apiErr) && apiErr.Code == models.ErrorCodeUserNotFound:
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}

	return err
}
