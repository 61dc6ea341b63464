// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Prem Dhumal

package service

import (
	"errors"
	"fmt"

	"github.com/Premdhumal/go-tweet-client/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain so callers can still
// reach the *adapter.APIError for field-level messages.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrNotOwner, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, adapter.ErrServerError), errors.Is(err, adapter.ErrNetwork):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

// FieldErrors returns the per-field validation messages carried by err, or
// nil when there are none. It sees through the service error wrapping.
func FieldErrors(err error) map[string]string {
	return adapter.FieldErrors(err)
}
