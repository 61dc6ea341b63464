// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Prem Dhumal

package config

import (
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; all meaningful validation happens on the
// [ClientConfig] view once defaults have been applied.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if u, err := url.Parse(cfg.Adapter.ServerURL); err != nil || u.Host == "" || !strings.HasPrefix(u.Scheme, "http") {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.NotificationsInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
