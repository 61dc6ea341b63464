// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Prem Dhumal

package config

import (
	"time"
)

// DefaultServerURL is the base URL of the remote micro-blogging service used
// when no other source provides one. Overridable at build time via
// -ldflags "-X .../internal/config.DefaultServerURL=https://...".
var DefaultServerURL = "http://localhost:8000"

// StructuredConfig is the top-level configuration container for the
// go-tweet-client application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the client version.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote service address and timeout settings used by
	// the outbound transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local cache database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes such as
	// the notifications poller.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client
	// (e.g. "1.2.3"). Shown in the TUI build-info overlay.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds configuration for the outbound HTTP transport.
type Adapter struct {
	// ServerURL is the base URL of the remote micro-blogging service
	// (e.g. "https://tweets.example.com").
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local cache backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite file path used for the local tweet and
	// notification cache (e.g. "~/.go-tweet-client/cache.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// NotificationsInterval defines how often the background poller
	// refreshes the notification cache.
	// Env: WORKERS_NOTIFICATIONS_INTERVAL
	NotificationsInterval time.Duration `env:"NOTIFICATIONS_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
