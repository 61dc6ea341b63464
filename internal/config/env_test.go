// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Prem Dhumal

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_Empty verifies that parsing with no relevant variables set
// leaves the config at its zero value.
func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestParseEnv_AllFields verifies that every mapped environment variable
// lands in the expected field.
func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("ADAPTER_SERVER_URL", "https://tweets.example.com")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "30s")
	t.Setenv("STORAGE_DB_DATABASE_URI", "/tmp/cache.db")
	t.Setenv("WORKERS_NOTIFICATIONS_INTERVAL", "2m")
	t.Setenv("CONFIG", "/etc/tweet/config.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "https://tweets.example.com", cfg.Adapter.ServerURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Workers.NotificationsInterval)
	assert.Equal(t, "/etc/tweet/config.json", cfg.JSONFilePath)
}

// TestParseEnv_InvalidDuration verifies that an unparseable duration value
// surfaces as a wrapped error.
func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
