package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// resetFlags replaces the global FlagSet so ParseFlags can register its flags
// again, and points os.Args at the given arguments.
func resetFlags(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	oldCommandLine := flag.CommandLine
	t.Cleanup(func() {
		os.Args = oldArgs
		flag.CommandLine = oldCommandLine
	})

	os.Args = append([]string{"go-tweet-client"}, args...)
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no flags",
			args: nil,
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "", cfg.Adapter.ServerURL)
				assert.Equal(t, time.Duration(0), cfg.Adapter.RequestTimeout)
				assert.Equal(t, "", cfg.Storage.DB.DSN)
				assert.Equal(t, "", cfg.JSONFilePath)
			},
		},
		{
			name: "server and timeout",
			args: []string{"-server", "https://tweets.example.com", "-request-timeout", "20s"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "https://tweets.example.com", cfg.Adapter.ServerURL)
				assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
			},
		},
		{
			name: "cache dsn and workers",
			args: []string{"-d", "/tmp/cache.db", "-notifications-interval", "45s"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/tmp/cache.db", cfg.Storage.DB.DSN)
				assert.Equal(t, 45*time.Second, cfg.Workers.NotificationsInterval)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/etc/tweet/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/tweet/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "version flag",
			args: []string{"-version", "0.9.1"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "0.9.1", cfg.App.Version)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t, tt.args...)
			cfg := ParseFlags()
			tt.validate(t, cfg)
		})
	}
}
