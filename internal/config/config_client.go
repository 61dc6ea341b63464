package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the client version string shown in the build-info overlay.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the remote micro-blogging service.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local cache database settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// NotificationsInterval defines how often the notification poller runs.
	NotificationsInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the remote service address and timeouts.
	Adapter ClientAdapter
	// Storage contains client cache settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults for anything left unset,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{NotificationsInterval: cfg.Workers.NotificationsInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

// applyDefaults fills unset fields with the values a fresh install should run
// with: the build-time server URL, a 15s request timeout, a cache file next to
// the executable, and a 1 minute notification poll interval.
func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.ServerURL == "" {
		cfg.Adapter.ServerURL = DefaultServerURL
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Storage.DB.DSN == "" {
		execPath, err := os.Executable()
		if err != nil {
			cfg.Storage.DB.DSN = "tweet-cache.db"
		} else {
			cfg.Storage.DB.DSN = filepath.Join(filepath.Dir(execPath), "tweet-cache.db")
		}
	}
	if cfg.Workers.NotificationsInterval <= 0 {
		cfg.Workers.NotificationsInterval = time.Minute
	}
}
