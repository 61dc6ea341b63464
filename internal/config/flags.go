package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-server remote service base URL (e.g. "https://tweets.example.com")
//	-d local cache database path
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-notifications-interval notification poll interval (e.g., "1m")
//	-version client version string
func ParseFlags() *StructuredConfig {
	var serverURL string
	var cacheDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var notificationsInterval time.Duration
	var version string

	flag.StringVar(&serverURL, "server", "", "Remote service base URL")
	flag.StringVar(&cacheDSN, "d", "", "Local cache database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&notificationsInterval, "notifications-interval", 0, "Notification poll interval (e.g., 1m)")
	flag.StringVar(&version, "version", "", "Client version string")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Adapter: Adapter{
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: cacheDSN,
			},
		},
		Workers: Workers{
			NotificationsInterval: notificationsInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
