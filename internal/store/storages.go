package store

import (
	"context"
	"fmt"

	"github.com/Premdhumal/go-tweet-client/internal/config"
	"github.com/Premdhumal/go-tweet-client/internal/logger"
)

// ClientStorages groups the local cache repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// Tweets is the SQLite-backed tweet cache.
	Tweets TweetCacheRepository
	// Notifications is the SQLite-backed notification cache.
	Notifications NotificationCacheRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh cache
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Tweets:        NewTweetCacheRepository(db, logger),
		Notifications: NewNotificationCacheRepository(db, logger),
	}, nil
}

// Clear empties every cache table. Called when the signed-in user changes,
// since cached like state is only valid for the viewer that fetched it.
func (s *ClientStorages) Clear(ctx context.Context) error {
	if err := s.Tweets.Clear(ctx); err != nil {
		return err
	}
	return s.Notifications.Clear(ctx)
}
