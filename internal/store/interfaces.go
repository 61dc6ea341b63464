// Package store is the client's local SQLite cache. The feed and the
// notifications screen render from it instantly on startup and fall back to
// it when the server is unreachable; every successful fetch refreshes it.
//
// Cached like state is viewer-dependent, so the cache must be cleared when
// the signed-in user changes.
package store

import (
	"context"

	"github.com/Premdhumal/go-tweet-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cache_store_mock.go -package=mock

// TweetCacheRepository is the local cache of tweets.
type TweetCacheRepository interface {
	// Upsert inserts or replaces the given tweets by server id.
	Upsert(ctx context.Context, tweets ...models.Tweet) error
	// List returns all cached tweets newest-first.
	List(ctx context.Context) ([]models.Tweet, error)
	// ListByAuthor returns the cached tweets of one author newest-first.
	ListByAuthor(ctx context.Context, username string) ([]models.Tweet, error)
	// Delete removes one tweet from the cache.
	Delete(ctx context.Context, id int64) error
	// ApplyLike overwrites the viewer's like state of one cached tweet.
	ApplyLike(ctx context.Context, id int64, liked bool, likeCount int) error
	// Clear empties the tweet cache.
	Clear(ctx context.Context) error
}

// NotificationCacheRepository is the local cache of the notification feed.
type NotificationCacheRepository interface {
	// Replace swaps the whole cached feed for the given notifications.
	Replace(ctx context.Context, notifications []models.Notification) error
	// List returns the cached feed newest-first.
	List(ctx context.Context) ([]models.Notification, error)
	// MarkAllRead flags every cached notification as read.
	MarkAllRead(ctx context.Context) error
	// UnreadCount returns the number of cached unread notifications.
	UnreadCount(ctx context.Context) (int, error)
	// Clear empties the notification cache.
	Clear(ctx context.Context) error
}
