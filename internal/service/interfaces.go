package service

import (
	"context"

	"github.com/Premdhumal/go-tweet-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_service_mock.go -package=mock

// AuthService owns the session lifecycle. It is the only component allowed
// to mutate the session store.
type AuthService interface {
	// Initialize resolves the session state with the startup status probe.
	// It must complete before any route decision is made.
	Initialize(ctx context.Context) error

	// Login authenticates against the server and, on success, records the
	// identity in the session store and resets the viewer-dependent caches.
	// Returns ErrInvalidCredentials when the server rejects the pair.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Logout ends the server session and drops to anonymous locally. The
	// local transition happens even if the server call fails.
	Logout(ctx context.Context) error

	// Register creates an account. The server signs the new user in on
	// success, so the session store is updated the same way as after Login.
	// Validation failures carry field-level messages (see FieldErrors).
	Register(ctx context.Context, reg models.Registration) (models.User, error)
}

// TweetService is the interaction controller for tweets: fetching, composing,
// and the optimistic like/edit/delete flows.
type TweetService interface {
	// Feed returns the home timeline newest-first. A successful fetch
	// refreshes the local cache; when the server is unreachable the cached
	// feed is served instead.
	Feed(ctx context.Context) ([]models.Tweet, error)

	// Get fetches a single tweet.
	Get(ctx context.Context, id int64) (models.Tweet, error)

	// Compose posts a new tweet. Requires an authenticated session and a
	// non-empty body within the length limit.
	Compose(ctx context.Context, draft models.TweetDraft) (models.Tweet, error)

	// ToggleLike flips the viewer's like on the given tweet optimistically,
	// then reconciles with the server's authoritative counts. On failure the
	// optimistic flip is reverted and the tweet is left as it was. Requires
	// an authenticated session; no network call is made without one.
	ToggleLike(ctx context.Context, tweet *models.Tweet) error

	// Edit submits a full replacement of an owned tweet and returns the
	// server's representation. Partial merges are never performed.
	Edit(ctx context.Context, tweet models.Tweet, draft models.TweetDraft) (models.Tweet, error)

	// Delete removes an owned tweet on the server and evicts it from the
	// local cache. On failure nothing changes locally.
	Delete(ctx context.Context, tweet models.Tweet) error
}

// ProfileService reads and updates user profiles.
type ProfileService interface {
	// Get fetches a profile by username.
	Get(ctx context.Context, username string) (models.Profile, error)

	// Tweets returns the user's tweets newest-first, with the same cache
	// fallback as the feed.
	Tweets(ctx context.Context, username string) ([]models.Tweet, error)

	// Update submits the changed fields of the viewer's own profile and
	// merges the server's response into current. Owner-only.
	Update(ctx context.Context, current models.Profile, upd models.ProfileUpdate) (models.Profile, error)
}

// NotificationService manages the viewer's notification feed.
type NotificationService interface {
	// List fetches the feed and refreshes the local cache, falling back to
	// the cache when the server is unreachable. Requires authentication.
	List(ctx context.Context) (models.NotificationFeed, error)

	// MarkAllRead flags every notification as read, server-side and in the
	// cache.
	MarkAllRead(ctx context.Context) error

	// UnreadCount returns the cached unread counter without a network call.
	UnreadCount(ctx context.Context) (int, error)
}
