// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Prem Dhumal

// Package adapter provides the transport layer for communicating with the
// remote micro-blogging service.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty with a cookie jar
// for the session credential and automatic anti-forgery header injection.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/Premdhumal/go-tweet-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the remote
// micro-blogging service. Implementations are responsible for serialisation,
// session credential management, anti-forgery token handling, and mapping
// transport-level errors to the sentinel values defined in this package.
//
// Every call is fire-once: no implementation retries on failure; the caller
// decides how to handle errors.
type ServerAdapter interface {
	// AuthStatus runs the session probe. It reports whether the stored
	// session cookie still identifies a logged-in user and, if so, who.
	AuthStatus(ctx context.Context) (models.AuthStatus, error)

	// Login authenticates with username and password. On success the server
	// establishes a session cookie (captured by the transport's cookie jar)
	// and returns the authenticated user.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Logout terminates the server-side session. The session cookie becomes
	// invalid regardless of the response body.
	Logout(ctx context.Context) error

	// Register creates a new account and logs it in. Field-level validation
	// failures (e.g. a taken username) surface as an *APIError carrying a
	// Fields map.
	Register(ctx context.Context, reg models.Registration) (models.User, error)

	// ListTweets fetches the global feed, newest first.
	ListTweets(ctx context.Context) ([]models.Tweet, error)

	// GetTweet fetches a single tweet by id.
	GetTweet(ctx context.Context, id int64) (models.Tweet, error)

	// CreateTweet posts a new tweet as a multipart form (text plus optional
	// photo) and returns the server's representation.
	CreateTweet(ctx context.Context, draft models.TweetDraft) (models.Tweet, error)

	// UpdateTweet replaces the tweet's text and media and returns the
	// server's representation. A draft with RemovePhoto set clears the
	// existing media; a draft with neither Photo nor RemovePhoto leaves the
	// media untouched. Returns [ErrForbidden] (wrapped) for non-owners.
	UpdateTweet(ctx context.Context, id int64, draft models.TweetDraft) (models.Tweet, error)

	// DeleteTweet removes the tweet. Returns [ErrForbidden] (wrapped) for
	// non-owners. A 204 response is a success.
	DeleteTweet(ctx context.Context, id int64) error

	// ToggleLike flips the viewer's like on the tweet and returns the
	// authoritative liked state and like count after the toggle.
	ToggleLike(ctx context.Context, id int64) (models.LikeResult, error)

	// ListNotifications fetches the viewer's notifications together with the
	// server-computed unread count.
	ListNotifications(ctx context.Context) (models.NotificationFeed, error)

	// MarkNotificationsRead marks every notification of the viewer as read.
	MarkNotificationsRead(ctx context.Context) error

	// GetProfile fetches the full profile for username.
	GetProfile(ctx context.Context, username string) (models.Profile, error)

	// UpdateProfile sends a JSON partial update for the viewer's own profile
	// and returns the server's updated representation. Returns
	// [ErrForbidden] (wrapped) when username is not the session user.
	UpdateProfile(ctx context.Context, username string, upd models.ProfileUpdate) (models.Profile, error)

	// GetProfileTweets fetches the tweets authored by username, newest first.
	GetProfileTweets(ctx context.Context, username string) ([]models.Tweet, error)
}
