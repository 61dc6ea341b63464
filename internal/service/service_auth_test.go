// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Prem Dhumal

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Premdhumal/go-tweet-client/internal/adapter"
	"github.com/Premdhumal/go-tweet-client/internal/logger"
	"github.com/Premdhumal/go-tweet-client/internal/mock"
	"github.com/Premdhumal/go-tweet-client/internal/session"
	"github.com/Premdhumal/go-tweet-client/internal/store"
	"github.com/Premdhumal/go-tweet-client/models"
)

func newTestAuthSvc(t *testing.T) (*authService, *mock.MockServerAdapter, *mock.MockTweetCacheRepository, *mock.MockNotificationCacheRepository, *session.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockTweets := mock.NewMockTweetCacheRepository(ctrl)
	mockNotifications := mock.NewMockNotificationCacheRepository(ctrl)

	sessionStore := session.NewStore(mockAdapter, logger.Nop())
	storages := &store.ClientStorages{Tweets: mockTweets, Notifications: mockNotifications}

	svc := NewAuthService(storages, mockAdapter, sessionStore, logger.Nop()).(*authService)

	return svc, mockAdapter, mockTweets, mockNotifications, sessionStore
}

func expectCacheClear(tweets *mock.MockTweetCacheRepository, notifications *mock.MockNotificationCacheRepository) {
	tweets.EXPECT().Clear(gomock.Any()).Return(nil)
	notifications.EXPECT().Clear(gomock.Any()).Return(nil)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success_SetsSessionAndClearsCaches(t *testing.T) {
	svc, mockAdapter, mockTweets, mockNotifications, sess := newTestAuthSvc(t)
	user := models.User{ID: 1, Username: "alice"}

	mockAdapter.EXPECT().
		Login(gomock.Any(), models.Credentials{Username: "alice", Password: "secret"}).
		Return(user, nil)
	expectCacheClear(mockTweets, mockNotifications)

	got, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	snap := sess.Current()
	assert.Equal(t, session.StateAuthenticated, snap.State)
	assert.Equal(t, "alice", snap.User.Username)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, mockAdapter, _, _, sess := newTestAuthSvc(t)

	mockAdapter.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, fmt.Errorf("login request: %w", adapter.ErrUnauthorized))

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, session.StateUnknown, sess.Current().State)
}

func TestLogin_EmptyUsername(t *testing.T) {
	svc, _, _, _, _ := newTestAuthSvc(t)

	_, err := svc.Login(context.Background(), models.Credentials{Password: "secret"})

	assert.ErrorIs(t, err, ErrUsernameRequired)
}

func TestLogin_EmptyPassword(t *testing.T) {
	svc, _, _, _, _ := newTestAuthSvc(t)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice"})

	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestLogin_NetworkFailure(t *testing.T) {
	svc, mockAdapter, _, _, _ := newTestAuthSvc(t)

	mockAdapter.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, fmt.Errorf("login request: %w", adapter.ErrNetwork))

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"})

	assert.ErrorIs(t, err, ErrServerUnavailable)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestLogout_ClearsSessionAndCaches(t *testing.T) {
	svc, mockAdapter, mockTweets, mockNotifications, sess := newTestAuthSvc(t)
	sess.SetIdentity(models.User{ID: 1, Username: "alice"})

	mockAdapter.EXPECT().Logout(gomock.Any()).Return(nil)
	expectCacheClear(mockTweets, mockNotifications)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Equal(t, session.StateAnonymous, sess.Current().State)
}

func TestLogout_ServerFailureStillEndsLocalSession(t *testing.T) {
	svc, mockAdapter, mockTweets, mockNotifications, sess := newTestAuthSvc(t)
	sess.SetIdentity(models.User{ID: 1, Username: "alice"})

	mockAdapter.EXPECT().
		Logout(gomock.Any()).
		Return(fmt.Errorf("logout request: %w", adapter.ErrNetwork))
	expectCacheClear(mockTweets, mockNotifications)

	err := svc.Logout(context.Background())

	require.Error(t, err)
	assert.Equal(t, session.StateAnonymous, sess.Current().State)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister_Success_SignsIn(t *testing.T) {
	svc, mockAdapter, mockTweets, mockNotifications, sess := newTestAuthSvc(t)
	user := models.User{ID: 7, Username: "bob"}

	mockAdapter.EXPECT().
		Register(gomock.Any(), models.Registration{Username: "bob", Password: "secret"}).
		Return(user, nil)
	expectCacheClear(mockTweets, mockNotifications)

	got, err := svc.Register(context.Background(), models.Registration{Username: "bob", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
	assert.Equal(t, session.StateAuthenticated, sess.Current().State)
}

func TestRegister_FieldErrorsSurface(t *testing.T) {
	svc, mockAdapter, _, _, _ := newTestAuthSvc(t)
	apiErr := &adapter.APIError{
		StatusCode: 400,
		Message:    "username: already taken",
		Fields:     map[string]string{"username": "already taken"},
	}

	mockAdapter.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(models.User{}, apiErr)

	_, err := svc.Register(context.Background(), models.Registration{Username: "bob", Password: "secret"})

	require.Error(t, err)
	fields := FieldErrors(err)
	require.NotNil(t, fields)
	assert.Equal(t, "already taken", fields["username"])
}

func TestRegister_EmptyUsername(t *testing.T) {
	svc, _, _, _, _ := newTestAuthSvc(t)

	_, err := svc.Register(context.Background(), models.Registration{Password: "secret"})

	assert.ErrorIs(t, err, ErrUsernameRequired)
}

// ── Initialize ───────────────────────────────────────────────────────────────

func TestInitialize_DelegatesToSessionStore(t *testing.T) {
	svc, mockAdapter, _, _, sess := newTestAuthSvc(t)

	mockAdapter.EXPECT().
		AuthStatus(gomock.Any()).
		Return(models.AuthStatus{IsAuthenticated: false}, nil)

	require.NoError(t, svc.Initialize(context.Background()))
	assert.Equal(t, session.StateAnonymous, sess.Current().State)
}

func TestInitialize_ProbeFailure(t *testing.T) {
	svc, mockAdapter, _, _, sess := newTestAuthSvc(t)

	mockAdapter.EXPECT().
		AuthStatus(gomock.Any()).
		Return(models.AuthStatus{}, errors.New("connection refused"))

	require.Error(t, svc.Initialize(context.Background()))
	assert.Equal(t, session.StateAnonymous, sess.Current().State)
}
