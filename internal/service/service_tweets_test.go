// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Prem Dhumal

package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Premdhumal/go-tweet-client/internal/adapter"
	"github.com/Premdhumal/go-tweet-client/internal/logger"
	"github.com/Premdhumal/go-tweet-client/internal/mock"
	"github.com/Premdhumal/go-tweet-client/internal/session"
	"github.com/Premdhumal/go-tweet-client/models"
)

func newTestTweetSvc(t *testing.T) (*tweetService, *mock.MockServerAdapter, *mock.MockTweetCacheRepository, *session.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockTweets := mock.NewMockTweetCacheRepository(ctrl)
	sessionStore := session.NewStore(mockAdapter, logger.Nop())

	svc := NewTweetService(mockTweets, mockAdapter, sessionStore, logger.Nop()).(*tweetService)

	return svc, mockAdapter, mockTweets, sessionStore
}

func signIn(sess *session.Store, user models.User) {
	sess.SetIdentity(user)
}

// ── Feed ─────────────────────────────────────────────────────────────────────

func TestFeed_Success_RefreshesCache(t *testing.T) {
	svc, mockAdapter, mockTweets, _ := newTestTweetSvc(t)
	tweets := []models.Tweet{{ID: 2, Text: "newer"}, {ID: 1, Text: "older"}}

	mockAdapter.EXPECT().ListTweets(gomock.Any()).Return(tweets, nil)
	mockTweets.EXPECT().Upsert(gomock.Any(), tweets[0], tweets[1]).Return(nil)

	got, err := svc.Feed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, tweets, got)
}

func TestFeed_NetworkFailure_ServesCache(t *testing.T) {
	svc, mockAdapter, mockTweets, _ := newTestTweetSvc(t)
	cached := []models.Tweet{{ID: 1, Text: "from cache"}}

	mockAdapter.EXPECT().
		ListTweets(gomock.Any()).
		Return(nil, fmt.Errorf("list tweets request: %w", adapter.ErrNetwork))
	mockTweets.EXPECT().List(gomock.Any()).Return(cached, nil)

	got, err := svc.Feed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestFeed_NetworkFailure_EmptyCache(t *testing.T) {
	svc, mockAdapter, mockTweets, _ := newTestTweetSvc(t)

	mockAdapter.EXPECT().
		ListTweets(gomock.Any()).
		Return(nil, fmt.Errorf("list tweets request: %w", adapter.ErrNetwork))
	mockTweets.EXPECT().List(gomock.Any()).Return(nil, nil)

	_, err := svc.Feed(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

// ── Compose ──────────────────────────────────────────────────────────────────

func TestCompose_Success(t *testing.T) {
	svc, mockAdapter, mockTweets, sess := newTestTweetSvc(t)
	signIn(sess, models.User{ID: 1, Username: "alice"})

	draft := models.TweetDraft{Text: "hello"}
	created := models.Tweet{ID: 10, Text: "hello", User: models.User{ID: 1, Username: "alice"}}

	mockAdapter.EXPECT().CreateTweet(gomock.Any(), draft).Return(created, nil)
	mockTweets.EXPECT().Upsert(gomock.Any(), created).Return(nil)

	got, err := svc.Compose(context.Background(), draft)

	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
}

func TestCompose_AnonymousShortCircuits(t *testing.T) {
	svc, _, _, _ := newTestTweetSvc(t)

	_, err := svc.Compose(context.Background(), models.TweetDraft{Text: "hello"})

	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestCompose_EmptyText(t *testing.T) {
	svc, _, _, sess := newTestTweetSvc(t)
	signIn(sess, models.User{ID: 1, Username: "alice"})

	_, err := svc.Compose(context.Background(), models.TweetDraft{Text: "   "})

	assert.ErrorIs(t, err, ErrEmptyTweet)
}

func TestCompose_TextTooLong(t *testing.T) {
	svc, _, _, sess := newTestTweetSvc(t)
	signIn(sess, models.User{ID: 1, Username: "alice"})

	_, err := svc.Compose(context.Background(), models.TweetDraft{
		Text: strings.Repeat("x", models.MaxTweetLength+1),
	})

	assert.ErrorIs(t, err, ErrTweetTooLong)
}

func TestCompose_LimitCountsRunesNotBytes(t *testing.T) {
	svc, mockAdapter, mockTweets, sess := newTestTweetSvc(t)
	signIn(sess, models.User{ID: 1, Username: "alice"})

	// 280 multibyte runes are within the limit even though the byte length
	// is far over it
	text := strings.Repeat("ё", models.MaxTweetLength)
	draft := models.TweetDraft{Text: text}
	created := models.Tweet{ID: 11, Text: text}

	mockAdapter.EXPECT().CreateTweet(gomock.Any(), draft).Return(created, nil)
	mockTweets.EXPECT().Upsert(gomock.Any(), created).Return(nil)

	_, err := svc.Compose(context.Background(), draft)

	require.NoError(t, err)
}

// ── ToggleLike ───────────────────────────────────────────────────────────────

func TestToggleLike_AnonymousShortCircuits(t *testing.T) {
	svc, _, _, _ := newTestTweetSvc(t)
	tweet := models.Tweet{ID: 3, LikeCount: 5}

	err := svc.ToggleLike(context.Background(), &tweet)

	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.False(t, tweet.IsLiked)
	assert.Equal(t, 5, tweet.LikeCount)
}

func TestToggleLike_Success_ReconcilesWithServer(t *testing.T) {
	svc, mockAdapter, mockTweets, sess := newTestTweetSvc(t)
	signIn(sess, models.User{ID: 1, Username: "alice"})

	tweet := models.Tweet{ID: 3, IsLiked: false, LikeCount: 5}

	// another session liked concurrently, so the server count exceeds the
	// optimistic guess of 6
	mockAdapter.EXPECT().
		ToggleLike(gomock.Any(), int64(3)).
		Return(models.LikeResult{Liked: true, LikeCount: 7}, nil)
	mockTweets.EXPECT().ApplyLike(gomock.Any(), int64(3), true, 7).Return(nil)

	require.NoError(t, svc.ToggleLike(context.Background(), &tweet))

	assert.True(t, tweet.IsLiked)
	assert.Equal(t, 7, tweet.LikeCount)
}

func TestToggleLike_Unlike(t *testing.T) {
	svc, mockAdapter, mockTweets, sess := newTestTweetSvc(t)
	signIn(sess, models.User{ID: 1, Username: "alice"})

	tweet := models.Tweet{ID: 3, IsLiked: true, LikeCount: 5}

	mockAdapter.EXPECT().
		ToggleLike(gomock.Any(), int64(3)).
		Return(models.LikeResult{Liked: false, LikeCount: 4}, nil)
	mockTweets.EXPECT().ApplyLike(gomock.Any(), int64(3), false, 4).Return(nil)

	require.NoError(t, svc.ToggleLike(context.Background(), &tweet))

	assert.False(t, tweet.IsLiked)
	assert.Equal(t, 4, tweet.LikeCount)
}

func TestToggleLike_FailureRevertsOptimisticFlip(t *testing.T) {
	svc, mockAdapter, _, sess := newTestTweetSvc(t)
	signIn(sess, models.User{ID: 1, Username: "alice"})

	tweet := models.Tweet{ID: 3, IsLiked: false, LikeCount: 5}

	mockAdapter.EXPECT().
		ToggleLike(gomock.Any(), int64(3)).
		Return(models.LikeResult{}, fmt.Errorf("toggle like request: %w", adapter.ErrNetwork))

	err := svc.ToggleLike(context.Background(), &tweet)

	require.Error(t, err)
	assert.False(t, tweet.IsLiked)
	assert.Equal(t, 5, tweet.LikeCount)
}

// ── Edit ─────────────────────────────────────────────────────────────────────

func TestEdit_Success_FullReplacement(t *testing.T) {
	svc, mockAdapter, mockTweets, sess := newTestTweetSvc(t)
	owner := models.User{ID: 1, Username: "alice"}
	signIn(sess, owner)

	tweet := models.Tweet{ID: 5, Text: "before", User: owner, LikeCount: 3}
	draft := models.TweetDraft{Text: "after"}
	updated := models.Tweet{ID: 5, Text: "after", User: owner, LikeCount: 3}

	mockAdapter.EXPECT().UpdateTweet(gomock.Any(), int64(5), draft).Return(updated, nil)
	mockTweets.EXPECT().Upsert(gomock.Any(), updated).Return(nil)

	got, err := svc.Edit(context.Background(), tweet, draft)

	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestEdit_NotOwner(t *testing.T) {
	svc, _, _, sess := newTestTweetSvc(t)
	signIn(sess, models.User{ID: 2, Username: "bob"})

	tweet := models.Tweet{ID: 5, Text: "hers", User: models.User{ID: 1, Username: "alice"}}

	_, err := svc.Edit(context.Background(), tweet, models.TweetDraft{Text: "mine now"})

	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestEdit_Anonymous(t *testing.T) {
	svc, _, _, _ := newTestTweetSvc(t)

	tweet := models.Tweet{ID: 5, User: models.User{ID: 1, Username: "alice"}}

	_, err := svc.Edit(context.Background(), tweet, models.TweetDraft{Text: "text"})

	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestEdit_ServerForbidden(t *testing.T) {
	svc, mockAdapter, _, sess := newTestTweetSvc(t)
	owner := models.User{ID: 1, Username: "alice"}
	signIn(sess, owner)

	tweet := models.Tweet{ID: 5, Text: "before", User: owner}

	mockAdapter.EXPECT().
		UpdateTweet(gomock.Any(), int64(5), gomock.Any()).
		Return(models.Tweet{}, fmt.Errorf("update tweet request: %w", adapter.ErrForbidden))

	_, err := svc.Edit(context.Background(), tweet, models.TweetDraft{Text: "after"})

	assert.ErrorIs(t, err, ErrNotOwner)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestDelete_Success_EvictsCache(t *testing.T) {
	svc, mockAdapter, mockTweets, sess := newTestTweetSvc(t)
	owner := models.User{ID: 1, Username: "alice"}
	signIn(sess, owner)

	tweet := models.Tweet{ID: 5, User: owner}

	mockAdapter.EXPECT().DeleteTweet(gomock.Any(), int64(5)).Return(nil)
	mockTweets.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), tweet))
}

func TestDelete_NotOwner(t *testing.T) {
	svc, _, _, sess := newTestTweetSvc(t)
	signIn(sess, models.User{ID: 2, Username: "bob"})

	tweet := models.Tweet{ID: 5, User: models.User{ID: 1, Username: "alice"}}

	assert.ErrorIs(t, svc.Delete(context.Background(), tweet), ErrNotOwner)
}

func TestDelete_ServerFailureLeavesCacheAlone(t *testing.T) {
	svc, mockAdapter, _, sess := newTestTweetSvc(t)
	owner := models.User{ID: 1, Username: "alice"}
	signIn(sess, owner)

	tweet := models.Tweet{ID: 5, User: owner}

	mockAdapter.EXPECT().
		DeleteTweet(gomock.Any(), int64(5)).
		Return(fmt.Errorf("delete tweet request: %w", adapter.ErrServerError))

	err := svc.Delete(context.Background(), tweet)

	assert.ErrorIs(t, err, ErrServerUnavailable)
}
