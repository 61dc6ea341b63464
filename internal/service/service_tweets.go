package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Premdhumal/go-tweet-client/internal/adapter"
	"github.com/Premdhumal/go-tweet-client/internal/logger"
	"github.com/Premdhumal/go-tweet-client/internal/session"
	"github.com/Premdhumal/go-tweet-client/internal/store"
	"github.com/Premdhumal/go-tweet-client/models"
)

type tweetService struct {
	tweets  store.TweetCacheRepository
	adapter adapter.ServerAdapter
	session *session.Store
	logger  *logger.Logger
}

func NewTweetService(tweets store.TweetCacheRepository, serverAdapter adapter.ServerAdapter, sessionStore *session.Store, log *logger.Logger) TweetService {
	return &tweetService{
		tweets:  tweets,
		adapter: serverAdapter,
		session: sessionStore,
		logger:  log,
	}
}

func (s *tweetService) Feed(ctx context.Context) ([]models.Tweet, error) {
	tweets, err := s.adapter.ListTweets(ctx)
	if err != nil {
		cached, cacheErr := s.tweets.List(ctx)
		if cacheErr == nil && len(cached) > 0 {
			s.logger.Warn().Err(err).Int("cached", len(cached)).Msg("feed fetch failed, serving cached tweets")
			return cached, nil
		}
		return nil, mapAdapterError(err)
	}

	if cacheErr := s.tweets.Upsert(ctx, tweets...); cacheErr != nil {
		s.logger.Err(cacheErr).Msg("failed to refresh tweet cache")
	}

	return tweets, nil
}

func (s *tweetService) Get(ctx context.Context, id int64) (models.Tweet, error) {
	tweet, err := s.adapter.GetTweet(ctx, id)
	if err != nil {
		return models.Tweet{}, mapAdapterError(err)
	}

	if cacheErr := s.tweets.Upsert(ctx, tweet); cacheErr != nil {
		s.logger.Err(cacheErr).Int64("tweet_id", id).Msg("failed to cache fetched tweet")
	}

	return tweet, nil
}

func (s *tweetService) Compose(ctx context.Context, draft models.TweetDraft) (models.Tweet, error) {
	if !s.session.Current().Authenticated() {
		return models.Tweet{}, ErrAuthRequired
	}
	if err := validateTweetText(draft.Text); err != nil {
		return models.Tweet{}, err
	}

	tweet, err := s.adapter.CreateTweet(ctx, draft)
	if err != nil {
		return models.Tweet{}, mapAdapterError(err)
	}

	if cacheErr := s.tweets.Upsert(ctx, tweet); cacheErr != nil {
		s.logger.Err(cacheErr).Int64("tweet_id", tweet.ID).Msg("failed to cache composed tweet")
	}

	return tweet, nil
}

// ToggleLike applies the optimistic flip to the caller's copy first, then
// reconciles with the server's authoritative answer or reverts.
func (s *tweetService) ToggleLike(ctx context.Context, tweet *models.Tweet) error {
	if !s.session.Current().Authenticated() {
		return ErrAuthRequired
	}

	prevLiked, prevCount := tweet.IsLiked, tweet.LikeCount
	if tweet.IsLiked {
		tweet.IsLiked = false
		tweet.LikeCount--
	} else {
		tweet.IsLiked = true
		tweet.LikeCount++
	}

	result, err := s.adapter.ToggleLike(ctx, tweet.ID)
	if err != nil {
		tweet.IsLiked, tweet.LikeCount = prevLiked, prevCount
		return mapAdapterError(err)
	}

	// the server's counts win over the optimistic guess
	tweet.IsLiked = result.Liked
	tweet.LikeCount = result.LikeCount

	if cacheErr := s.tweets.ApplyLike(ctx, tweet.ID, result.Liked, result.LikeCount); cacheErr != nil {
		s.logger.Err(cacheErr).Int64("tweet_id", tweet.ID).Msg("failed to cache like state")
	}

	return nil
}

func (s *tweetService) Edit(ctx context.Context, tweet models.Tweet, draft models.TweetDraft) (models.Tweet, error) {
	snap := s.session.Current()
	if !snap.Authenticated() {
		return models.Tweet{}, ErrAuthRequired
	}
	if !tweet.OwnedBy(snap.User) {
		return models.Tweet{}, ErrNotOwner
	}
	if err := validateTweetText(draft.Text); err != nil {
		return models.Tweet{}, err
	}

	updated, err := s.adapter.UpdateTweet(ctx, tweet.ID, draft)
	if err != nil {
		return models.Tweet{}, mapAdapterError(err)
	}

	if cacheErr := s.tweets.Upsert(ctx, updated); cacheErr != nil {
		s.logger.Err(cacheErr).Int64("tweet_id", updated.ID).Msg("failed to cache edited tweet")
	}

	return updated, nil
}

func (s *tweetService) Delete(ctx context.Context, tweet models.Tweet) error {
	snap := s.session.Current()
	if !snap.Authenticated() {
		return ErrAuthRequired
	}
	if !tweet.OwnedBy(snap.User) {
		return ErrNotOwner
	}

	if err := s.adapter.DeleteTweet(ctx, tweet.ID); err != nil {
		return mapAdapterError(err)
	}

	if cacheErr := s.tweets.Delete(ctx, tweet.ID); cacheErr != nil {
		s.logger.Err(cacheErr).Int64("tweet_id", tweet.ID).Msg("failed to evict deleted tweet from cache")
	}

	return nil
}

func validateTweetText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyTweet
	}
	if utf8.RuneCountInString(text) > models.MaxTweetLength {
		return ErrTweetTooLong
	}
	return nil
}
