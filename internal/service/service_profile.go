package service

import (
	"context"

	"github.com/Premdhumal/go-tweet-client/internal/adapter"
	"github.com/Premdhumal/go-tweet-client/internal/logger"
	"github.com/Premdhumal/go-tweet-client/internal/session"
	"github.com/Premdhumal/go-tweet-client/internal/store"
	"github.com/Premdhumal/go-tweet-client/models"
)

type profileService struct {
	tweets  store.TweetCacheRepository
	adapter adapter.ServerAdapter
	session *session.Store
	logger  *logger.Logger
}

func NewProfileService(tweets store.TweetCacheRepository, serverAdapter adapter.ServerAdapter, sessionStore *session.Store, log *logger.Logger) ProfileService {
	return &profileService{
		tweets:  tweets,
		adapter: serverAdapter,
		session: sessionStore,
		logger:  log,
	}
}

func (s *profileService) Get(ctx context.Context, username string) (models.Profile, error) {
	profile, err := s.adapter.GetProfile(ctx, username)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}
	return profile, nil
}

func (s *profileService) Tweets(ctx context.Context, username string) ([]models.Tweet, error) {
	tweets, err := s.adapter.GetProfileTweets(ctx, username)
	if err != nil {
		cached, cacheErr := s.tweets.ListByAuthor(ctx, username)
		if cacheErr == nil && len(cached) > 0 {
			s.logger.Warn().Err(err).Str("username", username).Msg("profile tweets fetch failed, serving cache")
			return cached, nil
		}
		return nil, mapAdapterError(err)
	}

	if cacheErr := s.tweets.Upsert(ctx, tweets...); cacheErr != nil {
		s.logger.Err(cacheErr).Str("username", username).Msg("failed to refresh profile tweet cache")
	}

	return tweets, nil
}

func (s *profileService) Update(ctx context.Context, current models.Profile, upd models.ProfileUpdate) (models.Profile, error) {
	snap := s.session.Current()
	if !snap.Authenticated() {
		return models.Profile{}, ErrAuthRequired
	}
	if snap.User.Username != current.Username {
		return models.Profile{}, ErrNotOwner
	}

	resp, err := s.adapter.UpdateProfile(ctx, current.Username, upd)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	return current.Merge(resp), nil
}
