package service

import (
	"context"

	"github.com/Premdhumal/go-tweet-client/internal/adapter"
	"github.com/Premdhumal/go-tweet-client/internal/logger"
	"github.com/Premdhumal/go-tweet-client/internal/session"
	"github.com/Premdhumal/go-tweet-client/internal/store"
	"github.com/Premdhumal/go-tweet-client/models"
)

type notificationService struct {
	notifications store.NotificationCacheRepository
	adapter       adapter.ServerAdapter
	session       *session.Store
	logger        *logger.Logger
}

func NewNotificationService(notifications store.NotificationCacheRepository, serverAdapter adapter.ServerAdapter, sessionStore *session.Store, log *logger.Logger) NotificationService {
	return &notificationService{
		notifications: notifications,
		adapter:       serverAdapter,
		session:       sessionStore,
		logger:        log,
	}
}

func (s *notificationService) List(ctx context.Context) (models.NotificationFeed, error) {
	if !s.session.Current().Authenticated() {
		return models.NotificationFeed{}, ErrAuthRequired
	}

	feed, err := s.adapter.ListNotifications(ctx)
	if err != nil {
		cached, cacheErr := s.notifications.List(ctx)
		if cacheErr == nil && len(cached) > 0 {
			unread, countErr := s.notifications.UnreadCount(ctx)
			if countErr != nil {
				unread = 0
			}
			s.logger.Warn().Err(err).Int("cached", len(cached)).Msg("notifications fetch failed, serving cache")
			return models.NotificationFeed{Notifications: cached, UnreadCount: unread}, nil
		}
		return models.NotificationFeed{}, mapAdapterError(err)
	}

	if cacheErr := s.notifications.Replace(ctx, feed.Notifications); cacheErr != nil {
		s.logger.Err(cacheErr).Msg("failed to refresh notification cache")
	}

	return feed, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	if !s.session.Current().Authenticated() {
		return ErrAuthRequired
	}

	if err := s.adapter.MarkNotificationsRead(ctx); err != nil {
		return mapAdapterError(err)
	}

	if cacheErr := s.notifications.MarkAllRead(ctx); cacheErr != nil {
		s.logger.Err(cacheErr).Msg("failed to mark cached notifications read")
	}

	return nil
}

func (s *notificationService) UnreadCount(ctx context.Context) (int, error) {
	return s.notifications.UnreadCount(ctx)
}
