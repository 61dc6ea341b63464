package service

import (
	"github.com/Premdhumal/go-tweet-client/internal/adapter"
	"github.com/Premdhumal/go-tweet-client/internal/logger"
	"github.com/Premdhumal/go-tweet-client/internal/session"
	"github.com/Premdhumal/go-tweet-client/internal/store"
)

// ClientServices bundles the service layer for the UI and the workers.
type ClientServices struct {
	AuthService         AuthService
	TweetService        TweetService
	ProfileService      ProfileService
	NotificationService NotificationService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, sessionStore *session.Store, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:         NewAuthService(localStore, serverAdapter, sessionStore, log),
		TweetService:        NewTweetService(localStore.Tweets, serverAdapter, sessionStore, log),
		ProfileService:      NewProfileService(localStore.Tweets, serverAdapter, sessionStore, log),
		NotificationService: NewNotificationService(localStore.Notifications, serverAdapter, sessionStore, log),
	}
}
