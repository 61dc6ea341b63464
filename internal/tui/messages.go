package tui

import (
	"github.com/Premdhumal/go-tweet-client/models"
)

// Async results carry the navigation sequence number they were issued under.
// A result whose seq no longer matches the model's current seq belongs to a
// screen the user already left and is discarded.

type sessionReadyMsg struct {
	err error
}

type sessionRefreshedMsg struct{}

type authDoneMsg struct {
	user models.User
	err  error
}

type loggedOutMsg struct {
	err error
}

type feedLoadedMsg struct {
	seq    int
	tweets []models.Tweet
	err    error
}

type tweetLoadedMsg struct {
	seq   int
	tweet models.Tweet
	err   error
}

type likeToggledMsg struct {
	tweet models.Tweet
	err   error
}

type tweetSavedMsg struct {
	tweet models.Tweet
	err   error
}

type tweetDeletedMsg struct {
	id  int64
	err error
}

type notificationsLoadedMsg struct {
	seq  int
	feed models.NotificationFeed
	err  error
}

type markedReadMsg struct {
	err error
}

type profileLoadedMsg struct {
	seq     int
	profile models.Profile
	tweets  []models.Tweet
	err     error
}

type profileSavedMsg struct {
	profile models.Profile
	err     error
}

type unreadCountMsg struct {
	count int
}

type clearStatusMsg struct{}
