package models

import "time"

// NotificationVerb is the kind of event a notification describes.
type NotificationVerb string

const (
	VerbLike   NotificationVerb = "like"
	VerbReply  NotificationVerb = "reply"
	VerbFollow NotificationVerb = "follow"
)

// Notification is a server-generated activity event for the current user.
// Notifications are created server-side only; the single client-side mutation
// is the bulk mark-read call.
type Notification struct {
	ID int64 `json:"id"`

	// Actor is the user whose action triggered the notification.
	Actor User `json:"actor"`

	// Verb describes the action: like, reply, or follow.
	Verb NotificationVerb `json:"verb"`

	// TweetID references the related tweet, zero for follow events.
	TweetID int64 `json:"tweet"`

	// TweetText is a server-truncated preview of the related tweet text,
	// empty when no tweet is involved.
	TweetText string `json:"tweet_text"`

	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
