package models

import "time"

// Profile is the full account view returned by GET /api/profile/{username}/.
// Username, Email, DateJoined, and the counters are read-only; the remaining
// fields are editable by the owner via a partial update.
type Profile struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	HeaderURL   string    `json:"header_url"`
	Location    string    `json:"location"`
	Website     string    `json:"website"`
	DateJoined  time.Time `json:"date_joined"`

	// TweetCount is the number of tweets the user has posted.
	TweetCount int `json:"tweet_count"`

	// LikeCount is the number of likes the user has given.
	LikeCount int `json:"like_count"`
}

// ProfileUpdate carries the editable profile fields for
// PUT /api/profile/{username}/. Nil fields are omitted from the JSON body, so
// the server treats the update as partial.
type ProfileUpdate struct {
	DisplayName *string `json:"display_name,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Location    *string `json:"location,omitempty"`
	Website     *string `json:"website,omitempty"`
}

// Merge applies the returned server representation on top of the local
// profile, keeping the local value for any field the response left zero.
// Counters are always taken from the server.
func (p Profile) Merge(resp Profile) Profile {
	merged := resp
	if merged.ID == 0 {
		merged.ID = p.ID
	}
	if merged.Username == "" {
		merged.Username = p.Username
	}
	if merged.Email == "" {
		merged.Email = p.Email
	}
	if merged.DateJoined.IsZero() {
		merged.DateJoined = p.DateJoined
	}
	return merged
}
