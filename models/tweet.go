// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Prem Dhumal

package models

import "time"

// MaxTweetLength is the server-enforced limit on tweet text, counted in
// Unicode code points.
const MaxTweetLength = 280

// Tweet is a single post as returned by the tweets API. LikeCount and
// IsLiked are viewer-dependent: the server computes IsLiked for the session
// that issued the request, so a cached value is only valid for that viewer.
type Tweet struct {
	// ID is the server-assigned identifier of the tweet.
	ID int64 `json:"id"`

	// User is the author of the tweet.
	User User `json:"user"`

	// Text is the body of the tweet, at most [MaxTweetLength] code points.
	Text string `json:"text"`

	// PhotoURL is the attached image URL, empty when the tweet has no media.
	PhotoURL string `json:"photo_url"`

	// CreatedAt is when the tweet was posted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the tweet was last edited.
	UpdatedAt time.Time `json:"updated_at"`

	// LikeCount is the total number of likes across all users.
	LikeCount int `json:"like_count"`

	// IsLiked reports whether the requesting session has liked this tweet.
	IsLiked bool `json:"is_liked"`
}

// OwnedBy reports whether the given viewer authored the tweet. A nil viewer
// (anonymous session) owns nothing. Ownership gates the edit and delete
// actions client-side; the server enforces it authoritatively.
func (t Tweet) OwnedBy(viewer *User) bool {
	return viewer != nil && t.User.ID == viewer.ID
}

// TweetDraft is the client-side input for composing or editing a tweet. It is
// submitted as a multipart form: Text always, Photo when a new image is
// attached. An edit that omits the photo part and sets RemovePhoto clears the
// existing media on the server; an edit that omits both leaves it untouched.
type TweetDraft struct {
	// Text is the tweet body.
	Text string

	// PhotoName is the client-side filename of the attached image, used as
	// the multipart part filename. Empty when no new photo is attached.
	PhotoName string

	// Photo is the raw image payload. Nil when no new photo is attached.
	Photo []byte

	// RemovePhoto requests deletion of the existing media on edit.
	RemovePhoto bool
}

// HasPhoto reports whether the draft carries a new image payload.
func (d TweetDraft) HasPhoto() bool {
	return len(d.Photo) > 0
}
