package models

// AuthStatus is the response of GET /api/auth/status/, the probe the client
// runs at startup to learn whether the session cookie still identifies a
// logged-in user.
type AuthStatus struct {
	// IsAuthenticated reports whether the request carried a valid session.
	IsAuthenticated bool `json:"is_authenticated"`

	// User is the authenticated identity, nil when anonymous.
	User *User `json:"user"`
}

// AuthResponse is the success body of the login and register endpoints.
type AuthResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// LikeResult is the authoritative server state returned by the like-toggle
// endpoint. The client reconciles its optimistic guess against these values.
type LikeResult struct {
	// Liked reports whether the tweet is liked by the viewer after the toggle.
	Liked bool `json:"liked"`

	// LikeCount is the tweet's total like count after the toggle.
	LikeCount int `json:"like_count"`
}

// NotificationFeed is the response of GET /api/notifications/.
type NotificationFeed struct {
	Notifications []Notification `json:"notifications"`

	// UnreadCount is the number of unread notifications, computed
	// server-side over the full set rather than the returned page.
	UnreadCount int `json:"unread_count"`
}
