package models

// User is the compact user representation embedded in tweets, notifications,
// and the auth status response. The server never sends credential material
// here; the full account view lives in [Profile].
type User struct {
	// ID is the server-assigned unique identifier of the account.
	ID int64 `json:"id"`

	// Username is the unique, immutable handle chosen at registration.
	Username string `json:"username"`

	// DisplayName is the optional human-readable name. Falls back to
	// Username on the server side when the profile has none set.
	DisplayName string `json:"display_name"`

	// AvatarURL is the optional avatar image URL, empty when unset.
	AvatarURL string `json:"avatar_url"`
}

// Handle returns the name to show for the user: the display name when
// present, otherwise the username.
func (u User) Handle() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// Credentials carries the login form values sent to POST /api/auth/login/.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration carries the sign-up form values sent to
// POST /api/auth/register/. Email is optional and may be blank.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
