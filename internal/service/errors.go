package service

import "errors"

var (
	// ErrAuthRequired means the local guard refused an action that needs an
	// authenticated session. No network call was made; the caller routes to
	// login instead of showing a message.
	ErrAuthRequired = errors.New("authentication required")

	// ErrSessionExpired means the server answered 401 to a call made with a
	// session the client believed valid.
	ErrSessionExpired = errors.New("session expired")

	// ErrInvalidCredentials is the login rejection.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotOwner means the viewer tried to modify someone else's content.
	ErrNotOwner = errors.New("not the owner")

	// ErrNotFound means the requested entity does not exist on the server.
	ErrNotFound = errors.New("not found")

	// ErrServerUnavailable covers transport failures and 5xx answers.
	ErrServerUnavailable = errors.New("server unavailable")

	// ErrEmptyTweet rejects a blank tweet body before any network call.
	ErrEmptyTweet = errors.New("tweet text is empty")

	// ErrTweetTooLong rejects a body over the length limit before any
	// network call.
	ErrTweetTooLong = errors.New("tweet text is too long")

	// ErrUsernameRequired rejects a blank username in auth forms.
	ErrUsernameRequired = errors.New("username is required")

	// ErrPasswordRequired rejects a blank password in auth forms.
	ErrPasswordRequired = errors.New("password is required")
)
