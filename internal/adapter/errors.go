package adapter

import "errors"

// Sentinel transport errors. mapHTTPError wraps one of these into every
// *APIError so callers can branch with errors.Is without inspecting status
// codes.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrServerError  = errors.New("server error")

	// ErrNetwork indicates the transport could not complete the round trip
	// at all (DNS failure, refused connection, timeout).
	ErrNetwork = errors.New("network failure")
)
