// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Prem Dhumal

package tui

import (
	"errors"

	"github.com/Premdhumal/go-tweet-client/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// surfaceError shows the error overlay. An expired session additionally
// re-probes the server so the stored snapshot stops claiming an identity
// the server no longer honours.
func (m *appModel) surfaceError(err error) tea.Cmd {
	m.overlayErr = humanizeError(err)
	if errors.Is(err, service.ErrSessionExpired) {
		return m.cmdRefreshSession()
	}
	return nil
}

// humanizeError turns a service error into the message shown on screen.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrServerUnavailable):
		return "No network or the server is unavailable"
	case errors.Is(err, service.ErrSessionExpired):
		return "Your session expired, sign in again"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, service.ErrNotOwner):
		return "You can only change your own content"
	case errors.Is(err, service.ErrNotFound):
		return "Not found"
	case errors.Is(err, service.ErrAuthRequired):
		return "Sign in to continue"
	case errors.Is(err, service.ErrEmptyTweet):
		return "Tweet text is empty"
	case errors.Is(err, service.ErrTweetTooLong):
		return "Tweet text is too long"
	}

	return err.Error()
}
