// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Prem Dhumal

package tui

import (
	"strings"

	"github.com/Premdhumal/go-tweet-client/internal/service"
	"github.com/Premdhumal/go-tweet-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *appModel) initLoginForm() {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 150
	username.Width = 40
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	m.formInputs = []textinput.Model{username, password}
	m.formFocus = 0
	m.formErr = ""
	m.formErrs = nil
	m.submitting = false
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, m.navigate(screenLanding)
		case key.Matches(keyMsg, keys.tab):
			m.focusFormNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusFormPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.formInputs[0].Value())
			password := m.formInputs[1].Value()
			if username == "" || password == "" {
				m.formErr = "Username and password are required"
				return m, nil
			}

			m.formErr = ""
			m.submitting = true
			return m, m.cmdLogin(models.Credentials{Username: username, Password: password})
		}
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

// onAuthDone finishes both the login and the register flow: the server signs
// a fresh account in on the same session, so both screens land on the feed.
func (m appModel) onAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		if fields := service.FieldErrors(msg.err); len(fields) > 0 {
			m.formErrs = fields
			m.formErr = ""
			return m, nil
		}
		m.formErrs = nil
		m.formErr = humanizeError(msg.err)
		return m, nil
	}

	m.status = "Signed in as @" + msg.user.Username
	return m, tea.Batch(m.navigate(screenFeed), clearStatusLater())
}

func (m appModel) viewLogin() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Username  │ [")
	b.WriteString(m.formInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.formInputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.formErr != "" {
		b.WriteString("\nError: ")
		b.WriteString(errorStyle.Render(m.formErr))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *appModel) focusFormNext() {
	m.formInputs[m.formFocus].Blur()
	m.formFocus = (m.formFocus + 1) % len(m.formInputs)
	m.formInputs[m.formFocus].Focus()
}

func (m *appModel) focusFormPrev() {
	m.formInputs[m.formFocus].Blur()
	m.formFocus = (m.formFocus - 1 + len(m.formInputs)) % len(m.formInputs)
	m.formInputs[m.formFocus].Focus()
}
