package tui

import (
	"strings"

	"github.com/Premdhumal/go-tweet-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *appModel) initRegisterForm() {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 150
	username.Width = 40
	username.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	m.formInputs = []textinput.Model{username, email, password}
	m.formFocus = 0
	m.formErr = ""
	m.formErrs = nil
	m.submitting = false
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			email := strings.TrimSpace(m.formInputs[1].Value())
			password := m.formInputs[2].Value()
			if username == "" || password == "" {
				m.formErr = "Username and password are required"
				return m, nil
			}

			m.formErr = ""
			m.formErrs = nil
			m.submitting = true
			return m, m.cmdRegister(models.Registration{
				Username: username,
				Email:    email,
				Password: password,
			})
		}
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m appModel) viewRegister() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Username  │ [")
	b.WriteString(m.formInputs[0].View())
	b.WriteString("]")
	b.WriteString(fieldError(m.formErrs, "username"))
	b.WriteString("\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.formInputs[1].View())
	b.WriteString("]")
	b.WriteString(fieldError(m.formErrs, "email"))
	b.WriteString("\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.formInputs[2].View())
	b.WriteString("]")
	b.WriteString(fieldError(m.formErrs, "password"))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.formErr != "" {
		b.WriteString("\nError: ")
		b.WriteString(errorStyle.Render(m.formErr))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func fieldError(fields map[string]string, name string) string {
	msg, ok := fields[name]
	if !ok || msg == "" {
		return ""
	}
	return "  " + errorStyle.Render(msg)
}
