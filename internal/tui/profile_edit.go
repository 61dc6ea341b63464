package tui

import (
	"errors"
	"strings"

	"github.com/Premdhumal/go-tweet-client/internal/service"
	"github.com/Premdhumal/go-tweet-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *appModel) initProfileForm() {
	displayName := textinput.New()
	displayName.Placeholder = "display name"
	displayName.CharLimit = 50
	displayName.Width = 40
	displayName.SetValue(m.profile.DisplayName)
	displayName.Focus()

	bio := textinput.New()
	bio.Placeholder = "bio"
	bio.CharLimit = 160
	bio.Width = 40
	bio.SetValue(m.profile.Bio)

	location := textinput.New()
	location.Placeholder = "location"
	location.CharLimit = 30
	location.Width = 40
	location.SetValue(m.profile.Location)

	website := textinput.New()
	website.Placeholder = "website"
	website.CharLimit = 100
	website.Width = 40
	website.SetValue(m.profile.Website)

	m.profileInputs = []textinput.Model{displayName, bio, location, website}
	m.profileFocus = 0
	m.formErr = ""
	m.formErrs = nil
	m.saving = false
}

func (m appModel) updateProfileEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, m.navigate(screenProfile)
		case key.Matches(keyMsg, keys.tab):
			m.profileInputs[m.profileFocus].Blur()
			m.profileFocus = (m.profileFocus + 1) % len(m.profileInputs)
			m.profileInputs[m.profileFocus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.profileInputs[m.profileFocus].Blur()
			m.profileFocus = (m.profileFocus - 1 + len(m.profileInputs)) % len(m.profileInputs)
			m.profileInputs[m.profileFocus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.saving {
				return m, nil
			}

			upd, changed := m.collectProfileUpdate()
			if !changed {
				m.status = "Nothing to change"
				return m, tea.Batch(m.navigate(screenProfile), clearStatusLater())
			}

			m.formErr = ""
			m.formErrs = nil
			m.saving = true
			return m, m.cmdSaveProfile(m.profile, upd)
		}
	}

	var cmd tea.Cmd
	m.profileInputs[m.profileFocus], cmd = m.profileInputs[m.profileFocus].Update(msg)
	return m, cmd
}

// collectProfileUpdate diffs the form against the loaded profile. Only the
// fields the user actually changed are sent; an untouched field stays nil so
// the server keeps its value.
func (m appModel) collectProfileUpdate() (models.ProfileUpdate, bool) {
	var upd models.ProfileUpdate
	changed := false

	set := func(dst **string, value, current string) {
		if value != current {
			v := value
			*dst = &v
			changed = true
		}
	}

	set(&upd.DisplayName, strings.TrimSpace(m.profileInputs[0].Value()), m.profile.DisplayName)
	set(&upd.Bio, strings.TrimSpace(m.profileInputs[1].Value()), m.profile.Bio)
	set(&upd.Location, strings.TrimSpace(m.profileInputs[2].Value()), m.profile.Location)
	set(&upd.Website, strings.TrimSpace(m.profileInputs[3].Value()), m.profile.Website)

	return upd, changed
}

func (m appModel) onProfileSaved(msg profileSavedMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	if msg.err != nil {
		if fields := service.FieldErrors(msg.err); len(fields) > 0 {
			m.formErrs = fields
			m.formErr = ""
			return m, nil
		}
		m.formErr = humanizeError(msg.err)
		if errors.Is(msg.err, service.ErrSessionExpired) {
			return m, m.cmdRefreshSession()
		}
		return m, nil
	}

	m.profile = msg.profile
	m.status = "Profile updated"
	return m, tea.Batch(m.navigate(screenProfile), clearStatusLater())
}

func (m appModel) viewProfileEdit() string {
	labels := []string{"Name    ", "Bio     ", "Location", "Website "}
	fieldKeys := []string{"display_name", "bio", "location", "website"}

	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(label + " │ [")
		b.WriteString(m.profileInputs[i].View())
		b.WriteString("]")
		b.WriteString(fieldError(m.formErrs, fieldKeys[i]))
		b.WriteString("\n")
	}

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.formErr != "" {
		b.WriteString("\nError: " + errorStyle.Render(m.formErr) + "\n")
	}

	return renderPage("EDIT PROFILE", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: save")
}
