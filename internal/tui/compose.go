package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/Premdhumal/go-tweet-client/internal/service"
	"github.com/Premdhumal/go-tweet-client/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// initComposeForm prepares the editor for both the compose and the edit
// screen. For an edit the textarea is pre-filled with the current text, and
// submitting sends the full replacement.
func (m *appModel) initComposeForm(tweet models.Tweet) {
	ta := textarea.New()
	ta.Placeholder = "What's happening?"
	ta.CharLimit = models.MaxTweetLength
	ta.SetWidth(54)
	ta.SetHeight(6)
	ta.SetValue(tweet.Text)
	ta.Focus()

	photo := textinput.New()
	photo.Placeholder = "/path/to/photo (optional)"
	photo.Width = 54

	m.composeArea = ta
	m.photoInput = photo
	m.composeFocus = 0
	m.removePhoto = false
	m.editTweet = tweet
	m.formErr = ""
	m.saving = false
}

func (m appModel) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			if m.screen == screenEdit {
				m.detailTweet = m.editTweet
				return m, m.navigate(screenDetail)
			}
			return m, m.navigate(screenFeed)
		case "tab", "shift+tab":
			if m.composeFocus == 0 {
				m.composeArea.Blur()
				m.photoInput.Focus()
				m.composeFocus = 1
			} else {
				m.photoInput.Blur()
				m.composeArea.Focus()
				m.composeFocus = 0
			}
			return m, nil
		case "ctrl+r":
			if m.screen == screenEdit && m.editTweet.PhotoURL != "" {
				m.removePhoto = !m.removePhoto
			}
			return m, nil
		case "ctrl+s":
			if m.saving {
				return m, nil
			}

			draft, err := m.collectDraft()
			if err != nil {
				m.formErr = err.Error()
				return m, nil
			}
			if draft.Text == "" {
				m.formErr = "Tweet text is empty"
				return m, nil
			}

			m.formErr = ""
			m.saving = true
			if m.screen == screenEdit {
				return m, m.cmdEdit(m.editTweet, draft)
			}
			return m, m.cmdCompose(draft)
		}
	}

	var cmd tea.Cmd
	if m.composeFocus == 0 {
		m.composeArea, cmd = m.composeArea.Update(msg)
	} else {
		m.photoInput, cmd = m.photoInput.Update(msg)
	}
	return m, cmd
}

// collectDraft reads the editor state into a draft. A non-empty photo path
// is loaded from disk right away so a bad path fails before the request.
func (m *appModel) collectDraft() (models.TweetDraft, error) {
	draft := models.TweetDraft{
		Text:        strings.TrimSpace(m.composeArea.Value()),
		RemovePhoto: m.removePhoto,
	}

	path := strings.TrimSpace(m.photoInput.Value())
	if path == "" {
		return draft, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return draft, fmt.Errorf("photo file not found")
	}
	if info.IsDir() {
		return draft, fmt.Errorf("photo path points to a directory")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return draft, fmt.Errorf("cannot read photo file")
	}

	draft.PhotoName = filepath.Base(path)
	draft.Photo = data
	return draft, nil
}

func (m appModel) onTweetSaved(msg tweetSavedMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	if msg.err != nil {
		if fields := service.FieldErrors(msg.err); len(fields) > 0 {
			if fieldMsg, ok := fields["text"]; ok {
				m.formErr = fieldMsg
				return m, nil
			}
		}
		m.formErr = humanizeError(msg.err)
		if errors.Is(msg.err, service.ErrSessionExpired) {
			return m, m.cmdRefreshSession()
		}
		return m, nil
	}

	m.applyTweet(msg.tweet)
	if m.screen == screenEdit {
		m.detailTweet = msg.tweet
		m.status = "Tweet updated"
		return m, tea.Batch(m.navigate(screenDetail), clearStatusLater())
	}
	m.status = "Tweet posted"
	return m, tea.Batch(m.navigate(screenFeed), clearStatusLater())
}

func (m appModel) viewCompose() string {
	title := "NEW TWEET"
	action := "[Post]"
	if m.screen == screenEdit {
		title = fmt.Sprintf("EDIT TWEET #%d", m.editTweet.ID)
		action = "[Save]"
	}
	if m.saving {
		action = "[Saving...]"
	}

	var b strings.Builder
	b.WriteString(m.composeArea.View())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d/%d\n\n", utf8.RuneCountInString(m.composeArea.Value()), models.MaxTweetLength))
	b.WriteString("Photo: [ " + m.photoInput.View() + " ]\n")

	if m.screen == screenEdit && m.editTweet.PhotoURL != "" {
		if m.removePhoto {
			b.WriteString("Current photo will be removed (ctrl+r to keep)\n")
		} else {
			b.WriteString("Current photo: " + m.editTweet.PhotoURL + " (ctrl+r to remove)\n")
		}
	}

	b.WriteString("\n" + action + "\n")

	if m.formErr != "" {
		b.WriteString("\nError: " + errorStyle.Render(m.formErr) + "\n")
	}

	hotKeys := "ctrl+s: post │ tab: photo field │ esc: cancel"
	if m.screen == screenEdit {
		hotKeys = "ctrl+s: save │ tab: photo field │ ctrl+r: toggle photo │ esc: cancel"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
