package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		return m, m.navigate(screenFeed)
	case key.Matches(keyMsg, keys.like):
		return m, m.toggleLike(m.detailTweet)
	case key.Matches(keyMsg, keys.edit):
		if !m.detailTweet.OwnedBy(m.session.Current().User) {
			m.status = "You can only edit your own tweets"
			return m, clearStatusLater()
		}
		m.editTweet = m.detailTweet
		return m, m.navigate(screenEdit)
	case key.Matches(keyMsg, keys.delete):
		if !m.detailTweet.OwnedBy(m.session.Current().User) {
			m.status = "You can only delete your own tweets"
			return m, clearStatusLater()
		}
		m.startDelete(m.detailTweet)
	case key.Matches(keyMsg, keys.copy):
		return m, m.copyText(m.detailTweet.Text)
	case key.Matches(keyMsg, keys.profile):
		m.profileName = m.detailTweet.User.Username
		return m, m.navigate(screenProfile)
	}

	return m, nil
}

func (m *appModel) copyText(text string) tea.Cmd {
	if err := clipboard.WriteAll(text); err != nil {
		m.status = "Clipboard unavailable"
	} else {
		m.status = "Copied to clipboard"
	}
	return clearStatusLater()
}

func (m appModel) viewDetail() string {
	t := m.detailTweet

	var b strings.Builder
	b.WriteString(authorStyle.Render(t.User.Handle()))
	b.WriteString("  @" + t.User.Username + "\n\n")
	b.WriteString(t.Text + "\n\n")
	if t.PhotoURL != "" {
		b.WriteString("Photo: " + t.PhotoURL + "\n")
	}
	b.WriteString(likeMarker(t.IsLiked, t.LikeCount))
	b.WriteString("  " + helpStyle.Render("posted "+relativeTime(t.CreatedAt)))
	if !t.UpdatedAt.IsZero() && t.UpdatedAt.After(t.CreatedAt) {
		b.WriteString("  " + helpStyle.Render("edited "+relativeTime(t.UpdatedAt)))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := "esc: back │ l: like │ y: copy │ p: author"
	if t.OwnedBy(m.session.Current().User) {
		hotKeys += " │ e: edit │ d: delete"
	}
	return renderPage(fmt.Sprintf("TWEET #%d", t.ID), strings.TrimRight(b.String(), "\n"), hotKeys)
}
