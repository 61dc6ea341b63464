package tui

import (
	"strings"

	"github.com/Premdhumal/go-tweet-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateNotifications(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		return m, m.navigate(screenFeed)
	case key.Matches(keyMsg, keys.up):
		if m.nIdx > 0 {
			m.nIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.nIdx < len(m.feed.Notifications)-1 {
			m.nIdx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadNotifications(m.seq))
	case key.Matches(keyMsg, keys.markRead):
		if m.feed.UnreadCount == 0 {
			return m, nil
		}
		return m, m.cmdMarkAllRead()
	case key.Matches(keyMsg, keys.enter):
		if m.nIdx < 0 || m.nIdx >= len(m.feed.Notifications) {
			return m, nil
		}
		n := m.feed.Notifications[m.nIdx]
		if n.TweetID == 0 {
			return m, nil
		}
		m.detailTweet = models.Tweet{ID: n.TweetID}
		return m, m.navigate(screenDetail)
	}

	return m, nil
}

func verbLabel(n models.Notification) string {
	switch n.Verb {
	case models.VerbLike:
		return "liked your tweet"
	case models.VerbReply:
		return "replied to your tweet"
	case models.VerbFollow:
		return "followed you"
	default:
		return string(n.Verb)
	}
}

func (m appModel) viewNotifications() string {
	if m.loading {
		return renderPage("NOTIFICATIONS", m.spin.View()+" Loading notifications...", "")
	}

	var b strings.Builder

	if m.status != "" {
		b.WriteString(m.status + "\n\n")
	}

	if len(m.feed.Notifications) == 0 {
		b.WriteString("No notifications\n")
	} else {
		for i, n := range m.feed.Notifications {
			cursor := "  "
			if i == m.nIdx {
				cursor = "> "
			}

			line := n.Actor.Handle() + " " + verbLabel(n)
			if n.TweetText != "" {
				line += ": " + fitText(oneLine(n.TweetText), 32)
			}
			line += "  " + helpStyle.Render(relativeTime(n.CreatedAt))
			if !n.IsRead {
				line = unreadStyle.Render("● ") + line
			} else {
				line = "  " + line
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	return renderPage("NOTIFICATIONS", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: open tweet │ m: mark all read │ r: refresh")
}
