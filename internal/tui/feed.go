package tui

import (
	"fmt"
	"strings"

	"github.com/Premdhumal/go-tweet-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateFeed(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.tweets)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadFeed(m.seq), m.cmdUnreadCount())
	case key.Matches(keyMsg, keys.enter):
		tweet, ok := m.currentTweet()
		if !ok {
			return m, nil
		}
		m.detailTweet = tweet
		return m, m.navigate(screenDetail)
	case key.Matches(keyMsg, keys.compose):
		return m, m.navigate(screenCompose)
	case key.Matches(keyMsg, keys.like):
		tweet, ok := m.currentTweet()
		if !ok {
			return m, nil
		}
		return m, m.toggleLike(tweet)
	case key.Matches(keyMsg, keys.edit):
		tweet, ok := m.currentTweet()
		if !ok {
			return m, nil
		}
		if !tweet.OwnedBy(m.session.Current().User) {
			m.status = "You can only edit your own tweets"
			return m, clearStatusLater()
		}
		m.editTweet = tweet
		return m, m.navigate(screenEdit)
	case key.Matches(keyMsg, keys.delete):
		tweet, ok := m.currentTweet()
		if !ok {
			return m, nil
		}
		if !tweet.OwnedBy(m.session.Current().User) {
			m.status = "You can only delete your own tweets"
			return m, clearStatusLater()
		}
		m.startDelete(tweet)
	case key.Matches(keyMsg, keys.profile):
		tweet, ok := m.currentTweet()
		if ok {
			m.profileName = tweet.User.Username
		} else if snap := m.session.Current(); snap.Authenticated() {
			m.profileName = snap.User.Username
		} else {
			return m, nil
		}
		return m, m.navigate(screenProfile)
	case key.Matches(keyMsg, keys.notifications):
		return m, m.navigate(screenNotifications)
	case key.Matches(keyMsg, keys.logout):
		if m.session.Current().Authenticated() {
			return m, m.cmdLogout()
		}
		return m, m.navigate(screenLogin)
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m appModel) viewFeed() string {
	var b strings.Builder

	if snap := m.session.Current(); snap.Authenticated() {
		b.WriteString("@" + snap.User.Username)
		if m.unread > 0 {
			b.WriteString("  │  " + unreadStyle.Render(fmt.Sprintf("%d unread", m.unread)))
		}
		b.WriteString("\n\n")
	} else {
		b.WriteString("Browsing as a guest\n\n")
	}

	if m.loading {
		b.WriteString(m.spin.View())
		b.WriteString(" Loading the feed...\n")
		return renderPage("FEED", strings.TrimRight(b.String(), "\n"), "")
	}

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	if len(m.tweets) == 0 {
		b.WriteString("Nothing here yet. Press c to post the first tweet.\n")
	} else {
		for i, tweet := range m.tweets {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor + renderTweetLine(tweet) + "\n")
		}
	}

	hotKeys := "enter: open │ c: new │ l: like │ r: refresh │ p: profile │ n: notifications │ L: sign out │ q: quit"
	return renderPage("FEED", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func renderTweetLine(t models.Tweet) string {
	line := authorStyle.Render(fitText(t.User.Handle(), 18))
	line += "  " + fitText(oneLine(t.Text), 48)
	if t.PhotoURL != "" {
		line += " [photo]"
	}
	line += "  " + likeMarker(t.IsLiked, t.LikeCount)
	line += "  " + helpStyle.Render(relativeTime(t.CreatedAt))
	return line
}

func oneLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
