package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	ownProfile := false
	if snap := m.session.Current(); snap.Authenticated() {
		ownProfile = snap.User.Username == m.profile.Username
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		return m, m.navigate(screenFeed)
	case key.Matches(keyMsg, keys.up):
		if m.profileIdx > 0 {
			m.profileIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.profileIdx < len(m.profileTweets)-1 {
			m.profileIdx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadProfile(m.seq, m.profileName))
	case key.Matches(keyMsg, keys.enter):
		if m.profileIdx < 0 || m.profileIdx >= len(m.profileTweets) {
			return m, nil
		}
		m.detailTweet = m.profileTweets[m.profileIdx]
		return m, m.navigate(screenDetail)
	case key.Matches(keyMsg, keys.like):
		if m.profileIdx < 0 || m.profileIdx >= len(m.profileTweets) {
			return m, nil
		}
		return m, m.toggleLike(m.profileTweets[m.profileIdx])
	case key.Matches(keyMsg, keys.edit):
		if ownProfile {
			return m, m.navigate(screenProfileEdit)
		}
	case key.Matches(keyMsg, keys.delete):
		if m.profileIdx < 0 || m.profileIdx >= len(m.profileTweets) {
			return m, nil
		}
		tweet := m.profileTweets[m.profileIdx]
		if !tweet.OwnedBy(m.session.Current().User) {
			m.status = "You can only delete your own tweets"
			return m, clearStatusLater()
		}
		m.startDelete(tweet)
	case key.Matches(keyMsg, keys.logout):
		if m.session.Current().Authenticated() {
			return m, m.cmdLogout()
		}
	}

	return m, nil
}

func (m appModel) viewProfile() string {
	if m.loading {
		return renderPage("PROFILE", m.spin.View()+" Loading the profile...", "")
	}

	p := m.profile

	var b strings.Builder
	b.WriteString(authorStyle.Render(p.DisplayName))
	if p.DisplayName == "" {
		b.WriteString(authorStyle.Render(p.Username))
	}
	b.WriteString("  @" + p.Username + "\n")
	if p.Bio != "" {
		b.WriteString(p.Bio + "\n")
	}

	meta := make([]string, 0, 3)
	if p.Location != "" {
		meta = append(meta, p.Location)
	}
	if p.Website != "" {
		meta = append(meta, p.Website)
	}
	if !p.DateJoined.IsZero() {
		meta = append(meta, "joined "+p.DateJoined.Format("January 2006"))
	}
	if len(meta) > 0 {
		b.WriteString(helpStyle.Render(strings.Join(meta, " │ ")) + "\n")
	}

	b.WriteString(fmt.Sprintf("%d tweets │ %d likes\n\n", p.TweetCount, p.LikeCount))

	if m.status != "" {
		b.WriteString(m.status + "\n\n")
	}

	if len(m.profileTweets) == 0 {
		b.WriteString("No tweets yet\n")
	} else {
		for i, tweet := range m.profileTweets {
			cursor := "  "
			if i == m.profileIdx {
				cursor = "> "
			}
			b.WriteString(cursor + renderTweetLine(tweet) + "\n")
		}
	}

	hotKeys := "esc: back │ enter: open │ l: like │ r: refresh"
	if snap := m.session.Current(); snap.Authenticated() && snap.User.Username == p.Username {
		hotKeys += " │ d: delete │ e: edit profile"
	}
	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), hotKeys)
}
