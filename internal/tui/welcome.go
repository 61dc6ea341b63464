package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var landingItems = []string{"Sign in", "Create account", "Browse the feed"}

func (m appModel) updateLanding(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.landingIdx > 0 {
			m.landingIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.landingIdx < len(landingItems)-1 {
			m.landingIdx++
		}
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.enter):
		switch m.landingIdx {
		case 0:
			return m, m.navigate(screenLogin)
		case 1:
			return m, m.navigate(screenRegister)
		default:
			return m, m.navigate(screenFeed)
		}
	}

	return m, nil
}

func (m appModel) viewLanding() string {
	var b strings.Builder

	b.WriteString("Short posts, 280 characters at a time.\n\n")
	if m.loading {
		b.WriteString(m.spin.View())
		b.WriteString(" Connecting...\n")
		return renderPage("TWEET", strings.TrimRight(b.String(), "\n"), "")
	}

	for i, item := range landingItems {
		cursor := "  "
		if i == m.landingIdx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, item))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("TWEET", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ i: about │ q: quit")
}
