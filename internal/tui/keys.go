package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up            key.Binding
	down          key.Binding
	enter         key.Binding
	esc           key.Binding
	tab           key.Binding
	backtab       key.Binding
	quit          key.Binding
	logout        key.Binding
	compose       key.Binding
	refresh       key.Binding
	edit          key.Binding
	delete        key.Binding
	like          key.Binding
	copy          key.Binding
	profile       key.Binding
	notifications key.Binding
	markRead      key.Binding
	buildInfo     key.Binding
	yes           key.Binding
	no            key.Binding
}

var keys = keyMap{
	up:            key.NewBinding(key.WithKeys("up", "k")),
	down:          key.NewBinding(key.WithKeys("down", "j")),
	enter:         key.NewBinding(key.WithKeys("enter")),
	esc:           key.NewBinding(key.WithKeys("esc")),
	tab:           key.NewBinding(key.WithKeys("tab")),
	backtab:       key.NewBinding(key.WithKeys("shift+tab")),
	quit:          key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:        key.NewBinding(key.WithKeys("L")),
	compose:       key.NewBinding(key.WithKeys("c")),
	refresh:       key.NewBinding(key.WithKeys("r")),
	edit:          key.NewBinding(key.WithKeys("e")),
	delete:        key.NewBinding(key.WithKeys("d")),
	like:          key.NewBinding(key.WithKeys("l", " ")),
	copy:          key.NewBinding(key.WithKeys("y")),
	profile:       key.NewBinding(key.WithKeys("p")),
	notifications: key.NewBinding(key.WithKeys("n")),
	markRead:      key.NewBinding(key.WithKeys("m")),
	buildInfo:     key.NewBinding(key.WithKeys("i")),
	yes:           key.NewBinding(key.WithKeys("y")),
	no:            key.NewBinding(key.WithKeys("n")),
}
