package tui

func renderErrorOverlay(message string) string {
	content := errorStyle.Render("Error") + "\n\n" + message + "\n\nenter / esc to close"
	return overlayBoxStyle.Render(content)
}
