package tui

import "github.com/Premdhumal/go-tweet-client/models"

func renderConfirm(t models.Tweet) string {
	content := "Delete \"" + fitText(oneLine(t.Text), 40) + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
