// Package tui is the terminal front end of the client. A single Bubble Tea
// program drives every screen; screens talk to the service layer exclusively
// through async commands so the event loop never blocks on the network.
package tui

import (
	"context"

	"github.com/Premdhumal/go-tweet-client/internal/logger"
	"github.com/Premdhumal/go-tweet-client/internal/service"
	"github.com/Premdhumal/go-tweet-client/internal/session"
	"github.com/Premdhumal/go-tweet-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	session   *session.Store
	buildInfo models.AppBuildInfo
}

func New(services *service.ClientServices, sessionStore *session.Store, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		session:   sessionStore,
		buildInfo: buildInfo,
	}, nil
}

// Run blocks until the user quits or the context is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.session, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
