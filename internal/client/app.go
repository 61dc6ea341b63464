package client

import (
	"context"
	"fmt"

	"github.com/Premdhumal/go-tweet-client/internal/config"
	"github.com/Premdhumal/go-tweet-client/internal/logger"
	"github.com/Premdhumal/go-tweet-client/internal/service"
	"github.com/Premdhumal/go-tweet-client/internal/session"
	"github.com/Premdhumal/go-tweet-client/internal/tui"
	"github.com/Premdhumal/go-tweet-client/internal/workers"
)

type App struct {
	services   *service.ClientServices
	session    *session.Store
	ui         *tui.TUI
	workersCfg config.ClientWorkers
	logger     *logger.Logger
}

func NewApp(services *service.ClientServices, sessionStore *session.Store, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || sessionStore == nil || ui == nil {
		return nil, fmt.Errorf("client app is missing a dependency")
	}

	return &App{
		services:   services,
		session:    sessionStore,
		ui:         ui,
		workersCfg: workersCfg,
		logger:     log,
	}, nil
}

// Run resolves the session, starts the session-following background jobs,
// and hands control to the terminal UI until the user quits.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := a.services.AuthService.Initialize(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("session probe failed, starting offline")
	}

	jobs := workers.NewWorkers(
		workers.NewNotificationJob(a.services.NotificationService, a.logger),
	)
	defer jobs.Stop()

	stopFollowing := a.followSession(ctx, jobs)
	defer stopFollowing()

	return a.ui.Run(ctx)
}

// followSession keeps the background jobs in step with the session: they run
// while a user is signed in and stop on sign-out. The returned func ends the
// observer goroutine.
func (a *App) followSession(ctx context.Context, jobs *workers.Workers) func() {
	transitions, unsubscribe := a.session.Subscribe()

	if a.session.Current().Authenticated() {
		jobs.Start(ctx, a.workersCfg.NotificationsInterval)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for snap := range transitions {
			if snap.Authenticated() {
				jobs.Start(ctx, a.workersCfg.NotificationsInterval)
			} else {
				jobs.Stop()
			}
		}
	}()

	return func() {
		unsubscribe()
		<-done
	}
}
