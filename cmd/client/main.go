package main

import (
	"fmt"

	"github.com/Premdhumal/go-tweet-client/internal/adapter"
	"github.com/Premdhumal/go-tweet-client/internal/client"
	"github.com/Premdhumal/go-tweet-client/internal/config"
	"github.com/Premdhumal/go-tweet-client/internal/logger"
	"github.com/Premdhumal/go-tweet-client/internal/service"
	"github.com/Premdhumal/go-tweet-client/internal/session"
	"github.com/Premdhumal/go-tweet-client/internal/store"
	"github.com/Premdhumal/go-tweet-client/internal/tui"
	"github.com/Premdhumal/go-tweet-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("tweet-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	sessionStore := session.NewStore(serverAdapter, log)
	services := service.NewClientServices(localStorage, serverAdapter, sessionStore, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, sessionStore, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, sessionStore, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
