package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/health-vault/internal/adapter"
	"github.com/MKhiriev/health-vault/internal/client"
	"github.com/MKhiriev/health-vault/internal/config"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/internal/store"
	"github.com/MKhiriev/health-vault/internal/tui"
	"github.com/MKhiriev/health-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("health-vault-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	client.LogEnvironment(cfg, log)

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	backend, err := adapter.NewHTTPBackendClient(cfg.Adapter, cfg.App, storages.BackendSessionStore, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	services := service.NewClientServices(storages.SessionStore, backend, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, cfg.App.SendCodeDelay, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
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
