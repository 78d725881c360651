package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/health-vault/internal/config"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/internal/tui"
	"github.com/MKhiriev/health-vault/internal/workers"
)

// UI is the interactive surface the App drives.
type UI interface {
	Run(ctx context.Context) error
}

// App wires the portal UI to the client services and the background
// workers for one run.
type App struct {
	services *service.ClientServices
	ui       UI
	cfg      config.ClientWorkers
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || services.AuthService == nil {
		return nil, errors.New("client: auth service is required")
	}
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}

	return &App{services: services, ui: ui, cfg: cfg, logger: logger}, nil
}

// Run starts session restore and the session watcher, then blocks in the UI.
// Quitting the portal is not an error.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ws := []workers.Worker{workers.NewAuthInitWorker(ctx, a.services.AuthService)}
	if a.services.SessionJob != nil {
		ws = append(ws, workers.NewSessionWorker(ctx, a.services.SessionJob, a.cfg.SessionCheckInterval))
		defer a.services.SessionJob.Stop()
	}
	workers.New(ws...).Run()
	defer a.services.AuthService.Close()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("portal closed by user")
		return nil
	}
	if err != nil {
		return fmt.Errorf("portal run error: %w", err)
	}

	return nil
}

// LogEnvironment logs which settings are configured. Values are never
// logged.
func LogEnvironment(cfg *config.ClientConfig, logger *logger.Logger) {
	event := logger.Info()
	for name, set := range cfg.EnvironmentReport() {
		event = event.Bool(name, set)
	}
	event.Msg("environment check")
}
