package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by Run when the user closed the portal.
var ErrUserQuit = errors.New("user quit the portal")

// TUI is the terminal portal.
type TUI struct {
	services  *service.ClientServices
	sendDelay time.Duration
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New creates the portal over services. sendDelay is the simulated delay of
// sending a login code; a non-positive value means DefaultSendDelay.
func New(services *service.ClientServices, sendDelay time.Duration, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.AuthService == nil {
		return nil, errors.New("tui: auth service is required")
	}

	return &TUI{
		services:  services,
		sendDelay: sendDelay,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Pages builds every page of the portal keyed by route.
func (t *TUI) Pages(ctx context.Context) map[models.Route]tea.Model {
	auth, portal := t.services.AuthService, t.services.PortalService

	return map[models.Route]tea.Model{
		models.RouteHome:               NewHomeModel(ctx, auth, t.sendDelay),
		models.RouteSignIn:             NewSignInModel(ctx, auth),
		models.RouteSignUp:             NewSignUpModel(ctx, auth),
		models.RoutePatientDashboard:   NewDashboardModel(ctx, auth, portal, models.RolePatient),
		models.RouteDoctorDashboard:    NewDashboardModel(ctx, auth, portal, models.RoleDoctor),
		models.RouteFindDoctor:         NewFindDoctorModel(ctx, auth, portal),
		models.RoutePatientAppointment: NewAppointmentsModel(ctx, auth, portal, models.RolePatient),
		models.RouteDoctorAppointment:  NewAppointmentsModel(ctx, auth, portal, models.RoleDoctor),
		models.RouteProfile:            NewProfileModel(ctx, auth),
	}
}

// Run shows the portal until the user quits or ctx is cancelled. Changes of
// the Auth Context are forwarded into the program for the whole run.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services, t.Pages(ctx), models.RouteHome, t.buildInfo)
	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	// Send blocks until the event loop reads the message, and the loop may
	// itself be the goroutine publishing the change.
	unsubscribe := t.services.AuthService.Subscribe(func(state service.AuthState) {
		go p.Send(authChangedMsg{state: state})
	})
	defer unsubscribe()

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user quit the portal")
		return ErrUserQuit
	}

	return nil
}
