package tui

import (
	"context"

	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages
// 4) gates pages that need a signed-in user
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx    context.Context
	auth   service.ClientAuthService
	portal service.ClientPortalService

	pages map[models.Route]tea.Model
	route models.Route
	state service.AuthState

	quitByUser bool

	buildInfo     models.AppBuildInfo
	serverVersion string
	showBuildInfo bool
}

// NewRootModel registers all pages and opens start.
func NewRootModel(ctx context.Context, services *service.ClientServices, pages map[models.Route]tea.Model, start models.Route, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:       ctx,
		auth:      services.AuthService,
		portal:    services.PortalService,
		pages:     pages,
		route:     start,
		state:     services.AuthService.Snapshot(),
		buildInfo: buildInfo,
	}
}

// Route returns the active route.
func (r RootModel) Route() models.Route {
	return r.route
}

func (r RootModel) Init() tea.Cmd {
	current := r.pages[r.route]
	if current == nil {
		return nil
	}
	return current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.route == models.RouteHome:
			r.showBuildInfo = !r.showBuildInfo
			if r.showBuildInfo {
				return r, r.cmdServerVersion()
			}
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case versionLoadedMsg:
		r.serverVersion = msg.version
		return r, nil

	case NavigateTo:
		if _, exists := r.pages[msg.Route]; !exists {
			return r, nil
		}
		r.showBuildInfo = false
		r.route = msg.Route
		r.state = r.auth.Snapshot()

		cmds := []tea.Cmd{r.enforceGate(), r.pages[r.route].Init()}
		if msg.Payload != nil {
			payload := msg.Payload
			cmds = append(cmds, func() tea.Msg { return payload })
		}
		return r, tea.Batch(cmds...)

	case authChangedMsg:
		r.state = r.auth.Snapshot()
		gateCmd := r.enforceGate()

		updated, cmd := r.pages[r.route].Update(msg)
		r.pages[r.route] = updated
		return r, tea.Batch(gateCmd, cmd)
	}

	current := r.pages[r.route]
	if current == nil {
		return r, nil
	}

	updated, cmd := current.Update(msg)
	r.pages[r.route] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo, r.serverVersion))
	}

	current := r.pages[r.route]
	if current == nil {
		return renderPage(appName, "", "")
	}

	if page, ok := current.(gatedPage); ok {
		switch gate(r.state, page.requiredRole()) {
		case gateLoading:
			return appStyle.Render(renderPage(appName, "Loading...", ""))
		case gateRedirect:
			return ""
		}
	}

	return appStyle.Render(current.View())
}

// enforceGate sends the user home when the active page does not admit the
// current state. While the Auth Context is loading nothing happens.
func (r *RootModel) enforceGate() tea.Cmd {
	page, ok := r.pages[r.route].(gatedPage)
	if !ok || gate(r.state, page.requiredRole()) != gateRedirect {
		return nil
	}

	r.route = models.RouteHome
	home := r.pages[r.route]
	if home == nil {
		return nil
	}
	return home.Init()
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	ctx, portal := r.ctx, r.portal
	if portal == nil {
		return nil
	}

	return func() tea.Msg {
		version, err := portal.ServerVersion(ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}
