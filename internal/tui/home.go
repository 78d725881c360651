package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// HomeModel is the landing page. It hosts the phone login dialog.
type HomeModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	menu  menu
	login *LoginFlowModel

	notice    string
	noticeErr bool
}

func NewHomeModel(ctx context.Context, auth service.ClientAuthService, sendDelay time.Duration) *HomeModel {
	m := &HomeModel{
		ctx:   ctx,
		auth:  auth,
		login: NewLoginFlowModel(ctx, auth, sendDelay),
	}
	m.refreshMenu()
	return m
}

// LoginFlow exposes the hosted dialog.
func (m *HomeModel) LoginFlow() *LoginFlowModel {
	return m.login
}

func (m *HomeModel) Init() tea.Cmd {
	m.refreshMenu()
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authChangedMsg:
		m.refreshMenu()
		return m, nil

	case noticeMsg:
		m.notice, m.noticeErr = msg.text, msg.isErr
		return m, nil

	case tea.KeyMsg:
		if m.login.IsOpen() {
			_, cmd := m.login.Update(msg)
			return m, cmd
		}
		cmd, _ := m.menu.update(msg)
		return m, cmd
	}

	// Timers and results of the dialog arrive even after it was closed; it
	// drops stale ones itself.
	_, cmd := m.login.Update(msg)
	return m, cmd
}

func (m *HomeModel) View() string {
	if m.login.IsOpen() {
		return m.login.View()
	}

	var b strings.Builder
	b.WriteString(renderHeader(m.auth.Snapshot().User, models.RouteHome))
	b.WriteString("\n\nYour health records and doctors in one place.\n\n")
	b.WriteString(m.menu.view())
	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(renderNotice(m.notice, m.noticeErr))
	}

	return renderPage("HOME", b.String(), "enter: select │ ↑/↓: navigate │ ctrl+v: version")
}

func (m *HomeModel) refreshMenu() {
	user := m.auth.Snapshot().User
	if user == nil {
		m.menu.setItems([]menuItem{
			{label: "Login with phone", action: m.openLogin},
			{label: "Sign in with email", action: navigate(models.RouteSignIn)},
			{label: "Create account", action: navigate(models.RouteSignUp)},
		})
		return
	}

	m.menu.setItems([]menuItem{
		{label: "Go to dashboard", action: navigate(models.DashboardRoute(user.Role))},
		{label: "Profile", action: navigate(models.RouteProfile)},
		{label: "Logout", action: m.logout},
	})
}

func (m *HomeModel) openLogin() tea.Cmd {
	m.notice = ""
	return m.login.Open()
}

func (m *HomeModel) logout() tea.Cmd {
	return cmdLogout(m.ctx, m.auth)
}

// cmdLogout signs out off the UI goroutine and returns home.
func cmdLogout(ctx context.Context, auth service.ClientAuthService) tea.Cmd {
	return func() tea.Msg {
		auth.Logout(ctx)
		return NavigateTo{Route: models.RouteHome, Payload: noticeMsg{text: "You have been logged out."}}
	}
}
