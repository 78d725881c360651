package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// DashboardModel is the landing page of a role. It is gated on that role.
type DashboardModel struct {
	ctx    context.Context
	auth   service.ClientAuthService
	portal service.ClientPortalService
	role   models.Role

	menu menu

	appointments []models.Appointment
	loading      bool
	errMsg       string
}

func NewDashboardModel(ctx context.Context, auth service.ClientAuthService, portal service.ClientPortalService, role models.Role) *DashboardModel {
	m := &DashboardModel{ctx: ctx, auth: auth, portal: portal, role: role}
	m.refreshMenu()
	return m
}

func (m *DashboardModel) requiredRole() models.Role {
	return m.role
}

func (m *DashboardModel) Init() tea.Cmd {
	m.refreshMenu()
	return m.load()
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authChangedMsg:
		return m, m.load()

	case appointmentsLoadedMsg:
		m.loading = false
		m.appointments = msg.appointments
		m.errMsg = humanizeServerUnavailableError(msg.err)
		return m, nil

	case tea.KeyMsg:
		cmd, _ := m.menu.update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	user := m.auth.Snapshot().User
	if user == nil {
		return ""
	}

	route := models.DashboardRoute(m.role)

	var b strings.Builder
	b.WriteString(renderHeader(user, route))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Welcome back, %s!\n", user.Name))
	if m.role == models.RoleDoctor {
		b.WriteString("Here are the consultations booked with you.\n")
	} else {
		b.WriteString("Find a doctor and keep track of your appointments.\n")
	}
	if user.IsDemo() {
		b.WriteString(helpStyle.Render("Demo account: sign in with email to book and see appointments."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.loading:
		b.WriteString("Loading appointments...")
	case m.errMsg != "":
		b.WriteString(renderNotice(m.errMsg, true))
	default:
		b.WriteString(m.summary())
	}

	b.WriteString("\n\n")
	b.WriteString(m.menu.view())

	return renderPage(strings.ToUpper(m.role.String())+" DASHBOARD", b.String(), "enter: select │ ↑/↓: navigate")
}

func (m *DashboardModel) summary() string {
	var upcoming []models.Appointment
	for _, a := range m.appointments {
		if a.Status == models.AppointmentBooked {
			upcoming = append(upcoming, a)
		}
	}

	if len(upcoming) == 0 {
		return "Upcoming appointments: 0"
	}

	next := upcoming[0]
	with := next.DoctorName
	if m.role == models.RoleDoctor {
		with = next.PatientName
	}
	return fmt.Sprintf("Upcoming appointments: %d\nNext: %s %s with %s", len(upcoming), next.Date, next.Slot, valueOrDash(with))
}

func (m *DashboardModel) refreshMenu() {
	items := []menuItem{}
	if m.role == models.RolePatient {
		items = append(items, menuItem{label: "Find a doctor", action: navigate(models.RouteFindDoctor)})
	}
	items = append(items,
		menuItem{label: "My appointments", action: navigate(models.AppointmentsRoute(m.role))},
		menuItem{label: "Profile", action: navigate(models.RouteProfile)},
		menuItem{label: "Logout", action: func() tea.Cmd { return cmdLogout(m.ctx, m.auth) }},
	)
	m.menu.setItems(items)
}

// load fetches appointments when the page is visible to the current user.
func (m *DashboardModel) load() tea.Cmd {
	user := m.auth.Snapshot().User
	if user == nil || user.Role != m.role || m.portal == nil {
		return nil
	}

	m.loading = true
	return cmdListAppointments(m.ctx, m.portal)
}

func cmdListAppointments(ctx context.Context, portal service.ClientPortalService) tea.Cmd {
	return func() tea.Msg {
		appointments, err := portal.ListAppointments(ctx)
		return appointmentsLoadedMsg{appointments: appointments, err: err}
	}
}
