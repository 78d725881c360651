package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/internal/store"
	"github.com/MKhiriev/health-vault/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppointmentsModel lists the appointments of the current user. Patients see
// their bookings and may cancel them, doctors see who booked with them.
type AppointmentsModel struct {
	ctx    context.Context
	auth   service.ClientAuthService
	portal service.ClientPortalService
	role   models.Role

	// copyFn writes to the system clipboard.
	copyFn func(string) error

	appointments []models.Appointment
	idx          int
	loading      bool

	notice    string
	noticeErr bool
}

func NewAppointmentsModel(ctx context.Context, auth service.ClientAuthService, portal service.ClientPortalService, role models.Role) *AppointmentsModel {
	return &AppointmentsModel{
		ctx:    ctx,
		auth:   auth,
		portal: portal,
		role:   role,
		copyFn: clipboard.WriteAll,
	}
}

func (m *AppointmentsModel) requiredRole() models.Role {
	return m.role
}

func (m *AppointmentsModel) Init() tea.Cmd {
	m.notice = ""
	return m.load()
}

func (m *AppointmentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authChangedMsg:
		return m, m.load()

	case appointmentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.setNotice(humanizeServerUnavailableError(msg.err), true)
			return m, nil
		}
		m.appointments = msg.appointments
		if m.idx >= len(m.appointments) {
			m.idx = 0
		}
		return m, nil

	case cancelledMsg:
		if msg.err != nil {
			m.setNotice(cancelErrorText(msg.err), true)
			return m, nil
		}
		m.setNotice("Appointment cancelled.", false)
		return m, m.load()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *AppointmentsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		route := models.DashboardRoute(m.role)
		return m, func() tea.Msg { return NavigateTo{Route: route} }
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.appointments)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		return m, m.load()
	case key.Matches(msg, keys.copy):
		a, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.copyFn(a.ID); err != nil {
			m.setNotice("Clipboard is not available", true)
			return m, nil
		}
		m.setNotice("Appointment id copied.", false)
	case key.Matches(msg, keys.cancel):
		a, ok := m.selected()
		if !ok || m.role != models.RolePatient || a.Status != models.AppointmentBooked {
			return m, nil
		}
		return m, m.cancel(a.ID)
	}

	return m, nil
}

func (m *AppointmentsModel) View() string {
	var b strings.Builder
	b.WriteString(renderHeader(m.auth.Snapshot().User, models.AppointmentsRoute(m.role)))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading appointments...")
	case len(m.appointments) == 0:
		b.WriteString("No appointments yet.")
	default:
		b.WriteString(m.table())
	}

	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(renderNotice(m.notice, m.noticeErr))
	}

	hot := "esc: dashboard │ ↑/↓: navigate │ ctrl+r: refresh │ ctrl+y: copy id"
	if m.role == models.RolePatient {
		hot += " │ ctrl+x: cancel"
	}
	return renderPage("MY APPOINTMENTS", b.String(), hot)
}

func (m *AppointmentsModel) table() string {
	withHeader := "Doctor"
	if m.role == models.RoleDoctor {
		withHeader = "Patient"
	}

	withWidth := lipgloss.Width(withHeader)
	for _, a := range m.appointments {
		if w := lipgloss.Width(m.counterpart(a)); w > withWidth {
			withWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-10s │ %-8s │ %-*s │ Status\n", "Date", "Slot", withWidth, withHeader))
	for i, a := range m.appointments {
		line := fmt.Sprintf("%-10s │ %-8s │ %-*s │ %s", a.Date, a.Slot, withWidth, m.counterpart(a), a.Status)
		if i == m.idx {
			b.WriteString("> " + selectedStyle.Render(line) + "\n")
			continue
		}
		b.WriteString("  " + line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *AppointmentsModel) counterpart(a models.Appointment) string {
	if m.role == models.RoleDoctor {
		return valueOrDash(a.PatientName)
	}
	return valueOrDash(a.DoctorName)
}

func (m *AppointmentsModel) selected() (models.Appointment, bool) {
	if m.idx < 0 || m.idx >= len(m.appointments) {
		return models.Appointment{}, false
	}
	return m.appointments[m.idx], true
}

func (m *AppointmentsModel) load() tea.Cmd {
	user := m.auth.Snapshot().User
	if user == nil || user.Role != m.role || m.portal == nil {
		return nil
	}

	m.loading = true
	return cmdListAppointments(m.ctx, m.portal)
}

func (m *AppointmentsModel) cancel(id string) tea.Cmd {
	ctx, portal := m.ctx, m.portal
	return func() tea.Msg {
		return cancelledMsg{id: id, err: portal.CancelAppointment(ctx, id)}
	}
}

func (m *AppointmentsModel) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func cancelErrorText(err error) string {
	switch {
	case errors.Is(err, store.ErrAppointmentNotFound):
		return "Appointment was not found"
	case errors.Is(err, service.ErrNoBackendSession):
		return "Sign in with an email account to manage appointments"
	default:
		return humanizeServerUnavailableError(err)
	}
}
