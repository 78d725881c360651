package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/internal/store"
	"github.com/MKhiriev/health-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type findFocus int

const (
	focusQuery findFocus = iota
	focusSpecialty
	focusLocation
	focusResults
)

const dateLayout = "2006-01-02"

// FindDoctorModel searches the directory and books a slot with the chosen
// doctor for today. Patients only.
type FindDoctorModel struct {
	ctx    context.Context
	auth   service.ClientAuthService
	portal service.ClientPortalService
	now    func() time.Time

	query        textinput.Model
	specialtyIdx int
	locationIdx  int
	focus        findFocus

	doctors []models.Doctor
	idx     int
	loading bool

	booking bool
	slotIdx int

	notice    string
	noticeErr bool
}

func NewFindDoctorModel(ctx context.Context, auth service.ClientAuthService, portal service.ClientPortalService) *FindDoctorModel {
	query := textinput.New()
	query.Placeholder = "Search doctors, specialties..."
	query.Width = 40

	return &FindDoctorModel{
		ctx:    ctx,
		auth:   auth,
		portal: portal,
		now:    time.Now,
		query:  query,
	}
}

func (m *FindDoctorModel) requiredRole() models.Role {
	return models.RolePatient
}

// Filter returns the criteria the page searches with.
func (m *FindDoctorModel) Filter() models.DoctorFilter {
	return models.DoctorFilter{
		Query:     strings.TrimSpace(m.query.Value()),
		Specialty: models.Specialties[m.specialtyIdx],
		Location:  models.Locations[m.locationIdx],
	}
}

func (m *FindDoctorModel) Init() tea.Cmd {
	m.booking = false
	m.setFocus(focusQuery)
	return tea.Batch(textinput.Blink, m.search())
}

func (m *FindDoctorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doctorsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.setNotice(humanizeServerUnavailableError(msg.err), true)
			return m, nil
		}
		m.doctors = msg.doctors
		if m.idx >= len(m.doctors) {
			m.idx = 0
		}
		return m, nil

	case bookedMsg:
		if msg.err != nil {
			m.setNotice(bookingErrorText(msg.err), true)
			return m, nil
		}
		m.booking = false
		a := msg.appointment
		m.setNotice(fmt.Sprintf("Booked %s on %s at %s.", a.DoctorName, a.Date, a.Slot), false)
		return m, nil

	case tea.KeyMsg:
		if m.booking {
			return m.updateBooking(msg)
		}
		return m.updateSearch(msg)
	}

	return m, nil
}

func (m *FindDoctorModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Route: models.RoutePatientDashboard} }
	case key.Matches(msg, keys.tab):
		m.setFocus((m.focus + 1) % (focusResults + 1))
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.setFocus((m.focus + focusResults) % (focusResults + 1))
		return m, nil
	}

	switch m.focus {
	case focusQuery:
		if key.Matches(msg, keys.enter) {
			return m, m.search()
		}
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return m, cmd

	case focusSpecialty, focusLocation:
		step := 0
		switch {
		case key.Matches(msg, keys.left):
			step = -1
		case key.Matches(msg, keys.right):
			step = 1
		default:
			return m, nil
		}
		if m.focus == focusSpecialty {
			m.specialtyIdx = cycle(m.specialtyIdx, step, len(models.Specialties))
		} else {
			m.locationIdx = cycle(m.locationIdx, step, len(models.Locations))
		}
		return m, m.search()

	case focusResults:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.doctors)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			if len(m.doctors) > 0 {
				m.booking = true
				m.slotIdx = 0
				m.notice = ""
			}
		}
	}

	return m, nil
}

func (m *FindDoctorModel) updateBooking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	doctor := m.doctors[m.idx]

	switch {
	case key.Matches(msg, keys.esc):
		m.booking = false
	case key.Matches(msg, keys.left):
		m.slotIdx = cycle(m.slotIdx, -1, len(doctor.AvailableSlots))
	case key.Matches(msg, keys.right):
		m.slotIdx = cycle(m.slotIdx, 1, len(doctor.AvailableSlots))
	case key.Matches(msg, keys.enter):
		if len(doctor.AvailableSlots) == 0 {
			return m, nil
		}
		request := models.BookAppointmentRequest{
			DoctorID: doctor.ID,
			Date:     m.now().Format(dateLayout),
			Slot:     doctor.AvailableSlots[m.slotIdx],
		}
		return m, m.book(request)
	}

	return m, nil
}

func (m *FindDoctorModel) View() string {
	var b strings.Builder
	b.WriteString(renderHeader(m.auth.Snapshot().User, models.RouteFindDoctor))
	b.WriteString("\n\n")

	b.WriteString(m.focusMarker(focusQuery))
	b.WriteString(m.query.View())
	b.WriteString("\n")
	b.WriteString(m.focusMarker(focusSpecialty))
	b.WriteString("Specialty: ◀ " + models.Specialties[m.specialtyIdx] + " ▶\n")
	b.WriteString(m.focusMarker(focusLocation))
	b.WriteString("Location:  ◀ " + models.Locations[m.locationIdx] + " ▶\n\n")

	switch {
	case m.loading:
		b.WriteString("Searching...")
	case len(m.doctors) == 0:
		b.WriteString("No doctors found. Try adjusting your search criteria.")
	default:
		b.WriteString(fmt.Sprintf("%d doctors found\n", len(m.doctors)))
		for i, d := range m.doctors {
			cursor := "  "
			line := fmt.Sprintf("%-22s %-18s %2dy  ★%.1f  %-8s ₹%d",
				fitText(d.Name, 22), d.Specialty, d.ExperienceYears, d.Rating, d.Location, d.ConsultationFee)
			if i == m.idx && m.focus == focusResults {
				cursor = "> "
				line = selectedStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	if m.booking {
		b.WriteString("\n")
		b.WriteString(m.slotPicker())
	}

	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(renderNotice(m.notice, m.noticeErr))
	}

	hot := "esc: dashboard │ tab: next │ ←/→: change filter │ enter: search/book"
	if m.booking {
		hot = "esc: cancel │ ←/→: choose slot │ enter: book"
	}
	return renderPage("FIND A DOCTOR", strings.TrimRight(b.String(), "\n"), hot)
}

func (m *FindDoctorModel) slotPicker() string {
	doctor := m.doctors[m.idx]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Available today with %s:\n", doctor.Name))
	for i, slot := range doctor.AvailableSlots {
		if i == m.slotIdx {
			b.WriteString(activeBadge.Render(slot))
		} else {
			b.WriteString(badgeStyle.Render(slot))
		}
		b.WriteString(" ")
	}
	return b.String()
}

func (m *FindDoctorModel) focusMarker(f findFocus) string {
	if m.focus == f && !m.booking {
		return "> "
	}
	return "  "
}

func (m *FindDoctorModel) setFocus(f findFocus) {
	m.focus = f
	if f == focusQuery {
		m.query.Focus()
	} else {
		m.query.Blur()
	}
}

func (m *FindDoctorModel) search() tea.Cmd {
	if m.portal == nil {
		return nil
	}

	m.loading = true
	ctx, portal, filter := m.ctx, m.portal, m.Filter()
	return func() tea.Msg {
		doctors, err := portal.SearchDoctors(ctx, filter)
		return doctorsLoadedMsg{doctors: doctors, err: err}
	}
}

func (m *FindDoctorModel) book(request models.BookAppointmentRequest) tea.Cmd {
	ctx, portal := m.ctx, m.portal
	return func() tea.Msg {
		appointment, err := portal.BookAppointment(ctx, request)
		return bookedMsg{appointment: appointment, err: err}
	}
}

func (m *FindDoctorModel) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func bookingErrorText(err error) string {
	switch {
	case errors.Is(err, service.ErrNoBackendSession):
		return "Sign in with an email account to book appointments"
	case errors.Is(err, store.ErrSlotTaken):
		return "This slot is already booked, please pick another"
	case errors.Is(err, service.ErrSlotUnavailable):
		return "This slot is not offered by the doctor"
	case errors.Is(err, service.ErrOnlyPatientsCanBook):
		return "Only patients can book appointments"
	default:
		return humanizeServerUnavailableError(err)
	}
}

func cycle(i, step, n int) int {
	if n == 0 {
		return 0
	}
	return ((i+step)%n + n) % n
}
