package tui

import (
	"context"
	"sync"
	"testing"

	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// stubAuth is an in-memory ClientAuthService. Login follows the demo rules.
type stubAuth struct {
	service.ClientAuthService

	mu    sync.Mutex
	state service.AuthState

	logouts  int
	updateFn func(models.ProfileUpdate) (models.User, error)
	signUpFn func(service.SignUpInput) error
}

func newStubAuth(user *models.User) *stubAuth {
	return &stubAuth{state: service.AuthState{User: user}}
}

func (s *stubAuth) Login(_ context.Context, phone, code string) bool {
	if code != models.DemoOTP {
		return false
	}
	user := models.NewDemoUser(phone)
	s.setUser(&user)
	return true
}

func (s *stubAuth) Logout(context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logouts++
	s.state.User = nil
}

func (s *stubAuth) SignUp(_ context.Context, input service.SignUpInput) error {
	if s.signUpFn != nil {
		return s.signUpFn(input)
	}
	return nil
}

func (s *stubAuth) UpdateProfile(_ context.Context, update models.ProfileUpdate) (models.User, error) {
	return s.updateFn(update)
}

func (s *stubAuth) Snapshot() service.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state
	if state.User != nil {
		u := *state.User
		state.User = &u
	}
	return state
}

func (s *stubAuth) setUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = user
}

func (s *stubAuth) setLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = loading
}

// stubPortal serves canned data and records calls.
type stubPortal struct {
	service.ClientPortalService

	mu           sync.Mutex
	filters      []models.DoctorFilter
	doctors      []models.Doctor
	booked       []models.BookAppointmentRequest
	bookErr      error
	appointments []models.Appointment
	cancelled    []string
}

func (s *stubPortal) SearchDoctors(_ context.Context, filter models.DoctorFilter) ([]models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = append(s.filters, filter)
	return s.doctors, nil
}

func (s *stubPortal) BookAppointment(_ context.Context, request models.BookAppointmentRequest) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bookErr != nil {
		return models.Appointment{}, s.bookErr
	}
	s.booked = append(s.booked, request)
	return models.Appointment{ID: "appt-1", DoctorID: request.DoctorID, Date: request.Date, Slot: request.Slot, Status: models.AppointmentBooked}, nil
}

func (s *stubPortal) ListAppointments(context.Context) ([]models.Appointment, error) {
	return s.appointments, nil
}

func (s *stubPortal) CancelAppointment(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelled = append(s.cancelled, id)
	return nil
}

func patientUser() *models.User {
	return &models.User{ID: "p-1", Name: "Priya Sharma", Phone: "9123456789", Role: models.RolePatient, Email: "priya@example.com"}
}

func doctorUser() *models.User {
	return &models.User{ID: "d-1", Name: "Dr. Sarah Johnson", Phone: models.DemoDoctorPhone, Role: models.RoleDoctor}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyCtrlB = tea.KeyMsg{Type: tea.KeyCtrlB}
	keyCtrlR = tea.KeyMsg{Type: tea.KeyCtrlR}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyCtrlE = tea.KeyMsg{Type: tea.KeyCtrlE}
	keyCtrlL = tea.KeyMsg{Type: tea.KeyCtrlL}
	keyCtrlX = tea.KeyMsg{Type: tea.KeyCtrlX}
	keyCtrlY = tea.KeyMsg{Type: tea.KeyCtrlY}
	keyCtrlT = tea.KeyMsg{Type: tea.KeyCtrlT}
)

// runCmd executes cmd and flattens batches into the resulting messages.
// Only commands that return at once may be passed in.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var out []tea.Msg
	for _, c := range batch {
		out = append(out, runCmd(t, c)...)
	}
	return out
}

// findMsg returns the first message of type T.
func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
