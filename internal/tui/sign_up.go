package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/internal/store"
	"github.com/MKhiriev/health-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var toggleUserType = key.NewBinding(key.WithKeys("ctrl+t"))

const (
	fieldEmail = iota
	fieldPassword
	fieldRepeatPassword
	fieldFullName
	fieldPhone
)

// SignUpModel is the backend account registration page. A successful
// sign-up starts a session, so the page continues to the new user's
// dashboard.
type SignUpModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       form
	userType   models.Role
	submitting bool
	errMsg     string
}

func NewSignUpModel(ctx context.Context, auth service.ClientAuthService) *SignUpModel {
	fields := make([]textinput.Model, 5)

	fields[fieldEmail] = textinput.New()
	fields[fieldEmail].Placeholder = "you@example.com"
	fields[fieldEmail].CharLimit = 254
	fields[fieldEmail].Width = 40

	fields[fieldPassword] = textinput.New()
	fields[fieldPassword].Placeholder = "password"
	fields[fieldPassword].EchoMode = textinput.EchoPassword
	fields[fieldPassword].EchoCharacter = '*'
	fields[fieldPassword].Width = 40

	fields[fieldRepeatPassword] = textinput.New()
	fields[fieldRepeatPassword].Placeholder = "repeat password"
	fields[fieldRepeatPassword].EchoMode = textinput.EchoPassword
	fields[fieldRepeatPassword].EchoCharacter = '*'
	fields[fieldRepeatPassword].Width = 40

	fields[fieldFullName] = textinput.New()
	fields[fieldFullName].Placeholder = "full name"
	fields[fieldFullName].Width = 40

	fields[fieldPhone] = textinput.New()
	fields[fieldPhone].Placeholder = "10-digit phone"
	fields[fieldPhone].CharLimit = phoneLength
	fields[fieldPhone].Width = 40

	return &SignUpModel{
		ctx:      ctx,
		auth:     auth,
		form:     newForm([]string{"Email", "Password", "Repeat password", "Full name", "Phone"}, fields),
		userType: models.RolePatient,
	}
}

func (m *SignUpModel) Init() tea.Cmd {
	return m.form.focusFirst()
}

func (m *SignUpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(signUpResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = signUpErrorText(result.err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		m.userType = models.RolePatient

		nav := NavigateTo{
			Route:   models.RouteHome,
			Payload: noticeMsg{text: "Account " + result.email + " created. Please sign in."},
		}
		if user := m.auth.Snapshot().User; user != nil {
			nav = NavigateTo{Route: models.DashboardRoute(user.Role)}
		}
		return m, func() tea.Msg { return nav }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.submitting = false
		m.errMsg = ""
		return m, func() tea.Msg { return NavigateTo{Route: models.RouteHome} }
	case key.Matches(keyMsg, toggleUserType):
		if m.userType == models.RolePatient {
			m.userType = models.RoleDoctor
		} else {
			m.userType = models.RolePatient
		}
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.submitting {
			return m, nil
		}

		input := service.SignUpInput{
			Email:          strings.TrimSpace(m.form.value(fieldEmail)),
			Password:       m.form.value(fieldPassword),
			RepeatPassword: m.form.value(fieldRepeatPassword),
			FullName:       strings.TrimSpace(m.form.value(fieldFullName)),
			Phone:          strings.TrimSpace(m.form.value(fieldPhone)),
			UserType:       m.userType.String(),
		}
		if input.Email == "" || input.Password == "" || input.FullName == "" || input.Phone == "" {
			m.errMsg = "All fields are required"
			return m, nil
		}
		if input.Password != input.RepeatPassword {
			m.errMsg = "Passwords do not match"
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdSignUp(input)
	}

	return m, m.form.update(keyMsg)
}

func (m *SignUpModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString("\n\nI am a: ")
	for _, role := range []models.Role{models.RolePatient, models.RoleDoctor} {
		if role == m.userType {
			b.WriteString(activeBadge.Render(role.String()))
		} else {
			b.WriteString(badgeStyle.Render(role.String()))
		}
		b.WriteString(" ")
	}

	if m.submitting {
		b.WriteString("\n\n[Sign up...]")
	} else {
		b.WriteString("\n\n[Sign up]")
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(renderNotice(m.errMsg, true))
	}

	return renderPage("CREATE ACCOUNT", b.String(), "esc: back │ tab: next field │ ctrl+t: patient/doctor │ enter: submit")
}

func (m *SignUpModel) cmdSignUp(input service.SignUpInput) tea.Cmd {
	ctx, auth := m.ctx, m.auth

	return func() tea.Msg {
		return signUpResultMsg{email: input.Email, err: auth.SignUp(ctx, input)}
	}
}

func signUpErrorText(err error) string {
	switch {
	case errors.Is(err, service.ErrPasswordsDoNotMatch):
		return "Passwords do not match"
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return "An account with this email already exists"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Please check the entered data"
	default:
		return humanizeServerUnavailableError(err)
	}
}
