package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SignInModel is the email + password sign-in page of backend accounts.
type SignInModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       form
	submitting bool
	errMsg     string
}

func NewSignInModel(ctx context.Context, auth service.ClientAuthService) *SignInModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return &SignInModel{
		ctx:  ctx,
		auth: auth,
		form: newForm([]string{"Email", "Password"}, []textinput.Model{email, password}),
	}
}

func (m *SignInModel) Init() tea.Cmd {
	return m.form.focusFirst()
}

// Update handles:
//   - signInResultMsg: on success navigates to the user's dashboard.
//   - esc: back to home.
//   - tab / shift+tab: field focus.
//   - enter: validates and dispatches the sign-in.
func (m *SignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(signInResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()

		route := models.RouteHome
		if user := m.auth.Snapshot().User; user != nil {
			route = models.DashboardRoute(user.Role)
		}
		return m, func() tea.Msg { return NavigateTo{Route: route} }
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
	case key.Matches(keyMsg, keys.enter):
		if m.submitting {
			return m, nil
		}

		email := strings.TrimSpace(m.form.value(0))
		password := m.form.value(1)
		if email == "" || password == "" {
			m.errMsg = "Email and password are required"
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdSignIn(email, password)
	}

	return m, m.form.update(keyMsg)
}

func (m *SignInModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n\n[Sign in...]")
	} else {
		b.WriteString("\n\n[Sign in]")
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(renderNotice(m.errMsg, true))
	}

	return renderPage("SIGN IN", b.String(), "esc: back │ tab: next field │ enter: submit")
}

func (m *SignInModel) cmdSignIn(email, password string) tea.Cmd {
	ctx, auth := m.ctx, m.auth

	return func() tea.Msg {
		return signInResultMsg{err: auth.SignIn(ctx, email, password)}
	}
}
