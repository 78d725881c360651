package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	profileFieldName = iota
	profileFieldPhone
	profileFieldEmail
)

// ProfileModel shows the signed-in user and edits the name, phone and
// email. Any role may open it.
type ProfileModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	copyFn func(string) error

	editing bool
	saving  bool
	form    form

	notice    string
	noticeErr bool
}

func NewProfileModel(ctx context.Context, auth service.ClientAuthService) *ProfileModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 32
		inputs[i].Prompt = ""
	}
	inputs[profileFieldPhone].CharLimit = phoneLength

	return &ProfileModel{
		ctx:    ctx,
		auth:   auth,
		copyFn: clipboard.WriteAll,
		form:   newForm([]string{"Full name", "Phone", "Email"}, inputs),
	}
}

func (m *ProfileModel) requiredRole() models.Role {
	return anyRole
}

func (m *ProfileModel) Init() tea.Cmd {
	m.editing = false
	m.saving = false
	m.notice = ""
	return nil
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.setNotice(profileErrorText(msg.err), true)
			return m, nil
		}
		m.editing = false
		m.setNotice("Profile updated.", false)
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateViewing(msg)
	}

	return m, nil
}

func (m *ProfileModel) updateViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	user := m.auth.Snapshot().User
	if user == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		route := models.DashboardRoute(user.Role)
		return m, func() tea.Msg { return NavigateTo{Route: route} }
	case key.Matches(msg, keys.edit):
		m.editing = true
		m.notice = ""
		m.form.setValue(profileFieldName, user.Name)
		m.form.setValue(profileFieldPhone, user.Phone)
		m.form.setValue(profileFieldEmail, user.Email)
		return m, m.form.focusFirst()
	case key.Matches(msg, keys.copy):
		if err := m.copyFn(user.ID); err != nil {
			m.setNotice("Clipboard is not available", true)
			return m, nil
		}
		m.setNotice("Account id copied.", false)
	case key.Matches(msg, keys.logout):
		return m, cmdLogout(m.ctx, m.auth)
	}

	return m, nil
}

func (m *ProfileModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.editing = false
		m.notice = ""
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.saving {
			return m, nil
		}
		update, problem := m.collect()
		if problem != "" {
			m.setNotice(problem, true)
			return m, nil
		}
		m.saving = true
		return m, m.save(update)
	}

	cmd := m.form.update(msg)
	if m.form.focus == profileFieldPhone {
		m.form.setValue(profileFieldPhone, digitsOnly(m.form.value(profileFieldPhone), phoneLength))
	}
	return m, cmd
}

// collect builds an update holding only the changed fields. problem is the
// validation message when the form is not acceptable.
func (m *ProfileModel) collect() (update models.ProfileUpdate, problem string) {
	user := m.auth.Snapshot().User
	if user == nil {
		return update, "No user is signed in"
	}

	name := strings.TrimSpace(m.form.value(profileFieldName))
	phone := m.form.value(profileFieldPhone)
	email := strings.TrimSpace(m.form.value(profileFieldEmail))

	if name == "" {
		return update, "Full name is required"
	}
	if len(phone) != phoneLength {
		return update, "Please enter a valid 10-digit phone number"
	}

	if name != user.Name {
		update.FullName = &name
	}
	if phone != user.Phone {
		update.Phone = &phone
	}
	if email != user.Email {
		update.Email = &email
	}
	return update, ""
}

func (m *ProfileModel) save(update models.ProfileUpdate) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		user, err := auth.UpdateProfile(ctx, update)
		return profileSavedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) View() string {
	user := m.auth.Snapshot().User
	if user == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(renderHeader(user, models.RouteProfile))
	b.WriteString("\n\n")

	if m.editing {
		b.WriteString(m.form.view())
	} else {
		kind := "Backend account"
		if user.IsDemo() {
			kind = "Demo account"
		}
		b.WriteString(fmt.Sprintf("Account id │ %s\n", user.ID))
		b.WriteString(fmt.Sprintf("Full name  │ %s\n", valueOrDash(user.Name)))
		b.WriteString(fmt.Sprintf("Phone      │ %s\n", valueOrDash(user.Phone)))
		b.WriteString(fmt.Sprintf("Email      │ %s\n", valueOrDash(user.Email)))
		b.WriteString(fmt.Sprintf("Role       │ %s\n", user.Role))
		b.WriteString(fmt.Sprintf("Type       │ %s", kind))
	}

	if m.saving {
		b.WriteString("\n\nSaving...")
	}
	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(renderNotice(m.notice, m.noticeErr))
	}

	hot := "esc: dashboard │ ctrl+e: edit │ ctrl+y: copy id │ ctrl+l: logout"
	if m.editing {
		hot = "esc: discard │ tab: next field │ enter: save"
	}
	return renderPage("PROFILE", b.String(), hot)
}

func (m *ProfileModel) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func profileErrorText(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Please check the entered values"
	case errors.Is(err, service.ErrAccessDenied):
		return "You can only edit your own profile"
	default:
		return humanizeServerUnavailableError(err)
	}
}
