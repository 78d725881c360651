package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	phoneLength = 10
	otpLength   = 6

	// resendCooldown is the number of one-second ticks before a code can be
	// sent again.
	resendCooldown = 30
	cooldownTick   = time.Second

	// DefaultSendDelay simulates the round trip of sending a code.
	DefaultSendDelay = 2 * time.Second
)

type loginStep int

const (
	stepPhone loginStep = iota
	stepOTP
)

// LoginFlowModel is the phone + one-time code dialog.
//
// Every timer it starts (the send delay and the cooldown ticks) carries the
// generation it was started in. Closing the dialog, going back to the phone
// step or sending again bumps the generation, so stale timers are dropped
// when they fire.
type LoginFlowModel struct {
	ctx       context.Context
	auth      service.ClientAuthService
	sendDelay time.Duration

	open bool
	step loginStep
	gen  int

	phone textinput.Model
	otp   textinput.Model

	sending   bool
	verifying bool
	cooldown  int

	notice    string
	noticeErr bool

	spinner  spinner.Model
	progress progress.Model
}

// NewLoginFlowModel creates a closed dialog. A non-positive sendDelay means
// DefaultSendDelay.
func NewLoginFlowModel(ctx context.Context, auth service.ClientAuthService, sendDelay time.Duration) *LoginFlowModel {
	if sendDelay <= 0 {
		sendDelay = DefaultSendDelay
	}

	phone := textinput.New()
	phone.Placeholder = "10-digit mobile number"
	phone.Prompt = "+91 "
	phone.Width = 20
	phone.CharLimit = phoneLength

	otp := textinput.New()
	otp.Placeholder = "6-digit code"
	otp.Prompt = ""
	otp.Width = 12
	otp.CharLimit = otpLength

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &LoginFlowModel{
		ctx:       ctx,
		auth:      auth,
		sendDelay: sendDelay,
		phone:     phone,
		otp:       otp,
		spinner:   s,
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage()),
	}
}

// Open shows the dialog at the phone step.
func (m *LoginFlowModel) Open() tea.Cmd {
	m.open = true
	m.focusStep()
	return textinput.Blink
}

// Close hides the dialog and resets both fields, the step and the timers.
func (m *LoginFlowModel) Close() {
	m.open = false
	m.reset()
}

func (m *LoginFlowModel) IsOpen() bool { return m.open }

func (m *LoginFlowModel) Phone() string { return m.phone.Value() }

func (m *LoginFlowModel) Code() string { return m.otp.Value() }

func (m *LoginFlowModel) Cooldown() int { return m.cooldown }

// CanSend reports whether the phone number is complete.
func (m *LoginFlowModel) CanSend() bool {
	return len(m.phone.Value()) == phoneLength && !m.sending
}

// CanVerify reports whether the code is complete.
func (m *LoginFlowModel) CanVerify() bool {
	return len(m.otp.Value()) == otpLength && !m.verifying
}

// CanResend reports whether the cooldown has run out.
func (m *LoginFlowModel) CanResend() bool {
	return m.step == stepOTP && m.cooldown == 0 && !m.sending
}

func (m *LoginFlowModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginFlowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case otpSentMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.sending = false
		m.step = stepOTP
		m.cooldown = resendCooldown
		m.focusStep()
		m.setNotice(fmt.Sprintf("Code sent to +91 %s. Use %s for demo.", m.phone.Value(), models.DemoOTP), false)
		return m, m.tickCooldown()

	case cooldownTickMsg:
		if msg.gen != m.gen || m.cooldown == 0 {
			return m, nil
		}
		m.cooldown--
		if m.cooldown <= 0 {
			m.cooldown = 0
			return m, nil
		}
		return m, m.tickCooldown()

	case loginResultMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.verifying = false
		if !msg.ok {
			m.setNotice("Invalid OTP. Please check your OTP and try again.", true)
			return m, nil
		}
		m.Close()
		route := models.DashboardRoute(models.ClassifyPhone(msg.phone))
		return m, func() tea.Msg { return NavigateTo{Route: route} }

	case spinner.TickMsg:
		if !m.sending && !m.verifying {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *LoginFlowModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.Close()
		return m, nil

	case key.Matches(msg, keys.changeNumber):
		if m.step == stepOTP {
			m.backToPhone()
		}
		return m, nil

	case key.Matches(msg, keys.resend):
		if !m.CanResend() {
			return m, nil
		}
		return m, m.send()

	case key.Matches(msg, keys.enter):
		if m.step == stepPhone {
			if len(m.phone.Value()) != phoneLength {
				m.setNotice("Invalid Phone Number. Please enter a valid 10-digit phone number.", true)
				return m, nil
			}
			if m.sending {
				return m, nil
			}
			return m, m.send()
		}

		if len(m.otp.Value()) != otpLength {
			m.setNotice("Invalid OTP. Please enter a valid 6-digit OTP.", true)
			return m, nil
		}
		if m.verifying {
			return m, nil
		}
		m.verifying = true
		return m, tea.Batch(m.verify(), m.spinner.Tick)
	}

	var cmd tea.Cmd
	if m.step == stepPhone {
		m.phone, cmd = m.phone.Update(msg)
		m.phone.SetValue(digitsOnly(m.phone.Value(), phoneLength))
	} else {
		m.otp, cmd = m.otp.Update(msg)
		m.otp.SetValue(digitsOnly(m.otp.Value(), otpLength))
	}
	return m, cmd
}

func (m *LoginFlowModel) View() string {
	if !m.open {
		return ""
	}

	var b strings.Builder

	phoneBadge, otpBadge := activeBadge, badgeStyle
	if m.step == stepOTP {
		phoneBadge, otpBadge = badgeStyle, activeBadge
	}
	b.WriteString(phoneBadge.Render("1. Phone"))
	b.WriteString("  ")
	b.WriteString(otpBadge.Render("2. Verify"))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.completion()))
	b.WriteString("\n\n")

	if m.step == stepPhone {
		b.WriteString("Enter your mobile number to receive a verification code\n\n")
		b.WriteString(m.phone.View())
		b.WriteString("\n\n")
		b.WriteString(m.button("Send code", m.CanSend(), m.sending))
	} else {
		b.WriteString(fmt.Sprintf("Enter the 6-digit code sent to +91 %s\n\n", m.phone.Value()))
		b.WriteString(m.otp.View())
		b.WriteString("\n\n")
		b.WriteString(m.button("Verify", m.CanVerify(), m.verifying))
		b.WriteString("\n")
		if m.cooldown > 0 {
			b.WriteString(helpStyle.Render(fmt.Sprintf("Resend code in %ds", m.cooldown)))
		} else {
			b.WriteString("ctrl+r: resend code")
		}
	}

	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(renderNotice(m.notice, m.noticeErr))
	}

	hot := "esc: close │ enter: send"
	if m.step == stepOTP {
		hot = "esc: close │ enter: verify │ ctrl+b: change number"
	}

	return overlayBoxStyle.Render(renderPage("SECURE LOGIN", b.String(), hot))
}

func (m *LoginFlowModel) button(label string, enabled, busy bool) string {
	switch {
	case busy:
		return "[" + label + " " + m.spinner.View() + "]"
	case enabled:
		return selectedStyle.Render("[" + label + "]")
	default:
		return helpStyle.Render("[" + label + "]")
	}
}

func (m *LoginFlowModel) completion() float64 {
	if m.step == stepPhone {
		return float64(len(m.phone.Value())) / phoneLength
	}
	return float64(len(m.otp.Value())) / otpLength
}

// send bumps the generation and schedules otpSentMsg after the send delay.
func (m *LoginFlowModel) send() tea.Cmd {
	m.gen++
	m.sending = true
	m.notice = ""

	gen := m.gen
	delay := tea.Tick(m.sendDelay, func(time.Time) tea.Msg { return otpSentMsg{gen: gen} })
	return tea.Batch(delay, m.spinner.Tick)
}

func (m *LoginFlowModel) tickCooldown() tea.Cmd {
	gen := m.gen
	return tea.Tick(cooldownTick, func(time.Time) tea.Msg { return cooldownTickMsg{gen: gen} })
}

func (m *LoginFlowModel) verify() tea.Cmd {
	ctx, auth := m.ctx, m.auth
	gen, phone, code := m.gen, m.phone.Value(), m.otp.Value()

	return func() tea.Msg {
		return loginResultMsg{gen: gen, phone: phone, ok: auth.Login(ctx, phone, code)}
	}
}

// backToPhone returns to the phone step keeping the number; the code and
// the cooldown are cleared.
func (m *LoginFlowModel) backToPhone() {
	m.gen++
	m.step = stepPhone
	m.otp.SetValue("")
	m.cooldown = 0
	m.sending = false
	m.verifying = false
	m.notice = ""
	m.focusStep()
}

func (m *LoginFlowModel) reset() {
	m.backToPhone()
	m.phone.SetValue("")
}

func (m *LoginFlowModel) focusStep() {
	if m.step == stepPhone {
		m.otp.Blur()
		m.phone.Focus()
		return
	}
	m.phone.Blur()
	m.otp.Focus()
}

func (m *LoginFlowModel) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

// digitsOnly drops every non-digit and truncates to max digits.
func digitsOnly(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		if b.Len() == max {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
