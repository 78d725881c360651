package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/health-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenFlow(t *testing.T, auth *stubAuth) *LoginFlowModel {
	t.Helper()
	m := NewLoginFlowModel(context.Background(), auth, time.Millisecond)
	m.Open()
	return m
}

// toOTPStep enters phone, sends and delivers the delayed "code sent".
func toOTPStep(t *testing.T, m *LoginFlowModel, phone string) {
	t.Helper()
	m.Update(keyRunes(phone))
	_, cmd := m.Update(keyEnter)

	sent, ok := findMsg[otpSentMsg](runCmd(t, cmd))
	require.True(t, ok, "send must schedule otpSentMsg")
	m.Update(sent)
	require.Equal(t, stepOTP, m.step)
}

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"", 10, ""},
		{"98765", 10, "98765"},
		{"98-76 5a43210", 10, "9876543210"},
		{"987654321099", 10, "9876543210"},
		{"12ab34cd5678", 6, "123456"},
		{"abc", 6, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, digitsOnly(tt.in, tt.max))
		})
	}
}

func TestLoginFlow_PhoneInput(t *testing.T) {
	m := newOpenFlow(t, newStubAuth(nil))

	m.Update(keyRunes("98a76-54"))
	assert.Equal(t, "987654", m.Phone())
	assert.False(t, m.CanSend())

	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, stepPhone, m.step)
	assert.Equal(t, "Invalid Phone Number. Please enter a valid 10-digit phone number.", m.notice)

	m.Update(keyRunes("3210999"))
	assert.Equal(t, "9876543210", m.Phone())
	assert.True(t, m.CanSend())
}

func TestLoginFlow_FullFieldsIgnoreExtraDigits(t *testing.T) {
	m := newOpenFlow(t, newStubAuth(nil))

	m.Update(keyRunes("9876543210"))
	for range 5 {
		m.Update(keyLeft)
	}
	m.Update(keyRunes("1"))
	assert.Equal(t, "9876543210", m.Phone())

	toOTPStep(t, m, "")
	m.Update(keyRunes("123456"))
	for range 3 {
		m.Update(keyLeft)
	}
	m.Update(keyRunes("9"))
	assert.Equal(t, "123456", m.Code())
}

func TestLoginFlow_SendCodeMovesToOTPAfterDelay(t *testing.T) {
	m := newOpenFlow(t, newStubAuth(nil))

	m.Update(keyRunes("9123456789"))
	_, cmd := m.Update(keyEnter)
	assert.True(t, m.sending)
	assert.False(t, m.CanSend(), "send is disabled while sending")
	assert.Equal(t, stepPhone, m.step, "the step changes only after the delay")

	sent, ok := findMsg[otpSentMsg](runCmd(t, cmd))
	require.True(t, ok)
	m.Update(sent)

	assert.Equal(t, stepOTP, m.step)
	assert.False(t, m.sending)
	assert.Equal(t, resendCooldown, m.Cooldown())
	assert.False(t, m.CanResend())
	assert.Contains(t, m.notice, models.DemoOTP)
	assert.Contains(t, m.View(), "Resend code in 30s")
}

func TestLoginFlow_CooldownCountsDownToZero(t *testing.T) {
	m := newOpenFlow(t, newStubAuth(nil))
	toOTPStep(t, m, "9123456789")

	for i := 0; i < resendCooldown-1; i++ {
		_, cmd := m.Update(cooldownTickMsg{gen: m.gen})
		assert.NotNil(t, cmd, "ticking continues above zero")
	}
	assert.Equal(t, 1, m.Cooldown())

	_, cmd := m.Update(cooldownTickMsg{gen: m.gen})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Cooldown())
	assert.True(t, m.CanResend())

	m.Update(cooldownTickMsg{gen: m.gen})
	assert.Equal(t, 0, m.Cooldown(), "the cooldown never goes negative")

	_, cmd = m.Update(keyCtrlR)
	assert.NotNil(t, cmd)
	assert.True(t, m.sending)
}

func TestLoginFlow_ResendBlockedDuringCooldown(t *testing.T) {
	m := newOpenFlow(t, newStubAuth(nil))
	toOTPStep(t, m, "9123456789")

	gen := m.gen
	_, cmd := m.Update(keyCtrlR)
	assert.Nil(t, cmd)
	assert.Equal(t, gen, m.gen)
}

func TestLoginFlow_StaleTimersAreIgnored(t *testing.T) {
	m := newOpenFlow(t, newStubAuth(nil))
	m.Update(keyRunes("9123456789"))
	m.Update(keyEnter)
	staleSent := otpSentMsg{gen: m.gen}

	m.Close()
	m.Open()

	m.Update(staleSent)
	assert.Equal(t, stepPhone, m.step)
	assert.Zero(t, m.Cooldown())

	toOTPStep(t, m, "9123456789")
	staleTick := cooldownTickMsg{gen: m.gen}
	m.Update(keyCtrlB)

	m.Update(staleTick)
	assert.Zero(t, m.Cooldown())
}

func TestLoginFlow_ChangeNumber(t *testing.T) {
	m := newOpenFlow(t, newStubAuth(nil))
	toOTPStep(t, m, "9123456789")
	m.Update(keyRunes("123"))
	require.Equal(t, "123", m.Code())

	m.Update(keyCtrlB)

	assert.Equal(t, stepPhone, m.step)
	assert.Equal(t, "9123456789", m.Phone())
	assert.Empty(t, m.Code())
	assert.Zero(t, m.Cooldown())
	assert.True(t, m.IsOpen())
}

func TestLoginFlow_EscResetsEverything(t *testing.T) {
	m := newOpenFlow(t, newStubAuth(nil))
	toOTPStep(t, m, "9123456789")
	m.Update(keyRunes("12"))

	m.Update(keyEsc)

	assert.False(t, m.IsOpen())
	assert.Equal(t, stepPhone, m.step)
	assert.Empty(t, m.Phone())
	assert.Empty(t, m.Code())
	assert.Zero(t, m.Cooldown())
	assert.Empty(t, m.View())
}

func TestLoginFlow_OTPInput(t *testing.T) {
	m := newOpenFlow(t, newStubAuth(nil))
	toOTPStep(t, m, "9123456789")

	m.Update(keyRunes("12x345"))
	assert.Equal(t, "12345", m.Code())
	assert.False(t, m.CanVerify())

	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, "Invalid OTP. Please enter a valid 6-digit OTP.", m.notice)

	m.Update(keyRunes("6789"))
	assert.Equal(t, "123456", m.Code())
	assert.True(t, m.CanVerify())
}

func TestLoginFlow_WrongCodeKeepsFields(t *testing.T) {
	auth := newStubAuth(nil)
	m := newOpenFlow(t, auth)
	toOTPStep(t, m, "9123456789")
	m.Update(keyRunes("654321"))

	_, cmd := m.Update(keyEnter)
	result, ok := findMsg[loginResultMsg](runCmd(t, cmd))
	require.True(t, ok)
	assert.False(t, result.ok)

	_, cmd = m.Update(result)
	assert.Nil(t, cmd)
	assert.True(t, m.IsOpen())
	assert.Equal(t, stepOTP, m.step)
	assert.Equal(t, "9123456789", m.Phone())
	assert.Equal(t, "654321", m.Code())
	assert.Equal(t, "Invalid OTP. Please check your OTP and try again.", m.notice)
	assert.Nil(t, auth.Snapshot().User)
}

func TestLoginFlow_SuccessNavigatesToDashboard(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  models.Route
	}{
		{name: "doctor number", phone: models.DemoDoctorPhone, want: models.RouteDoctorDashboard},
		{name: "any other number", phone: "9123456789", want: models.RoutePatientDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := newStubAuth(nil)
			m := newOpenFlow(t, auth)
			toOTPStep(t, m, tt.phone)
			m.Update(keyRunes(models.DemoOTP))

			_, cmd := m.Update(keyEnter)
			result, ok := findMsg[loginResultMsg](runCmd(t, cmd))
			require.True(t, ok)
			require.True(t, result.ok)

			_, cmd = m.Update(result)
			nav, ok := findMsg[NavigateTo](runCmd(t, cmd))
			require.True(t, ok)
			assert.Equal(t, tt.want, nav.Route)

			assert.False(t, m.IsOpen())
			assert.Empty(t, m.Phone())
			require.NotNil(t, auth.Snapshot().User)
			assert.Equal(t, "demo-"+tt.phone, auth.Snapshot().User.ID)
		})
	}
}
