package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_EditSendsChangedFieldsOnly(t *testing.T) {
	auth := newStubAuth(patientUser())
	var got models.ProfileUpdate
	auth.updateFn = func(update models.ProfileUpdate) (models.User, error) {
		got = update
		return *patientUser(), nil
	}

	m := NewProfileModel(context.Background(), auth)
	m.Init()
	m.Update(keyCtrlE)
	require.True(t, m.editing)
	assert.Equal(t, "Priya Sharma", m.form.value(profileFieldName))

	m.Update(keyRunes(" K"))
	_, cmd := m.Update(keyEnter)
	saved, ok := findMsg[profileSavedMsg](runCmd(t, cmd))
	require.True(t, ok)

	require.NotNil(t, got.FullName)
	assert.Equal(t, "Priya Sharma K", *got.FullName)
	assert.Nil(t, got.Phone)
	assert.Nil(t, got.Email)

	m.Update(saved)
	assert.False(t, m.editing)
	assert.Equal(t, "Profile updated.", m.notice)
}

func TestProfile_EditValidation(t *testing.T) {
	auth := newStubAuth(patientUser())
	m := NewProfileModel(context.Background(), auth)
	m.Update(keyCtrlE)

	m.form.setValue(profileFieldPhone, "12345")
	_, cmd := m.Update(keyEnter)

	assert.Nil(t, cmd)
	assert.True(t, m.noticeErr)
	assert.Equal(t, "Please enter a valid 10-digit phone number", m.notice)

	m.form.setValue(profileFieldPhone, "9123456789")
	m.form.setValue(profileFieldName, "  ")
	m.Update(keyEnter)
	assert.Equal(t, "Full name is required", m.notice)
}

func TestProfile_SaveError(t *testing.T) {
	auth := newStubAuth(patientUser())
	m := NewProfileModel(context.Background(), auth)
	m.Update(keyCtrlE)

	m.Update(profileSavedMsg{err: service.ErrInvalidDataProvided})

	assert.True(t, m.editing)
	assert.Equal(t, "Please check the entered values", m.notice)
}

func TestProfile_CopyAccountID(t *testing.T) {
	m := NewProfileModel(context.Background(), newStubAuth(patientUser()))
	var copied string
	m.copyFn = func(s string) error {
		copied = s
		return nil
	}

	m.Update(keyCtrlY)

	assert.Equal(t, "p-1", copied)
	assert.Equal(t, "Account id copied.", m.notice)
}

func TestProfile_Logout(t *testing.T) {
	auth := newStubAuth(doctorUser())
	m := NewProfileModel(context.Background(), auth)

	_, cmd := m.Update(keyCtrlL)
	nav, ok := findMsg[NavigateTo](runCmd(t, cmd))
	require.True(t, ok)

	assert.Equal(t, models.RouteHome, nav.Route)
	assert.Equal(t, 1, auth.logouts)
	assert.Nil(t, auth.Snapshot().User)
}

func TestProfile_View(t *testing.T) {
	user := models.NewDemoUser(models.DemoDoctorPhone)
	m := NewProfileModel(context.Background(), newStubAuth(&user))

	view := m.View()
	assert.Contains(t, view, "demo-"+models.DemoDoctorPhone)
	assert.Contains(t, view, "Demo account")
	assert.Contains(t, view, "doctor")
}
