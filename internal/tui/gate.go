package tui

import (
	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/models"
)

type gateResult int

const (
	// gateLoading shows a placeholder; no redirect happens while loading.
	gateLoading gateResult = iota
	// gateRedirect sends the user home and renders nothing.
	gateRedirect
	// gateRender shows the page.
	gateRender
)

// anyRole admits every signed-in user.
const anyRole models.Role = ""

// gatedPage is implemented by pages that need a signed-in user.
type gatedPage interface {
	requiredRole() models.Role
}

func gate(state service.AuthState, required models.Role) gateResult {
	if state.IsLoading {
		return gateLoading
	}
	if state.User == nil {
		return gateRedirect
	}
	if required != anyRole && state.User.Role != required {
		return gateRedirect
	}
	return gateRender
}
