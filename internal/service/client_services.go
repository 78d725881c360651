package service

import (
	"github.com/MKhiriev/health-vault/internal/adapter"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/store"
)

// ClientServices groups everything the terminal portal needs.
type ClientServices struct {
	AuthService   ClientAuthService
	PortalService ClientPortalService
	SessionJob    ClientSessionJob
}

func NewClientServices(sessions store.SessionStore, backend adapter.BackendClient, logger *logger.Logger) *ClientServices {
	auth := NewAuthContext(sessions, backend, logger)

	return &ClientServices{
		AuthService:   auth,
		PortalService: NewClientPortalService(backend, auth, logger),
		SessionJob:    NewClientSessionJob(backend, logger),
	}
}
