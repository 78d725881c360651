package service

import (
	"fmt"

	"github.com/MKhiriev/health-vault/internal/config"
	"github.com/MKhiriev/health-vault/internal/crypto"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/store"
	"github.com/MKhiriev/health-vault/internal/validators"
)

type Services struct {
	AuthService        AuthService
	ProfileService     ProfileService
	DoctorService      DoctorService
	AppointmentService AppointmentService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	appointments := NewAppointmentValidationService(validator).
		Wrap(NewAppointmentService(storages.AppointmentRepository, storages.DoctorRepository, storages.ProfileRepository, logger))

	return &Services{
		AuthService:        NewAuthService(storages.AccountRepository, crypto.NewPasswordHasher(), validator, cfg.App, logger),
		ProfileService:     NewProfileService(storages.ProfileRepository, validator, logger),
		DoctorService:      NewDoctorService(storages.DoctorRepository, logger),
		AppointmentService: appointments,
		AppInfoService:     appInfo,
	}, nil
}
