package service

import (
	"context"

	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/store"
	"github.com/MKhiriev/health-vault/models"
)

type doctorService struct {
	doctorRepository store.DoctorRepository

	logger *logger.Logger
}

func NewDoctorService(doctorRepository store.DoctorRepository, logger *logger.Logger) DoctorService {
	return &doctorService{doctorRepository: doctorRepository, logger: logger}
}

func (d *doctorService) SearchDoctors(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, error) {
	return d.doctorRepository.SearchDoctors(ctx, filter.Normalize())
}
