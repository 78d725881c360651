package http

import (
	"time"

	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/internal/utils"
)

type Handler struct {
	services *service.Services

	// hashKey enables the HashSHA256 check on bookings when non-empty.
	hashKey        string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, hashKey string, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	if hashKey != "" {
		utils.InitHasherPool(hashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		hashKey:        hashKey,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
