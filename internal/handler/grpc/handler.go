// Package grpc exposes the server's gRPC surface: the standard
// grpc.health.v1 service, used by orchestrators and the client to probe
// liveness.
package grpc

import (
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name reported by the health service besides the
// empty (whole server) name.
const ServiceName = "healthvault.Portal"

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health service reports SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every status to NOT_SERVING so that probes fail while the
// server drains.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}
