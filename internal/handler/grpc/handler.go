// Package grpc exposes the standard gRPC health checking protocol so load
// balancers and orchestrators can probe the server without a bearer token.
package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/internal/service"
)

// ServiceName is the name clients may pass in HealthCheckRequest.Service.
// The empty name refers to the server as a whole and is answered the same.
const ServiceName = "trustme.Vault"

// Handler implements [grpc_health_v1.HealthServer] on top of
// [service.AppInfoService.Ping].
type Handler struct {
	grpc_health_v1.UnimplementedHealthServer

	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Check reports SERVING while the database answers pings and NOT_SERVING
// otherwise. Unknown service names get codes.NotFound.
func (h *Handler) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", name)
	}

	if err := h.services.AppInfoService.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("health check failed")
		return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVING}, nil
}
