// Package grpc exposes the standard gRPC health service for algo-sync.
//
// The sync API itself is served over HTTP; the gRPC listener exists so that
// orchestrators can probe liveness with grpc_health_probe.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/service"
)

// SyncServiceName is the service name reported by the health endpoint
// alongside the overall ("") status.
const SyncServiceName = "algosync.v1.Sync"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server
	logger   *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts as NOT_SERVING
// until [Handler.SetServing] is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing marks all services as SERVING.
func (h *Handler) SetServing() {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Shutdown marks all services as NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(st healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", st)
	h.health.SetServingStatus(SyncServiceName, st)
}

// UnaryLoggingInterceptor logs every unary call with its method, code and
// duration.
func (h *Handler) UnaryLoggingInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	next grpc.UnaryHandler,
) (any, error) {
	start := time.Now()
	resp, err := next(h.logger.WithContext(ctx), req)

	h.logger.Debug().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("gRPC call")

	return resp, err
}
