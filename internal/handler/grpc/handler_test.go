package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/service"
)

func newHealthClient(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(h.UnaryLoggingInterceptor))
	h.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealth_Lifecycle(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	client := newHealthClient(t, h)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))

	h.SetServing()
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, SyncServiceName))

	h.Shutdown()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, SyncServiceName))

	h.SetServing()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
}

func TestHealth_UnknownService(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	client := newHealthClient(t, h)

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "nope"})
	assert.Error(t, err)
}
