package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/algo-sync/internal/config"
	myGRPC "github.com/MKhiriev/algo-sync/internal/handler/grpc"
	"github.com/MKhiriev/algo-sync/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address  string
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLoggingInterceptor))
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) listen() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", g.address, err)
	}
	g.listener = lis
	return nil
}

func (g *grpcServer) serve() error {
	if g.listener == nil {
		return errNotListening
	}

	g.handler.SetServing()
	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC serve: %w", err)
	}
	return nil
}

func (g *grpcServer) RunServer(ctx context.Context) error {
	if err := g.listen(); err != nil {
		return err
	}
	return runUntilDone(ctx, g)
}

// Shutdown reports NOT_SERVING first so probes fail before connections
// drain. In-flight calls get until ctx expires.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}

func (g *grpcServer) release() {
	if g.listener != nil {
		_ = g.listener.Close()
	}
}
