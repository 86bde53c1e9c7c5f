package server

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/algo-sync/internal/config"
	"github.com/MKhiriev/algo-sync/internal/handler"
	"github.com/MKhiriev/algo-sync/internal/logger"
)

// ShutdownTimeout bounds the graceful stop of every transport.
const ShutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) transports() []transport {
	var ts []transport
	if s.httpServer != nil {
		ts = append(ts, s.httpServer)
	}
	if s.gRPCServer != nil {
		ts = append(ts, s.gRPCServer)
	}
	return ts
}

// RunServer binds every transport before serving any, so a bad address
// fails fast without leaving half the servers running.
func (s *server) RunServer(ctx context.Context) error {
	ts := s.transports()
	for i, t := range ts {
		if err := t.listen(); err != nil {
			for _, started := range ts[:i] {
				started.release()
			}
			return err
		}
	}

	err := runUntilDone(ctx, ts...)
	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, t := range s.transports() {
		errs = append(errs, t.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

// runUntilDone serves every transport and shuts all of them down when ctx
// is cancelled or any of them fails.
func runUntilDone(ctx context.Context, ts ...transport) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, t := range ts {
		g.Go(t.serve)
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, t := range ts {
			errs = append(errs, t.Shutdown(shutdownCtx))
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
