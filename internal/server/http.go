package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/algo-sync/internal/config"
	"github.com/MKhiriev/algo-sync/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server   *http.Server
	listener net.Listener
	logger   *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) listen() error {
	lis, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("HTTP listen on %s: %w", h.server.Addr, err)
	}
	h.listener = lis
	return nil
}

func (h *httpServer) serve() error {
	if h.listener == nil {
		return errNotListening
	}

	h.logger.Info().Str("address", h.listener.Addr().String()).Msg("HTTP server listening")
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP serve: %w", err)
	}
	return nil
}

func (h *httpServer) RunServer(ctx context.Context) error {
	if err := h.listen(); err != nil {
		return err
	}
	return runUntilDone(ctx, h)
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	return h.server.Shutdown(ctx)
}

// release closes a listener that was bound but never served.
func (h *httpServer) release() {
	if h.listener != nil {
		_ = h.listener.Close()
	}
}
