package server

import "context"

// Server defines the lifecycle contract for transport servers managed by
// this package.
type Server interface {
	// RunServer binds and serves until ctx is cancelled or a listener fails.
	// A clean shutdown returns nil.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server within ctx.
	Shutdown(ctx context.Context) error
}

// transport is one listener owned by the composite server.
type transport interface {
	listen() error
	serve() error
	release()
	Server
}
