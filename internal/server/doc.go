// Package server wires and runs the application's transport servers.
//
// It binds the HTTP API and the gRPC health listener, serves both until the
// context is cancelled and then shuts them down gracefully.
package server
