// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means neither the HTTP API nor the gRPC health
	// endpoint has an address configured.
	errNoServersAreCreated = errors.New("no transports configured: set SERVER_ADDRESS or SERVER_GRPC_ADDRESS")
	// errNotListening is returned by serve when listen was never called.
	errNotListening = errors.New("transport is not listening")
)
