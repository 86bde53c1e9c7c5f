// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request has no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserID is returned when an authenticated route runs without a
	// user id in its context.
	ErrNoUserID = errors.New("no user ID was given")

	// ErrInvalidJSON is returned for request bodies that cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
