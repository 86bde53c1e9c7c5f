// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external systems the service
// depends on: the source-control host holding solution repositories and the
// judge statistics service.
//
// [RepositoryAdapter] is backed by the GitHub REST API ([NewGitHubAdapter]);
// every call authenticates with the caller-supplied access token and passes
// through a shared [RateLimiter]. [JudgeAdapter] is backed by solved.ac
// ([NewSolvedACAdapter]).
//
// Error values defined in errors.go are mapped from upstream responses so that
// callers can use [errors.Is] regardless of the transport (e.g.
// [ErrRepositoryNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/algo-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RepositoryAdapter reads solution repositories on the source-control host.
type RepositoryAdapter interface {
	// ListTree returns every entry of the configured branch in one recursive
	// listing, in upstream order. Any failure wraps [ErrRepositoryUnavailable]
	// and, when identifiable, [ErrUnauthorized], [ErrRepositoryNotFound] or
	// [ErrRateLimited]. It is never retried.
	ListTree(ctx context.Context, repo models.RepositoryRef, token string) ([]models.TreeItem, error)

	// FetchContent returns the decoded UTF-8 text of a blob entry. Failures
	// wrap [ErrContentUnavailable].
	FetchContent(ctx context.Context, repo models.RepositoryRef, item models.TreeItem, token string) (string, error)

	// SourceURL builds the browsable link to path on the configured branch.
	SourceURL(repo models.RepositoryRef, path string) string
}

// JudgeAdapter looks up users on the judge statistics service.
type JudgeAdapter interface {
	// GetProfile returns the handle and tier of a judge user. An unknown
	// handle yields [ErrJudgeHandleNotFound].
	GetProfile(ctx context.Context, handle string) (models.JudgeProfile, error)
}
