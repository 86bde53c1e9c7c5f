package service

import (
	"context"

	"github.com/MKhiriev/algo-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService ingests a user's linked repository into submissions.
type SyncService interface {
	// Sync runs one ingestion for userID. A terminal failure returns a
	// result with Success false together with an error wrapping
	// ErrNoCredentials, ErrCredentialDecryptFailed, ErrTreeFetchFailed,
	// ErrSyncInProgress or the context error.
	Sync(ctx context.Context, userID int64) (models.SyncResult, error)
}

// SettingsService manages a user's repository link.
type SettingsService interface {
	// SaveRepository encrypts token and links repository ("owner/name") to
	// userID, replacing any previous link.
	SaveRepository(ctx context.Context, userID int64, token, repository string) (models.RepositoryRef, error)
}

// JudgeProfileService manages a user's judge handle.
type JudgeProfileService interface {
	LinkHandle(ctx context.Context, userID int64, handle string) (models.JudgeProfile, error)
}

// SubmissionService serves a user's ingested submissions.
type SubmissionService interface {
	List(ctx context.Context, userID int64) ([]models.Submission, error)
	// Invalidate drops any cached view of userID's submissions.
	Invalidate(userID int64)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
