package store

import (
	"context"
	"time"

	"github.com/MKhiriev/algo-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialRepository persists per-user repository links.
type CredentialRepository interface {
	// SaveCredential creates or overwrites the user's credential.
	SaveCredential(ctx context.Context, cred models.RepositoryCredential) error
	// GetCredential returns [ErrCredentialNotFound] when nothing is linked.
	GetCredential(ctx context.Context, userID int64) (models.RepositoryCredential, error)
	// ListLinkedUsers returns the ids of every user with a credential.
	ListLinkedUsers(ctx context.Context) ([]int64, error)
}

// SubmissionRepository persists ingested submissions.
type SubmissionRepository interface {
	// UpsertSubmission inserts the submission or, when its
	// (user, problem, platform, language) identity exists, overwrites title,
	// level, code and source URL in place.
	UpsertSubmission(ctx context.Context, submission models.Submission) error
	// ListSubmissions returns the user's submissions ordered by platform,
	// problem id and language.
	ListSubmissions(ctx context.Context, userID int64) ([]models.Submission, error)
}

// JudgeProfileRepository persists judge handle links.
type JudgeProfileRepository interface {
	SaveJudgeProfile(ctx context.Context, profile models.JudgeProfile) error
	// GetJudgeProfile returns [ErrJudgeProfileNotFound] when nothing is linked.
	GetJudgeProfile(ctx context.Context, userID int64) (models.JudgeProfile, error)
}

// SyncLockRepository arbitrates sync runs across processes sharing one
// database.
type SyncLockRepository interface {
	// TryAcquireSyncLock claims the user's lock for owner until ttl elapses.
	// It reports false when another owner holds a lock that has not expired.
	TryAcquireSyncLock(ctx context.Context, userID int64, owner string, ttl time.Duration) (bool, error)
	// RenewSyncLock moves the expiry of owner's lock to ttl from now. It
	// reports false when owner no longer holds the lock.
	RenewSyncLock(ctx context.Context, userID int64, owner string, ttl time.Duration) (bool, error)
	// ReleaseSyncLock drops the lock if owner still holds it.
	ReleaseSyncLock(ctx context.Context, userID int64, owner string) error
}
