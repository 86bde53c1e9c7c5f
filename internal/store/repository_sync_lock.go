package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/algo-sync/internal/logger"
)

// syncLockRepository is the SQL implementation of [SyncLockRepository].
// Each user has at most one row; its owner holds the lock until it is
// released or expires_at (unix milliseconds) passes.
type syncLockRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSyncLockRepository constructs a [SyncLockRepository] on db.
func NewSyncLockRepository(db *DB, logger *logger.Logger) SyncLockRepository {
	logger.Debug().Msg("creating sync lock repository")
	return &syncLockRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// TryAcquireSyncLock implements [SyncLockRepository].
func (r *syncLockRepository) TryAcquireSyncLock(ctx context.Context, userID int64, owner string, ttl time.Duration) (bool, error) {
	now := r.now()

	query, args, err := buildAcquireSyncLockQuery(r.db.builder, userID, owner, now.UnixMilli(), now.Add(ttl).UnixMilli())
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*syncLockRepository.TryAcquireSyncLock").Msg("error acquiring sync lock")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// RenewSyncLock implements [SyncLockRepository].
func (r *syncLockRepository) RenewSyncLock(ctx context.Context, userID int64, owner string, ttl time.Duration) (bool, error) {
	query, args, err := buildRenewSyncLockQuery(r.db.builder, userID, owner, r.now().Add(ttl).UnixMilli())
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*syncLockRepository.RenewSyncLock").Msg("error renewing sync lock")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// ReleaseSyncLock implements [SyncLockRepository].
func (r *syncLockRepository) ReleaseSyncLock(ctx context.Context, userID int64, owner string) error {
	query, args, err := buildReleaseSyncLockQuery(r.db.builder, userID, owner)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*syncLockRepository.ReleaseSyncLock").Msg("error releasing sync lock")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
