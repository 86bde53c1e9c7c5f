package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/models"
)

type judgeProfileRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewJudgeProfileRepository constructs a [JudgeProfileRepository] on db.
func NewJudgeProfileRepository(db *DB, logger *logger.Logger) JudgeProfileRepository {
	logger.Debug().Msg("creating judge profile repository")
	return &judgeProfileRepository{db: db, logger: logger}
}

func (r *judgeProfileRepository) SaveJudgeProfile(ctx context.Context, profile models.JudgeProfile) error {
	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = time.Now().UTC()
	}

	query, args, err := buildSaveJudgeProfileQuery(r.db.builder, profile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*judgeProfileRepository.SaveJudgeProfile").Msg("error saving judge profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *judgeProfileRepository) GetJudgeProfile(ctx context.Context, userID int64) (models.JudgeProfile, error) {
	query, args, err := buildGetJudgeProfileQuery(r.db.builder, userID)
	if err != nil {
		return models.JudgeProfile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var p models.JudgeProfile
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&p.UserID, &p.Handle, &p.Tier, &p.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.JudgeProfile{}, ErrJudgeProfileNotFound
	case err != nil:
		return models.JudgeProfile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return p, nil
}
