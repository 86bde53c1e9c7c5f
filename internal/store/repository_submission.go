package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/utils"
	"github.com/MKhiriev/algo-sync/models"
)

// submissionRepository is the SQL implementation of [SubmissionRepository].
type submissionRepository struct {
	db     *DB
	logger *logger.Logger
	ids    idGenerator
	now    func() time.Time
}

type idGenerator interface {
	Generate() string
}

// NewSubmissionRepository constructs a [SubmissionRepository] on db.
func NewSubmissionRepository(db *DB, logger *logger.Logger) SubmissionRepository {
	logger.Debug().Msg("creating submission repository")
	return &submissionRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// UpsertSubmission implements [SubmissionRepository]. A fresh id, the
// SUCCESS status and created_at are applied only when the row is new.
// Transient driver errors are retried.
func (r *submissionRepository) UpsertSubmission(ctx context.Context, s models.Submission) error {
	log := logger.FromContext(ctx)

	now := r.now()
	s.ID = r.ids.Generate()
	s.Status = models.SubmissionStatusSuccess
	s.CreatedAt, s.UpdatedAt = now, now

	query, args, err := buildUpsertSubmissionQuery(r.db.builder, s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*submissionRepository.UpsertSubmission").
			Str("problem_id", s.ProblemID).
			Str("platform", string(s.Platform)).
			Msg("error upserting submission")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListSubmissions implements [SubmissionRepository].
func (r *submissionRepository) ListSubmissions(ctx context.Context, userID int64) ([]models.Submission, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSubmissionsQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.ListSubmissions").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	submissions := make([]models.Submission, 0)
	for rows.Next() {
		var (
			s        models.Submission
			platform string
		)
		if err = rows.Scan(
			&s.ID, &s.UserID, &s.ProblemID, &platform, &s.Language,
			&s.Title, &s.Level, &s.Code, &s.GithubURL, &s.Status,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		s.Platform = models.Platform(platform)
		submissions = append(submissions, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return submissions, nil
}
