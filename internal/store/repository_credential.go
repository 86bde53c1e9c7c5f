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

// credentialRepository is the SQL implementation of [CredentialRepository].
// Tokens reach it already encrypted.
type credentialRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] on db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{db: db, logger: logger}
}

func (r *credentialRepository) SaveCredential(ctx context.Context, cred models.RepositoryCredential) error {
	if cred.UpdatedAt.IsZero() {
		cred.UpdatedAt = time.Now().UTC()
	}

	query, args, err := buildSaveCredentialQuery(r.db.builder, cred)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*credentialRepository.SaveCredential").Msg("error saving credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *credentialRepository) GetCredential(ctx context.Context, userID int64) (models.RepositoryCredential, error) {
	query, args, err := buildGetCredentialQuery(r.db.builder, userID)
	if err != nil {
		return models.RepositoryCredential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var cred models.RepositoryCredential
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&cred.UserID, &cred.EncryptedToken, &cred.Repository.Owner, &cred.Repository.Name, &cred.UpdatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.RepositoryCredential{}, ErrCredentialNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*credentialRepository.GetCredential").Msg("error reading credential")
		return models.RepositoryCredential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cred, nil
}

func (r *credentialRepository) ListLinkedUsers(ctx context.Context) ([]int64, error) {
	query, args, err := buildListLinkedUsersQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}
