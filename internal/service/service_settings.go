package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/algo-sync/internal/crypto"
	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/store"
	"github.com/MKhiriev/algo-sync/models"
)

type settingsService struct {
	credentials store.CredentialRepository
	vault       crypto.CredentialVault
	views       SubmissionService

	logger *logger.Logger
}

func NewSettingsService(
	credentials store.CredentialRepository,
	vault crypto.CredentialVault,
	views SubmissionService,
	logger *logger.Logger,
) SettingsService {
	return &settingsService{
		credentials: credentials,
		vault:       vault,
		views:       views,
		logger:      logger,
	}
}

// SaveRepository implements SettingsService. The token is trimmed and sealed
// by the vault before it reaches the store.
func (s *settingsService) SaveRepository(ctx context.Context, userID int64, token, repository string) (models.RepositoryRef, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return models.RepositoryRef{}, ErrInvalidUserID
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return models.RepositoryRef{}, ErrEmptyToken
	}

	repo, err := models.ParseRepositoryRef(repository)
	if err != nil {
		return models.RepositoryRef{}, fmt.Errorf("%w: %w", ErrInvalidRepository, err)
	}

	encrypted, err := s.vault.Encrypt(token)
	if err != nil {
		log.Err(err).Str("func", "*settingsService.SaveRepository").Msg("error encrypting access token")
		return models.RepositoryRef{}, fmt.Errorf("encrypt access token: %w", err)
	}

	err = s.credentials.SaveCredential(ctx, models.RepositoryCredential{
		UserID:         userID,
		EncryptedToken: encrypted,
		Repository:     repo,
	})
	if err != nil {
		return models.RepositoryRef{}, fmt.Errorf("save credential: %w", err)
	}

	s.views.Invalidate(userID)
	log.Info().Int64("user_id", userID).Str("repository", repo.String()).Msg("repository linked")

	return repo, nil
}
