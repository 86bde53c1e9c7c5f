package service

import (
	"github.com/MKhiriev/algo-sync/internal/adapter"
	"github.com/MKhiriev/algo-sync/internal/config"
	"github.com/MKhiriev/algo-sync/internal/crypto"
	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/store"
)

type Services struct {
	SyncService         SyncService
	SettingsService     SettingsService
	JudgeProfileService JudgeProfileService
	SubmissionService   SubmissionService
	AppInfoService      AppInfoService
}

// Adapters groups the upstream clients the services depend on.
type Adapters struct {
	Repository adapter.RepositoryAdapter
	Judge      adapter.JudgeAdapter
}

func NewServices(
	storages *store.Storages,
	adapters Adapters,
	vault crypto.CredentialVault,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	submissions := NewSubmissionService(storages.SubmissionRepository, logger)

	return &Services{
		SyncService: NewSyncService(
			storages.CredentialRepository,
			storages.SubmissionRepository,
			storages.SyncLockRepository,
			vault,
			adapters.Repository,
			submissions,
			cfg.Workers.SyncConcurrency,
			logger,
		),
		SettingsService:     NewSettingsService(storages.CredentialRepository, vault, submissions, logger),
		JudgeProfileService: NewJudgeProfileService(storages.JudgeProfileRepository, adapters.Judge, logger),
		SubmissionService:   submissions,
		AppInfoService:      appInfo,
	}, nil
}
