package store

import "github.com/MKhiriev/algo-sync/internal/logger"

// Storages aggregates every repository backed by one [DB].
type Storages struct {
	CredentialRepository   CredentialRepository
	SubmissionRepository   SubmissionRepository
	JudgeProfileRepository JudgeProfileRepository
	SyncLockRepository     SyncLockRepository
}

// NewStorages constructs all repositories on db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		CredentialRepository:   NewCredentialRepository(db, logger),
		SubmissionRepository:   NewSubmissionRepository(db, logger),
		JudgeProfileRepository: NewJudgeProfileRepository(db, logger),
		SyncLockRepository:     NewSyncLockRepository(db, logger),
	}
}
