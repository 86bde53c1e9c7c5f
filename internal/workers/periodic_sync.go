package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/service"
	"github.com/MKhiriev/algo-sync/internal/store"
)

// periodicSync syncs every user with a linked repository once per interval.
// Users are processed one after another; runs already in flight for a user
// are skipped.
type periodicSync struct {
	credentials store.CredentialRepository
	sync        service.SyncService
	interval    time.Duration

	logger *logger.Logger
}

// NewPeriodicSync returns the periodic sync worker. A non-positive interval
// disables it.
func NewPeriodicSync(credentials store.CredentialRepository, sync service.SyncService, interval time.Duration, logger *logger.Logger) Worker {
	return &periodicSync{
		credentials: credentials,
		sync:        sync,
		interval:    interval,
		logger:      logger.WithComponent("periodic_sync"),
	}
}

func (w *periodicSync) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Msg("periodic sync disabled")
		return
	}

	w.logger.Info().Dur("interval", w.interval).Msg("periodic sync started")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("periodic sync stopped")
			return
		case <-ticker.C:
			w.syncAll(ctx)
		}
	}
}

func (w *periodicSync) syncAll(ctx context.Context) {
	userIDs, err := w.credentials.ListLinkedUsers(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*periodicSync.syncAll").Msg("error listing linked users")
		return
	}

	ctx = w.logger.WithContext(ctx)
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			return
		}

		log := w.logger.WithUserID(userID)
		result, err := w.sync.Sync(ctx, userID)
		switch {
		case errors.Is(err, service.ErrSyncInProgress):
			log.Info().Msg("sync already running, skipped")
		case err != nil:
			log.Warn().Err(err).Msg("periodic sync failed")
		default:
			log.Debug().
				Int("count", result.Count).
				Int("failed", len(result.Failed)).
				Msg("periodic sync finished")
		}
	}
}
