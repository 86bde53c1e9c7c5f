package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/algo-sync/internal/config"
	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/service"
	"github.com/MKhiriev/algo-sync/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds every background worker enabled by cfg.
func NewWorkers(cfg config.Workers, storages *store.Storages, services *service.Services, logger *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		NewPeriodicSync(storages.CredentialRepository, services.SyncService, cfg.SyncInterval, logger),
	}}
}

// Run starts every worker in its own goroutine and returns once all of them
// have stopped.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() { worker.Run(ctx) })
	}
	wg.Wait()
}
