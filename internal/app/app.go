// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app is the composition root shared by the algo-sync server and the
// algosyncctl command-line tool. It opens the database and builds the
// credential vault, the upstream adapters and the service layer from one
// [config.StructuredConfig].
package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/algo-sync/internal/adapter"
	"github.com/MKhiriev/algo-sync/internal/config"
	"github.com/MKhiriev/algo-sync/internal/crypto"
	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/service"
	"github.com/MKhiriev/algo-sync/internal/store"
)

// App owns every long-lived dependency of a process. Close releases them.
type App struct {
	DB       *store.DB
	Storages *store.Storages
	Services *service.Services

	logger *logger.Logger
}

// Option customises [New].
type Option func(*options)

type options struct {
	migrate bool
}

// WithMigrations applies pending schema migrations right after connecting.
func WithMigrations() Option {
	return func(o *options) { o.migrate = true }
}

// New connects to the configured database and wires the service layer.
func New(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	a, err := build(db, cfg, log, o)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return a, nil
}

func build(db *store.DB, cfg *config.StructuredConfig, log *logger.Logger, o options) (*App, error) {
	if o.migrate {
		if err := db.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
	}

	vault, err := crypto.NewCredentialVault(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("create credential vault: %w", err)
	}

	limiter := adapter.NewRateLimiter(cfg.Adapter.RequestsPerSecond)
	repositories, err := adapter.NewGitHubAdapter(cfg.Adapter, limiter, log)
	if err != nil {
		return nil, fmt.Errorf("create repository adapter: %w", err)
	}

	storages := store.NewStorages(db, log)
	services, err := service.NewServices(storages, service.Adapters{
		Repository: repositories,
		Judge:      adapter.NewSolvedACAdapter(cfg.Adapter, log),
	}, vault, *cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	return &App{
		DB:       db,
		Storages: storages,
		Services: services,
		logger:   log,
	}, nil
}

// Close closes the database.
func (a *App) Close() error {
	a.logger.Debug().Msg("closing database")
	return a.DB.Close()
}
