// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/algo-sync/internal/config"
	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/migrations"
)

// DB is the explicitly constructed store handle shared by all repositories.
// It is opened in main, injected everywhere it is needed and closed on
// shutdown.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, driver string, classifier ErrorClassificator, log *logger.Logger) *DB {
	placeholders := sq.PlaceholderFormat(sq.Dollar)
	if driver == config.DriverSQLite {
		placeholders = sq.Question
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholders),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}
