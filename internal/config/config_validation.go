// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. Every violated group is reported.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch cfg.App.CredentialVault {
	case VaultAES:
		if cfg.App.CredentialKey == "" {
			errs = append(errs, fmt.Errorf("%w: credential key is required for the aes vault", ErrInvalidAppConfigs))
		}
	case VaultAge:
		if cfg.App.AgeIdentity == "" {
			errs = append(errs, fmt.Errorf("%w: age identity is required for the age vault", ErrInvalidAppConfigs))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown credential vault %q", ErrInvalidAppConfigs, cfg.App.CredentialVault))
	}

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs))
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		errs = append(errs, fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}

	for _, raw := range []string{cfg.Adapter.GitHubAPIURL, cfg.Adapter.GitHubWebURL, cfg.Adapter.SolvedACURL} {
		if _, err := url.ParseRequestURI(raw); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err))
		}
	}
	if cfg.Adapter.RequestsPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("%w: requests per second must be positive", ErrInvalidAdapterConfigs))
	}

	if cfg.Workers.SyncConcurrency < 1 {
		errs = append(errs, fmt.Errorf("%w: sync concurrency must be at least 1", ErrInvalidWorkerConfigs))
	}
	if cfg.Workers.SyncInterval < 0 {
		errs = append(errs, fmt.Errorf("%w: negative sync interval", ErrInvalidWorkerConfigs))
	}

	return errors.Join(errs...)
}
