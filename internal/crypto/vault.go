// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/algo-sync/internal/config"
)

// NewCredentialVault builds the vault strategy selected in cfg.
func NewCredentialVault(cfg config.App) (CredentialVault, error) {
	switch cfg.CredentialVault {
	case config.VaultAES, "":
		return NewAESVault(cfg.CredentialKey)
	case config.VaultAge:
		return NewAgeVault(cfg.AgeIdentity)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVault, cfg.CredentialVault)
	}
}
