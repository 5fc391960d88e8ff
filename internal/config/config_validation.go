// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/trustme/internal/crypto"
)

// validate checks the parts of the merged [StructuredConfig] shared by the
// server and the client. Unset cost parameters are accepted here because
// defaults are merged last.
func (cfg *StructuredConfig) validate() error {
	if cfg.Crypto.ScryptN != 0 || cfg.Crypto.ScryptR != 0 || cfg.Crypto.ScryptP != 0 {
		if err := cfg.Crypto.ScryptParams().Validate(); err != nil {
			return err
		}
	}

	if cfg.Crypto.Argon2Time != 0 || cfg.Crypto.Argon2MemoryKiB != 0 || cfg.Crypto.Argon2Threads != 0 {
		if err := cfg.Crypto.Argon2Params().Validate(); err != nil {
			return err
		}
	}

	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAppConfigs)
	}

	return nil
}

// validateServer checks the settings the server cannot start without.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if _, err := crypto.NewKeyDeriver(cfg.Crypto.ScryptParams()); err != nil {
		return err
	}

	return nil
}
