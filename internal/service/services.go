// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/trustme/internal/config"
	"github.com/MKhiriev/trustme/internal/crypto"
	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/internal/store"
)

type Services struct {
	TokenService      TokenService
	AuthService       AuthService
	TwoFactorService  TwoFactorService
	CredentialService CredentialService
	AppInfoService    AppInfoService
}

// NewServices wires the server services. It fails when the crypto cost
// parameters are out of bounds or, with a KDF budget configured, when key
// derivation on this machine is slower than the budget.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	verifier, err := crypto.NewPasswordVerifier(cfg.Crypto.Argon2Params())
	if err != nil {
		return nil, fmt.Errorf("password verifier: %w", err)
	}

	deriver, err := crypto.NewKeyDeriver(cfg.Crypto.ScryptParams())
	if err != nil {
		return nil, fmt.Errorf("key deriver: %w", err)
	}
	if cfg.Crypto.KDFBudget > 0 {
		if err = crypto.CheckDerivationBudget(deriver, cfg.Crypto.KDFBudget); err != nil {
			return nil, err
		}
	}

	tokenService := NewTokenService(cfg.App, time.Now)

	authService, err := NewAuthService(storages.UserRepository, verifier, deriver, tokenService, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	var pinger store.Pinger
	if storages.DB != nil {
		pinger = storages.DB
	}
	appInfoService, err := NewAppInfoService(cfg.App, pinger, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		TokenService:      tokenService,
		AuthService:       authService,
		TwoFactorService:  NewTwoFactorService(storages.UserRepository, cfg.App, time.Now, logger),
		CredentialService: NewCredentialValidationService().Wrap(NewCredentialService(storages.CredentialRepository, logger)),
		AppInfoService:    appInfoService,
	}, nil
}
