// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/trustme/internal/config"
	"github.com/MKhiriev/trustme/internal/logger"
)

// Storages groups the server repositories.
type Storages struct {
	UserRepository       UserRepository
	CredentialRepository CredentialRepository

	// DB is kept for health checks and for closing on shutdown.
	DB *DB
}

// NewStorages connects to PostgreSQL, applies migrations and wires the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		CredentialRepository: NewCredentialRepository(db, log),
		DB:                   db,
	}, nil
}
