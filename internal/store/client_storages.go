// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/trustme/internal/config"
	"github.com/MKhiriev/trustme/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN, applies the
// session schema and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the underlying database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
