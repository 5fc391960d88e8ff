// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/models"
)

const (
	upsertSession = `INSERT INTO session (id, username, access_token, salt, two_factor_enabled, two_factor_verified, created_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			username = excluded.username,
			access_token = excluded.access_token,
			salt = excluded.salt,
			two_factor_enabled = excluded.two_factor_enabled,
			two_factor_verified = excluded.two_factor_verified,
			created_at = excluded.created_at;`

	selectSession = `SELECT username, access_token, salt, two_factor_enabled, two_factor_verified, created_at
		FROM session
		WHERE id = 1;`

	deleteSession = `DELETE FROM session;`
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs a SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{DB: db, logger: logger}
}

// SaveSession replaces whatever session was stored before.
func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := s.DB.ExecContext(ctx, upsertSession,
		session.Username,
		session.AccessToken,
		session.Salt,
		session.TwoFactorEnabled,
		session.TwoFactorVerified,
		session.CreatedAt,
	)
	if err != nil {
		s.logger.Err(err).Str("func", "sessionRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	err := s.DB.QueryRowContext(ctx, selectSession).Scan(
		&session.Username,
		&session.AccessToken,
		&session.Salt,
		&session.TwoFactorEnabled,
		&session.TwoFactorVerified,
		&session.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sessionRepository.LoadSession").Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return session, nil
}

// DeleteSession is a no-op when nobody is logged in.
func (s *sessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, deleteSession); err != nil {
		s.logger.Err(err).Str("func", "sessionRepository.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
