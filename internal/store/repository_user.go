// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordVerifier,
		&user.Salt,
		&user.TwoFactorEnabled,
		&user.TwoFactorSecret,
		&user.CreatedAt,
	)
	return user, err
}

// CreateUser inserts the account and returns it with UserID and CreatedAt
// assigned. A taken username yields [ErrUsernameAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	created, err := scanUser(r.db.QueryRowContext(ctx, createUser, user.Username, user.PasswordVerifier, user.Salt))
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByUsername returns [ErrNoUserWasFound] when the username is unknown.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.retryRead(ctx, func() error {
		var scanErr error
		found, scanErr = scanUser(r.db.QueryRowContext(ctx, findUserByUsername, username))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

func (r *userRepository) SetTwoFactorSecret(ctx context.Context, userID int64, secret string) error {
	return r.execTwoFactorTransition(ctx, "SetTwoFactorSecret", setTwoFactorSecret, userID, secret)
}

func (r *userRepository) EnableTwoFactor(ctx context.Context, userID int64, secret string) error {
	return r.execTwoFactorTransition(ctx, "EnableTwoFactor", enableTwoFactor, userID, secret)
}

func (r *userRepository) DisableTwoFactor(ctx context.Context, userID int64) error {
	return r.execTwoFactorTransition(ctx, "DisableTwoFactor", disableTwoFactor, userID)
}

// execTwoFactorTransition runs a conditional UPDATE and turns "no row
// matched" into [ErrTwoFactorStateConflict].
func (r *userRepository) execTwoFactorTransition(ctx context.Context, op, query string, args ...any) error {
	log := logger.FromContext(ctx).With().Str("func", "*userRepository."+op).Logger()

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error updating two-factor state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Msg("two-factor transition matched no row")
		return ErrTwoFactorStateConflict
	}

	return nil
}

// DeleteUser removes the account; credentials go with it through
// ON DELETE CASCADE.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
