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

// credentialRepository is the PostgreSQL-backed implementation of
// [CredentialRepository]. Encrypted triples are stored verbatim.
type credentialRepository struct {
	*DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

func scanCredential(row rowScanner) (models.Credential, error) {
	var (
		c                                     models.Credential
		notesCiphertext, notesNonce, notesTag sql.NullString
	)

	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.WebsiteURL,
		&c.Username.Ciphertext, &c.Username.Nonce, &c.Username.Tag,
		&c.Password.Ciphertext, &c.Password.Nonce, &c.Password.Tag,
		&notesCiphertext, &notesNonce, &notesTag,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return models.Credential{}, err
	}

	if notesCiphertext.Valid {
		c.Notes = &models.EncryptedField{
			Ciphertext: notesCiphertext.String,
			Nonce:      notesNonce.String,
			Tag:        notesTag.String,
		}
	}

	return c, nil
}

// CreateCredential inserts one record and fills in ID and timestamps.
func (p *credentialRepository) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	err := p.DB.QueryRowContext(ctx, insertCredential, insertCredentialArgs(credential)...).
		Scan(&credential.ID, &credential.CreatedAt, &credential.UpdatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.CreateCredential").
			Int64("user_id", credential.UserID).
			Msg("failed to save credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return credential, nil
}

// CreateCredentials inserts all records in one transaction through a single
// prepared statement. Either every record is stored or none is.
func (p *credentialRepository) CreateCredentials(ctx context.Context, credentials []models.Credential) ([]models.Credential, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "credentialRepository.CreateCredentials").
		Int("count", len(credentials)).
		Logger()

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertCredential)
	if err != nil {
		log.Err(err).Msg("failed to prepare statement")
		return nil, fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	saved := make([]models.Credential, 0, len(credentials))
	for i, c := range credentials {
		if err = stmt.QueryRowContext(ctx, insertCredentialArgs(c)...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			log.Err(err).Int("index", i).Msg("failed to save credential")
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		saved = append(saved, c)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

// ListCredentials returns the user's records ordered by id. A non-empty
// websiteFilter keeps records whose URL contains it, case-insensitively.
func (p *credentialRepository) ListCredentials(ctx context.Context, userID int64, websiteFilter string) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCredentialsQuery(userID, websiteFilter)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.ListCredentials").Msg("failed to build query")
		return nil, err
	}

	var results []models.Credential
	err = p.retryRead(ctx, func() error {
		var queryErr error
		results, queryErr = p.queryCredentials(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.ListCredentials").
			Int64("user_id", userID).
			Msg("failed to list credentials")
		return nil, err
	}

	return results, nil
}

func (p *credentialRepository) queryCredentials(ctx context.Context, query string, args []any) ([]models.Credential, error) {
	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Credential, 0, 16)
	for rows.Next() {
		c, scanErr := scanCredential(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// GetCredential returns [ErrCredentialNotFound] when the id is unknown or
// owned by someone else.
func (p *credentialRepository) GetCredential(ctx context.Context, userID, credentialID int64) (models.Credential, error) {
	query, args, err := buildGetCredentialQuery(userID, credentialID)
	if err != nil {
		return models.Credential{}, err
	}

	var c models.Credential
	err = p.retryRead(ctx, func() error {
		var scanErr error
		c, scanErr = scanCredential(p.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	return c, p.credentialRowError(ctx, "GetCredential", credentialID, err)
}

// UpdateCredential applies patch in a single UPDATE and returns the stored
// record.
func (p *credentialRepository) UpdateCredential(ctx context.Context, userID, credentialID int64, patch models.CredentialPatch) (models.Credential, error) {
	query, args, err := buildUpdateCredentialQuery(userID, credentialID, patch)
	if err != nil {
		return models.Credential{}, err
	}

	c, err := scanCredential(p.DB.QueryRowContext(ctx, query, args...))
	return c, p.credentialRowError(ctx, "UpdateCredential", credentialID, err)
}

func (p *credentialRepository) DeleteCredential(ctx context.Context, userID, credentialID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCredentialQuery(userID, credentialID)
	if err != nil {
		return err
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.DeleteCredential").
			Int64("credential_id", credentialID).
			Msg("failed to delete credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

func (p *credentialRepository) credentialRowError(ctx context.Context, op string, credentialID int64, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrCredentialNotFound
	default:
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialRepository."+op).
			Int64("credential_id", credentialID).
			Msg("failed to query credential")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
