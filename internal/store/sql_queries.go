// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/trustme/models"
)

const (
	userColumns = `user_id, username, password_verifier, salt, two_factor_enabled, COALESCE(two_factor_secret, ''), created_at`

	createUser = `INSERT INTO users (username, password_verifier, salt)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
		FROM users
		WHERE username = $1;`

	setTwoFactorSecret = `UPDATE users
		SET two_factor_secret = $2
		WHERE user_id = $1 AND two_factor_enabled = FALSE;`

	enableTwoFactor = `UPDATE users
		SET two_factor_enabled = TRUE
		WHERE user_id = $1 AND two_factor_enabled = FALSE AND two_factor_secret = $2;`

	disableTwoFactor = `UPDATE users
		SET two_factor_enabled = FALSE, two_factor_secret = NULL
		WHERE user_id = $1 AND two_factor_enabled = TRUE;`

	deleteUser = `DELETE FROM users WHERE user_id = $1;`

	credentialsTable = "credentials"

	insertCredential = `INSERT INTO credentials (
			user_id,
			website_url,
			username_ciphertext, username_nonce, username_tag,
			password_ciphertext, password_nonce, password_tag,
			notes_ciphertext, notes_nonce, notes_tag
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at;`
)

var credentialColumns = []string{
	"id",
	"user_id",
	"website_url",
	"username_ciphertext", "username_nonce", "username_tag",
	"password_ciphertext", "password_nonce", "password_tag",
	"notes_ciphertext", "notes_nonce", "notes_tag",
	"created_at",
	"updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func insertCredentialArgs(c models.Credential) []any {
	notesCiphertext, notesNonce, notesTag := nullableField(c.Notes)
	return []any{
		c.UserID,
		c.WebsiteURL,
		c.Username.Ciphertext, c.Username.Nonce, c.Username.Tag,
		c.Password.Ciphertext, c.Password.Nonce, c.Password.Tag,
		notesCiphertext, notesNonce, notesTag,
	}
}

// nullableField maps an absent triple to three NULLs.
func nullableField(f *models.EncryptedField) (ciphertext, nonce, tag any) {
	if f == nil {
		return nil, nil, nil
	}
	return f.Ciphertext, f.Nonce, f.Tag
}

// likeEscaper makes a website filter match literally. PostgreSQL treats the
// backslash as the default LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildListCredentialsQuery(userID int64, websiteFilter string) (string, []any, error) {
	query := psql.Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"user_id": userID})

	if websiteFilter != "" {
		query = query.Where(sq.ILike{"website_url": "%" + likeEscaper.Replace(websiteFilter) + "%"})
	}

	stmt, args, err := query.OrderBy("id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return stmt, args, nil
}

func buildGetCredentialQuery(userID, credentialID int64) (string, []any, error) {
	stmt, args, err := psql.Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"id": credentialID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return stmt, args, nil
}

// buildUpdateCredentialQuery sets every column of each present triple in one
// statement, so a triple is never partially replaced.
func buildUpdateCredentialQuery(userID, credentialID int64, patch models.CredentialPatch) (string, []any, error) {
	query := psql.Update(credentialsTable)

	if patch.WebsiteURL != nil {
		query = query.Set("website_url", *patch.WebsiteURL)
	}
	if patch.Username != nil {
		query = setField(query, "username", patch.Username)
	}
	if patch.Password != nil {
		query = setField(query, "password", patch.Password)
	}
	switch {
	case patch.Notes != nil:
		query = setField(query, "notes", patch.Notes)
	case patch.ClearNotes:
		query = setField(query, "notes", nil)
	}

	stmt, args, err := query.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": credentialID}).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + strings.Join(credentialColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return stmt, args, nil
}

func setField(query sq.UpdateBuilder, prefix string, f *models.EncryptedField) sq.UpdateBuilder {
	ciphertext, nonce, tag := nullableField(f)
	return query.
		Set(prefix+"_ciphertext", ciphertext).
		Set(prefix+"_nonce", nonce).
		Set(prefix+"_tag", tag)
}

func buildDeleteCredentialQuery(userID, credentialID int64) (string, []any, error) {
	stmt, args, err := psql.Delete(credentialsTable).
		Where(sq.Eq{"id": credentialID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return stmt, args, nil
}
