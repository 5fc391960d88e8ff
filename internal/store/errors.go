// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when registration hits the unique
	// constraint on users.username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when no account matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTwoFactorStateConflict is returned when a conditional 2FA update
	// matched no row because the stored state changed underneath.
	ErrTwoFactorStateConflict = errors.New("two-factor state changed concurrently")

	// ErrCredentialNotFound is returned when no credential with the given id
	// belongs to the user.
	ErrCredentialNotFound = errors.New("credential was not found")

	// ErrSessionNotFound is returned by the client session store when nobody
	// is logged in.
	ErrSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrPreparingStatement   = errors.New("failed to prepare statement")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
