// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/trustme/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and their second-factor state.
//
// Two-factor transitions are conditional updates: when the stored state does
// not allow the transition, no row changes and [ErrTwoFactorStateConflict]
// is returned.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// SetTwoFactorSecret stores a new pending secret unless 2FA is enabled.
	SetTwoFactorSecret(ctx context.Context, userID int64, secret string) error
	// EnableTwoFactor flips the flag if secret is still the stored one.
	EnableTwoFactor(ctx context.Context, userID int64, secret string) error
	// DisableTwoFactor clears the flag and the secret of an enabled account.
	DisableTwoFactor(ctx context.Context, userID int64) error

	DeleteUser(ctx context.Context, userID int64) error
}

// CredentialRepository persists encrypted credential records. Every method
// is scoped by owner, so a record belonging to another user is reported as
// [ErrCredentialNotFound].
type CredentialRepository interface {
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	CreateCredentials(ctx context.Context, credentials []models.Credential) ([]models.Credential, error)
	ListCredentials(ctx context.Context, userID int64, websiteFilter string) ([]models.Credential, error)
	GetCredential(ctx context.Context, userID, credentialID int64) (models.Credential, error)
	UpdateCredential(ctx context.Context, userID, credentialID int64, patch models.CredentialPatch) (models.Credential, error)
	DeleteCredential(ctx context.Context, userID, credentialID int64) error
}

// Pinger reports database reachability for health checks.
type Pinger interface {
	PingContext(ctx context.Context) error
}
