// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the server and of the CLI
// client.
//
// Server services (this file) gate the credential store behind master
// password login, bearer tokens and an optional TOTP second factor. They
// never see plaintext credentials. Client services (client_interfaces.go)
// derive the key and seal or open fields before anything leaves the machine.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/trustme/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=CredentialServiceWrapper

// TokenService issues and checks short-lived bearer tokens.
type TokenService interface {
	// Issue signs a token of the given scope for identity valid for ttl. A
	// zero ttl yields a token that is already expired.
	Issue(identity string, scope models.TokenScope, ttl time.Duration) (models.Token, error)

	// Verify returns the parsed token, [ErrTokenExpired] for a correctly
	// signed token past its expiry, or [ErrInvalidSignature] for anything
	// else.
	Verify(token string) (models.Token, error)
}

// AuthService registers accounts, logs them in and resolves bearer tokens
// to accounts.
type AuthService interface {
	// Register stores a verifier of user.MasterPassword and a fresh 16-byte
	// salt under user.Username.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login checks the master password and returns a token together with
	// the salt and 2FA flag the client needs. Unknown users and wrong
	// passwords both yield [ErrInvalidCredentials].
	Login(ctx context.Context, user models.User) (models.LoginResponse, error)

	// ResolveIdentity maps a bearer token to the account it was issued for.
	// A valid token whose scope does not satisfy scope yields
	// [ErrTwoFactorRequired]; every other failure is [ErrUnauthenticated].
	ResolveIdentity(ctx context.Context, token string, scope models.TokenScope) (models.User, error)

	// IssueVaultToken signs a full-access token for identity. It is called
	// once the second factor has been checked.
	IssueVaultToken(ctx context.Context, identity string) (models.Token, error)

	// GetProfile returns the account behind identity.
	GetProfile(ctx context.Context, identity string) (models.User, error)

	// DeleteAccount removes the account and all of its credentials.
	DeleteAccount(ctx context.Context, identity string) error
}

// TwoFactorService drives the TOTP state machine
// Disabled -> PendingVerification -> Enabled.
type TwoFactorService interface {
	Setup(ctx context.Context, identity string) (models.TwoFactorSetup, error)
	Verify(ctx context.Context, identity, code string) error
	Disable(ctx context.Context, identity, code string) error
}

// CredentialService stores already encrypted credential records.
type CredentialService interface {
	Create(ctx context.Context, credential models.Credential) (models.Credential, error)
	CreateBatch(ctx context.Context, userID int64, credentials []models.Credential) ([]models.Credential, error)
	List(ctx context.Context, userID int64, websiteFilter string) ([]models.Credential, error)
	Get(ctx context.Context, userID, credentialID int64) (models.Credential, error)
	Update(ctx context.Context, userID, credentialID int64, patch models.CredentialPatch) (models.Credential, error)
	Delete(ctx context.Context, userID, credentialID int64) error
}

// CredentialServiceWrapper defines middleware composition for
// CredentialService. Implementations wrap an existing CredentialService to
// add behavior such as validation.
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService
}

// AppInfoService reports the build version and backend health.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Ping(ctx context.Context) error
}
