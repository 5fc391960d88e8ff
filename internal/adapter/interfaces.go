// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the trustme server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). The
// server's {"error": ...} message is kept after the sentinel and can be read
// back with [Message].
package adapter

import (
	"context"

	"github.com/MKhiriev/trustme/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the trustme
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
//
// Credential fields always travel sealed; the adapter never sees plaintext.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. No token is issued; the caller logs in
	// afterwards.
	Register(ctx context.Context, user models.User) (models.RegisterResponse, error)

	// Login authenticates with the master password. On success the returned
	// access token is stored via SetToken.
	Login(ctx context.Context, user models.User) (models.LoginResponse, error)

	// SetupTwoFactor starts 2FA enrolment for the token's account.
	SetupTwoFactor(ctx context.Context) (models.TwoFactorSetup, error)

	// VerifyTwoFactor confirms a TOTP code. The first success after setup
	// enables 2FA. The vault token returned on success replaces the stored
	// one via SetToken.
	VerifyTwoFactor(ctx context.Context, code string) (models.TwoFactorStatus, error)

	// DisableTwoFactor turns 2FA off. It requires a currently valid code.
	DisableTwoFactor(ctx context.Context, code string) (models.TwoFactorStatus, error)

	// GetProfile returns the account the stored token belongs to.
	GetProfile(ctx context.Context) (models.RegisterResponse, error)

	// DeleteAccount removes the account and all of its credentials.
	DeleteAccount(ctx context.Context) error

	// CreateCredential stores one sealed credential and returns it with its
	// server-assigned ID and timestamps.
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)

	// CreateCredentials stores several sealed credentials in one transaction.
	CreateCredentials(ctx context.Context, credentials []models.Credential) ([]models.Credential, error)

	// ListCredentials returns the account's credentials ordered by ID. A
	// non-empty websiteFilter keeps only URLs containing it, case-insensitively.
	ListCredentials(ctx context.Context, websiteFilter string) ([]models.Credential, error)

	// GetCredential returns one credential by ID.
	GetCredential(ctx context.Context, credentialID int64) (models.Credential, error)

	// UpdateCredential applies a partial update and returns the stored result.
	UpdateCredential(ctx context.Context, credentialID int64, patch models.CredentialPatch) (models.Credential, error)

	// DeleteCredential removes one credential by ID.
	DeleteCredential(ctx context.Context, credentialID int64) error

	// GetServerVersion returns the server's application version.
	GetServerVersion(ctx context.Context) (string, error)
}
