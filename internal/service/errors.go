// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Authentication and account errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUsernameTaken       = errors.New("username is already taken")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenExpired and ErrInvalidSignature are the two outcomes of
	// TokenService.Verify. Handlers collapse both into ErrUnauthenticated.
	ErrTokenExpired     = errors.New("token is expired")
	ErrInvalidSignature = errors.New("token signature is invalid")
)

// Two-factor errors.
var (
	ErrAlreadyEnabled = errors.New("two-factor authentication is already enabled")
	ErrNotConfigured  = errors.New("two-factor authentication is not configured")
	ErrNotEnabled     = errors.New("two-factor authentication is not enabled")
	ErrInvalidCode    = errors.New("invalid two-factor code")

	// ErrTwoFactorRequired is returned for a token that still waits for its
	// TOTP code, on the server and on the client alike.
	ErrTwoFactorRequired = errors.New("two-factor verification required, run `2fa verify` first")
)

// Credential errors.
var (
	ErrValidationNoUserID    = errors.New("no user ID for credential was given")
	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// Client-side errors.
var (
	ErrNotLoggedIn      = errors.New("not logged in, run `login` first")
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrSessionExpired   = errors.New("session expired, log in again")
)
