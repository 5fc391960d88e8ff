// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains application-layer constants shared by the trustme
// server handlers and the client adapter.
//
// All Msg* constants are the strings written into {"error": ...} response
// bodies. The client maps them back to service errors, so the wording is part
// of the API and must not change.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned for an unknown username and for a
	// wrong master password alike.
	MsgInvalidCredentials = "invalid username or master password"

	// MsgUnauthenticated is returned when the bearer token is missing,
	// expired or does not verify.
	MsgUnauthenticated = "unauthenticated"

	// MsgTwoFactorRequired is returned when a token issued before the second
	// factor was checked is used outside 2FA verify.
	MsgTwoFactorRequired = "two-factor verification required"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUsernameTaken is returned when a registration attempt uses a
	// username that already exists.
	MsgUsernameTaken = "username already taken"

	// MsgTwoFactorAlreadyEnabled is returned by 2FA setup on an account that
	// has already confirmed a code.
	MsgTwoFactorAlreadyEnabled = "two-factor authentication already enabled"

	// MsgTwoFactorNotConfigured is returned by 2FA verify before setup.
	MsgTwoFactorNotConfigured = "two-factor authentication is not set up"

	// MsgTwoFactorNotEnabled is returned by 2FA disable when 2FA is off.
	MsgTwoFactorNotEnabled = "two-factor authentication is not enabled"

	// MsgInvalidCode is returned when a TOTP code does not match.
	MsgInvalidCode = "invalid two-factor code"

	// MsgCredentialNotFound is returned when a credential does not exist or
	// belongs to another user.
	MsgCredentialNotFound = "credential not found"

	// MsgNoFieldsToUpdate is returned for an empty credential patch.
	MsgNoFieldsToUpdate = "no fields to update"

	// MsgNotFound is returned for unknown routes and for known routes called
	// with an unregistered method.
	MsgNotFound = "not found"
)
