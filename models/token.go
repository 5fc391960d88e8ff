// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TokenScope limits what a bearer token may be used for.
type TokenScope string

const (
	// TokenScopeVault grants access to every authenticated route.
	TokenScopeVault TokenScope = "vault"

	// TokenScopeTwoFactor is issued by login when the account has 2FA
	// enabled. It is only good for submitting a TOTP code, which exchanges it
	// for a vault token.
	TokenScopeTwoFactor TokenScope = "2fa"
)

// Satisfies reports whether a token of scope s may be used where required
// is demanded. A vault token satisfies every scope.
func (s TokenScope) Satisfies(required TokenScope) bool {
	return s == TokenScopeVault || s == required
}

// Token is an issued bearer token.
//
// SignedString holds the compact JWS form (header.payload.signature) sent in
// the Authorization header. Identity is the username carried in "sub".
type Token struct {
	SignedString string     `json:"-"`
	Identity     string     `json:"-"`
	Scope        TokenScope `json:"-"`
	ExpiresAt    time.Time  `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
