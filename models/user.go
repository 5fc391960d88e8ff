// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TwoFactorState is the derived second-factor state of an account.
type TwoFactorState string

const (
	TwoFactorDisabled            TwoFactorState = "disabled"
	TwoFactorPendingVerification TwoFactorState = "pending_verification"
	TwoFactorEnabled             TwoFactorState = "enabled"
)

// User represents an account entity used for authentication.
// Sensitive fields are never serialized to clients.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique, immutable login. It is also the token identity.
	Username string `json:"username"`

	// MasterPassword is only populated on inbound register/login requests and
	// is discarded right after verification or hashing.
	MasterPassword string `json:"master_password,omitempty"`

	// PasswordVerifier is the argon2id PHC string of the master password.
	PasswordVerifier string `json:"-"`

	// Salt is the base64 encoded 16-byte key derivation salt. It is not secret
	// and is returned on login so the client can derive its key.
	Salt string `json:"-"`

	// TwoFactorEnabled is set once a TOTP code has been confirmed.
	TwoFactorEnabled bool `json:"two_factor_enabled"`

	// TwoFactorSecret is the base32 TOTP secret, empty when absent.
	TwoFactorSecret string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// TwoFactorState derives the state machine position from the stored flag and
// secret.
func (u User) TwoFactorState() TwoFactorState {
	switch {
	case u.TwoFactorEnabled:
		return TwoFactorEnabled
	case u.TwoFactorSecret != "":
		return TwoFactorPendingVerification
	default:
		return TwoFactorDisabled
	}
}
