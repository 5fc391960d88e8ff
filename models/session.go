// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the client's persisted login state. It holds what the server
// returned at login and never the master password or a derived key.
type Session struct {
	Username         string
	AccessToken      string
	Salt             string
	TwoFactorEnabled bool

	// TwoFactorVerified is set once a TOTP code has been accepted in this
	// session. Vault commands refuse to run while 2FA is enabled and this is
	// false.
	TwoFactorVerified bool

	CreatedAt time.Time
}

// VaultUnlocked reports whether the session may use vault commands.
func (s Session) VaultUnlocked() bool {
	return !s.TwoFactorEnabled || s.TwoFactorVerified
}
