// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EncryptedField is one sealed credential field. All three parts are standard
// base64; the nonce decodes to 12 bytes and the tag to 16 bytes. The triple is
// validated, stored and replaced as a unit.
type EncryptedField struct {
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
	Tag        string `json:"tag"`
}

// IsZero reports whether no part of the triple is set.
func (f EncryptedField) IsZero() bool {
	return f.Ciphertext == "" && f.Nonce == "" && f.Tag == ""
}

// Credential is a stored website login. The server persists the encrypted
// triples verbatim and never sees their plaintext.
type Credential struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"-"`

	// WebsiteURL is stored in plaintext so credentials can be listed and
	// searched without the key.
	WebsiteURL string `json:"website_url"`

	Username EncryptedField  `json:"username"`
	Password EncryptedField  `json:"password"`
	Notes    *EncryptedField `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "credentials"
}

// CredentialPatch is a partial update. Nil fields are left untouched; a
// present field replaces the whole stored triple. ClearNotes removes the
// notes triple and cannot be combined with Notes.
type CredentialPatch struct {
	WebsiteURL *string         `json:"website_url,omitempty"`
	Username   *EncryptedField `json:"username,omitempty"`
	Password   *EncryptedField `json:"password,omitempty"`
	Notes      *EncryptedField `json:"notes,omitempty"`
	ClearNotes bool            `json:"clear_notes,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p CredentialPatch) IsEmpty() bool {
	return p.WebsiteURL == nil && p.Username == nil && p.Password == nil && p.Notes == nil && !p.ClearNotes
}

// BatchCreateRequest carries several credentials created in one transaction.
type BatchCreateRequest struct {
	Credentials []Credential `json:"credentials"`
}

// PlainCredential is the client-side view of a [Credential] after its fields
// have been opened. It never leaves the client process.
type PlainCredential struct {
	ID         int64
	WebsiteURL string
	Username   string
	Password   string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PlainCredentialPatch is the client-side form of [CredentialPatch]: present
// fields are sealed before they are sent.
type PlainCredentialPatch struct {
	WebsiteURL *string
	Username   *string
	Password   *string
	Notes      *string
	ClearNotes bool
}

// IsEmpty reports whether the patch changes nothing.
func (p PlainCredentialPatch) IsEmpty() bool {
	return p.WebsiteURL == nil && p.Username == nil && p.Password == nil && p.Notes == nil && !p.ClearNotes
}
