// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/trustme/models"
)

func b64(n int) string { return base64.StdEncoding.EncodeToString(make([]byte, n)) }

func validField() models.EncryptedField {
	return models.EncryptedField{Ciphertext: b64(20), Nonce: b64(12), Tag: b64(16)}
}

func ptrField(f models.EncryptedField) *models.EncryptedField { return &f }
func ptrString(s string) *string                              { return &s }

func validCredential() models.Credential {
	return models.Credential{
		UserID:     1,
		WebsiteURL: "https://github.com",
		Username:   validField(),
		Password:   validField(),
	}
}

func TestCredentialValidator_Dispatch(t *testing.T) {
	v := NewCredentialValidator()
	ctx := context.Background()

	c := validCredential()
	require.NoError(t, v.Validate(ctx, c))
	require.NoError(t, v.Validate(ctx, &c))
	require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	require.ErrorIs(t, v.Validate(ctx, c, "bogus"), ErrUnknownField)
}

func TestCredentialValidator_Credential(t *testing.T) {
	v := NewCredentialValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.Credential)
		want   error
	}{
		{"valid without notes", func(c *models.Credential) {}, nil},
		{"valid with notes", func(c *models.Credential) { c.Notes = ptrField(validField()) }, nil},
		{"empty ciphertext seals empty string", func(c *models.Credential) { c.Password.Ciphertext = "" }, nil},
		{"no user", func(c *models.Credential) { c.UserID = 0 }, ErrInvalidUserID},
		{"no website", func(c *models.Credential) { c.WebsiteURL = "" }, ErrEmptyWebsiteURL},
		{"long website", func(c *models.Credential) { c.WebsiteURL = strings.Repeat("a", 2049) }, ErrWebsiteURLTooLong},
		{"missing password", func(c *models.Credential) { c.Password = models.EncryptedField{} }, ErrMissingField},
		{"ciphertext without nonce", func(c *models.Credential) { c.Username.Nonce = "" }, ErrIncompleteField},
		{"ciphertext without tag", func(c *models.Credential) { c.Username.Tag = "" }, ErrIncompleteField},
		{"bad base64", func(c *models.Credential) { c.Password.Ciphertext = "not base64!" }, ErrMalformedField},
		{"non-canonical tag", func(c *models.Credential) { c.Password.Tag = c.Password.Tag[:21] + "B==" }, ErrMalformedField},
		{"short nonce", func(c *models.Credential) { c.Password.Nonce = b64(8) }, ErrInvalidNonceLength},
		{"long tag", func(c *models.Credential) { c.Password.Tag = b64(32) }, ErrInvalidTagLength},
		{"bad notes", func(c *models.Credential) { c.Notes = &models.EncryptedField{Ciphertext: b64(4)} }, ErrIncompleteField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCredential()
			tt.mutate(&c)

			err := v.Validate(ctx, c)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestCredentialValidator_FieldScoping(t *testing.T) {
	v := NewCredentialValidator()
	c := validCredential()
	c.UserID = 0

	assert.NoError(t, v.Validate(context.Background(), c, FieldWebsiteURL, FieldPassword))
	assert.ErrorIs(t, v.Validate(context.Background(), c, FieldUserID), ErrInvalidUserID)
}

func TestCredentialValidator_Patch(t *testing.T) {
	v := NewCredentialValidator()
	ctx := context.Background()

	tests := []struct {
		name  string
		patch models.CredentialPatch
		want  error
	}{
		{"empty", models.CredentialPatch{}, ErrNoFieldsToUpdate},
		{"clear notes only", models.CredentialPatch{ClearNotes: true}, nil},
		{
			"clear notes with new notes",
			models.CredentialPatch{ClearNotes: true, Notes: ptrField(validField())},
			ErrConflictingNotes,
		},
		{"website", models.CredentialPatch{WebsiteURL: ptrString("https://x.io")}, nil},
		{"empty website", models.CredentialPatch{WebsiteURL: ptrString("")}, ErrEmptyWebsiteURL},
		{"password triple", models.CredentialPatch{Password: ptrField(validField())}, nil},
		{
			"ciphertext with no nonce or tag",
			models.CredentialPatch{Password: &models.EncryptedField{Ciphertext: b64(10)}},
			ErrIncompleteField,
		},
		{"zero triple", models.CredentialPatch{Username: &models.EncryptedField{}}, ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &tt.patch)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestCredentialValidator_Batch(t *testing.T) {
	v := NewCredentialValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.BatchCreateRequest{}), ErrEmptyCredentials)

	tooMany := make([]models.Credential, MaxBatchSize+1)
	for i := range tooMany {
		tooMany[i] = validCredential()
	}
	assert.ErrorIs(t, v.Validate(ctx, models.BatchCreateRequest{Credentials: tooMany}), ErrTooManyCredentials)

	bad := validCredential()
	bad.Password.Tag = b64(4)
	err := v.Validate(ctx, &models.BatchCreateRequest{Credentials: []models.Credential{validCredential(), bad}})
	assert.ErrorIs(t, err, ErrInvalidTagLength)
	assert.Contains(t, err.Error(), "index 1")

	assert.NoError(t, v.Validate(ctx, models.BatchCreateRequest{Credentials: []models.Credential{validCredential()}}))
}
