// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/trustme/internal/crypto"
	"github.com/MKhiriev/trustme/models"
)

// Field names accepted by [CredentialValidator].
const (
	FieldUserID      = "user_id"
	FieldWebsiteURL  = "website_url"
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldNotes       = "notes"
	FieldCredentials = "credentials"
)

const (
	// MaxBatchSize caps the number of records in one batch create.
	MaxBatchSize = 100

	maxWebsiteURLLength = 2048
)

// CredentialValidator checks credential records, patches and batches. It
// only inspects the shape of encrypted triples; the server cannot and does
// not decrypt them.
type CredentialValidator struct{}

// NewCredentialValidator constructs a [Validator] for credential payloads.
func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		return v.validateCredential(ctx, *value, fields...)

	case models.CredentialPatch:
		return v.validatePatch(ctx, value)
	case *models.CredentialPatch:
		return v.validatePatch(ctx, *value)

	case models.BatchCreateRequest:
		return v.validateBatch(ctx, value)
	case *models.BatchCreateRequest:
		return v.validateBatch(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateCredential(ctx context.Context, c models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldWebsiteURL, FieldUsername, FieldPassword, FieldNotes}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if c.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldWebsiteURL:
			if err := validateWebsiteURL(c.WebsiteURL); err != nil {
				return err
			}
		case FieldUsername:
			if err := validateField(c.Username); err != nil {
				return fmt.Errorf("%s: %w", FieldUsername, err)
			}
		case FieldPassword:
			if err := validateField(c.Password); err != nil {
				return fmt.Errorf("%s: %w", FieldPassword, err)
			}
		case FieldNotes:
			if c.Notes == nil {
				continue
			}
			if err := validateField(*c.Notes); err != nil {
				return fmt.Errorf("%s: %w", FieldNotes, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialValidator) validatePatch(_ context.Context, patch models.CredentialPatch) error {
	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if patch.ClearNotes && patch.Notes != nil {
		return ErrConflictingNotes
	}

	if patch.WebsiteURL != nil {
		if err := validateWebsiteURL(*patch.WebsiteURL); err != nil {
			return err
		}
	}

	triples := []struct {
		name  string
		field *models.EncryptedField
	}{
		{FieldUsername, patch.Username},
		{FieldPassword, patch.Password},
		{FieldNotes, patch.Notes},
	}
	for _, t := range triples {
		if t.field == nil {
			continue
		}
		if err := validateField(*t.field); err != nil {
			return fmt.Errorf("%s: %w", t.name, err)
		}
	}

	return nil
}

func (v *CredentialValidator) validateBatch(ctx context.Context, request models.BatchCreateRequest) error {
	if len(request.Credentials) == 0 {
		return ErrEmptyCredentials
	}
	if len(request.Credentials) > MaxBatchSize {
		return ErrTooManyCredentials
	}

	for i, c := range request.Credentials {
		if err := v.validateCredential(ctx, c); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
	}

	return nil
}

func validateWebsiteURL(url string) error {
	switch {
	case url == "":
		return ErrEmptyWebsiteURL
	case utf8.RuneCountInString(url) > maxWebsiteURLLength:
		return ErrWebsiteURLTooLong
	}
	return nil
}

// validateField checks that a triple is complete and decodes to the sizes
// AES-GCM produces. An empty ciphertext is legal: it seals an empty string.
func validateField(f models.EncryptedField) error {
	if f.IsZero() {
		return ErrMissingField
	}
	if f.Nonce == "" || f.Tag == "" {
		return ErrIncompleteField
	}

	_, nonce, tag, err := crypto.DecodeField(f)
	if err != nil {
		if errors.Is(err, crypto.ErrDecoding) || errors.Is(err, crypto.ErrAuthentication) {
			return ErrMalformedField
		}
		return err
	}
	if len(nonce) != crypto.NonceSize {
		return ErrInvalidNonceLength
	}
	if len(tag) != crypto.TagSize {
		return ErrInvalidTagLength
	}

	return nil
}
