// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/trustme/internal/validators"
	"github.com/MKhiriev/trustme/models"
)

// CredentialValidationService rejects malformed input before it reaches the
// wrapped [CredentialService]. Validation failures wrap
// [ErrInvalidDataProvided] and the specific validators error.
type CredentialValidationService struct {
	inner     CredentialService
	validator validators.Validator
}

func NewCredentialValidationService() CredentialServiceWrapper {
	return &CredentialValidationService{
		validator: validators.NewCredentialValidator(),
	}
}

func (v *CredentialValidationService) Create(ctx context.Context, credential models.Credential) (models.Credential, error) {
	if err := v.validator.Validate(ctx, credential); err != nil {
		return models.Credential{}, invalid(err)
	}
	return v.inner.Create(ctx, credential)
}

func (v *CredentialValidationService) CreateBatch(ctx context.Context, userID int64, credentials []models.Credential) ([]models.Credential, error) {
	if userID <= 0 {
		return nil, ErrValidationNoUserID
	}

	owned := make([]models.Credential, len(credentials))
	for i, c := range credentials {
		c.UserID = userID
		owned[i] = c
	}
	if err := v.validator.Validate(ctx, models.BatchCreateRequest{Credentials: owned}); err != nil {
		return nil, invalid(err)
	}

	return v.inner.CreateBatch(ctx, userID, owned)
}

func (v *CredentialValidationService) List(ctx context.Context, userID int64, websiteFilter string) ([]models.Credential, error) {
	if userID <= 0 {
		return nil, ErrValidationNoUserID
	}
	return v.inner.List(ctx, userID, websiteFilter)
}

func (v *CredentialValidationService) Get(ctx context.Context, userID, credentialID int64) (models.Credential, error) {
	if userID <= 0 {
		return models.Credential{}, ErrValidationNoUserID
	}
	return v.inner.Get(ctx, userID, credentialID)
}

func (v *CredentialValidationService) Update(ctx context.Context, userID, credentialID int64, patch models.CredentialPatch) (models.Credential, error) {
	if userID <= 0 {
		return models.Credential{}, ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Credential{}, invalid(err)
	}
	return v.inner.Update(ctx, userID, credentialID, patch)
}

func (v *CredentialValidationService) Delete(ctx context.Context, userID, credentialID int64) error {
	if userID <= 0 {
		return ErrValidationNoUserID
	}
	return v.inner.Delete(ctx, userID, credentialID)
}

func (v *CredentialValidationService) Wrap(wrapped CredentialService) CredentialService {
	v.inner = wrapped
	return v
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
