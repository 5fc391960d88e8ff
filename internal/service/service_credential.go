// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/internal/store"
	"github.com/MKhiriev/trustme/models"
)

// credentialService persists encrypted triples verbatim. Input is checked by
// the validation wrapper, see [NewCredentialValidationService].
type credentialService struct {
	credentialRepository store.CredentialRepository
	logger               *logger.Logger
}

// NewCredentialService constructs the storage-facing [CredentialService].
func NewCredentialService(credentialRepository store.CredentialRepository, logger *logger.Logger) CredentialService {
	return &credentialService{
		credentialRepository: credentialRepository,
		logger:               logger,
	}
}

func (s *credentialService) Create(ctx context.Context, credential models.Credential) (models.Credential, error) {
	saved, err := s.credentialRepository.CreateCredential(ctx, credential)
	if err != nil {
		return models.Credential{}, fmt.Errorf("error saving credential: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("credential_id", saved.ID).Msg("credential created")
	return saved, nil
}

func (s *credentialService) CreateBatch(ctx context.Context, userID int64, credentials []models.Credential) ([]models.Credential, error) {
	owned := make([]models.Credential, len(credentials))
	for i, c := range credentials {
		c.UserID = userID
		owned[i] = c
	}

	saved, err := s.credentialRepository.CreateCredentials(ctx, owned)
	if err != nil {
		return nil, fmt.Errorf("error saving credentials: %w", err)
	}

	logger.FromContext(ctx).Debug().Int("count", len(saved)).Msg("credentials created")
	return saved, nil
}

func (s *credentialService) List(ctx context.Context, userID int64, websiteFilter string) ([]models.Credential, error) {
	credentials, err := s.credentialRepository.ListCredentials(ctx, userID, websiteFilter)
	if err != nil {
		return nil, fmt.Errorf("error listing credentials: %w", err)
	}
	return credentials, nil
}

func (s *credentialService) Get(ctx context.Context, userID, credentialID int64) (models.Credential, error) {
	credential, err := s.credentialRepository.GetCredential(ctx, userID, credentialID)
	if err != nil {
		return models.Credential{}, fmt.Errorf("error loading credential: %w", err)
	}
	return credential, nil
}

func (s *credentialService) Update(ctx context.Context, userID, credentialID int64, patch models.CredentialPatch) (models.Credential, error) {
	credential, err := s.credentialRepository.UpdateCredential(ctx, userID, credentialID, patch)
	if err != nil {
		return models.Credential{}, fmt.Errorf("error updating credential: %w", err)
	}
	return credential, nil
}

func (s *credentialService) Delete(ctx context.Context, userID, credentialID int64) error {
	if err := s.credentialRepository.DeleteCredential(ctx, userID, credentialID); err != nil {
		return fmt.Errorf("error deleting credential: %w", err)
	}
	return nil
}
