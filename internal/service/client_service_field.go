// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/trustme/internal/crypto"
	"github.com/MKhiriev/trustme/models"
)

type clientFieldService struct {
	deriver crypto.KeyDeriver
	cipher  crypto.EnvelopeCipher
}

// NewClientFieldService constructs a [ClientFieldService] from a key deriver
// and an envelope cipher.
func NewClientFieldService(deriver crypto.KeyDeriver, cipher crypto.EnvelopeCipher) ClientFieldService {
	return &clientFieldService{deriver: deriver, cipher: cipher}
}

func (f *clientFieldService) DeriveKey(masterPassword, salt string) ([]byte, error) {
	saltBytes, err := crypto.DecodeSalt(salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}

	key, err := f.deriver.DeriveKey(masterPassword, saltBytes)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}

func (f *clientFieldService) SealCredential(plain models.PlainCredential, key []byte) (models.Credential, error) {
	credential := models.Credential{ID: plain.ID, WebsiteURL: plain.WebsiteURL}

	var err error
	if credential.Username, err = f.cipher.Seal(plain.Username, key); err != nil {
		return models.Credential{}, fmt.Errorf("seal username: %w", err)
	}
	if credential.Password, err = f.cipher.Seal(plain.Password, key); err != nil {
		return models.Credential{}, fmt.Errorf("seal password: %w", err)
	}
	if plain.Notes != "" {
		notes, err := f.cipher.Seal(plain.Notes, key)
		if err != nil {
			return models.Credential{}, fmt.Errorf("seal notes: %w", err)
		}
		credential.Notes = &notes
	}

	return credential, nil
}

func (f *clientFieldService) OpenCredential(credential models.Credential, key []byte) (models.PlainCredential, error) {
	plain := models.PlainCredential{
		ID:         credential.ID,
		WebsiteURL: credential.WebsiteURL,
		CreatedAt:  credential.CreatedAt,
		UpdatedAt:  credential.UpdatedAt,
	}

	var err error
	if plain.Username, err = f.cipher.Open(credential.Username, key); err != nil {
		return models.PlainCredential{}, fmt.Errorf("open username: %w", err)
	}
	if plain.Password, err = f.cipher.Open(credential.Password, key); err != nil {
		return models.PlainCredential{}, fmt.Errorf("open password: %w", err)
	}
	if credential.Notes != nil {
		if plain.Notes, err = f.cipher.Open(*credential.Notes, key); err != nil {
			return models.PlainCredential{}, fmt.Errorf("open notes: %w", err)
		}
	}

	return plain, nil
}

func (f *clientFieldService) SealPatch(patch models.PlainCredentialPatch, key []byte) (models.CredentialPatch, error) {
	sealed := models.CredentialPatch{WebsiteURL: patch.WebsiteURL, ClearNotes: patch.ClearNotes}

	seal := func(name string, value *string) (*models.EncryptedField, error) {
		if value == nil {
			return nil, nil
		}
		field, err := f.cipher.Seal(*value, key)
		if err != nil {
			return nil, fmt.Errorf("seal %s: %w", name, err)
		}
		return &field, nil
	}

	var err error
	if sealed.Username, err = seal("username", patch.Username); err != nil {
		return models.CredentialPatch{}, err
	}
	if sealed.Password, err = seal("password", patch.Password); err != nil {
		return models.CredentialPatch{}, err
	}
	if sealed.Notes, err = seal("notes", patch.Notes); err != nil {
		return models.CredentialPatch{}, err
	}

	return sealed, nil
}
