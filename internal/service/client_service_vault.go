// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/trustme/internal/adapter"
	"github.com/MKhiriev/trustme/internal/crypto"
	"github.com/MKhiriev/trustme/internal/store"
	"github.com/MKhiriev/trustme/models"
)

type clientVaultService struct {
	auth     ClientAuthService
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	fields   ClientFieldService
}

// NewClientVaultService constructs a [ClientVaultService].
func NewClientVaultService(auth ClientAuthService, sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, fields ClientFieldService) ClientVaultService {
	return &clientVaultService{auth: auth, sessions: sessions, adapter: serverAdapter, fields: fields}
}

func (v *clientVaultService) Add(ctx context.Context, masterPassword string, plain models.PlainCredential) (models.PlainCredential, error) {
	key, err := v.unlock(ctx, masterPassword)
	if err != nil {
		return models.PlainCredential{}, err
	}
	defer crypto.Wipe(key)

	sealed, err := v.fields.SealCredential(plain, key)
	if err != nil {
		return models.PlainCredential{}, err
	}

	created, err := v.adapter.CreateCredential(ctx, sealed)
	if err != nil {
		return models.PlainCredential{}, mapAdapterError(err)
	}

	return v.fields.OpenCredential(created, key)
}

func (v *clientVaultService) Import(ctx context.Context, masterPassword string, plains []models.PlainCredential) ([]models.PlainCredential, error) {
	key, err := v.unlock(ctx, masterPassword)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	sealed := make([]models.Credential, 0, len(plains))
	for i, plain := range plains {
		credential, err := v.fields.SealCredential(plain, key)
		if err != nil {
			return nil, fmt.Errorf("credential %d: %w", i, err)
		}
		sealed = append(sealed, credential)
	}

	created, err := v.adapter.CreateCredentials(ctx, sealed)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	opened := make([]models.PlainCredential, 0, len(created))
	for _, credential := range created {
		plain, err := v.fields.OpenCredential(credential, key)
		if err != nil {
			return nil, err
		}
		opened = append(opened, plain)
	}
	return opened, nil
}

func (v *clientVaultService) List(ctx context.Context, websiteFilter string) ([]models.Credential, error) {
	if err := v.requireUnlocked(ctx); err != nil {
		return nil, err
	}

	credentials, err := v.adapter.ListCredentials(ctx, websiteFilter)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return credentials, nil
}

func (v *clientVaultService) Show(ctx context.Context, masterPassword string, credentialID int64) (models.PlainCredential, error) {
	key, err := v.unlock(ctx, masterPassword)
	if err != nil {
		return models.PlainCredential{}, err
	}
	defer crypto.Wipe(key)

	credential, err := v.adapter.GetCredential(ctx, credentialID)
	if err != nil {
		return models.PlainCredential{}, mapAdapterError(err)
	}

	return v.fields.OpenCredential(credential, key)
}

func (v *clientVaultService) Edit(ctx context.Context, masterPassword string, credentialID int64, patch models.PlainCredentialPatch) (models.PlainCredential, error) {
	if patch.IsEmpty() {
		return models.PlainCredential{}, ErrInvalidDataProvided
	}

	key, err := v.unlock(ctx, masterPassword)
	if err != nil {
		return models.PlainCredential{}, err
	}
	defer crypto.Wipe(key)

	sealed, err := v.fields.SealPatch(patch, key)
	if err != nil {
		return models.PlainCredential{}, err
	}

	updated, err := v.adapter.UpdateCredential(ctx, credentialID, sealed)
	if err != nil {
		return models.PlainCredential{}, mapAdapterError(err)
	}

	return v.fields.OpenCredential(updated, key)
}

func (v *clientVaultService) Remove(ctx context.Context, credentialID int64) error {
	if err := v.requireUnlocked(ctx); err != nil {
		return err
	}
	return mapAdapterError(v.adapter.DeleteCredential(ctx, credentialID))
}

func (v *clientVaultService) requireUnlocked(ctx context.Context) error {
	session, err := v.auth.Session(ctx)
	if err != nil {
		return err
	}
	if !session.VaultUnlocked() {
		return ErrTwoFactorRequired
	}
	return nil
}

// unlock checks masterPassword by logging in again and derives the field key
// from the salt it returns. The refreshed token replaces the stored one,
// except when 2FA is on: login then hands out a pending token, so the vault
// token earned by `2fa verify` is kept.
func (v *clientVaultService) unlock(ctx context.Context, masterPassword string) ([]byte, error) {
	session, err := v.auth.Session(ctx)
	if err != nil {
		return nil, err
	}
	if !session.VaultUnlocked() {
		return nil, ErrTwoFactorRequired
	}

	login, err := v.adapter.Login(ctx, models.User{Username: session.Username, MasterPassword: masterPassword})
	if err != nil {
		return nil, mapAdapterError(err)
	}

	session.Salt = login.Salt
	if login.TwoFactorEnabled && session.TwoFactorEnabled && session.TwoFactorVerified {
		v.adapter.SetToken(session.AccessToken)
	} else {
		session.AccessToken = login.AccessToken
	}
	if login.TwoFactorEnabled != session.TwoFactorEnabled {
		// 2FA was toggled from another session
		session.TwoFactorEnabled = login.TwoFactorEnabled
		session.TwoFactorVerified = false
	}
	if err = v.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	if !session.VaultUnlocked() {
		return nil, ErrTwoFactorRequired
	}

	return v.fields.DeriveKey(masterPassword, login.Salt)
}
