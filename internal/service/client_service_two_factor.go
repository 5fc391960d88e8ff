// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/trustme/internal/adapter"
	"github.com/MKhiriev/trustme/internal/store"
	"github.com/MKhiriev/trustme/models"
)

type clientTwoFactorService struct {
	auth     ClientAuthService
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
}

// NewClientTwoFactorService constructs a [ClientTwoFactorService] on top of
// the session managed by auth.
func NewClientTwoFactorService(auth ClientAuthService, sessions store.SessionRepository, serverAdapter adapter.ServerAdapter) ClientTwoFactorService {
	return &clientTwoFactorService{auth: auth, sessions: sessions, adapter: serverAdapter}
}

func (t *clientTwoFactorService) Setup(ctx context.Context) (models.TwoFactorSetup, error) {
	if _, err := t.auth.Session(ctx); err != nil {
		return models.TwoFactorSetup{}, err
	}

	setup, err := t.adapter.SetupTwoFactor(ctx)
	if err != nil {
		return models.TwoFactorSetup{}, mapAdapterError(err)
	}
	return setup, nil
}

// Verify also covers the second factor of a login: once 2FA is enabled, a
// fresh session stays locked until a code is verified here.
func (t *clientTwoFactorService) Verify(ctx context.Context, code string) error {
	session, err := t.auth.Session(ctx)
	if err != nil {
		return err
	}

	status, err := t.adapter.VerifyTwoFactor(ctx, code)
	if err != nil {
		return mapAdapterError(err)
	}

	session.TwoFactorEnabled = status.Enabled
	session.TwoFactorVerified = true
	if status.AccessToken != "" {
		session.AccessToken = status.AccessToken
	}
	if err = t.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (t *clientTwoFactorService) Disable(ctx context.Context, code string) error {
	session, err := t.auth.Session(ctx)
	if err != nil {
		return err
	}

	if _, err = t.adapter.DisableTwoFactor(ctx, code); err != nil {
		return mapAdapterError(err)
	}

	session.TwoFactorEnabled = false
	session.TwoFactorVerified = false
	if err = t.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
