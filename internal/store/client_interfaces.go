// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/trustme/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the single local login session of the client.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	// LoadSession returns [ErrSessionNotFound] when nobody is logged in.
	LoadSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}
