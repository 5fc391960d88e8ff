// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/trustme/internal/adapter"
	"github.com/MKhiriev/trustme/internal/app"
	"github.com/MKhiriev/trustme/internal/store"
	"github.com/MKhiriev/trustme/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := adapter.Message(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgNoFieldsToUpdate:
			return validators.ErrNoFieldsToUpdate
		case app.MsgTwoFactorNotConfigured:
			return ErrNotConfigured
		case app.MsgTwoFactorNotEnabled:
			return ErrNotEnabled
		case app.MsgInvalidCode:
			return ErrInvalidCode
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidCredentials:
			return ErrInvalidCredentials
		case app.MsgUnauthenticated:
			return ErrSessionExpired
		case app.MsgTwoFactorRequired:
			return ErrTwoFactorRequired
		}

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrCredentialNotFound

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgUsernameTaken:
			return ErrUsernameTaken
		case app.MsgTwoFactorAlreadyEnabled:
			return ErrAlreadyEnabled
		}
	}

	return err
}
