// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/trustme/models"
)

// FieldMasterPassword targets the plaintext master password sent at
// registration and login.
const FieldMasterPassword = "master_password"

const maxUsernameLength = 64

// UserValidator checks registration and login input.
type UserValidator struct{}

// NewUserValidator constructs a [Validator] for account payloads.
func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var user models.User
	switch value := obj.(type) {
	case models.User:
		user = value
	case *models.User:
		user = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldMasterPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			n := utf8.RuneCountInString(user.Username)
			if n == 0 || n > maxUsernameLength || strings.TrimSpace(user.Username) != user.Username {
				return ErrInvalidUsername
			}
		case FieldMasterPassword:
			if user.MasterPassword == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
