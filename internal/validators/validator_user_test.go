// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/trustme/models"
)

func TestUserValidator(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name string
		user models.User
		want error
	}{
		{"valid", models.User{Username: "alice", MasterPassword: "correct horse"}, nil},
		{"unicode username", models.User{Username: "алиса", MasterPassword: "x"}, nil},
		{"empty username", models.User{MasterPassword: "x"}, ErrInvalidUsername},
		{"padded username", models.User{Username: " alice", MasterPassword: "x"}, ErrInvalidUsername},
		{"long username", models.User{Username: strings.Repeat("a", 65), MasterPassword: "x"}, ErrInvalidUsername},
		{"empty password", models.User{Username: "alice"}, ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.user)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.NoError(t, v.Validate(ctx, &models.User{Username: "bob"}, FieldUsername))
	assert.ErrorIs(t, v.Validate(ctx, models.User{}, "nope"), ErrUnknownField)
}
