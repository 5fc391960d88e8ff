// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.MatchExpectationsInOrder(false)

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}
	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	for name, fn := range map[string]func() error{
		"postgres": func() error { return Migrate(nil) },
		"sqlite":   func() error { return MigrateSQLite(nil) },
	} {
		err := fn()
		if err == nil {
			t.Fatalf("%s: expected error when db is nil, got nil", name)
		}
		if !strings.Contains(err.Error(), "db is nil") {
			t.Errorf("%s: expected 'db is nil' error, got: %v", name, err)
		}
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	for _, dir := range []string{"postgres", "sqlite"} {
		files, err := fs.Glob(embedMigrations, dir+"/*.sql")
		if err != nil {
			t.Fatalf("glob %s: %v", dir, err)
		}
		if len(files) == 0 {
			t.Fatalf("no migrations embedded for %s", dir)
		}
		for _, f := range files {
			body, err := fs.ReadFile(embedMigrations, f)
			if err != nil {
				t.Fatalf("read %s: %v", f, err)
			}
			if !strings.Contains(string(body), "-- +goose Up") || !strings.Contains(string(body), "-- +goose Down") {
				t.Errorf("%s is missing goose annotations", f)
			}
		}
	}
}

func TestUsersSchemaEnforcesTwoFactorInvariant(t *testing.T) {
	body, err := fs.ReadFile(embedMigrations, "postgres/00001_create_users.sql")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "CHECK (NOT two_factor_enabled OR two_factor_secret IS NOT NULL)") {
		t.Error("users table must require a secret when 2FA is enabled")
	}
}
