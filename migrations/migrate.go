// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema and applies it with goose.
//
// postgres/ holds the server schema, sqlite/ the client session schema.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var errNilDB = errors.New("migration error: db is nil")

// Migrate applies the server schema to a PostgreSQL database opened with
// the pgx stdlib driver.
func Migrate(db *sql.DB) error {
	return migrate(db, "pgx", "postgres")
}

// MigrateSQLite applies the client session schema.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, "sqlite3", "sqlite")
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return errNilDB
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
