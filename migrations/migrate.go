// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

// Package migrations declares the relational schema of the guitar.io store as
// an ordered list of versioned goose migrations embedded in the binary.
//
// Version 00001 is the original four-table schema (users, songs, routines,
// practice_sessions); version 00002 introduces the exercise catalog
// (exercises, exercise_progress, and the exercise_id column on
// practice_sessions). Running Migrate on every startup is safe: goose tracks
// the applied version inside the database image itself, and the base DDL uses
// IF NOT EXISTS so that a legacy image predating version tracking migrates
// without touching existing rows.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate brings db up to the latest declared schema version. After it
// returns the live catalog is a superset-or-equal of the current schema and
// no pre-existing rows have been dropped or altered.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
