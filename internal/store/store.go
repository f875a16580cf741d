// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

// Package store implements the embedded persistent data store: an in-memory
// SQLite engine whose full binary image is kept in a durable key-value slot.
//
// The engine is loaded (and migrated) once per process by Initialize; all
// feature code reads and writes through Query, QueryOne and Execute. Every
// successful Execute re-serializes the whole database and overwrites the
// persisted slot, which makes writes O(database size) in the persistence
// step. That is the accepted cost of the single-image design.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/mattn/go-sqlite3"

	"github.com/feal94/guitar.io/internal/logger"
	"github.com/feal94/guitar.io/migrations"
)

// Store owns the engine handle and its initialization state. It is
// constructed explicitly and passed by reference to all callers; there is no
// package-level instance.
//
// A single mutex serializes all access: the application is a one-writer
// system and the in-memory database lives on a connection pool pinned to
// exactly one connection.
type Store struct {
	mu          sync.Mutex
	backend     *Backend
	logger      *logger.Logger
	db          *sql.DB
	initialized bool
}

// New returns a Store over backend. The engine is not opened until
// Initialize is called.
func New(backend *Backend, log *logger.Logger) *Store {
	return &Store{backend: backend, logger: log}
}

// Initialize opens the embedded engine exactly once; repeated calls are safe
// no-ops. If the backend holds a persisted image it is deserialized into the
// engine and pending migrations are applied; otherwise a fresh database is
// created with the full current schema. A corrupt image or a failed
// migration is fatal ([ErrInitialize]); the store never falls back to an
// empty database over existing data.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	image, found, err := s.backend.LoadImage()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInitialize, err)
	}

	db, err := openEngine(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInitialize, err)
	}

	if found {
		if err = deserializeEngine(ctx, db, image); err != nil {
			db.Close()
			return fmt.Errorf("%w: deserialize image: %v", ErrInitialize, err)
		}
		s.logger.Info().Int("image_bytes", len(image)).Msg("database image loaded")
	} else {
		s.logger.Info().Msg("no persisted image found, creating new database")
	}

	if err = migrations.Migrate(db); err != nil {
		db.Close()
		return fmt.Errorf("%w: %v", ErrInitialize, err)
	}

	s.db = db
	s.initialized = true

	// Persist the post-migration image. A failure here is logged but does
	// not fail initialization: the engine is usable and the next successful
	// write persists again.
	if err = s.persistLocked(ctx); err != nil {
		s.logger.Error().Err(err).Msg("persist after initialize failed")
	}

	return nil
}

// Query runs a read-only parameterized statement and returns the matching
// rows. The result is never nil: no matches yield an empty slice. Values must
// always travel through args, never be formatted into the query text.
func (s *Store) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("query failed")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	out := make([]Row, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		pointers := make([]any, len(cols))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err = rows.Scan(pointers...); err != nil {
			s.logger.Error().Err(err).Str("query", query).Msg("row scan failed")
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			row[col] = normalizeValue(values[i])
		}
		out = append(out, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return out, nil
}

// QueryOne returns the first row matched by query, or nil when nothing
// matches.
func (s *Store) QueryOne(ctx context.Context, query string, args ...any) (Row, error) {
	rows, err := s.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return rows[0], nil
}

// Execute runs a mutating parameterized statement and then persists the full
// database image. A constraint violation is reported as
// [ErrConstraintViolation] so callers can turn it into a domain message
// (e.g. "account already exists"). When the statement succeeds but the image
// cannot be saved, Execute returns [ErrPersist]: the in-memory change is
// live for the rest of the session but will not survive a reload.
func (s *Store) Execute(ctx context.Context, query string, args ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("execute failed")
		return classifyExecError(err)
	}

	if err := s.persistLocked(ctx); err != nil {
		s.logger.Error().Err(err).Msg("persist after write failed")
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	return nil
}

// Persist serializes the live engine and overwrites the persisted slot.
// Execute already does this after every write; Persist exists for callers
// that need an explicit save point.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	if err := s.persistLocked(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	return nil
}

// Reset drops the persisted image and replaces the live engine with a fresh
// one carrying the full current schema. All relational data is lost.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}

	if err := s.backend.DropImage(); err != nil {
		return err
	}

	db, err := openEngine(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInitialize, err)
	}
	if err = migrations.Migrate(db); err != nil {
		db.Close()
		return fmt.Errorf("%w: %v", ErrInitialize, err)
	}

	s.db.Close()
	s.db = db
	s.logger.Info().Msg("database reset complete")

	if err = s.persistLocked(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	return nil
}

// Close releases the engine. The backend is owned by the caller and stays
// open.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.initialized = false

	return err
}

func (s *Store) persistLocked(ctx context.Context) error {
	image, err := serializeEngine(ctx, s.db)
	if err != nil {
		return err
	}

	return s.backend.SaveImage(image)
}

// openEngine opens an in-memory SQLite database. The pool is pinned to a
// single connection with no lifetime limits: the memory database lives
// exactly as long as that connection, so the pool must never rotate it.
func openEngine(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open engine: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping engine: %w", err)
	}

	return db, nil
}

// serializeEngine exports the engine's native binary image
// (sqlite3_serialize) for the "main" schema.
func serializeEngine(ctx context.Context, db *sql.DB) ([]byte, error) {
	var image []byte
	err := withRawConn(ctx, db, func(sc *sqlite3.SQLiteConn) error {
		b, err := sc.Serialize("main")
		if err != nil {
			return fmt.Errorf("serialize: %w", err)
		}
		image = append([]byte(nil), b...)
		return nil
	})

	return image, err
}

// deserializeEngine replaces the engine's "main" schema with the given image
// (sqlite3_deserialize). The image must be a prior serializeEngine export.
//
// The image is deserialized into a scratch connection and copied into the
// live one through the online backup API. A connection sitting directly on
// the deserialized buffer is fixed at the image's byte size and fails with
// SQLITE_FULL on the first write that needs a new page; the copy lands the
// data in an ordinary growable memory database.
func deserializeEngine(ctx context.Context, db *sql.DB, image []byte) error {
	scratch, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return fmt.Errorf("open scratch engine: %w", err)
	}
	defer scratch.Close()
	scratch.SetMaxOpenConns(1)

	return withRawConn(ctx, scratch, func(src *sqlite3.SQLiteConn) error {
		if err := src.Deserialize(image, "main"); err != nil {
			return fmt.Errorf("deserialize: %w", err)
		}
		return withRawConn(ctx, db, func(dst *sqlite3.SQLiteConn) error {
			return copyDatabase(dst, src)
		})
	})
}

// copyDatabase replaces dst's "main" schema with src's contents via
// sqlite3_backup, in a single step.
func copyDatabase(dst, src *sqlite3.SQLiteConn) error {
	backup, err := dst.Backup("main", src, "main")
	if err != nil {
		return fmt.Errorf("backup init: %w", err)
	}

	if _, err = backup.Step(-1); err != nil {
		backup.Finish()
		return fmt.Errorf("backup copy: %w", err)
	}

	return backup.Finish()
}

// withRawConn runs fn against the driver-level SQLite connection backing the
// single-connection pool.
func withRawConn(ctx context.Context, db *sql.DB, fn func(*sqlite3.SQLiteConn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return conn.Raw(func(driverConn any) error {
		sc, ok := driverConn.(*sqlite3.SQLiteConn)
		if !ok {
			return fmt.Errorf("unexpected driver connection type %T", driverConn)
		}
		return fn(sc)
	})
}

func classifyExecError(err error) error {
	var se sqlite3.Error
	if errors.As(err, &se) && se.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}

	return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
}

// normalizeValue maps driver-level values into the small set Row accessors
// understand; BLOB/TEXT both arrive as []byte from the sqlite3 driver.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
