// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package store

import "errors"

// Sentinel errors returned by the store. Callers should use [errors.Is] to
// match against these values; the store never retries a failed operation on
// its own.
var (
	// ErrNotInitialized is returned when Query or Execute is called before
	// Initialize has completed successfully.
	ErrNotInitialized = errors.New("store is not initialized")

	// ErrInitialize is returned when the engine cannot be opened, a persisted
	// image cannot be deserialized, or migration fails. It is fatal to all
	// store operations: the store deliberately never falls back to a fresh
	// empty database, to avoid silently losing the persisted data.
	ErrInitialize = errors.New("store initialization failed")

	// ErrPersist is returned when the database image cannot be written to the
	// persistent slot after a mutation. The in-memory engine state remains
	// valid and usable for the rest of the session, but the change will not
	// survive a reload.
	ErrPersist = errors.New("failed to persist database image")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the engine fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails for a reason other than a constraint
	// violation.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrConstraintViolation is returned when a statement violates a
	// constraint the engine enforces, such as a primary-key collision on
	// INSERT without OR REPLACE.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrScanningRows is returned when scanning column values during
	// result-set iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
