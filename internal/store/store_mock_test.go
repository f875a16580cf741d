// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/feal94/guitar.io/internal/logger"
)

// newMockedStore builds a Store over a sqlmock handle so driver-level
// failures can be scripted. The mock driver cannot serialize an image, which
// also makes it the easiest way to exercise the persist-failure path.
func newMockedStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &Store{db: db, initialized: true, logger: logger.Nop()}, mock
}

func TestStore_Query_DriverError(t *testing.T) {
	s, mock := newMockedStore(t)

	mock.ExpectQuery("SELECT email_hash FROM users").
		WillReturnError(errors.New("db connection lost"))

	_, err := s.Query(context.Background(), `SELECT email_hash FROM users`)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestStore_Query_RowIterationError(t *testing.T) {
	s, mock := newMockedStore(t)

	rows := sqlmock.NewRows([]string{"email_hash"}).
		AddRow("hash-1").
		RowError(0, errors.New("read failed mid-iteration"))
	mock.ExpectQuery("SELECT email_hash FROM users").WillReturnRows(rows)

	_, err := s.Query(context.Background(), `SELECT email_hash FROM users`)
	if !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}

func TestStore_Query_NormalizesByteColumns(t *testing.T) {
	s, mock := newMockedStore(t)

	rows := sqlmock.NewRows([]string{"title"}).AddRow([]byte("Blackbird"))
	mock.ExpectQuery("SELECT title FROM songs").WillReturnRows(rows)

	out, err := s.Query(context.Background(), `SELECT title FROM songs`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	if got := out[0].String("title"); got != "Blackbird" {
		t.Errorf("expected title=Blackbird, got %q", got)
	}
}

// TestStore_Execute_PersistFailureReported verifies that a statement that
// succeeds but cannot be persisted comes back as ErrPersist rather than nil.
func TestStore_Execute_PersistFailureReported(t *testing.T) {
	s, mock := newMockedStore(t)

	mock.ExpectExec("DELETE FROM songs").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Execute(context.Background(), `DELETE FROM songs WHERE id = ?`, 1)
	if !errors.Is(err, ErrPersist) {
		t.Fatalf("expected ErrPersist, got %v", err)
	}
}

func TestStore_Execute_DriverError(t *testing.T) {
	s, mock := newMockedStore(t)

	mock.ExpectExec("DELETE FROM songs").
		WillReturnError(errors.New("disk I/O error"))

	err := s.Execute(context.Background(), `DELETE FROM songs WHERE id = ?`, 1)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
