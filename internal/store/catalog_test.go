// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/feal94/guitar.io/internal/logger"
	"github.com/feal94/guitar.io/models"
)

// stubFeed is a FeedSource returning a canned list or error.
type stubFeed struct {
	list    []models.ExerciseDescriptor
	err     error
	fetches int
}

func (f *stubFeed) Fetch(context.Context) ([]models.ExerciseDescriptor, error) {
	f.fetches++
	return f.list, f.err
}

func newTestSynchronizer(t *testing.T, s *Store, at time.Time) *Synchronizer {
	t.Helper()
	sync := NewSynchronizer(s, &stubFeed{}, logger.Nop())
	sync.now = func() time.Time { return at }
	return sync
}

func catalogState(t *testing.T, s *Store) []Row {
	t.Helper()
	rows, err := s.Query(context.Background(),
		`SELECT id, title, description, difficulty, category, image_path, created_at
		 FROM exercises ORDER BY id`)
	if err != nil {
		t.Fatalf("failed to read catalog: %v", err)
	}
	return rows
}

func testDescriptors() []models.ExerciseDescriptor {
	return []models.ExerciseDescriptor{
		{ID: "spider-walk", Title: "Spider Walk", Description: "Chromatic finger independence.", Difficulty: "beginner", Category: "technique"},
		{ID: "caged-c", Title: "CAGED C Shape", Description: "C shape across the neck.", Difficulty: "intermediate", Category: "theory"},
		{ID: "sweep-3", Title: "Three-String Sweep", Description: "Minor arpeggio sweeps.", Difficulty: "advanced", Category: "technique", ImagePath: "img/sweep3.png"},
	}
}

func TestSynchronizer_Sync_InsertsNewExercises(t *testing.T) {
	s := newTestStore(t, newTestBackend(t))
	sync := newTestSynchronizer(t, s, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))

	if err := sync.Sync(context.Background(), testDescriptors()); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	state := catalogState(t, s)
	if len(state) != 3 {
		t.Fatalf("expected 3 exercises, got %d", len(state))
	}
	if got := state[0].String("id"); got != "caged-c" {
		t.Errorf("expected first id caged-c, got %q", got)
	}
	if got := state[1].String("created_at"); got != "2026-01-10T09:00:00Z" {
		t.Errorf("expected created_at stamped from clock, got %q", got)
	}
}

// TestSynchronizer_Sync_Idempotent runs the same list twice, at different
// clock times, and expects a byte-for-byte identical catalog.
func TestSynchronizer_Sync_Idempotent(t *testing.T) {
	s := newTestStore(t, newTestBackend(t))
	sync := newTestSynchronizer(t, s, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))

	if err := sync.Sync(context.Background(), testDescriptors()); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}
	before := catalogState(t, s)

	sync.now = func() time.Time { return time.Date(2026, 2, 20, 18, 30, 0, 0, time.UTC) }
	if err := sync.Sync(context.Background(), testDescriptors()); err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
	after := catalogState(t, s)

	if !reflect.DeepEqual(before, after) {
		t.Fatalf("catalog changed on identical re-sync:\nbefore: %v\nafter:  %v", before, after)
	}
}

// TestSynchronizer_Sync_OrderIndependent feeds the same set in reverse order
// and expects the same final state.
func TestSynchronizer_Sync_OrderIndependent(t *testing.T) {
	at := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	forward := newTestStore(t, newTestBackend(t))
	if err := newTestSynchronizer(t, forward, at).Sync(context.Background(), testDescriptors()); err != nil {
		t.Fatalf("forward sync failed: %v", err)
	}

	reversed := testDescriptors()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	backward := newTestStore(t, newTestBackend(t))
	if err := newTestSynchronizer(t, backward, at).Sync(context.Background(), reversed); err != nil {
		t.Fatalf("backward sync failed: %v", err)
	}

	if !reflect.DeepEqual(catalogState(t, forward), catalogState(t, backward)) {
		t.Fatal("catalog state depends on descriptor order")
	}
}

// TestSynchronizer_Sync_PreservesCreatedAt changes a descriptor's content and
// re-syncs later: the row must carry the new content but the original
// created_at.
func TestSynchronizer_Sync_PreservesCreatedAt(t *testing.T) {
	s := newTestStore(t, newTestBackend(t))
	sync := newTestSynchronizer(t, s, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))

	list := testDescriptors()
	if err := sync.Sync(context.Background(), list); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}

	list[0].Title = "Spider Walk (updated)"
	sync.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	if err := sync.Sync(context.Background(), list); err != nil {
		t.Fatalf("second sync failed: %v", err)
	}

	row, err := s.QueryOne(context.Background(),
		`SELECT title, created_at FROM exercises WHERE id = ?`, "spider-walk")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if got := row.String("title"); got != "Spider Walk (updated)" {
		t.Errorf("expected updated title, got %q", got)
	}
	if got := row.String("created_at"); got != "2026-01-10T09:00:00Z" {
		t.Errorf("expected original created_at preserved, got %q", got)
	}
}

func TestSynchronizer_Sync_RemovesAbsentExercises(t *testing.T) {
	s := newTestStore(t, newTestBackend(t))
	sync := newTestSynchronizer(t, s, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))

	if err := sync.Sync(context.Background(), testDescriptors()); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}

	shrunk := testDescriptors()[:2]
	if err := sync.Sync(context.Background(), shrunk); err != nil {
		t.Fatalf("second sync failed: %v", err)
	}

	row, err := s.QueryOne(context.Background(),
		`SELECT id FROM exercises WHERE id = ?`, "sweep-3")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if row != nil {
		t.Fatal("exercise absent from the feed still present after sync")
	}
	if state := catalogState(t, s); len(state) != 2 {
		t.Fatalf("expected 2 exercises after shrink, got %d", len(state))
	}
}

// TestSynchronizer_Sync_InvalidDescriptorRejectsWholeList puts one invalid
// element into the list and expects no row of the list to be applied.
func TestSynchronizer_Sync_InvalidDescriptorRejectsWholeList(t *testing.T) {
	s := newTestStore(t, newTestBackend(t))
	sync := newTestSynchronizer(t, s, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))

	list := testDescriptors()
	list[2].Difficulty = "impossible"

	if err := sync.Sync(context.Background(), list); err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if state := catalogState(t, s); len(state) != 0 {
		t.Fatalf("invalid feed partially applied: %d rows", len(state))
	}
}

// TestSynchronizer_Refresh_FeedErrorLeavesCatalogUntouched simulates a dead
// feed: Refresh must swallow the error and keep the existing catalog.
func TestSynchronizer_Refresh_FeedErrorLeavesCatalogUntouched(t *testing.T) {
	s := newTestStore(t, newTestBackend(t))
	sync := newTestSynchronizer(t, s, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))

	if err := sync.Sync(context.Background(), testDescriptors()); err != nil {
		t.Fatalf("seed sync failed: %v", err)
	}

	sync.feed = &stubFeed{err: errors.New("connection refused")}
	if err := sync.Refresh(context.Background()); err != nil {
		t.Fatalf("expected feed error to be swallowed, got %v", err)
	}
	if state := catalogState(t, s); len(state) != 3 {
		t.Fatalf("catalog changed on failed refresh: %d rows", len(state))
	}
}

// TestSynchronizer_Refresh_EmptyFeedClearsCatalog is the flip side: a feed
// that successfully returns an empty list removes everything.
func TestSynchronizer_Refresh_EmptyFeedClearsCatalog(t *testing.T) {
	s := newTestStore(t, newTestBackend(t))
	sync := newTestSynchronizer(t, s, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))

	if err := sync.Sync(context.Background(), testDescriptors()); err != nil {
		t.Fatalf("seed sync failed: %v", err)
	}

	sync.feed = &stubFeed{list: nil}
	if err := sync.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if state := catalogState(t, s); len(state) != 0 {
		t.Fatalf("expected empty catalog, got %d rows", len(state))
	}
}
