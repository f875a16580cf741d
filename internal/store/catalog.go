// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/feal94/guitar.io/internal/logger"
	"github.com/feal94/guitar.io/models"
)

// FeedSource supplies the authoritative exercise list the local catalog is
// reconciled against.
type FeedSource interface {
	Fetch(ctx context.Context) ([]models.ExerciseDescriptor, error)
}

// Synchronizer reconciles the local exercises table against the external
// feed: rows whose id left the feed are deleted, changed rows are updated in
// place with their original created_at preserved, and new rows are inserted
// with a fresh created_at. Running a sync twice with the same list leaves the
// table byte-for-byte identical: the final state is a pure function of the
// descriptor set, not of its order.
type Synchronizer struct {
	store  *Store
	feed   FeedSource
	logger *logger.Logger

	// now is swappable so tests can pin created_at stamps.
	now func() time.Time
}

// NewSynchronizer constructs a Synchronizer over store reading from feed.
func NewSynchronizer(store *Store, feed FeedSource, log *logger.Logger) *Synchronizer {
	return &Synchronizer{
		store:  store,
		feed:   feed,
		logger: log,
		now:    time.Now,
	}
}

// Refresh fetches the feed and applies it. A fetch or parse failure is
// logged and swallowed so a dead feed never blocks the caller: the existing
// catalog is simply left untouched. Store-level failures while applying the
// list are still returned.
func (s *Synchronizer) Refresh(ctx context.Context) error {
	list, err := s.feed.Fetch(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("exercise feed unavailable, catalog left untouched")
		return nil
	}

	return s.Sync(ctx, list)
}

// Sync applies list to the exercises table. Every descriptor is validated
// before any row is touched, so an invalid feed element rejects the whole
// sync instead of applying it halfway.
func (s *Synchronizer) Sync(ctx context.Context, list []models.ExerciseDescriptor) error {
	for _, d := range list {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("sync exercises: %w", err)
		}
	}

	rows, err := s.store.Query(ctx, selectCatalogState)
	if err != nil {
		return fmt.Errorf("sync exercises: read catalog: %w", err)
	}

	existing := make(map[string]string, len(rows))
	for _, row := range rows {
		existing[row.String("id")] = row.String("created_at")
	}

	inFeed := make(map[string]bool, len(list))
	for _, d := range list {
		inFeed[d.ID] = true
	}

	// Remove rows whose id left the feed. Progress and session rows that
	// reference a removed exercise become dangling; cleanup is out of scope.
	for id := range existing {
		if inFeed[id] {
			continue
		}
		if err = s.store.Execute(ctx, deleteExercise, id); err != nil {
			return fmt.Errorf("sync exercises: delete %q: %w", id, err)
		}
		s.logger.Info().Str("exercise_id", id).Msg("exercise removed from catalog")
	}

	now := s.now().UTC().Format(time.RFC3339)
	var inserted, updated int
	for _, d := range list {
		imagePath := sqlNullable(d.ImagePath)

		if _, ok := existing[d.ID]; ok {
			// Update keeps the row's original created_at untouched.
			err = s.store.Execute(ctx, updateExercise,
				d.Title, d.Description, d.Difficulty, d.Category, imagePath, d.ID)
			updated++
		} else {
			err = s.store.Execute(ctx, insertExercise,
				d.ID, d.Title, d.Description, d.Difficulty, d.Category, imagePath, now)
			inserted++
		}
		if err != nil {
			return fmt.Errorf("sync exercises: upsert %q: %w", d.ID, err)
		}
	}

	s.logger.Info().
		Int("inserted", inserted).
		Int("updated", updated).
		Int("total", len(list)).
		Msg("exercise catalog synchronized")

	return nil
}

// sqlNullable maps an empty string to NULL for optional text columns.
func sqlNullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
