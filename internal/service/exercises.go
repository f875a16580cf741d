// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package service

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/feal94/guitar.io/internal/logger"
	"github.com/feal94/guitar.io/internal/store"
	"github.com/feal94/guitar.io/models"
)

// ExerciseService exposes the global exercise catalog together with the
// calling user's progress, and owns opportunistic catalog refreshes.
type ExerciseService struct {
	store        *store.Store
	synchronizer *store.Synchronizer
	logger       *logger.Logger
}

// NewExerciseService constructs an ExerciseService.
func NewExerciseService(st *store.Store, sync *store.Synchronizer, log *logger.Logger) *ExerciseService {
	return &ExerciseService{store: st, synchronizer: sync, logger: log}
}

// Refresh reconciles the local catalog against the external feed. A dead
// feed leaves the catalog untouched; see [store.Synchronizer.Refresh].
func (e *ExerciseService) Refresh(ctx context.Context) error {
	return e.synchronizer.Refresh(ctx)
}

// difficultyRank orders beginner before intermediate before advanced;
// sorting the raw difficulty text would put advanced first.
const difficultyRank = `CASE e.difficulty
	WHEN 'beginner' THEN 0
	WHEN 'intermediate' THEN 1
	ELSE 2
END`

// List returns the catalog joined with the user's progress, ordered by
// difficulty then title. An empty or "all" category returns everything.
func (e *ExerciseService) List(ctx context.Context, emailHash, category string) ([]models.ExerciseWithProgress, error) {
	builder := sq.Select(
		"e.id", "e.title", "e.description", "e.difficulty", "e.category", "e.image_path", "e.created_at",
		"ep.id AS progress_id", "ep.times_practiced", "ep.last_practiced", "ep.completed").
		From("exercises e").
		LeftJoin("exercise_progress ep ON e.id = ep.exercise_id AND ep.user_email_hash = ?", emailHash).
		OrderBy(difficultyRank, "e.title")
	if category != "" && category != "all" {
		builder = builder.Where(sq.Eq{"e.category": category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list exercises: build query: %w", err)
	}

	rows, err := e.store.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	out := make([]models.ExerciseWithProgress, 0, len(rows))
	for _, row := range rows {
		out = append(out, exerciseWithProgressFromRow(emailHash, row))
	}

	return out, nil
}

// Get returns one exercise with the user's progress, or
// [ErrExerciseNotFound].
func (e *ExerciseService) Get(ctx context.Context, emailHash, exerciseID string) (models.ExerciseWithProgress, error) {
	row, err := e.store.QueryOne(ctx, `
		SELECT
			e.id, e.title, e.description, e.difficulty, e.category, e.image_path, e.created_at,
			ep.id AS progress_id, ep.times_practiced, ep.last_practiced, ep.completed
		FROM exercises e
		LEFT JOIN exercise_progress ep ON e.id = ep.exercise_id AND ep.user_email_hash = ?
		WHERE e.id = ?`,
		emailHash, exerciseID)
	if err != nil {
		return models.ExerciseWithProgress{}, fmt.Errorf("get exercise: %w", err)
	}
	if row == nil {
		return models.ExerciseWithProgress{}, ErrExerciseNotFound
	}

	return exerciseWithProgressFromRow(emailHash, row), nil
}

// Categories returns the distinct catalog categories, sorted.
func (e *ExerciseService) Categories(ctx context.Context) ([]string, error) {
	rows, err := e.store.Query(ctx,
		`SELECT DISTINCT category FROM exercises ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("exercise categories: %w", err)
	}

	categories := make([]string, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.String("category"))
	}

	return categories, nil
}

func exerciseWithProgressFromRow(emailHash string, row store.Row) models.ExerciseWithProgress {
	ewp := models.ExerciseWithProgress{
		Exercise: models.Exercise{
			ID:          row.String("id"),
			Title:       row.String("title"),
			Description: row.String("description"),
			Difficulty:  row.String("difficulty"),
			Category:    row.String("category"),
			ImagePath:   row.String("image_path"),
			CreatedAt:   row.Time("created_at"),
		},
	}

	if row.Has("progress_id") {
		ewp.Progress = models.ExerciseProgress{
			ID:             row.Int64("progress_id"),
			UserEmailHash:  emailHash,
			ExerciseID:     ewp.Exercise.ID,
			TimesPracticed: row.Int64("times_practiced"),
			LastPracticed:  row.Time("last_practiced"),
			Completed:      row.Bool("completed"),
		}
	}

	return ewp
}
