// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package service

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/feal94/guitar.io/internal/logger"
	"github.com/feal94/guitar.io/internal/store"
	"github.com/feal94/guitar.io/models"
)

// PracticeService records practice sessions. Sessions are an append-only
// log: one row per completed unit of practice against exactly one of a song,
// a routine or a catalog exercise.
//
// No transaction spans the progress upsert and the session insert: each
// statement is its own unit of work with its own persist. A crash between
// the two can leave the progress counter ahead of the session log; this is a
// known, accepted gap of the single-statement design.
type PracticeService struct {
	store  *store.Store
	logger *logger.Logger
}

// NewPracticeService constructs a PracticeService.
func NewPracticeService(st *store.Store, log *logger.Logger) *PracticeService {
	return &PracticeService{store: st, logger: log}
}

// RecordExercise logs a completed practice against a catalog exercise and
// bumps the user's progress row for it. The progress table holds exactly one
// row per (user, exercise) pair: an existing row is incremented in place, a
// first completion inserts one.
func (p *PracticeService) RecordExercise(ctx context.Context, emailHash, exerciseID string, durationMinutes int64, notes string) error {
	if err := validateDuration(durationMinutes); err != nil {
		return err
	}

	exists, err := p.store.QueryOne(ctx, `SELECT id FROM exercises WHERE id = ?`, exerciseID)
	if err != nil {
		return fmt.Errorf("record exercise practice: %w", err)
	}
	if exists == nil {
		return ErrExerciseNotFound
	}

	now := time.Now().UTC().Format(time.RFC3339)

	progress, err := p.store.QueryOne(ctx,
		`SELECT id FROM exercise_progress WHERE user_email_hash = ? AND exercise_id = ?`,
		emailHash, exerciseID)
	if err != nil {
		return fmt.Errorf("record exercise practice: %w", err)
	}

	if progress != nil {
		err = p.store.Execute(ctx, `
			UPDATE exercise_progress
			SET times_practiced = times_practiced + 1,
			    last_practiced  = ?,
			    completed       = 1
			WHERE user_email_hash = ? AND exercise_id = ?`,
			now, emailHash, exerciseID)
	} else {
		err = p.store.Execute(ctx, `
			INSERT INTO exercise_progress (user_email_hash, exercise_id, times_practiced, last_practiced, completed)
			VALUES (?, ?, 1, ?, 1)`,
			emailHash, exerciseID, now)
	}
	if err != nil {
		return fmt.Errorf("record exercise practice: upsert progress: %w", err)
	}

	if err = p.insertSession(ctx, sessionRow{
		emailHash:       emailHash,
		durationMinutes: durationMinutes,
		exerciseID:      exerciseID,
		notes:           notes,
	}); err != nil {
		return fmt.Errorf("record exercise practice: %w", err)
	}

	p.logger.Info().Str("exercise_id", exerciseID).Int64("minutes", durationMinutes).Msg("exercise practice recorded")
	return nil
}

// RecordSong logs a practice session against one of the user's songs and
// bumps the song's last_practiced timestamp.
func (p *PracticeService) RecordSong(ctx context.Context, emailHash string, songID int64, durationMinutes int64, notes string) error {
	if err := validateDuration(durationMinutes); err != nil {
		return err
	}

	exists, err := p.store.QueryOne(ctx,
		`SELECT id FROM songs WHERE id = ? AND user_email_hash = ?`, songID, emailHash)
	if err != nil {
		return fmt.Errorf("record song practice: %w", err)
	}
	if exists == nil {
		return ErrSongNotFound
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if err = p.store.Execute(ctx,
		`UPDATE songs SET last_practiced = ? WHERE id = ?`, now, songID); err != nil {
		return fmt.Errorf("record song practice: %w", err)
	}

	if err = p.insertSession(ctx, sessionRow{
		emailHash:       emailHash,
		durationMinutes: durationMinutes,
		songID:          songID,
		notes:           notes,
	}); err != nil {
		return fmt.Errorf("record song practice: %w", err)
	}

	p.logger.Info().Int64("song_id", songID).Int64("minutes", durationMinutes).Msg("song practice recorded")
	return nil
}

// RecordRoutine logs a practice session against one of the user's routines.
func (p *PracticeService) RecordRoutine(ctx context.Context, emailHash string, routineID int64, durationMinutes int64, notes string) error {
	if err := validateDuration(durationMinutes); err != nil {
		return err
	}

	exists, err := p.store.QueryOne(ctx,
		`SELECT id FROM routines WHERE id = ? AND user_email_hash = ?`, routineID, emailHash)
	if err != nil {
		return fmt.Errorf("record routine practice: %w", err)
	}
	if exists == nil {
		return ErrRoutineNotFound
	}

	if err = p.insertSession(ctx, sessionRow{
		emailHash:       emailHash,
		durationMinutes: durationMinutes,
		routineID:       routineID,
		notes:           notes,
	}); err != nil {
		return fmt.Errorf("record routine practice: %w", err)
	}

	p.logger.Info().Int64("routine_id", routineID).Int64("minutes", durationMinutes).Msg("routine practice recorded")
	return nil
}

// History returns the user's practice log, newest first.
func (p *PracticeService) History(ctx context.Context, emailHash string, limit uint64) ([]models.PracticeSession, error) {
	builder := sq.Select("id", "session_date", "duration_minutes", "routine_id", "song_id", "exercise_id", "notes", "created_at").
		From("practice_sessions").
		Where(sq.Eq{"user_email_hash": emailHash}).
		OrderBy("session_date DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("practice history: build query: %w", err)
	}

	rows, err := p.store.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("practice history: %w", err)
	}

	sessions := make([]models.PracticeSession, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, models.PracticeSession{
			ID:              row.Int64("id"),
			UserEmailHash:   emailHash,
			SessionDate:     row.Time("session_date"),
			DurationMinutes: row.Int64("duration_minutes"),
			RoutineID:       row.Int64("routine_id"),
			SongID:          row.Int64("song_id"),
			ExerciseID:      row.String("exercise_id"),
			Notes:           row.String("notes"),
			CreatedAt:       row.Time("created_at"),
		})
	}

	return sessions, nil
}

type sessionRow struct {
	emailHash       string
	durationMinutes int64
	routineID       int64
	songID          int64
	exerciseID      string
	notes           string
}

func (p *PracticeService) insertSession(ctx context.Context, s sessionRow) error {
	now := time.Now().UTC().Format(time.RFC3339)

	return p.store.Execute(ctx, `
		INSERT INTO practice_sessions (user_email_hash, session_date, duration_minutes, routine_id, song_id, exercise_id, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.emailHash, now, s.durationMinutes,
		nullableID(s.routineID), nullableID(s.songID), sqlNullableText(s.exerciseID),
		s.notes, now)
}

func validateDuration(minutes int64) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidDataProvided)
	}
	return nil
}

// nullableID maps the zero id to NULL for optional foreign-key columns.
func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

func sqlNullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}
