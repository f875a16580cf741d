// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/feal94/guitar.io/internal/logger"
	"github.com/feal94/guitar.io/internal/store"
	"github.com/feal94/guitar.io/models"
)

// LibraryService manages the user-owned song library and practice routines.
type LibraryService struct {
	store  *store.Store
	logger *logger.Logger
}

// NewLibraryService constructs a LibraryService.
func NewLibraryService(st *store.Store, log *logger.Logger) *LibraryService {
	return &LibraryService{store: st, logger: log}
}

// AddSong inserts a song into the user's library and returns it with the
// engine-assigned id.
func (l *LibraryService) AddSong(ctx context.Context, emailHash, title, artist, notes string) (models.Song, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Song{}, fmt.Errorf("%w: song title is required", ErrInvalidDataProvided)
	}

	song := models.Song{
		UserEmailHash: emailHash,
		Title:         title,
		Artist:        strings.TrimSpace(artist),
		Notes:         notes,
		CreatedAt:     time.Now().UTC(),
	}

	query, args, err := sq.Insert(song.TableName()).
		Columns("user_email_hash", "title", "artist", "notes", "created_at").
		Values(song.UserEmailHash, song.Title, song.Artist, song.Notes, song.CreatedAt.Format(time.RFC3339)).
		ToSql()
	if err != nil {
		return models.Song{}, fmt.Errorf("add song: build query: %w", err)
	}
	if err = l.store.Execute(ctx, query, args...); err != nil {
		return models.Song{}, fmt.Errorf("add song: %w", err)
	}

	row, err := l.store.QueryOne(ctx, `SELECT last_insert_rowid() AS id`)
	if err != nil {
		return models.Song{}, fmt.Errorf("add song: %w", err)
	}
	song.ID = row.Int64("id")

	return song, nil
}

// ListSongs returns the user's songs, most recently practiced first.
func (l *LibraryService) ListSongs(ctx context.Context, emailHash string) ([]models.Song, error) {
	query, args, err := sq.Select("id", "title", "artist", "notes", "created_at", "last_practiced").
		From("songs").
		Where(sq.Eq{"user_email_hash": emailHash}).
		OrderBy("last_practiced DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list songs: build query: %w", err)
	}

	rows, err := l.store.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}

	songs := make([]models.Song, 0, len(rows))
	for _, row := range rows {
		songs = append(songs, songFromRow(emailHash, row))
	}

	return songs, nil
}

// AddRoutine inserts a practice routine and returns it with the
// engine-assigned id.
func (l *LibraryService) AddRoutine(ctx context.Context, emailHash, name string, durationMinutes int64, description string) (models.Routine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Routine{}, fmt.Errorf("%w: routine name is required", ErrInvalidDataProvided)
	}
	if durationMinutes <= 0 {
		return models.Routine{}, fmt.Errorf("%w: routine duration must be positive", ErrInvalidDataProvided)
	}

	routine := models.Routine{
		UserEmailHash:   emailHash,
		Name:            name,
		DurationMinutes: durationMinutes,
		Description:     description,
		CreatedAt:       time.Now().UTC(),
	}

	query, args, err := sq.Insert(routine.TableName()).
		Columns("user_email_hash", "name", "duration_minutes", "description", "created_at").
		Values(routine.UserEmailHash, routine.Name, routine.DurationMinutes, routine.Description, routine.CreatedAt.Format(time.RFC3339)).
		ToSql()
	if err != nil {
		return models.Routine{}, fmt.Errorf("add routine: build query: %w", err)
	}
	if err = l.store.Execute(ctx, query, args...); err != nil {
		return models.Routine{}, fmt.Errorf("add routine: %w", err)
	}

	row, err := l.store.QueryOne(ctx, `SELECT last_insert_rowid() AS id`)
	if err != nil {
		return models.Routine{}, fmt.Errorf("add routine: %w", err)
	}
	routine.ID = row.Int64("id")

	return routine, nil
}

// ListRoutines returns the user's routines, newest first.
func (l *LibraryService) ListRoutines(ctx context.Context, emailHash string) ([]models.Routine, error) {
	query, args, err := sq.Select("id", "name", "duration_minutes", "description", "created_at").
		From("routines").
		Where(sq.Eq{"user_email_hash": emailHash}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list routines: build query: %w", err)
	}

	rows, err := l.store.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}

	routines := make([]models.Routine, 0, len(rows))
	for _, row := range rows {
		routines = append(routines, routineFromRow(emailHash, row))
	}

	return routines, nil
}

func songFromRow(emailHash string, row store.Row) models.Song {
	return models.Song{
		ID:            row.Int64("id"),
		UserEmailHash: emailHash,
		Title:         row.String("title"),
		Artist:        row.String("artist"),
		Notes:         row.String("notes"),
		CreatedAt:     row.Time("created_at"),
		LastPracticed: row.Time("last_practiced"),
	}
}

func routineFromRow(emailHash string, row store.Row) models.Routine {
	return models.Routine{
		ID:              row.Int64("id"),
		UserEmailHash:   emailHash,
		Name:            row.String("name"),
		DurationMinutes: row.Int64("duration_minutes"),
		Description:     row.String("description"),
		CreatedAt:       row.Time("created_at"),
	}
}
