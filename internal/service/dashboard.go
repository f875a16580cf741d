// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/feal94/guitar.io/internal/logger"
	"github.com/feal94/guitar.io/internal/store"
	"github.com/feal94/guitar.io/models"
)

// recentSongLimit caps the recently-practiced list on the dashboard.
const recentSongLimit = 5

// DashboardService aggregates practice activity into the dashboard view.
// All month windows are computed in UTC; session_date is stored as RFC 3339
// text, so half-open [start, end) comparisons work lexicographically.
type DashboardService struct {
	store  *store.Store
	logger *logger.Logger
	now    func() time.Time
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(st *store.Store, log *logger.Logger) *DashboardService {
	return &DashboardService{store: st, logger: log, now: time.Now}
}

// Overview builds the full dashboard for one user: the previous calendar
// month's aggregate stats, the practice days of the current month, the most
// recently practiced songs and the user's routines.
func (d *DashboardService) Overview(ctx context.Context, emailHash, displayName string) (models.Dashboard, error) {
	now := d.now().UTC()

	stats, err := d.monthlyStats(ctx, emailHash, previousMonthWindow(now))
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}

	days, err := d.practiceDays(ctx, emailHash, currentMonthWindow(now))
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}

	songs, err := d.recentSongs(ctx, emailHash)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}

	routines, err := d.routines(ctx, emailHash)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}

	return models.Dashboard{
		DisplayName:  displayName,
		Stats:        stats,
		PracticeDays: days,
		RecentSongs:  songs,
		Routines:     routines,
	}, nil
}

// monthWindow is a half-open UTC interval [start, end).
type monthWindow struct {
	start time.Time
	end   time.Time
}

func currentMonthWindow(now time.Time) monthWindow {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return monthWindow{start: start, end: start.AddDate(0, 1, 0)}
}

func previousMonthWindow(now time.Time) monthWindow {
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return monthWindow{start: end.AddDate(0, -1, 0), end: end}
}

func (d *DashboardService) monthlyStats(ctx context.Context, emailHash string, w monthWindow) (models.MonthlyStats, error) {
	row, err := d.store.QueryOne(ctx, `
		SELECT
			COUNT(*)                AS total_sessions,
			COALESCE(SUM(duration_minutes), 0) AS total_minutes,
			COUNT(DISTINCT song_id) AS unique_songs
		FROM practice_sessions
		WHERE user_email_hash = ? AND session_date >= ? AND session_date < ?`,
		emailHash, w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
	if err != nil {
		return models.MonthlyStats{}, fmt.Errorf("monthly stats: %w", err)
	}
	if row == nil {
		return models.MonthlyStats{}, nil
	}

	return models.MonthlyStats{
		TotalSessions: row.Int64("total_sessions"),
		TotalMinutes:  row.Int64("total_minutes"),
		UniqueSongs:   row.Int64("unique_songs"),
	}, nil
}

// practiceDays returns the sorted days-of-month with at least one session.
func (d *DashboardService) practiceDays(ctx context.Context, emailHash string, w monthWindow) ([]int, error) {
	rows, err := d.store.Query(ctx, `
		SELECT DISTINCT session_date
		FROM practice_sessions
		WHERE user_email_hash = ? AND session_date >= ? AND session_date < ?`,
		emailHash, w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("practice days: %w", err)
	}

	seen := make(map[int]struct{})
	for _, row := range rows {
		t := row.Time("session_date")
		if t.IsZero() {
			continue
		}
		seen[t.UTC().Day()] = struct{}{}
	}

	days := make([]int, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Ints(days)

	return days, nil
}

func (d *DashboardService) recentSongs(ctx context.Context, emailHash string) ([]models.Song, error) {
	query, args, err := sq.Select("id", "title", "artist", "notes", "created_at", "last_practiced").
		From("songs").
		Where(sq.Eq{"user_email_hash": emailHash}).
		Where(sq.NotEq{"last_practiced": nil}).
		OrderBy("last_practiced DESC").
		Limit(recentSongLimit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("recent songs: build query: %w", err)
	}

	rows, err := d.store.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recent songs: %w", err)
	}

	songs := make([]models.Song, 0, len(rows))
	for _, row := range rows {
		songs = append(songs, songFromRow(emailHash, row))
	}

	return songs, nil
}

func (d *DashboardService) routines(ctx context.Context, emailHash string) ([]models.Routine, error) {
	query, args, err := sq.Select("id", "name", "duration_minutes", "description", "created_at").
		From("routines").
		Where(sq.Eq{"user_email_hash": emailHash}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("dashboard routines: build query: %w", err)
	}

	rows, err := d.store.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("dashboard routines: %w", err)
	}

	routines := make([]models.Routine, 0, len(rows))
	for _, row := range rows {
		routines = append(routines, routineFromRow(emailHash, row))
	}

	return routines, nil
}
