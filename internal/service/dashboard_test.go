// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── month windows ────────────────────────────────────────────────────────────

func TestCurrentMonthWindow(t *testing.T) {
	now := time.Date(2026, 8, 28, 13, 45, 0, 0, time.UTC)

	w := currentMonthWindow(now)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), w.start)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), w.end)
}

func TestPreviousMonthWindow(t *testing.T) {
	now := time.Date(2026, 8, 28, 13, 45, 0, 0, time.UTC)

	w := previousMonthWindow(now)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), w.start)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), w.end)
}

func TestPreviousMonthWindow_JanuaryWrapsYear(t *testing.T) {
	now := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	w := previousMonthWindow(now)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), w.start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), w.end)
}

// ── Overview ─────────────────────────────────────────────────────────────────

// insertSessionAt writes a practice session log entry with a fixed date.
func insertSessionAt(t *testing.T, h *testHarness, emailHash string, at time.Time, minutes int64, songID any) {
	t.Helper()
	err := h.store.Execute(context.Background(), `
		INSERT INTO practice_sessions (user_email_hash, session_date, duration_minutes, song_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		emailHash, at.Format(time.RFC3339), minutes, songID, at.Format(time.RFC3339))
	require.NoError(t, err)
}

func TestDashboardService_Overview(t *testing.T) {
	h := newTestHarness(t)
	emailHash := h.registerAndLogin(t, "player@example.com")

	now := time.Date(2026, 8, 28, 13, 0, 0, 0, time.UTC)
	h.services.Dashboard.now = func() time.Time { return now }

	song, err := h.services.Library.AddSong(context.Background(), emailHash, "Blackbird", "The Beatles", "")
	require.NoError(t, err)
	// Mark the song practiced without logging a wall-clock session, so the
	// pinned month windows below stay the only sessions in play.
	require.NoError(t, h.store.Execute(context.Background(),
		`UPDATE songs SET last_practiced = ? WHERE id = ?`, "2026-07-17T10:00:00Z", song.ID))
	_, err = h.services.Library.AddRoutine(context.Background(), emailHash, "Warmup", 20, "")
	require.NoError(t, err)

	// Previous month: three sessions, 95 minutes, one distinct song.
	july := time.Date(2026, 7, 3, 10, 0, 0, 0, time.UTC)
	insertSessionAt(t, h, emailHash, july, 30, song.ID)
	insertSessionAt(t, h, emailHash, july.AddDate(0, 0, 7), 35, song.ID)
	insertSessionAt(t, h, emailHash, july.AddDate(0, 0, 14), 30, nil)

	// Current month: practice on the 2nd and twice on the 15th.
	insertSessionAt(t, h, emailHash, time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC), 10, nil)
	insertSessionAt(t, h, emailHash, time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC), 10, nil)
	insertSessionAt(t, h, emailHash, time.Date(2026, 8, 15, 20, 0, 0, 0, time.UTC), 10, nil)

	d, err := h.services.Dashboard.Overview(context.Background(), emailHash, "Alex")
	require.NoError(t, err)

	assert.Equal(t, "Alex", d.DisplayName)
	assert.Equal(t, int64(3), d.Stats.TotalSessions)
	assert.Equal(t, int64(95), d.Stats.TotalMinutes)
	assert.Equal(t, int64(2), d.Stats.Hours(), "95 minutes rounds to 2 hours")
	assert.Equal(t, int64(1), d.Stats.UniqueSongs)

	assert.Equal(t, []int{2, 15}, d.PracticeDays)

	require.Len(t, d.RecentSongs, 1)
	assert.Equal(t, "Blackbird", d.RecentSongs[0].Title)
	require.Len(t, d.Routines, 1)
	assert.Equal(t, "Warmup", d.Routines[0].Name)
}

func TestDashboardService_Overview_EmptyAccount(t *testing.T) {
	h := newTestHarness(t)
	emailHash := h.registerAndLogin(t, "player@example.com")

	d, err := h.services.Dashboard.Overview(context.Background(), emailHash, "")
	require.NoError(t, err)

	assert.Zero(t, d.Stats.TotalSessions)
	assert.Zero(t, d.Stats.TotalMinutes)
	assert.Empty(t, d.PracticeDays)
	assert.Empty(t, d.RecentSongs)
	assert.Empty(t, d.Routines)
}
