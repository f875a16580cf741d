// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package models

// MonthlyStats aggregates a user's practice activity over one calendar month.
type MonthlyStats struct {
	TotalSessions int64 `json:"total_sessions"`
	TotalMinutes  int64 `json:"total_minutes"`
	UniqueSongs   int64 `json:"unique_songs"`
}

// Hours returns the total practice time rounded to whole hours.
func (s MonthlyStats) Hours() int64 {
	return (s.TotalMinutes + 30) / 60
}

// Dashboard bundles everything the dashboard view renders: last month's
// aggregate stats, the days of the current month with at least one practice
// session, the five most recently practiced songs and the user's routines.
type Dashboard struct {
	DisplayName  string       `json:"display_name"`
	Stats        MonthlyStats `json:"stats"`
	PracticeDays []int        `json:"practice_days"`
	RecentSongs  []Song       `json:"recent_songs"`
	Routines     []Routine    `json:"routines"`
}
