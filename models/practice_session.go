// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package models

import "time"

// PracticeSession is one immutable log entry representing a completed unit of
// practice. A session references at most one of RoutineID, SongID or
// ExerciseID; the schema permits any combination but the services only ever
// set one. Sessions are append-only and are never updated or deleted.
type PracticeSession struct {
	ID            int64  `json:"id"`
	UserEmailHash string `json:"user_email_hash"`

	// SessionDate is the moment the practice took place, in UTC.
	SessionDate     time.Time `json:"session_date"`
	DurationMinutes int64     `json:"duration_minutes"`

	// RoutineID and SongID reference user-owned rows; ExerciseID references
	// the global exercise catalog. Empty/zero means "not set".
	RoutineID  int64  `json:"routine_id,omitempty"`
	SongID     int64  `json:"song_id,omitempty"`
	ExerciseID string `json:"exercise_id,omitempty"`

	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the PracticeSession model.
func (p PracticeSession) TableName() string {
	return "practice_sessions"
}
