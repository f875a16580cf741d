// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package models

import "time"

// ExerciseProgress tracks one user's progress against one catalog exercise.
// There is exactly one row per (user, exercise) pair; the uniqueness is
// enforced by the practice service's upsert logic, not by a schema constraint.
type ExerciseProgress struct {
	ID             int64     `json:"id"`
	UserEmailHash  string    `json:"user_email_hash"`
	ExerciseID     string    `json:"exercise_id"`
	TimesPracticed int64     `json:"times_practiced"`
	LastPracticed  time.Time `json:"last_practiced,omitempty"`
	Completed      bool      `json:"completed"`
}

// TableName returns the name of the database table
// associated with the ExerciseProgress model.
func (p ExerciseProgress) TableName() string {
	return "exercise_progress"
}

// ExerciseWithProgress pairs a catalog exercise with one user's progress
// against it. Progress is zero-valued when the user has never practiced the
// exercise.
type ExerciseWithProgress struct {
	Exercise Exercise         `json:"exercise"`
	Progress ExerciseProgress `json:"progress"`
}
