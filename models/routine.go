// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package models

import "time"

// Routine is a named practice routine owned by one user.
type Routine struct {
	ID              int64     `json:"id"`
	UserEmailHash   string    `json:"user_email_hash"`
	Name            string    `json:"name"`
	DurationMinutes int64     `json:"duration_minutes"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Routine model.
func (r Routine) TableName() string {
	return "routines"
}
