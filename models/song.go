// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package models

import "time"

// Song is one entry in a user's song library.
type Song struct {
	ID            int64     `json:"id"`
	UserEmailHash string    `json:"user_email_hash"`
	Title         string    `json:"title"`
	Artist        string    `json:"artist,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	// LastPracticed is bumped every time a practice session is recorded
	// against the song. Zero when the song has never been practiced.
	LastPracticed time.Time `json:"last_practiced,omitempty"`
}

// TableName returns the name of the database table
// associated with the Song model.
func (s Song) TableName() string {
	return "songs"
}
