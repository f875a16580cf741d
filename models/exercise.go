// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package models

import (
	"fmt"
	"time"
)

// Exercise difficulty levels as delivered by the exercise feed.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Exercise is one row of the global exercise catalog. Unlike songs and
// routines, exercises are not owned by a user: the whole table mirrors an
// external content feed and is fully managed by the catalog synchronizer.
type Exercise struct {
	// ID is a stable string identifier assigned by the content feed,
	// not auto-generated by the store.
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Category    string `json:"category"`
	ImagePath   string `json:"image_path,omitempty"`

	// CreatedAt is stamped on first import and preserved across every
	// subsequent re-sync of the feed.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Exercise model.
func (e Exercise) TableName() string {
	return "exercises"
}

// ExerciseDescriptor is one element of the external exercise feed, the
// authoritative declarative source the local catalog is reconciled against.
type ExerciseDescriptor struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Category    string `json:"category"`
	ImagePath   string `json:"image_path,omitempty"`
}

// Validate checks that the descriptor carries the fields the catalog schema
// requires. It is applied to every feed element before synchronization.
func (d ExerciseDescriptor) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("exercise descriptor: empty id")
	}
	if d.Title == "" {
		return fmt.Errorf("exercise descriptor %q: empty title", d.ID)
	}
	switch d.Difficulty {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
	default:
		return fmt.Errorf("exercise descriptor %q: unknown difficulty %q", d.ID, d.Difficulty)
	}
	return nil
}
