// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

// Package service implements the feature layer of guitar.io: auth, the song
// and routine library, practice recording, the exercise catalog view and the
// dashboard aggregation. Every service is a thin caller of the store's
// query/execute engine; all values travel as bound parameters, with
// statements shaped by squirrel at the call boundary.
package service

import (
	"github.com/feal94/guitar.io/internal/identity"
	"github.com/feal94/guitar.io/internal/logger"
	"github.com/feal94/guitar.io/internal/session"
	"github.com/feal94/guitar.io/internal/store"
)

// Services groups all feature services into a single value that can be passed
// around the CLI layer.
type Services struct {
	Auth      *AuthService
	Library   *LibraryService
	Practice  *PracticeService
	Exercises *ExerciseService
	Dashboard *DashboardService
}

// NewServices wires the feature services to the shared store, synchronizer,
// session manager and identity hasher.
func NewServices(
	st *store.Store,
	sync *store.Synchronizer,
	sessions *session.Manager,
	hasher *identity.Hasher,
	log *logger.Logger,
) *Services {
	return &Services{
		Auth:      NewAuthService(st, sessions, hasher, log),
		Library:   NewLibraryService(st, log),
		Practice:  NewPracticeService(st, log),
		Exercises: NewExerciseService(st, sync, log),
		Dashboard: NewDashboardService(st, log),
	}
}
