// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package service

import "errors"

// Domain errors surfaced to the view layer. The store reports typed failures
// (constraint violations, missing rows); the services translate them into
// these values so the CLI can decide the user-facing message.
var (
	ErrAccountExists       = errors.New("account already exists")
	ErrUserNotFound        = errors.New("no user was found")
	ErrWrongPassword       = errors.New("wrong password")
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrExerciseNotFound = errors.New("exercise not found")
	ErrSongNotFound     = errors.New("song not found")
	ErrRoutineNotFound  = errors.New("routine not found")
)
