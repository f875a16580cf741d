// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

// Package session manages the short-lived login marker. The marker lives in
// the key-value slot next to (but outside) the relational store: every
// command reads it to gate access and to obtain the hashed-email identity
// key used in queries.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/feal94/guitar.io/internal/logger"
	"github.com/feal94/guitar.io/internal/store"
	"github.com/feal94/guitar.io/models"
)

// markerKey is the fixed slot the current-user marker lives under.
const markerKey = "guitar_io_current_user"

// ErrNotLoggedIn is returned by Require when no valid session marker exists.
var ErrNotLoggedIn = errors.New("not logged in")

// Manager reads and writes the session marker.
type Manager struct {
	backend *store.Backend
	ttl     time.Duration
	logger  *logger.Logger
}

// NewManager constructs a Manager storing markers in backend with the given
// lifetime.
func NewManager(backend *store.Backend, ttl time.Duration, log *logger.Logger) *Manager {
	return &Manager{backend: backend, ttl: ttl, logger: log}
}

// Start writes a fresh marker for the given identity and returns it. Any
// previous marker is overwritten.
func (m *Manager) Start(email, emailHash string) (models.Session, error) {
	s := models.Session{
		ID:        newSessionID(),
		Email:     email,
		EmailHash: emailHash,
		LoginTime: time.Now().UTC(),
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return models.Session{}, fmt.Errorf("encode session marker: %w", err)
	}
	if err = m.backend.Put(markerKey, payload, m.ttl); err != nil {
		return models.Session{}, fmt.Errorf("store session marker: %w", err)
	}

	m.logger.Debug().Str("session_id", s.ID).Msg("session started")
	return s, nil
}

// Current returns the active session marker, or found=false when none exists
// or the previous one has expired. A marker that cannot be decoded is treated
// as absent and removed.
func (m *Manager) Current() (models.Session, bool, error) {
	payload, found, err := m.backend.Get(markerKey)
	if err != nil {
		return models.Session{}, false, fmt.Errorf("read session marker: %w", err)
	}
	if !found {
		return models.Session{}, false, nil
	}

	var s models.Session
	if err = json.Unmarshal(payload, &s); err != nil {
		m.logger.Warn().Err(err).Msg("discarding undecodable session marker")
		_ = m.backend.Delete(markerKey)
		return models.Session{}, false, nil
	}

	return s, true, nil
}

// Require returns the active session or [ErrNotLoggedIn].
func (m *Manager) Require() (models.Session, error) {
	s, found, err := m.Current()
	if err != nil {
		return models.Session{}, err
	}
	if !found {
		return models.Session{}, ErrNotLoggedIn
	}

	return s, nil
}

// End removes the marker. Ending with no active session is not an error.
func (m *Manager) End() error {
	if err := m.backend.Delete(markerKey); err != nil {
		return fmt.Errorf("remove session marker: %w", err)
	}

	return nil
}

func newSessionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
