// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feal94/guitar.io/internal/logger"
	"github.com/feal94/guitar.io/internal/store"
)

func newTestManager(t *testing.T) (*Manager, *store.Backend) {
	t.Helper()
	backend, err := store.OpenInMemoryBackend(logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	return NewManager(backend, time.Hour, logger.Nop()), backend
}

func TestManager_StartAndCurrent(t *testing.T) {
	m, _ := newTestManager(t)

	started, err := m.Start("player@example.com", "hash-1")
	require.NoError(t, err)
	assert.NotEmpty(t, started.ID)
	assert.Equal(t, "player@example.com", started.Email)
	assert.Equal(t, "hash-1", started.EmailHash)
	assert.False(t, started.LoginTime.IsZero())

	current, found, err := m.Current()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, started.ID, current.ID)
	assert.Equal(t, started.EmailHash, current.EmailHash)
}

func TestManager_CurrentWithoutSession(t *testing.T) {
	m, _ := newTestManager(t)

	_, found, err := m.Current()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestManager_StartOverwritesPrevious(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Start("first@example.com", "hash-1")
	require.NoError(t, err)
	second, err := m.Start("second@example.com", "hash-2")
	require.NoError(t, err)

	current, found, err := m.Current()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, second.ID, current.ID)
	assert.Equal(t, "hash-2", current.EmailHash)
}

func TestManager_Require(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Require()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = m.Start("player@example.com", "hash-1")
	require.NoError(t, err)

	s, err := m.Require()
	require.NoError(t, err)
	assert.Equal(t, "hash-1", s.EmailHash)
}

func TestManager_End(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Start("player@example.com", "hash-1")
	require.NoError(t, err)
	require.NoError(t, m.End())

	_, err = m.Require()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	// Ending again with no session is fine.
	assert.NoError(t, m.End())
}

func TestManager_UndecodableMarkerDiscarded(t *testing.T) {
	m, backend := newTestManager(t)

	require.NoError(t, backend.Put(markerKey, []byte("not json"), 0))

	_, found, err := m.Current()
	require.NoError(t, err)
	assert.False(t, found)

	// The broken marker was removed, not just skipped.
	_, found, err = backend.Get(markerKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestManager_ErrNotLoggedInMatchable(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Require()
	assert.True(t, errors.Is(err, ErrNotLoggedIn))
}
