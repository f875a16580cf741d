// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/feal94/guitar.io/internal/identity"
	"github.com/feal94/guitar.io/internal/logger"
	"github.com/feal94/guitar.io/internal/session"
	"github.com/feal94/guitar.io/internal/store"
	"github.com/feal94/guitar.io/models"
)

// stubFeed feeds the synchronizer a canned exercise list in tests.
type stubFeed struct {
	list []models.ExerciseDescriptor
	err  error
}

func (f *stubFeed) Fetch(context.Context) ([]models.ExerciseDescriptor, error) {
	return f.list, f.err
}

// testHarness is a full service stack over in-memory storage.
type testHarness struct {
	services *Services
	store    *store.Store
	sessions *session.Manager
	hasher   *identity.Hasher
	sync     *store.Synchronizer
	feed     *stubFeed
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	log := logger.Nop()
	backend, err := store.OpenInMemoryBackend(log)
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	st := store.New(backend, log)
	require.NoError(t, st.Initialize(context.Background()))
	t.Cleanup(func() { st.Close() })

	feed := &stubFeed{}
	sync := store.NewSynchronizer(st, feed, log)
	sessions := session.NewManager(backend, time.Hour, log)
	hasher := identity.NewHasher("test-key")

	return &testHarness{
		services: NewServices(st, sync, sessions, hasher, log),
		store:    st,
		sessions: sessions,
		hasher:   hasher,
		sync:     sync,
		feed:     feed,
	}
}

// registerAndLogin creates an account and returns its identity hash.
func (h *testHarness) registerAndLogin(t *testing.T, email string) string {
	t.Helper()

	_, err := h.services.Auth.Register(context.Background(), email, "secret1", "Test Player")
	require.NoError(t, err)
	s, err := h.services.Auth.Login(context.Background(), email, "secret1")
	require.NoError(t, err)

	return s.EmailHash
}

// seedCatalog pushes descriptors through the synchronizer.
func (h *testHarness) seedCatalog(t *testing.T, list ...models.ExerciseDescriptor) {
	t.Helper()
	require.NoError(t, h.sync.Sync(context.Background(), list))
}

func beginnerExercise(id, title string) models.ExerciseDescriptor {
	return models.ExerciseDescriptor{
		ID:          id,
		Title:       title,
		Description: "test exercise",
		Difficulty:  models.DifficultyBeginner,
		Category:    "technique",
	}
}
