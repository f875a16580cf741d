// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package workers

import (
	"context"
	"time"

	"github.com/feal94/guitar.io/internal/logger"
	"github.com/feal94/guitar.io/internal/store"
)

// CatalogSyncWorker periodically reconciles the local exercise catalog
// against the external feed. A zero interval disables the worker entirely.
type CatalogSyncWorker struct {
	synchronizer *store.Synchronizer
	interval     time.Duration
	logger       *logger.Logger
	ctx          context.Context
}

// NewCatalogSyncWorker constructs a CatalogSyncWorker bound to ctx; the
// worker's goroutine exits when ctx is cancelled.
func NewCatalogSyncWorker(ctx context.Context, sync *store.Synchronizer, interval time.Duration, log *logger.Logger) *CatalogSyncWorker {
	return &CatalogSyncWorker{
		synchronizer: sync,
		interval:     interval,
		logger:       log,
		ctx:          ctx,
	}
}

// Run starts the periodic sync loop in a goroutine and returns immediately.
func (w *CatalogSyncWorker) Run() {
	if w.interval <= 0 {
		w.logger.Debug().Msg("catalog sync worker disabled")
		return
	}

	go w.loop()
}

func (w *CatalogSyncWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("catalog sync worker started")
	for {
		select {
		case <-w.ctx.Done():
			w.logger.Info().Msg("catalog sync worker stopped")
			return
		case <-ticker.C:
			if err := w.synchronizer.Refresh(w.ctx); err != nil {
				w.logger.Error().Err(err).Msg("periodic catalog sync failed")
			}
		}
	}
}
