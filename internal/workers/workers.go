// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package workers

// Workers is an ordered aggregate of background workers.
type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers into one runnable aggregate.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker in order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
