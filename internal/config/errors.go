// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package config

import "errors"

// Validation errors reported by [Config.validate]. They are joined with
// errors.Join, so callers can match individual causes with [errors.Is].
var (
	ErrNoDataDir           = errors.New("no data directory configured")
	ErrInvalidSessionTTL   = errors.New("session ttl must be positive")
	ErrInvalidSyncInterval = errors.New("sync interval must not be negative")
)
