// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package config

import "errors"

// validate checks the merged configuration for values that would make the
// application unusable at startup. Defaults have already been applied, so an
// empty field here means every source left it unset and no default exists.
func (c *Config) validate() error {
	var errs []error

	if c.Storage.DataDir == "" {
		errs = append(errs, ErrNoDataDir)
	}
	if c.App.SessionTTL <= 0 {
		errs = append(errs, ErrInvalidSessionTTL)
	}
	if c.Workers.SyncInterval < 0 {
		errs = append(errs, ErrInvalidSyncInterval)
	}

	return errors.Join(errs...)
}
