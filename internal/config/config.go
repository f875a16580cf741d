// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the top-level configuration container for the guitar.io
// application. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings: the identity hash key, the log
	// level and the session marker lifetime.
	App App `envPrefix:"GUITARIO_"`

	// Storage holds the location of the durable key-value slot that the
	// database image and the session marker are persisted into.
	Storage Storage `envPrefix:"GUITARIO_STORAGE_"`

	// Feed holds the location of the external exercise feed.
	Feed Feed `envPrefix:"GUITARIO_FEED_"`

	// Workers holds background catalog-sync settings.
	Workers Workers `envPrefix:"GUITARIO_WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the GUITARIO_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"GUITARIO_CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey keys the HMAC digest used to derive email_hash identities and
	// password credentials. It must stay stable for the lifetime of a data
	// directory; changing it orphans every row in the store.
	// Env: GUITARIO_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// LogLevel is the minimum zerolog level emitted ("debug", "info",
	// "warn", "error").
	// Env: GUITARIO_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// SessionTTL is how long a login session marker stays valid
	// (e.g. "24h", "30m").
	// Env: GUITARIO_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`
}

// Storage holds the persistence slot settings.
type Storage struct {
	// DataDir is the directory of the badger key-value store that holds the
	// serialized database image and the session marker.
	// Env: GUITARIO_STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// Feed holds the location of the authoritative exercise feed. Exactly one of
// URL and Path is consulted; URL wins when both are set.
type Feed struct {
	// URL is an HTTP(S) endpoint serving the exercises JSON array.
	// Env: GUITARIO_FEED_URL
	URL string `env:"URL"`

	// Path is a local file holding the exercises JSON array.
	// Env: GUITARIO_FEED_PATH
	Path string `env:"PATH"`
}

// Workers holds configuration for background catalog synchronization.
type Workers struct {
	// SyncInterval defines how often the catalog sync worker re-fetches the
	// feed in watch mode. Zero disables periodic sync.
	// Env: GUITARIO_WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (first non-zero value
// wins):
//  1. Command-line flag overrides supplied by the CLI layer
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset fields fall back to the defaults applied by applyDefaults. Returns a
// fully populated *Config or an error if any source fails to load or the
// final config fails validation.
func GetConfig(overrides *Config) (*Config, error) {
	cfg, err := newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (c *Config) applyDefaults() {
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = defaultDataDir()
	}
	if c.App.SessionTTL <= 0 {
		c.App.SessionTTL = 24 * time.Hour
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Feed.URL == "" && c.Feed.Path == "" {
		c.Feed.Path = "exercises.json"
	}
}

// defaultDataDir resolves the XDG data directory for the application.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "guitar.io")
}
