// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feal94/guitar.io/internal/adapter"
	"github.com/feal94/guitar.io/internal/config"
	"github.com/feal94/guitar.io/internal/identity"
	"github.com/feal94/guitar.io/internal/logger"
	"github.com/feal94/guitar.io/internal/service"
	"github.com/feal94/guitar.io/internal/session"
	"github.com/feal94/guitar.io/internal/store"
)

// Shared application state, assembled once per invocation by the root
// command's PersistentPreRunE and torn down by PersistentPostRunE.
var (
	cfg          *config.Config
	log          *logger.Logger
	backend      *store.Backend
	st           *store.Store
	synchronizer *store.Synchronizer
	sessions     *session.Manager
	services     *service.Services
)

// Persistent flag values; merged into the configuration as overrides.
var (
	flagConfig   string
	flagDataDir  string
	flagLogLevel string
	flagFeedURL  string
	flagFeedPath string
)

var rootCmd = &cobra.Command{
	Use:   "guitar",
	Short: "Guitar practice tracker",
	Long: `guitar tracks your guitar practice from the command line.

It keeps a song library, practice routines and a catalog of exercises,
records every practice session and summarizes your activity on a monthly
dashboard. All data lives in a single local data directory; nothing is
sent anywhere except the optional exercise feed fetch.

QUICK START:

  $ guitar register --email you@example.com --password secret1
  $ guitar login --email you@example.com --password secret1
  $ guitar songs add "Blackbird" --artist "The Beatles"
  $ guitar practice song 1 --minutes 25
  $ guitar dashboard`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		return initApp(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeApp()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to JSON configuration file")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "minimum log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagFeedURL, "feed-url", "", "HTTP(S) URL of the exercise feed")
	rootCmd.PersistentFlags().StringVar(&flagFeedPath, "feed-path", "", "local path of the exercise feed")
}

// initApp wires configuration, logging, storage and services for one command
// invocation.
func initApp(cmd *cobra.Command) error {
	overrides := &config.Config{
		App:          config.App{LogLevel: flagLogLevel},
		Storage:      config.Storage{DataDir: flagDataDir},
		Feed:         config.Feed{URL: flagFeedURL, Path: flagFeedPath},
		JSONFilePath: flagConfig,
	}

	var err error
	cfg, err = config.GetConfig(overrides)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log = logger.NewLoggerAtLevel("guitar", cfg.App.LogLevel)

	backend, err = store.OpenBackend(cfg.Storage.DataDir, log)
	if err != nil {
		return err
	}

	st = store.New(backend, log)
	if err = st.Initialize(cmd.Context()); err != nil {
		return err
	}

	feed, err := adapter.NewFeedSource(cfg.Feed, log)
	if err != nil {
		return err
	}

	synchronizer = store.NewSynchronizer(st, feed, log)
	sessions = session.NewManager(backend, cfg.App.SessionTTL, log)
	services = service.NewServices(st, synchronizer, sessions, identity.NewHasher(cfg.App.HashKey), log)

	return nil
}

func closeApp() error {
	if st != nil {
		if err := st.Close(); err != nil {
			return err
		}
	}
	if backend != nil {
		return backend.Close()
	}
	return nil
}
