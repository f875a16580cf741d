// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/feal94/guitar.io/internal/workers"
	"github.com/feal94/guitar.io/models"
)

var (
	exerciseCategory string
	syncWatch        bool
	syncInterval     time.Duration
)

var exercisesCmd = &cobra.Command{
	Use:     "exercises",
	Aliases: []string{"ex"},
	Short:   "Browse the exercise catalog",
	Long: `Browse the exercise catalog.

The catalog mirrors an external feed (see --feed-url / --feed-path) and is
shared by all accounts; your completion state and practice counts are
tracked per account.`,
}

var exercisesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List exercises with your progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sessions.Require()
		if err != nil {
			return err
		}

		// Best-effort refresh so a first run is not empty; a dead feed
		// leaves the local catalog as is.
		if err = services.Exercises.Refresh(cmd.Context()); err != nil {
			return err
		}

		list, err := services.Exercises.List(cmd.Context(), s.EmailHash, exerciseCategory)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("The exercise catalog is empty.")
			return nil
		}

		for _, e := range list {
			fmt.Println(formatExerciseLine(e))
		}
		return nil
	},
}

var exercisesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one exercise in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sessions.Require()
		if err != nil {
			return err
		}

		e, err := services.Exercises.Get(cmd.Context(), s.EmailHash, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s  [%s / %s]\n", e.Exercise.Title, e.Exercise.Difficulty, e.Exercise.Category)
		if e.Exercise.Description != "" {
			fmt.Printf("\n%s\n", e.Exercise.Description)
		}
		if e.Progress.TimesPracticed > 0 {
			fmt.Printf("\nPracticed %d times, last on %s\n",
				e.Progress.TimesPracticed, e.Progress.LastPracticed.Local().Format("2006-01-02"))
		} else {
			fmt.Println("\nNot practiced yet.")
		}
		return nil
	},
}

var exercisesSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize the catalog against the feed",
	Long: `Synchronize the catalog against the feed.

With --watch the command keeps running and re-syncs on an interval until
interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := synchronizer.Refresh(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Catalog synchronized.")

		if !syncWatch {
			return nil
		}

		interval := syncInterval
		if interval <= 0 {
			interval = cfg.Workers.SyncInterval
		}
		if interval <= 0 {
			interval = time.Hour
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		workers.NewWorkers(
			workers.NewCatalogSyncWorker(ctx, synchronizer, interval, log),
		).Run()

		fmt.Printf("Watching feed every %s. Press Ctrl-C to stop.\n", interval)
		<-ctx.Done()
		return nil
	},
}

func formatExerciseLine(e models.ExerciseWithProgress) string {
	mark := " "
	if e.Progress.Completed {
		mark = "x"
	}

	line := fmt.Sprintf("[%s] %-24s %s  [%s / %s]", mark, e.Exercise.ID, e.Exercise.Title,
		e.Exercise.Difficulty, e.Exercise.Category)
	if e.Progress.TimesPracticed > 0 {
		line += fmt.Sprintf("  (%dx)", e.Progress.TimesPracticed)
	}
	return line
}

func init() {
	exercisesListCmd.Flags().StringVar(&exerciseCategory, "category", "", "filter by category")
	exercisesSyncCmd.Flags().BoolVar(&syncWatch, "watch", false, "keep running and re-sync periodically")
	exercisesSyncCmd.Flags().DurationVar(&syncInterval, "interval", 0, "watch interval (default from config, 1h)")

	exercisesCmd.AddCommand(exercisesListCmd, exercisesShowCmd, exercisesSyncCmd)
	rootCmd.AddCommand(exercisesCmd)
}
