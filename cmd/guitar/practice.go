// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	practiceMinutes int64
	practiceNotes   string
	historyLimit    uint64
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Record practice sessions",
	Long: `Record practice sessions.

Every recorded session targets exactly one of a song, a routine or a
catalog exercise:

  guitar practice song 3 --minutes 25
  guitar practice routine 1 --minutes 20 --notes "skipped the last drill"
  guitar practice exercise spider-walk --minutes 10`,
}

var practiceSongCmd = &cobra.Command{
	Use:   "song <id>",
	Short: "Record practice on a song",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sessions.Require()
		if err != nil {
			return err
		}

		songID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid song id %q", args[0])
		}

		if err = services.Practice.RecordSong(cmd.Context(), s.EmailHash, songID, practiceMinutes, practiceNotes); err != nil {
			return err
		}

		fmt.Printf("Recorded %d minutes on song #%d.\n", practiceMinutes, songID)
		return nil
	},
}

var practiceRoutineCmd = &cobra.Command{
	Use:   "routine <id>",
	Short: "Record practice on a routine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sessions.Require()
		if err != nil {
			return err
		}

		routineID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid routine id %q", args[0])
		}

		if err = services.Practice.RecordRoutine(cmd.Context(), s.EmailHash, routineID, practiceMinutes, practiceNotes); err != nil {
			return err
		}

		fmt.Printf("Recorded %d minutes on routine #%d.\n", practiceMinutes, routineID)
		return nil
	},
}

var practiceExerciseCmd = &cobra.Command{
	Use:   "exercise <id>",
	Short: "Record practice on a catalog exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sessions.Require()
		if err != nil {
			return err
		}

		if err = services.Practice.RecordExercise(cmd.Context(), s.EmailHash, args[0], practiceMinutes, practiceNotes); err != nil {
			return err
		}

		fmt.Printf("Recorded %d minutes on exercise %q.\n", practiceMinutes, args[0])
		return nil
	},
}

var practiceHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show your practice log, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sessions.Require()
		if err != nil {
			return err
		}

		entries, err := services.Practice.History(cmd.Context(), s.EmailHash, historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No practice recorded yet.")
			return nil
		}

		for _, entry := range entries {
			target := "practice"
			switch {
			case entry.ExerciseID != "":
				target = "exercise " + entry.ExerciseID
			case entry.SongID != 0:
				target = fmt.Sprintf("song #%d", entry.SongID)
			case entry.RoutineID != 0:
				target = fmt.Sprintf("routine #%d", entry.RoutineID)
			}

			line := fmt.Sprintf("%s  %3d min  %s",
				entry.SessionDate.Local().Format("2006-01-02 15:04"), entry.DurationMinutes, target)
			if entry.Notes != "" {
				line += "  — " + entry.Notes
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{practiceSongCmd, practiceRoutineCmd, practiceExerciseCmd} {
		c.Flags().Int64Var(&practiceMinutes, "minutes", 0, "session length in minutes")
		c.Flags().StringVar(&practiceNotes, "notes", "", "free-form session notes")
		_ = c.MarkFlagRequired("minutes")
	}
	practiceHistoryCmd.Flags().Uint64Var(&historyLimit, "limit", 20, "maximum entries to show (0 = all)")

	practiceCmd.AddCommand(practiceSongCmd, practiceRoutineCmd, practiceExerciseCmd, practiceHistoryCmd)
	rootCmd.AddCommand(practiceCmd)
}
