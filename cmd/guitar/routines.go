// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	routineMinutes     int64
	routineDescription string
)

var routinesCmd = &cobra.Command{
	Use:   "routines",
	Short: "Manage your practice routines",
}

var routinesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a practice routine",
	Long: `Add a practice routine.

Example:
  guitar routines add "Morning warmup" --minutes 20 --description "scales and chromatics"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sessions.Require()
		if err != nil {
			return err
		}

		routine, err := services.Library.AddRoutine(cmd.Context(), s.EmailHash, args[0], routineMinutes, routineDescription)
		if err != nil {
			return err
		}

		fmt.Printf("Added routine #%d: %s (%d min)\n", routine.ID, routine.Name, routine.DurationMinutes)
		return nil
	},
}

var routinesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your routines",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sessions.Require()
		if err != nil {
			return err
		}

		routines, err := services.Library.ListRoutines(cmd.Context(), s.EmailHash)
		if err != nil {
			return err
		}
		if len(routines) == 0 {
			fmt.Println("No routines yet. Add one with: guitar routines add <name>")
			return nil
		}

		for _, r := range routines {
			fmt.Printf("#%-4d %s (%d min)", r.ID, r.Name, r.DurationMinutes)
			if r.Description != "" {
				fmt.Printf(" — %s", r.Description)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	routinesAddCmd.Flags().Int64Var(&routineMinutes, "minutes", 0, "routine length in minutes")
	routinesAddCmd.Flags().StringVar(&routineDescription, "description", "", "what the routine covers")
	_ = routinesAddCmd.MarkFlagRequired("minutes")

	routinesCmd.AddCommand(routinesAddCmd, routinesListCmd)
	rootCmd.AddCommand(routinesCmd)
}
