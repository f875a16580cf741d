// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all data and start over",
	Long: `Erase all data and start over.

Drops the persisted database image and replaces it with an empty one
carrying the current schema. Accounts, songs, routines, sessions and
progress are all lost. Requires --yes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("refusing to erase data without --yes")
		}

		if err := st.Reset(cmd.Context()); err != nil {
			return err
		}
		if err := sessions.End(); err != nil {
			return err
		}

		fmt.Println("All data erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm erasing all data")
	rootCmd.AddCommand(resetCmd)
}
