// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	songArtist string
	songNotes  string
)

var songsCmd = &cobra.Command{
	Use:   "songs",
	Short: "Manage your song library",
}

var songsAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a song to your library",
	Long: `Add a song to your library.

Examples:
  guitar songs add "Blackbird" --artist "The Beatles"
  guitar songs add "Etude No. 1" --notes "focus on the arpeggio pattern"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sessions.Require()
		if err != nil {
			return err
		}

		song, err := services.Library.AddSong(cmd.Context(), s.EmailHash, args[0], songArtist, songNotes)
		if err != nil {
			return err
		}

		fmt.Printf("Added song #%d: %s\n", song.ID, song.Title)
		return nil
	},
}

var songsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your songs, most recently practiced first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sessions.Require()
		if err != nil {
			return err
		}

		songs, err := services.Library.ListSongs(cmd.Context(), s.EmailHash)
		if err != nil {
			return err
		}
		if len(songs) == 0 {
			fmt.Println("No songs yet. Add one with: guitar songs add <title>")
			return nil
		}

		for _, song := range songs {
			line := fmt.Sprintf("#%-4d %s", song.ID, song.Title)
			if song.Artist != "" {
				line += fmt.Sprintf(" — %s", song.Artist)
			}
			if !song.LastPracticed.IsZero() {
				line += fmt.Sprintf("  (last practiced %s)", song.LastPracticed.Local().Format("2006-01-02"))
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	songsAddCmd.Flags().StringVar(&songArtist, "artist", "", "artist name")
	songsAddCmd.Flags().StringVar(&songNotes, "notes", "", "free-form notes")

	songsCmd.AddCommand(songsAddCmd, songsListCmd)
	rootCmd.AddCommand(songsCmd)
}
