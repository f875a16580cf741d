// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	authEmail    string
	authPassword string
	authName     string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create a new account.

The email address is never stored; only a keyed hash of it identifies your
data. Example:

  guitar register --email you@example.com --password secret1 --name "Alex"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := services.Auth.Register(cmd.Context(), authEmail, authPassword, authName)
		if err != nil {
			return err
		}

		fmt.Printf("Account created. Log in with: guitar login --email %s\n", authEmail)
		if user.DisplayName != "" {
			fmt.Printf("Welcome, %s!\n", user.DisplayName)
		}
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and start a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := services.Auth.Login(cmd.Context(), authEmail, authPassword)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s\n", s.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := services.Auth.Logout(); err != nil {
			return err
		}

		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := services.Auth.Current()
		if err != nil {
			return err
		}

		profile, err := services.Auth.Profile(cmd.Context(), s.EmailHash)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s", s.Email)
		if profile.DisplayName != "" {
			fmt.Printf(" (%s)", profile.DisplayName)
		}
		fmt.Printf("\nSession started %s\n", s.LoginTime.Local().Format("2006-01-02 15:04"))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{registerCmd, loginCmd} {
		c.Flags().StringVar(&authEmail, "email", "", "account email address")
		c.Flags().StringVar(&authPassword, "password", "", "account password")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}
	registerCmd.Flags().StringVar(&authName, "name", "", "display name")

	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd)
}
