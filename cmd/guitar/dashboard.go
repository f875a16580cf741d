// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/feal94/guitar.io/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	statBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Margin(0, 1, 1, 0).
			Align(lipgloss.Center)

	statValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	statLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	practiceDayStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("86"))

	calendarHeadStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your practice dashboard",
	Long: `Show your practice dashboard: last month's totals, this month's
practice calendar, recently practiced songs and your routines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sessions.Require()
		if err != nil {
			return err
		}

		profile, err := services.Auth.Profile(cmd.Context(), s.EmailHash)
		if err != nil {
			return err
		}

		d, err := services.Dashboard.Overview(cmd.Context(), s.EmailHash, profile.DisplayName)
		if err != nil {
			return err
		}

		fmt.Println(renderDashboard(d, time.Now().UTC()))
		return nil
	},
}

func renderDashboard(d models.Dashboard, now time.Time) string {
	var b strings.Builder

	greeting := "Your practice dashboard"
	if d.DisplayName != "" {
		greeting = fmt.Sprintf("%s's practice dashboard", d.DisplayName)
	}
	b.WriteString(titleStyle.Render(greeting))
	b.WriteString("\n\n")

	lastMonth := now.AddDate(0, -1, 0).Format("January")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		statBox(fmt.Sprintf("%d", d.Stats.TotalSessions), lastMonth+" sessions"),
		statBox(fmt.Sprintf("%d", d.Stats.Hours()), lastMonth+" hours"),
		statBox(fmt.Sprintf("%d", d.Stats.UniqueSongs), "songs practiced"),
	))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(now.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(renderCalendar(now, d.PracticeDays))
	b.WriteString("\n")

	if len(d.RecentSongs) > 0 {
		b.WriteString(sectionStyle.Render("Recently practiced"))
		b.WriteString("\n")
		for _, song := range d.RecentSongs {
			line := "  " + song.Title
			if song.Artist != "" {
				line += " — " + song.Artist
			}
			b.WriteString(line + "\n")
		}
	}

	if len(d.Routines) > 0 {
		b.WriteString(sectionStyle.Render("Routines"))
		b.WriteString("\n")
		for _, r := range d.Routines {
			b.WriteString(fmt.Sprintf("  %s (%d min)\n", r.Name, r.DurationMinutes))
		}
	}

	return b.String()
}

func statBox(value, label string) string {
	return statBoxStyle.Render(
		statValueStyle.Render(value) + "\n" + statLabelStyle.Render(label))
}

// renderCalendar draws the current month as a Mon-Sun week grid with the
// given days-of-month highlighted.
func renderCalendar(now time.Time, practiceDays []int) string {
	practiced := make(map[int]bool, len(practiceDays))
	for _, day := range practiceDays {
		practiced[day] = true
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// time.Weekday is Sunday-based; shift so Monday leads the row.
	lead := (int(first.Weekday()) + 6) % 7

	var b strings.Builder
	b.WriteString(calendarHeadStyle.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("   ", lead))

	col := lead
	for day := 1; day <= daysInMonth; day++ {
		cell := fmt.Sprintf("%2d", day)
		if practiced[day] {
			cell = practiceDayStyle.Render(cell)
		}
		b.WriteString(cell)

		col++
		if col == 7 && day != daysInMonth {
			b.WriteString("\n")
			col = 0
		} else if day != daysInMonth {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")

	return b.String()
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
