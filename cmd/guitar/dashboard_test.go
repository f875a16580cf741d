// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/feal94/guitar.io/models"
)

func TestRenderCalendar_AllDaysPresent(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	out := renderCalendar(now, []int{2, 15})

	if !strings.Contains(out, "Mo Tu We Th Fr Sa Su") {
		t.Error("expected weekday header row")
	}
	for _, want := range []string{" 1", "15", "31"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected day %q in calendar output", want)
		}
	}
}

func TestRenderCalendar_LeadingOffset(t *testing.T) {
	// February 2026 starts on a Sunday, the last column of a Mon-Sun row.
	now := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	out := renderCalendar(now, nil)

	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected header plus weeks, got %q", out)
	}
	if !strings.HasSuffix(lines[1], " 1") {
		t.Errorf("expected day 1 at the end of the first week row, got %q", lines[1])
	}
}

func TestRenderDashboard_Sections(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	d := models.Dashboard{
		DisplayName:  "Alex",
		Stats:        models.MonthlyStats{TotalSessions: 3, TotalMinutes: 95, UniqueSongs: 1},
		PracticeDays: []int{2, 15},
		RecentSongs:  []models.Song{{Title: "Blackbird", Artist: "The Beatles"}},
		Routines:     []models.Routine{{Name: "Warmup", DurationMinutes: 20}},
	}

	out := renderDashboard(d, now)

	for _, want := range []string{
		"Alex's practice dashboard",
		"July sessions",
		"August 2026",
		"Blackbird",
		"Warmup (20 min)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in dashboard output", want)
		}
	}
}

func TestFormatExerciseLine(t *testing.T) {
	e := models.ExerciseWithProgress{
		Exercise: models.Exercise{ID: "spider-walk", Title: "Spider Walk", Difficulty: "beginner", Category: "technique"},
		Progress: models.ExerciseProgress{TimesPracticed: 4, Completed: true},
	}

	line := formatExerciseLine(e)

	if !strings.Contains(line, "[x]") {
		t.Error("expected completion mark for completed exercise")
	}
	if !strings.Contains(line, "(4x)") {
		t.Error("expected practice count suffix")
	}

	fresh := models.ExerciseWithProgress{
		Exercise: models.Exercise{ID: "caged-c", Title: "CAGED C", Difficulty: "intermediate", Category: "theory"},
	}
	if got := formatExerciseLine(fresh); !strings.Contains(got, "[ ]") {
		t.Error("expected empty mark for unpracticed exercise")
	}
}
