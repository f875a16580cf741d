// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package store

import (
	"testing"
	"time"
)

func TestRow_Has(t *testing.T) {
	row := Row{"a": "x", "b": nil}

	if !row.Has("a") {
		t.Error("expected Has(a)=true")
	}
	if row.Has("b") {
		t.Error("expected Has(b)=false for NULL value")
	}
	if row.Has("missing") {
		t.Error("expected Has(missing)=false")
	}
}

func TestRow_String(t *testing.T) {
	row := Row{"s": "text", "b": []byte("bytes"), "n": nil, "i": int64(7)}

	if got := row.String("s"); got != "text" {
		t.Errorf("expected text, got %q", got)
	}
	if got := row.String("b"); got != "bytes" {
		t.Errorf("expected bytes, got %q", got)
	}
	if got := row.String("n"); got != "" {
		t.Errorf("expected empty string for NULL, got %q", got)
	}
	if got := row.String("i"); got != "" {
		t.Errorf("expected empty string for non-text, got %q", got)
	}
}

func TestRow_Int64(t *testing.T) {
	row := Row{"i": int64(42), "f": float64(3.9), "n": nil}

	if got := row.Int64("i"); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := row.Int64("f"); got != 3 {
		t.Errorf("expected truncated 3, got %d", got)
	}
	if got := row.Int64("n"); got != 0 {
		t.Errorf("expected 0 for NULL, got %d", got)
	}
	if got := row.Int64("missing"); got != 0 {
		t.Errorf("expected 0 for missing column, got %d", got)
	}
}

func TestRow_Bool(t *testing.T) {
	row := Row{"t": int64(1), "f": int64(0), "b": true, "n": nil}

	if !row.Bool("t") {
		t.Error("expected non-zero integer to be true")
	}
	if row.Bool("f") {
		t.Error("expected zero integer to be false")
	}
	if !row.Bool("b") {
		t.Error("expected native bool to pass through")
	}
	if row.Bool("n") {
		t.Error("expected NULL to be false")
	}
}

func TestRow_Time(t *testing.T) {
	native := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	row := Row{
		"rfc":    "2026-01-10T09:00:00Z",
		"sqlite": "2026-01-10 09:00:00",
		"native": native,
		"bad":    "yesterday",
		"n":      nil,
	}

	want := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	if got := row.Time("rfc"); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := row.Time("sqlite"); !got.Equal(want) {
		t.Errorf("expected %v from datetime() format, got %v", want, got)
	}
	if got := row.Time("native"); !got.Equal(native) {
		t.Errorf("expected native time passthrough, got %v", got)
	}
	if got := row.Time("bad"); !got.IsZero() {
		t.Errorf("expected zero time for unparseable value, got %v", got)
	}
	if got := row.Time("n"); !got.IsZero() {
		t.Errorf("expected zero time for NULL, got %v", got)
	}
}
