// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package store

import "time"

// Row is one result row: a mapping from column name to value. The accessor
// methods give callers typed views without reflection-heavy struct scanning;
// a missing column or a NULL yields the type's zero value.
type Row map[string]any

// Has reports whether the row contains a non-NULL value for col.
func (r Row) Has(col string) bool {
	v, ok := r[col]
	return ok && v != nil
}

// String returns the value of col as a string, or "" for NULL or a missing
// column.
func (r Row) String(col string) string {
	switch v := r[col].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// Int64 returns the value of col as an int64. SQLite reports all integers as
// int64; REAL aggregates (e.g. SUM over an empty window) come back as
// float64 and are truncated.
func (r Row) Int64(col string) int64 {
	switch v := r[col].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// Bool returns the value of col interpreted as a SQLite boolean (any non-zero
// integer is true).
func (r Row) Bool(col string) bool {
	switch v := r[col].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	default:
		return false
	}
}

// Time parses the value of col as an RFC 3339 timestamp, falling back to the
// SQLite datetime() format. NULL, a missing column or an unparseable value
// yield the zero time.
func (r Row) Time(col string) time.Time {
	if v, ok := r[col].(time.Time); ok {
		return v
	}

	s := r.String(col)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t.UTC()
	}

	return time.Time{}
}
