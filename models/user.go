// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package models

import "time"

// User represents a registered account. The account is identified everywhere
// in the schema by EmailHash, a one-way digest of the normalized email
// address; the plaintext email is never persisted.
type User struct {
	// EmailHash is the primary key: hex digest of the lowercased and
	// trimmed email address. It permanently identifies the account.
	EmailHash string `json:"email_hash"`

	// PasswordHash is the one-way digest of the plaintext password.
	// It is compared against a freshly computed digest on login and is
	// never exposed outside the auth service.
	PasswordHash string `json:"-"`

	// DisplayName is an optional user-provided name shown in the UI.
	DisplayName string `json:"display_name,omitempty"`

	// CreatedAt is the registration timestamp (UTC).
	CreatedAt time.Time `json:"created_at"`

	// LastLogin is updated on every successful login. Zero when the user
	// has never logged in since registration.
	LastLogin time.Time `json:"last_login,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
