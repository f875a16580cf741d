// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package models

import "time"

// Session is the short-lived login marker held outside the relational store.
// Every command reads it to gate access and to obtain the identity key
// (EmailHash) used in queries.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	EmailHash string    `json:"emailHash"`
	LoginTime time.Time `json:"loginTime"`
}
