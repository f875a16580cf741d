// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

// Package identity implements the hashed-email identity scheme: a one-way
// digest of the normalized email address substitutes for the email itself
// everywhere in the relational schema, and the same digest primitive turns
// plaintext passwords into stored credentials.
package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// DefaultHashKey keys the HMAC digest when no key is configured. Changing the
// key changes every derived email_hash, which orphans all rows in an existing
// store, so it must stay stable for the lifetime of a data directory.
const DefaultHashKey = "guitar.io/identity/v1"

// Hasher computes keyed HMAC-SHA256 digests, hex-encoded. The digest is
// deterministic: the same input always yields the same output for a given
// key, which is what makes it usable as a primary-key domain.
type Hasher struct {
	key []byte
}

// NewHasher returns a Hasher keyed with hashKey, falling back to
// DefaultHashKey when hashKey is empty.
func NewHasher(hashKey string) *Hasher {
	if hashKey == "" {
		hashKey = DefaultHashKey
	}
	return &Hasher{key: []byte(hashKey)}
}

// Hash returns the hex-encoded HMAC-SHA256 digest of data. It is used
// identically for email-to-identity and password-to-credential derivation;
// callers must never compare a hashed value against an unhashed one.
func (h *Hasher) Hash(data string) string {
	mac := hmac.New(sha256.New, h.key)
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// EmailHash normalizes email and returns its digest. Every lookup and every
// insert must go through this single path or lookups silently miss.
func (h *Hasher) EmailHash(email string) string {
	return h.Hash(NormalizeEmail(email))
}

// NormalizeEmail lowercases and trims the address. It is applied before
// hashing and before any lookup, consistently, so that "A@B.com " and
// "a@b.com" resolve to the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
