// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/feal94/guitar.io/internal/identity"
	"github.com/feal94/guitar.io/internal/logger"
	"github.com/feal94/guitar.io/internal/session"
	"github.com/feal94/guitar.io/internal/store"
	"github.com/feal94/guitar.io/models"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 6

// AuthService handles registration, login and logout. Accounts are keyed by
// the hashed-email identity; the plaintext email only ever appears in the
// session marker, never in the relational store.
type AuthService struct {
	store    *store.Store
	sessions *session.Manager
	hasher   *identity.Hasher
	logger   *logger.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(st *store.Store, sessions *session.Manager, hasher *identity.Hasher, log *logger.Logger) *AuthService {
	return &AuthService{store: st, sessions: sessions, hasher: hasher, logger: log}
}

// Register creates a new account. The email is normalized before hashing, so
// addresses differing only in case or surrounding whitespace collide on the
// same email_hash and are rejected as duplicates.
func (a *AuthService) Register(ctx context.Context, email, password, displayName string) (models.User, error) {
	email = identity.NormalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return models.User{}, err
	}

	user := models.User{
		EmailHash:    a.hasher.Hash(email),
		PasswordHash: a.hasher.Hash(password),
		DisplayName:  strings.TrimSpace(displayName),
		CreatedAt:    time.Now().UTC(),
	}

	existing, err := a.store.QueryOne(ctx,
		`SELECT email_hash FROM users WHERE email_hash = ?`, user.EmailHash)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		return models.User{}, ErrAccountExists
	}

	query, args, err := sq.Insert(user.TableName()).
		Columns("email_hash", "password_hash", "display_name", "created_at").
		Values(user.EmailHash, user.PasswordHash, user.DisplayName, user.CreatedAt.Format(time.RFC3339)).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("register: build query: %w", err)
	}

	if err = a.store.Execute(ctx, query, args...); err != nil {
		// A primary-key collision means another registration won the race
		// between the lookup above and this insert.
		if errors.Is(err, store.ErrConstraintViolation) {
			return models.User{}, ErrAccountExists
		}
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	a.logger.Info().Str("email_hash", user.EmailHash).Msg("account registered")
	return user, nil
}

// Login verifies the credentials, updates last_login and starts a session.
func (a *AuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	email = identity.NormalizeEmail(email)
	emailHash := a.hasher.Hash(email)

	row, err := a.store.QueryOne(ctx,
		`SELECT email_hash, password_hash FROM users WHERE email_hash = ?`, emailHash)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}
	if row == nil {
		return models.Session{}, ErrUserNotFound
	}
	if row.String("password_hash") != a.hasher.Hash(password) {
		return models.Session{}, ErrWrongPassword
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if err = a.store.Execute(ctx,
		`UPDATE users SET last_login = ? WHERE email_hash = ?`, now, emailHash); err != nil {
		return models.Session{}, fmt.Errorf("login: update last_login: %w", err)
	}

	s, err := a.sessions.Start(email, emailHash)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	a.logger.Info().Str("email_hash", emailHash).Msg("login successful")
	return s, nil
}

// Logout removes the session marker.
func (a *AuthService) Logout() error {
	return a.sessions.End()
}

// Current returns the active session or [session.ErrNotLoggedIn].
func (a *AuthService) Current() (models.Session, error) {
	return a.sessions.Require()
}

// Profile returns the stored account row for the given identity.
func (a *AuthService) Profile(ctx context.Context, emailHash string) (models.User, error) {
	row, err := a.store.QueryOne(ctx,
		`SELECT email_hash, display_name, created_at, last_login FROM users WHERE email_hash = ?`,
		emailHash)
	if err != nil {
		return models.User{}, fmt.Errorf("profile: %w", err)
	}
	if row == nil {
		return models.User{}, ErrUserNotFound
	}

	return models.User{
		EmailHash:   row.String("email_hash"),
		DisplayName: row.String("display_name"),
		CreatedAt:   row.Time("created_at"),
		LastLogin:   row.Time("last_login"),
	}, nil
}

func validateCredentials(email, password string) error {
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email address", ErrInvalidDataProvided)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidDataProvided, minPasswordLength)
	}

	return nil
}
