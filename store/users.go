// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"hushboard/apperr"
	"hushboard/models"
)

// CreateUser inserts a new anonymous identity. The token is the user's
// sole authentication secret; the username is their public display name.
func (s *Store) CreateUser(token, username string) (models.User, error) {
	var id int64
	err := s.db.QueryRow(`
		INSERT INTO users (token, username)
		VALUES (?, ?)
		RETURNING id
	`, token, username).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.username") {
			return models.User{}, apperr.Validation("username is already taken")
		}
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return models.User{ID: id, Token: token, Username: username}, nil
}

// FindUserByToken resolves an identity by exact token match.
func (s *Store) FindUserByToken(token string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(`
		SELECT id, token, username FROM users WHERE token = ?
	`, token).Scan(&u.ID, &u.Token, &u.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("user")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user by token: %w", err)
	}
	return &u, nil
}

// IsUsernameAvailable reports whether no user currently holds username.
func (s *Store) IsUsernameAvailable(username string) (bool, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM users WHERE username = ?`, username).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check username availability: %w", err)
	}
	return false, nil
}
