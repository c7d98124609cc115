// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hushboard/models"
)

// CreateSession persists a session row. The id must already be the
// one-way hash of the session token; the raw token is never stored.
func (s *Store) CreateSession(session models.Session) error {
	_, err := s.db.Exec(`
		INSERT INTO session (id, user_id, expires_at)
		VALUES (?, ?, ?)
	`, session.ID, session.UserID, session.ExpiresAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// SessionWithUser resolves a session id to the session and its user.
// Returns (nil, nil, nil) when no such session exists; expiry is the
// caller's concern.
func (s *Store) SessionWithUser(sessionID string) (*models.Session, *models.User, error) {
	var session models.Session
	var user models.User
	var expiresAt int64
	err := s.db.QueryRow(`
		SELECT session.id, session.user_id, session.expires_at,
		       users.token, users.username
		FROM session
		INNER JOIN users ON users.id = session.user_id
		WHERE session.id = ?
	`, sessionID).Scan(&session.ID, &session.UserID, &expiresAt, &user.Token, &user.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query session: %w", err)
	}

	session.ExpiresAt = time.Unix(expiresAt, 0)
	user.ID = session.UserID
	return &session, &user, nil
}

// DeleteSession removes a session row; deleting a missing session is a
// no-op.
func (s *Store) DeleteSession(sessionID string) error {
	if _, err := s.db.Exec(`DELETE FROM session WHERE id = ?`, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
