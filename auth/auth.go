// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"regexp"
	"strings"
	"time"

	"hushboard/apperr"
	"hushboard/models"
	"hushboard/store"
)

// SessionDuration is how long an issued session stays valid.
const SessionDuration = 30 * 24 * time.Hour

const tokenBytes = 20

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// GenerateIdentityToken returns a new identity token: 20 random bytes,
// base64url without padding. This is the user's only credential.
func GenerateIdentityToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GenerateSessionToken returns a new session token: 20 random bytes,
// lowercase base32 without padding.
func GenerateSessionToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return strings.ToLower(enc.EncodeToString(b)), nil
}

// SessionIDFromToken derives the stored session id from a session
// token. The raw token never touches the database.
func SessionIDFromToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateUsername checks the chosen username against the platform
// rules: 2-30 characters, letters, digits, underscore and hyphen only.
// Leading and trailing whitespace is rejected rather than trimmed.
func ValidateUsername(username string) error {
	if username != strings.TrimSpace(username) {
		return apperr.Validation("username must not begin or end with whitespace")
	}
	if len(username) < 2 || len(username) > 30 {
		return apperr.Validation("username must be between 2 and 30 characters")
	}
	if !usernamePattern.MatchString(username) {
		return apperr.Validation("username may only contain letters, numbers, underscores, and hyphens")
	}
	return nil
}

// CreateSession issues a fresh session for the user and returns the
// raw session token to hand back to the client.
func CreateSession(s *store.Store, userID int64) (string, error) {
	token, err := GenerateSessionToken()
	if err != nil {
		return "", err
	}
	session := models.Session{
		ID:        SessionIDFromToken(token),
		UserID:    userID,
		ExpiresAt: time.Now().Add(SessionDuration),
	}
	if err := s.CreateSession(session); err != nil {
		return "", err
	}
	return token, nil
}

// ValidateSessionToken resolves a presented session token to its user.
// It returns (nil, nil) for unknown tokens and deletes expired
// sessions as it encounters them.
func ValidateSessionToken(s *store.Store, token string) (*models.Session, *models.User, error) {
	if token == "" {
		return nil, nil, nil
	}
	id := SessionIDFromToken(token)
	session, user, err := s.SessionWithUser(id)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, nil
	}
	if time.Now().After(session.ExpiresAt) {
		if err := s.DeleteSession(id); err != nil {
			return nil, nil, err
		}
		return nil, nil, nil
	}
	return session, user, nil
}

// InvalidateSessionToken logs out the session behind a token. Unknown
// tokens are a no-op.
func InvalidateSessionToken(s *store.Store, token string) error {
	if token == "" {
		return nil
	}
	return s.DeleteSession(SessionIDFromToken(token))
}
