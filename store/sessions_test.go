// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"errors"
	"testing"
	"time"

	"hushboard/apperr"
	"hushboard/auth"
	"hushboard/models"
	"hushboard/testutil"
)

func TestCreateUser(t *testing.T) {
	s := testutil.SetupTestStore(t)

	user, err := s.CreateUser("tok-1", "first_user")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if user.ID == 0 || user.Username != "first_user" {
		t.Errorf("CreateUser() = %+v", user)
	}

	t.Run("duplicate username is a validation error", func(t *testing.T) {
		_, err := s.CreateUser("tok-2", "first_user")
		if !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("availability check", func(t *testing.T) {
		available, err := s.IsUsernameAvailable("first_user")
		if err != nil {
			t.Fatalf("IsUsernameAvailable() error = %v", err)
		}
		if available {
			t.Error("taken username reported available")
		}

		available, err = s.IsUsernameAvailable("someone_new")
		if err != nil {
			t.Fatalf("IsUsernameAvailable() error = %v", err)
		}
		if !available {
			t.Error("fresh username reported taken")
		}
	})

	t.Run("lookup by token", func(t *testing.T) {
		found, err := s.FindUserByToken("tok-1")
		if err != nil {
			t.Fatalf("FindUserByToken() error = %v", err)
		}
		if found == nil || found.ID != user.ID {
			t.Errorf("FindUserByToken() = %+v", found)
		}

		missing, err := s.FindUserByToken("no-such-token")
		if err != nil {
			t.Fatalf("FindUserByToken() error = %v", err)
		}
		if missing != nil {
			t.Errorf("unknown token resolved to %+v", missing)
		}
	})
}

func TestSessionLifecycle(t *testing.T) {
	s := testutil.SetupTestStore(t)
	user, _ := testutil.CreateTestUser(t, s, "session_user")

	token, err := auth.GenerateSessionToken()
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}
	id := auth.SessionIDFromToken(token)

	err = s.CreateSession(models.Session{
		ID:        id,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	t.Run("valid token resolves to the user", func(t *testing.T) {
		session, got, err := auth.ValidateSessionToken(s, token)
		if err != nil {
			t.Fatalf("ValidateSessionToken() error = %v", err)
		}
		if session == nil || got == nil {
			t.Fatal("valid session not resolved")
		}
		if got.ID != user.ID {
			t.Errorf("resolved user = %+v, want id %d", got, user.ID)
		}
	})

	t.Run("unknown token resolves to nothing", func(t *testing.T) {
		session, got, err := auth.ValidateSessionToken(s, "bogus")
		if err != nil {
			t.Fatalf("ValidateSessionToken() error = %v", err)
		}
		if session != nil || got != nil {
			t.Error("unknown token should resolve to nil")
		}
	})

	t.Run("expired session is deleted lazily", func(t *testing.T) {
		expiredToken, _ := auth.GenerateSessionToken()
		err := s.CreateSession(models.Session{
			ID:        auth.SessionIDFromToken(expiredToken),
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(-time.Minute),
		})
		if err != nil {
			t.Fatalf("CreateSession() error = %v", err)
		}

		session, got, err := auth.ValidateSessionToken(s, expiredToken)
		if err != nil {
			t.Fatalf("ValidateSessionToken() error = %v", err)
		}
		if session != nil || got != nil {
			t.Error("expired session should not validate")
		}

		// The row itself is gone now
		stored, _, err := s.SessionWithUser(auth.SessionIDFromToken(expiredToken))
		if err != nil {
			t.Fatalf("SessionWithUser() error = %v", err)
		}
		if stored != nil {
			t.Error("expired session row was not deleted")
		}
	})

	t.Run("invalidation logs out", func(t *testing.T) {
		if err := auth.InvalidateSessionToken(s, token); err != nil {
			t.Fatalf("InvalidateSessionToken() error = %v", err)
		}
		session, _, err := auth.ValidateSessionToken(s, token)
		if err != nil {
			t.Fatalf("ValidateSessionToken() error = %v", err)
		}
		if session != nil {
			t.Error("invalidated session still validates")
		}
	})
}
