// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"hushboard/auth"
	"hushboard/cliparse"
	"hushboard/db"
	"hushboard/models"
	"hushboard/store"
)

// SetupTestDB creates a fresh in-memory database with the full schema.
// The pool is pinned to one connection so every statement sees the
// same in-memory database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	d, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	d.SetMaxOpenConns(1)
	t.Cleanup(func() { d.Close() })

	if err := db.CreateSchema(d); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return d
}

// SetupTestStore creates an in-memory database and wraps it in a Store
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(SetupTestDB(t))
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabasePath: ":memory:",
		AdminKey:     "test-admin-key",
	}
}

// CreateTestUser creates an identity and a live session, returning the
// user and the session token to put in X-Session-Token.
func CreateTestUser(t *testing.T, s *store.Store, username string) (models.User, string) {
	t.Helper()

	token, err := auth.GenerateIdentityToken()
	if err != nil {
		t.Fatalf("Failed to generate identity token: %v", err)
	}
	user, err := s.CreateUser(token, username)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	sessionToken, err := auth.CreateSession(s, user.ID)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	return user, sessionToken
}

// CreateTestPost creates a text post and returns it
func CreateTestPost(t *testing.T, s *store.Store, userID int64, title string) *models.Post {
	t.Helper()

	content := "test content"
	post, err := s.CreatePost(userID, title, &content, models.PostTypeText, nil)
	if err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}
	return post
}

// CreateTestRadioPoll creates a radio poll post with the given options
func CreateTestRadioPoll(t *testing.T, s *store.Store, userID int64, title string, optionIDs ...string) *models.Post {
	t.Helper()

	cfg := &models.PollConfig{Type: models.PostTypeRadio}
	for _, id := range optionIDs {
		cfg.Options = append(cfg.Options, models.PollOption{ID: id, Label: id})
	}
	post, err := s.CreatePost(userID, title, nil, models.PostTypeRadio, cfg)
	if err != nil {
		t.Fatalf("Failed to create test radio poll: %v", err)
	}
	return post
}

// CreateTestScalePoll creates a scale poll post with the given bounds
func CreateTestScalePoll(t *testing.T, s *store.Store, userID int64, title string, min, max int) *models.Post {
	t.Helper()

	cfg := &models.PollConfig{Type: models.PostTypeScale, Min: min, Max: max}
	post, err := s.CreatePost(userID, title, nil, models.PostTypeScale, cfg)
	if err != nil {
		t.Fatalf("Failed to create test scale poll: %v", err)
	}
	return post
}

// SubmitTestResponse submits a poll response for a user
func SubmitTestResponse(t *testing.T, s *store.Store, userID, postID int64, data models.ResponseData) {
	t.Helper()

	if _, err := s.SubmitResponse(userID, postID, data); err != nil {
		t.Fatalf("Failed to submit test response: %v", err)
	}
}

// AddTestComment adds a comment to a post and returns it
func AddTestComment(t *testing.T, s *store.Store, userID, postID int64, content string) *models.Comment {
	t.Helper()

	comment, err := s.CreateComment(userID, postID, content)
	if err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}
	return comment
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
