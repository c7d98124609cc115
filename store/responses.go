// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"hushboard/apperr"
	"hushboard/models"
)

// SubmitResponse stores a user's answer to a poll post. At most one
// response exists per (user, post): a resubmission overwrites in place.
// The returned flag reports whether this was the user's first response.
//
// The pre-insert existence check only feeds that flag; the UNIQUE
// (user_id, post_id) constraint and the ON CONFLICT clause are what
// guarantee a single row under concurrent identical submissions.
func (s *Store) SubmitResponse(userID, postID int64, data models.ResponseData) (bool, error) {
	post, err := s.PostByID(postID)
	if err != nil {
		return false, err
	}
	if post.PostType == models.PostTypeText {
		return false, apperr.Validation("cannot submit a poll response to a text post")
	}
	if data.IsEmpty() {
		return false, apperr.Validation("response data is required")
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return false, fmt.Errorf("failed to encode response data: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existingID int64
	err = tx.QueryRow(`
		SELECT id FROM poll_responses WHERE user_id = ? AND post_id = ?
	`, userID, postID).Scan(&existingID)
	isNew := errors.Is(err, sql.ErrNoRows)
	if err != nil && !isNew {
		return false, fmt.Errorf("failed to check existing response: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO poll_responses (user_id, post_id, response_data)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, post_id)
		DO UPDATE SET response_data = excluded.response_data
	`, userID, postID, string(raw))
	if err != nil {
		return false, fmt.Errorf("failed to upsert response: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit response: %w", err)
	}
	return isNew, nil
}

// UserResponse returns the viewer's own stored answer for a poll, or
// nil when they have not responded.
func (s *Store) UserResponse(userID, postID int64) (*models.ResponseData, error) {
	var raw string
	err := s.db.QueryRow(`
		SELECT response_data FROM poll_responses WHERE user_id = ? AND post_id = ?
	`, userID, postID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user response: %w", err)
	}

	var data models.ResponseData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, apperr.Integrity("stored response data is not valid JSON: %v", err)
	}
	return &data, nil
}

// ResponsesForPost returns every stored answer for a poll, decoded for
// aggregation. Raw rows never leave this package.
func (s *Store) ResponsesForPost(postID int64) ([]models.ResponseData, error) {
	rows, err := s.db.Query(`
		SELECT response_data FROM poll_responses WHERE post_id = ?
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	var responses []models.ResponseData
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		var data models.ResponseData
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, apperr.Integrity("stored response data is not valid JSON: %v", err)
		}
		responses = append(responses, data)
	}
	return responses, rows.Err()
}

// ViewerResponses returns all of one user's responses keyed by post id,
// in a single query, for feed assembly.
func (s *Store) ViewerResponses(userID int64) (map[int64]models.ResponseData, error) {
	rows, err := s.db.Query(`
		SELECT post_id, response_data FROM poll_responses WHERE user_id = ?
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query viewer responses: %w", err)
	}
	defer rows.Close()

	result := make(map[int64]models.ResponseData)
	for rows.Next() {
		var postID int64
		var raw string
		if err := rows.Scan(&postID, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan viewer response: %w", err)
		}
		var data models.ResponseData
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, apperr.Integrity("stored response data is not valid JSON: %v", err)
		}
		result[postID] = data
	}
	return result, rows.Err()
}
