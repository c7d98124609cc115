// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"hushboard/apperr"
	"hushboard/models"
)

// HeartTally is the heart summary for one target as seen by a viewer.
type HeartTally struct {
	Count         int
	ViewerHearted bool
}

// ToggleHeart removes the user's heart on the target if present,
// otherwise adds one, and reports the resulting state. The existence
// check decides which way to toggle; the UNIQUE constraint is what
// keeps concurrent togglers from ever stacking a second row.
func (s *Store) ToggleHeart(userID int64, targetType string, targetID int64) (bool, error) {
	if targetType != models.TargetPost && targetType != models.TargetComment {
		return false, apperr.Validation("invalid heart target type %q", targetType)
	}
	if err := s.requireHeartTarget(targetType, targetID); err != nil {
		return false, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existingID int64
	err = tx.QueryRow(`
		SELECT id FROM hearts
		WHERE user_id = ? AND target_type = ? AND target_id = ?
	`, userID, targetType, targetID).Scan(&existingID)
	exists := err == nil
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("failed to check existing heart: %w", err)
	}

	if exists {
		_, err = tx.Exec(`
			DELETE FROM hearts
			WHERE user_id = ? AND target_type = ? AND target_id = ?
		`, userID, targetType, targetID)
	} else {
		_, err = tx.Exec(`
			INSERT INTO hearts (user_id, target_type, target_id)
			VALUES (?, ?, ?)
			ON CONFLICT (user_id, target_type, target_id) DO NOTHING
		`, userID, targetType, targetID)
	}
	if err != nil {
		return false, fmt.Errorf("failed to toggle heart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit heart toggle: %w", err)
	}
	return !exists, nil
}

func (s *Store) requireHeartTarget(targetType string, targetID int64) error {
	table := "posts"
	resource := "post"
	if targetType == models.TargetComment {
		table = "comments"
		resource = "comment"
	}
	var id int64
	err := s.db.QueryRow(`SELECT id FROM `+table+` WHERE id = ?`, targetID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound(resource)
	}
	if err != nil {
		return fmt.Errorf("failed to check heart target: %w", err)
	}
	return nil
}

// HeartTallies returns heart counts and the viewer's own-heart flag for
// every target of one type, in a single fixed-shape query. Pass a nil
// viewer for anonymous feeds.
func (s *Store) HeartTallies(targetType string, viewerID *int64) (map[int64]HeartTally, error) {
	var viewer sql.NullInt64
	if viewerID != nil {
		viewer = sql.NullInt64{Int64: *viewerID, Valid: true}
	}

	rows, err := s.db.Query(`
		SELECT target_id,
		       COUNT(*),
		       COALESCE(SUM(CASE WHEN user_id = ? THEN 1 ELSE 0 END), 0)
		FROM hearts
		WHERE target_type = ?
		GROUP BY target_id
	`, viewer, targetType)
	if err != nil {
		return nil, fmt.Errorf("failed to query heart tallies: %w", err)
	}
	defer rows.Close()

	result := make(map[int64]HeartTally)
	for rows.Next() {
		var targetID int64
		var count, hearted int
		if err := rows.Scan(&targetID, &count, &hearted); err != nil {
			return nil, fmt.Errorf("failed to scan heart tally: %w", err)
		}
		result[targetID] = HeartTally{Count: count, ViewerHearted: hearted > 0}
	}
	return result, rows.Err()
}
