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

const postColumns = `p.id, p.user_id, p.title, p.content, p.post_type, p.poll_config, p.sort_order, u.username`

// CreatePost inserts a post owned by userID. New posts take the highest
// sort_order so they surface at the end of the feed by default.
func (s *Store) CreatePost(userID int64, title string, content *string, postType string, cfg *models.PollConfig) (*models.Post, error) {
	if err := models.ValidateConfigForPost(postType, cfg); err != nil {
		return nil, err
	}
	if postType == models.PostTypeText && (content == nil || *content == "") {
		return nil, apperr.Validation("text posts require content")
	}

	var configJSON *string
	if cfg != nil {
		b, err := json.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to encode poll config: %w", err)
		}
		str := string(b)
		configJSON = &str
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var maxOrder int64
	if err := tx.QueryRow(`SELECT COALESCE(MAX(sort_order), 0) FROM posts`).Scan(&maxOrder); err != nil {
		return nil, fmt.Errorf("failed to read max sort order: %w", err)
	}

	var id int64
	err = tx.QueryRow(`
		INSERT INTO posts (user_id, title, content, post_type, poll_config, sort_order)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`, userID, title, content, postType, configJSON, maxOrder+1).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit post creation: %w", err)
	}

	return s.PostByID(id)
}

// PostByID returns the post with its owner's username, or a NotFound
// error. A stored poll_config whose tag mismatches post_type surfaces
// as an Integrity error.
func (s *Store) PostByID(id int64) (*models.Post, error) {
	row := s.db.QueryRow(`
		SELECT `+postColumns+`
		FROM posts p
		JOIN users u ON p.user_id = u.id
		WHERE p.id = ?
	`, id)

	post, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("post")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query post: %w", err)
	}
	return post, nil
}

// UpdatePost rewrites a post's title, content, type, and poll config.
// Only the owner may update.
func (s *Store) UpdatePost(id, userID int64, title string, content *string, postType string, cfg *models.PollConfig) (*models.Post, error) {
	if err := models.ValidateConfigForPost(postType, cfg); err != nil {
		return nil, err
	}

	if err := s.requirePostOwner(id, userID); err != nil {
		return nil, err
	}

	var configJSON *string
	if cfg != nil {
		b, err := json.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to encode poll config: %w", err)
		}
		str := string(b)
		configJSON = &str
	}

	_, err := s.db.Exec(`
		UPDATE posts
		SET title = ?, content = ?, post_type = ?, poll_config = ?
		WHERE id = ? AND user_id = ?
	`, title, content, postType, configJSON, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return s.PostByID(id)
}

// DeletePost removes a post owned by userID along with its comments,
// responses, and hearts.
func (s *Store) DeletePost(id, userID int64) error {
	if err := s.requirePostOwner(id, userID); err != nil {
		return err
	}
	return s.deletePostAndHearts(id)
}

// AdminDeletePost removes any post, bypassing the ownership check.
func (s *Store) AdminDeletePost(id int64) error {
	return s.deletePostAndHearts(id)
}

// deletePostAndHearts removes a post in one transaction. Comments and
// poll responses cascade via FK, but hearts reference their target
// through a polymorphic (target_type, target_id) pair with no FK, so
// hearts on the post and on its comments are cleared explicitly first.
func (s *Store) deletePostAndHearts(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		DELETE FROM hearts
		WHERE (target_type = ? AND target_id = ?)
		   OR (target_type = ? AND target_id IN (SELECT id FROM comments WHERE post_id = ?))
	`, models.TargetPost, id, models.TargetComment, id)
	if err != nil {
		return fmt.Errorf("failed to delete post hearts: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("post")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit post deletion: %w", err)
	}
	return nil
}

func (s *Store) requirePostOwner(id, userID int64) error {
	var ownerID int64
	err := s.db.QueryRow(`SELECT user_id FROM posts WHERE id = ?`, id).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("post")
	}
	if err != nil {
		return fmt.Errorf("failed to query post owner: %w", err)
	}
	if ownerID != userID {
		return apperr.Unauthorized("only the post owner may modify it")
	}
	return nil
}

// MovePostUp swaps the post's sort_order with its predecessor in feed
// order. Returns false without error when the post is already first.
func (s *Store) MovePostUp(id int64) (bool, error) {
	return s.swapSortOrder(id, `
		SELECT id, sort_order FROM posts
		WHERE sort_order < ?
		ORDER BY sort_order DESC
		LIMIT 1
	`)
}

// MovePostDown swaps the post's sort_order with its successor in feed
// order. Returns false without error when the post is already last.
func (s *Store) MovePostDown(id int64) (bool, error) {
	return s.swapSortOrder(id, `
		SELECT id, sort_order FROM posts
		WHERE sort_order > ?
		ORDER BY sort_order ASC
		LIMIT 1
	`)
}

func (s *Store) swapSortOrder(id int64, neighborQuery string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current int64
	err = tx.QueryRow(`SELECT sort_order FROM posts WHERE id = ?`, id).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return false, apperr.NotFound("post")
	}
	if err != nil {
		return false, fmt.Errorf("failed to query post: %w", err)
	}

	var neighborID, neighborOrder int64
	err = tx.QueryRow(neighborQuery, current).Scan(&neighborID, &neighborOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil // already at the edge
	}
	if err != nil {
		return false, fmt.Errorf("failed to query neighbor post: %w", err)
	}

	if _, err := tx.Exec(`UPDATE posts SET sort_order = ? WHERE id = ?`, neighborOrder, id); err != nil {
		return false, fmt.Errorf("failed to update sort order: %w", err)
	}
	if _, err := tx.Exec(`UPDATE posts SET sort_order = ? WHERE id = ?`, current, neighborID); err != nil {
		return false, fmt.Errorf("failed to update sort order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit sort order swap: %w", err)
	}
	return true, nil
}

// MovePostToPosition places the post at the given 1-based position in
// ascending sort order and renumbers the rest sequentially.
func (s *Store) MovePostToPosition(id int64, position int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.Query(`SELECT id FROM posts ORDER BY sort_order ASC, id ASC`)
	if err != nil {
		return fmt.Errorf("failed to query post order: %w", err)
	}
	var ids []int64
	for rows.Next() {
		var postID int64
		if err := rows.Scan(&postID); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan post id: %w", err)
		}
		ids = append(ids, postID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read post order: %w", err)
	}

	idx := -1
	for i, postID := range ids {
		if postID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return apperr.NotFound("post")
	}

	ids = append(ids[:idx], ids[idx+1:]...)
	if position < 1 {
		position = 1
	}
	if position > len(ids)+1 {
		position = len(ids) + 1
	}
	ids = append(ids[:position-1], append([]int64{id}, ids[position-1:]...)...)

	for i, postID := range ids {
		if _, err := tx.Exec(`UPDATE posts SET sort_order = ? WHERE id = ?`, int64(i+1), postID); err != nil {
			return fmt.Errorf("failed to renumber posts: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit post reorder: %w", err)
	}
	return nil
}
