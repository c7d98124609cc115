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

// CreateComment attaches a comment to an existing post. Any
// authenticated user may comment on any post.
func (s *Store) CreateComment(userID, postID int64, content string) (*models.Comment, error) {
	if content == "" {
		return nil, apperr.Validation("comment content is required")
	}
	if _, err := s.PostByID(postID); err != nil {
		return nil, err
	}

	var c models.Comment
	err := s.db.QueryRow(`
		INSERT INTO comments (user_id, post_id, content)
		VALUES (?, ?, ?)
		RETURNING id
	`, userID, postID, content).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	c.UserID = userID
	c.PostID = postID
	c.Content = content
	return &c, nil
}

// CommentsForPost lists a post's comments with author usernames, oldest
// first.
func (s *Store) CommentsForPost(postID int64) ([]models.Comment, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.user_id, c.post_id, c.content, u.username
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.post_id = ?
		ORDER BY c.id ASC
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.PostID, &c.Content, &c.Username); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// UpdateComment rewrites a comment's content. Only its author may.
func (s *Store) UpdateComment(id, userID int64, content string) (*models.Comment, error) {
	if content == "" {
		return nil, apperr.Validation("comment content is required")
	}
	if err := s.requireCommentAuthor(id, userID); err != nil {
		return nil, err
	}

	_, err := s.db.Exec(`
		UPDATE comments SET content = ? WHERE id = ? AND user_id = ?
	`, content, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	var c models.Comment
	err = s.db.QueryRow(`
		SELECT c.id, c.user_id, c.post_id, c.content, u.username
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.id = ?
	`, id).Scan(&c.ID, &c.UserID, &c.PostID, &c.Content, &c.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to query updated comment: %w", err)
	}
	return &c, nil
}

// DeleteComment removes a comment authored by userID along with any
// hearts on it.
func (s *Store) DeleteComment(id, userID int64) error {
	if err := s.requireCommentAuthor(id, userID); err != nil {
		return err
	}
	return s.deleteCommentAndHearts(id)
}

// AdminDeleteComment removes any comment, bypassing the author check.
func (s *Store) AdminDeleteComment(id int64) error {
	return s.deleteCommentAndHearts(id)
}

// deleteCommentAndHearts removes a comment in one transaction. Hearts
// have no FK on their polymorphic target, so they are cleared
// explicitly.
func (s *Store) deleteCommentAndHearts(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		DELETE FROM hearts WHERE target_type = ? AND target_id = ?
	`, models.TargetComment, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment hearts: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("comment")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit comment deletion: %w", err)
	}
	return nil
}

func (s *Store) requireCommentAuthor(id, userID int64) error {
	var authorID int64
	err := s.db.QueryRow(`SELECT user_id FROM comments WHERE id = ?`, id).Scan(&authorID)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("comment")
	}
	if err != nil {
		return fmt.Errorf("failed to query comment author: %w", err)
	}
	if authorID != userID {
		return apperr.Unauthorized("only the comment author may modify it")
	}
	return nil
}
