// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"

	"hushboard/models"
	"hushboard/poll"
)

// Feed assembles the full view model for a viewer (nil for anonymous):
// every post in sort order, its comments, heart tallies, the viewer's
// own poll responses, and privacy-gated poll aggregates.
//
// Heart counts come from one query per target type and comments from a
// single query, so the total query count does not grow with feed size
// except for the per-poll response reads the aggregation engine needs.
func (s *Store) Feed(viewerID *int64) ([]models.PostWithDetails, error) {
	posts, err := s.postsInFeedOrder()
	if err != nil {
		return nil, err
	}

	commentsByPost, err := s.allCommentsByPost()
	if err != nil {
		return nil, err
	}

	postHearts, err := s.HeartTallies(models.TargetPost, viewerID)
	if err != nil {
		return nil, err
	}
	commentHearts, err := s.HeartTallies(models.TargetComment, viewerID)
	if err != nil {
		return nil, err
	}

	viewerResponses := map[int64]models.ResponseData{}
	if viewerID != nil {
		viewerResponses, err = s.ViewerResponses(*viewerID)
		if err != nil {
			return nil, err
		}
	}

	feed := make([]models.PostWithDetails, 0, len(posts))
	for i := range posts {
		post := posts[i]
		detail := models.PostWithDetails{Post: post}

		comments := commentsByPost[post.ID]
		detail.Comments = make([]models.CommentWithDetails, 0, len(comments))
		for _, c := range comments {
			tally := commentHearts[c.ID]
			detail.Comments = append(detail.Comments, models.CommentWithDetails{
				Comment:       c,
				HeartCount:    tally.Count,
				ViewerHearted: tally.ViewerHearted,
			})
		}
		detail.CommentCount = len(comments)

		tally := postHearts[post.ID]
		detail.HeartCount = tally.Count
		detail.ViewerHearted = tally.ViewerHearted

		if post.PostType != models.PostTypeText {
			responded := false
			if data, ok := viewerResponses[post.ID]; ok {
				responded = true
				detail.UserResponse = &data
			}

			agg, err := s.aggregatesForPost(&posts[i])
			if err != nil {
				return nil, err
			}
			if agg != nil {
				detail.ResponseCount = agg.Total()
			}
			detail.PollResults = poll.Gate(agg, responded, viewerID != nil)
		}

		feed = append(feed, detail)
	}

	return feed, nil
}

func (s *Store) postsInFeedOrder() ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON p.user_id = u.id
		ORDER BY p.sort_order ASC, p.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feed post: %w", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func (s *Store) allCommentsByPost() (map[int64][]models.Comment, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.user_id, c.post_id, c.content, u.username
		FROM comments c
		JOIN users u ON c.user_id = u.id
		ORDER BY c.post_id ASC, c.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed comments: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]models.Comment)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.PostID, &c.Content, &c.Username); err != nil {
			return nil, fmt.Errorf("failed to scan feed comment: %w", err)
		}
		result[c.PostID] = append(result[c.PostID], c)
	}
	return result, rows.Err()
}
