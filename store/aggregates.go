// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"

	"hushboard/apperr"
	"hushboard/models"
	"hushboard/poll"
)

// PollAggregates computes the statistical summary for one poll post
// from current store state. Returns (nil, nil) when the post does not
// exist or is a text post. A stored config whose tag contradicts the
// post type propagates as an Integrity error.
//
// The result is ungated; callers apply poll.Gate (or the export
// functions) before disclosing it.
func (s *Store) PollAggregates(postID int64) (models.PollAggregates, error) {
	post, err := s.PostByID(postID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return s.aggregatesForPost(post)
}

func (s *Store) aggregatesForPost(post *models.Post) (models.PollAggregates, error) {
	if post.PostType == models.PostTypeText {
		return nil, nil
	}

	responses, err := s.ResponsesForPost(post.ID)
	if err != nil {
		return nil, err
	}

	switch post.PostType {
	case models.PostTypeRadio:
		return poll.ComputeRadio(post.PollConfig, responses), nil
	case models.PostTypeScale:
		return poll.ComputeScale(post.PollConfig, responses), nil
	default:
		return nil, apperr.Integrity("post %d has unknown post type %q", post.ID, post.PostType)
	}
}
