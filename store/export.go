// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"hushboard/models"
	"hushboard/poll"
)

// ExportSummaries builds the reporting rows for every poll, in sort
// order. The export path never applies the viewer-participation rule
// but always honors the disclosure floor: under-threshold polls are
// present with zeroed counts rather than omitted, so the export layer
// renders a uniform column layout.
func (s *Store) ExportSummaries() (*models.ExportResponse, error) {
	posts, err := s.postsInFeedOrder()
	if err != nil {
		return nil, err
	}

	export := &models.ExportResponse{
		RadioPolls: []models.RadioExportSummary{},
		ScalePolls: []models.ScaleExportSummary{},
	}

	for i := range posts {
		post := posts[i]
		if post.PostType == models.PostTypeText {
			continue
		}

		responses, err := s.ResponsesForPost(post.ID)
		if err != nil {
			return nil, err
		}

		switch post.PostType {
		case models.PostTypeRadio:
			agg := poll.ComputeRadio(post.PollConfig, responses)
			export.RadioPolls = append(export.RadioPolls, poll.ExportRadio(post, agg))
		case models.PostTypeScale:
			agg := poll.ComputeScale(post.PollConfig, responses)
			export.ScalePolls = append(export.ScalePolls, poll.ExportScale(post, agg))
		}
	}

	return export, nil
}
