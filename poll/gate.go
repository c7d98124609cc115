// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import "hushboard/models"

// MinResponsesForDisclosure is the privacy floor: aggregates for a poll
// with fewer total responses are never disclosed, anywhere. It is a
// policy constant, not configuration.
const MinResponsesForDisclosure = 5

// Gate applies the disclosure policy to computed aggregates and returns
// nil when the viewer may not see them.
//
// Anonymous viewers see results once the floor is met. Authenticated
// viewers must additionally have submitted their own response to the
// poll: results are the reward for participating.
func Gate(agg models.PollAggregates, viewerResponded, viewerAuthenticated bool) models.PollAggregates {
	if agg == nil {
		return nil
	}
	if agg.Total() < MinResponsesForDisclosure {
		return nil
	}
	if viewerAuthenticated && !viewerResponded {
		return nil
	}
	return agg
}

// ExportRadio builds the reporting row for a radio poll. Below the
// disclosure floor the row keeps its full column layout but carries
// only zeroes, so the export layer never branches on visibility.
func ExportRadio(post models.Post, agg *models.RadioAggregates) models.RadioExportSummary {
	summary := models.RadioExportSummary{
		PostID:      post.ID,
		Title:       post.Title,
		Description: description(post),
	}

	if agg.TotalResponses < MinResponsesForDisclosure {
		summary.Censored = true
		summary.Options = make([]models.OptionCount, 0, len(post.PollConfig.Options))
		for _, opt := range post.PollConfig.Options {
			summary.Options = append(summary.Options, models.OptionCount{
				OptionID: opt.ID,
				Label:    opt.Label,
			})
		}
		return summary
	}

	summary.ResponseCount = agg.TotalResponses
	summary.Options = agg.Options
	for _, s := range agg.SpecialOptions {
		switch s.Type {
		case models.SpecialPreferNotToSay:
			summary.PreferNotToSay = s.Count
		case models.SpecialNotApplicable:
			summary.NotApplicable = s.Count
		}
	}
	return summary
}

// ExportScale builds the reporting row for a scale poll, zeroed below
// the disclosure floor.
func ExportScale(post models.Post, agg *models.ScaleAggregates) models.ScaleExportSummary {
	cfg := post.PollConfig
	summary := models.ScaleExportSummary{
		PostID:      post.ID,
		Title:       post.Title,
		Description: description(post),
		MinLabel:    cfg.MinLabel,
		MaxLabel:    cfg.MaxLabel,
		ConfigMin:   cfg.Min,
		ConfigMax:   cfg.Max,
		Counts:      make([]int, cfg.Max-cfg.Min+1),
	}

	if agg.TotalResponses < MinResponsesForDisclosure {
		summary.Censored = true
		return summary
	}

	summary.ResponseCount = agg.TotalResponses
	for i, bucket := range agg.Distribution {
		if i < len(summary.Counts) {
			summary.Counts[i] = bucket.Count
		}
	}
	for _, s := range agg.SpecialOptions {
		switch s.Type {
		case models.SpecialPreferNotToSay:
			summary.PreferNotToSay = s.Count
		case models.SpecialNotApplicable:
			summary.NotApplicable = s.Count
		}
	}
	return summary
}

func description(post models.Post) string {
	if post.Content != nil {
		return *post.Content
	}
	return ""
}
