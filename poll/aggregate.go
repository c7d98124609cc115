// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"math"

	"hushboard/models"
)

// ComputeRadio tallies responses for a radio poll. Option order follows
// the declared config order. Unrecognized selections are ignored: they
// raise totalResponses but no counter, and they are excluded from the
// percentage denominator.
func ComputeRadio(cfg *models.PollConfig, responses []models.ResponseData) *models.RadioAggregates {
	counts := make(map[string]int, len(cfg.Options))
	for _, opt := range cfg.Options {
		counts[opt.ID] = 0
	}

	// A declared option wins over the sentinel spellings, so a config
	// may declare an option id like "not_applicable".
	var preferNotToSay, notApplicable int
	for _, r := range responses {
		if _, known := counts[r.SelectedOption]; known && r.SelectedOption != "" {
			counts[r.SelectedOption]++
			continue
		}
		switch r.SelectedOption {
		case models.SpecialPreferNotToSay:
			preferNotToSay++
		case models.SpecialNotApplicable:
			notApplicable++
		}
	}

	valid := 0
	for _, n := range counts {
		valid += n
	}

	options := make([]models.OptionCount, 0, len(cfg.Options))
	for _, opt := range cfg.Options {
		options = append(options, models.OptionCount{
			OptionID:   opt.ID,
			Label:      opt.Label,
			Count:      counts[opt.ID],
			Percentage: percentage(counts[opt.ID], valid),
		})
	}

	return &models.RadioAggregates{
		Type:           models.PostTypeRadio,
		TotalResponses: len(responses),
		Options:        options,
		SpecialOptions: []models.SpecialOptionCount{
			{Type: models.SpecialPreferNotToSay, Count: preferNotToSay},
			{Type: models.SpecialNotApplicable, Count: notApplicable},
		},
	}
}

// ComputeScale summarizes responses for a scale poll: mean over the
// numeric values (rounded to 2 decimals), observed min/max, and one
// distribution bucket per integer value between the configured bounds.
func ComputeScale(cfg *models.PollConfig, responses []models.ResponseData) *models.ScaleAggregates {
	var preferNotToSay, notApplicable int
	var values []float64
	for _, r := range responses {
		switch r.SpecialOption {
		case models.SpecialPreferNotToSay:
			preferNotToSay++
		case models.SpecialNotApplicable:
			notApplicable++
		}
		if r.ScaleValue != nil {
			values = append(values, *r.ScaleValue)
		}
	}

	specials := []models.SpecialOptionCount{
		{Type: models.SpecialPreferNotToSay, Count: preferNotToSay},
		{Type: models.SpecialNotApplicable, Count: notApplicable},
	}

	if len(values) == 0 {
		return &models.ScaleAggregates{
			Type:           models.PostTypeScale,
			TotalResponses: len(responses),
			Average:        0,
			Min:            float64(cfg.Min),
			Max:            float64(cfg.Max),
			ConfigMin:      cfg.Min,
			ConfigMax:      cfg.Max,
			Distribution:   []models.DistributionBucket{},
			SpecialOptions: specials,
		}
	}

	sum := 0.0
	observedMin, observedMax := values[0], values[0]
	for _, v := range values {
		sum += v
		observedMin = math.Min(observedMin, v)
		observedMax = math.Max(observedMax, v)
	}
	average := math.Round(sum/float64(len(values))*100) / 100

	buckets := make(map[int]int, cfg.Max-cfg.Min+1)
	for _, v := range values {
		iv := int(v)
		if float64(iv) == v && iv >= cfg.Min && iv <= cfg.Max {
			buckets[iv]++
		}
	}

	distribution := make([]models.DistributionBucket, 0, cfg.Max-cfg.Min+1)
	for value := cfg.Min; value <= cfg.Max; value++ {
		distribution = append(distribution, models.DistributionBucket{
			Value:      value,
			Count:      buckets[value],
			Percentage: percentage(buckets[value], len(values)),
		})
	}

	return &models.ScaleAggregates{
		Type:           models.PostTypeScale,
		TotalResponses: len(responses),
		Average:        average,
		Min:            observedMin,
		Max:            observedMax,
		ConfigMin:      cfg.Min,
		ConfigMax:      cfg.Max,
		Distribution:   distribution,
		SpecialOptions: specials,
	}
}

// percentage is round-half-up of 100*count/total, 0 when total is 0.
func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
