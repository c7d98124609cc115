// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"

	"hushboard/apperr"
)

// PollOption is one selectable answer of a radio poll.
type PollOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// PollConfig is the tagged union stored alongside poll posts. Type is
// the discriminant and must equal the owning post's post_type.
type PollConfig struct {
	Type     string       `json:"type"`
	Options  []PollOption `json:"options,omitempty"`
	Min      int          `json:"min,omitempty"`
	Max      int          `json:"max,omitempty"`
	MinLabel string       `json:"minLabel,omitempty"`
	MaxLabel string       `json:"maxLabel,omitempty"`
}

// Validate checks the variant-specific shape of the config. Returns a
// Validation error, suitable for rejecting caller input.
func (c *PollConfig) Validate() error {
	switch c.Type {
	case PostTypeRadio:
		if len(c.Options) == 0 {
			return apperr.Validation("radio poll requires at least one option")
		}
		seen := make(map[string]bool, len(c.Options))
		for _, opt := range c.Options {
			if opt.ID == "" {
				return apperr.Validation("radio poll option id must not be empty")
			}
			if seen[opt.ID] {
				return apperr.Validation("duplicate radio poll option id %q", opt.ID)
			}
			seen[opt.ID] = true
		}
	case PostTypeScale:
		if c.Min >= c.Max {
			return apperr.Validation("scale poll requires min (%d) < max (%d)", c.Min, c.Max)
		}
	default:
		return apperr.Validation("unknown poll type %q", c.Type)
	}
	return nil
}

// ValidateForPost checks a caller-supplied config against the post type
// it is being attached to. Text posts must not carry a config; poll
// posts must carry a config whose tag equals the post type.
func ValidateConfigForPost(postType string, cfg *PollConfig) error {
	switch postType {
	case PostTypeText:
		if cfg != nil {
			return apperr.Validation("text posts cannot carry a poll config")
		}
		return nil
	case PostTypeRadio, PostTypeScale:
		if cfg == nil {
			return apperr.Validation("%s posts require a poll config", postType)
		}
		if cfg.Type != postType {
			return apperr.Validation("poll config type %q does not match post type %q", cfg.Type, postType)
		}
		return cfg.Validate()
	default:
		return apperr.Validation("invalid post type %q", postType)
	}
}

// ParseStoredConfig decodes a poll config read back from the store and
// re-validates its discriminant against the post type. Any mismatch or
// undecodable payload is an Integrity error: the row contradicts itself.
func ParseStoredConfig(postType string, raw []byte) (*PollConfig, error) {
	if postType == PostTypeText {
		return nil, nil
	}
	if len(raw) == 0 {
		return nil, apperr.Integrity("post of type %q has no stored poll config", postType)
	}
	var cfg PollConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, apperr.Integrity("stored poll config is not valid JSON: %v", err)
	}
	if cfg.Type != postType {
		return nil, apperr.Integrity("stored poll config type %q does not match post type %q", cfg.Type, postType)
	}
	return &cfg, nil
}

// ResponseData is one user's answer to a poll, tagged by poll type:
// selectedOption for radio (which may hold a special sentinel),
// scaleValue for scale, specialOption for scale sentinels.
type ResponseData struct {
	SelectedOption string   `json:"selectedOption,omitempty"`
	ScaleValue     *float64 `json:"scaleValue,omitempty"`
	SpecialOption  string   `json:"specialOption,omitempty"`
}

// UnmarshalJSON keeps only fields of the expected JSON type and drops
// everything else. Aggregation ignores unrecognized values rather than
// erroring on them, so decoding must not fail on junk either.
func (d *ResponseData) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = ResponseData{}
	if v, ok := raw["selectedOption"].(string); ok {
		d.SelectedOption = v
	}
	if v, ok := raw["scaleValue"].(float64); ok {
		d.ScaleValue = &v
	}
	if v, ok := raw["specialOption"].(string); ok {
		d.SpecialOption = v
	}
	return nil
}

// IsEmpty reports whether no meaningful field survived decoding.
func (d *ResponseData) IsEmpty() bool {
	return d.SelectedOption == "" && d.ScaleValue == nil && d.SpecialOption == ""
}

// Aggregate types

// PollAggregates is the computed summary of all responses to one poll
// post. Total reports the response count the privacy gate thresholds on.
type PollAggregates interface {
	Total() int
}

type OptionCount struct {
	OptionID   string `json:"option_id"`
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type SpecialOptionCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type RadioAggregates struct {
	Type           string               `json:"type"`
	TotalResponses int                  `json:"totalResponses"`
	Options        []OptionCount        `json:"options"`
	SpecialOptions []SpecialOptionCount `json:"specialOptions"`
}

func (a *RadioAggregates) Total() int { return a.TotalResponses }

type DistributionBucket struct {
	Value      int `json:"value"`
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

type ScaleAggregates struct {
	Type           string               `json:"type"`
	TotalResponses int                  `json:"totalResponses"`
	Average        float64              `json:"average"`
	Min            float64              `json:"min"`
	Max            float64              `json:"max"`
	ConfigMin      int                  `json:"configMin"`
	ConfigMax      int                  `json:"configMax"`
	Distribution   []DistributionBucket `json:"distribution"`
	SpecialOptions []SpecialOptionCount `json:"specialOptions"`
}

func (a *ScaleAggregates) Total() int { return a.TotalResponses }

// Export summaries

// RadioExportSummary is one radio poll's row in the reporting export.
// Censored rows keep their column layout but carry only zero counts.
type RadioExportSummary struct {
	PostID         int64         `json:"post_id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	ResponseCount  int           `json:"responseCount"`
	Censored       bool          `json:"censored"`
	Options        []OptionCount `json:"options"`
	PreferNotToSay int           `json:"preferNotToSay"`
	NotApplicable  int           `json:"notApplicable"`
}

// ScaleExportSummary is one scale poll's row in the reporting export.
type ScaleExportSummary struct {
	PostID         int64  `json:"post_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	ResponseCount  int    `json:"responseCount"`
	Censored       bool   `json:"censored"`
	MinLabel       string `json:"minLabel"`
	MaxLabel       string `json:"maxLabel"`
	ConfigMin      int    `json:"configMin"`
	ConfigMax      int    `json:"configMax"`
	Counts         []int  `json:"counts"` // one slot per value in [ConfigMin, ConfigMax]
	PreferNotToSay int    `json:"preferNotToSay"`
	NotApplicable  int    `json:"notApplicable"`
}
