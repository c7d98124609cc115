// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"

	"hushboard/models"
)

// Store wraps the opened database and exposes every operation the rest
// of the server performs against it.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanPost scans the common post projection (post columns plus the
// owner's username) and decodes the stored poll config, re-validating
// its discriminant against post_type.
func scanPost(row interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	var content, config sql.NullString
	if err := row.Scan(&p.ID, &p.UserID, &p.Title, &content, &p.PostType, &config, &p.SortOrder, &p.Username); err != nil {
		return nil, err
	}
	if content.Valid {
		p.Content = &content.String
	}
	if p.PostType != models.PostTypeText {
		cfg, err := models.ParseStoredConfig(p.PostType, []byte(config.String))
		if err != nil {
			return nil, err
		}
		p.PollConfig = cfg
	}
	return &p, nil
}
