// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

// Package tag implements the categorization domain for blog entries.
package tag

import "time"

// Tag represents a categorization label applied to posts.
type Tag struct {
	ID        string    `json:"identifier"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"-"`
}
