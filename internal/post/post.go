// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

// Package post implements the publishing domain: authoring, editing, and
// reading blog entries.
package post

import "time"

// Post represents a published blog entry.
//
// # Rules
//   - Slug is derived from the title at creation time and is unique.
//   - AuthorID references the account that created the entry; edits by other
//     principals are allowed when their role carries EDIT.
type Post struct {
	ID          string     `json:"identifier"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description,omitempty"`
	Content     string     `json:"content"`
	AuthorID    string     `json:"author_id"`
	Author      *Author    `json:"author,omitempty"`
	Tags        []TagRef   `json:"tags,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Author is the embedded public view of the post's creator.
type Author struct {
	ID       string  `json:"identifier"`
	Nickname string  `json:"nickname"`
	ImageURL *string `json:"image_url,omitempty"`
}

// TagRef is the lightweight tag projection embedded in post payloads.
type TagRef struct {
	ID   string `json:"identifier"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
