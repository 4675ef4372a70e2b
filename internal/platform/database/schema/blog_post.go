// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package schema

// BlogPostTable represents the 'blog.post' table
type BlogPostTable struct {
	Table       string
	ID          string
	Title       string
	Slug        string
	Description string
	Content     string
	AuthorID    string
	PublishedAt string
	CreatedAt   string
	UpdatedAt   string
}

// BlogPost is the schema definition for blog.post
var BlogPost = BlogPostTable{
	Table:       "blog.post",
	ID:          "id",
	Title:       "title",
	Slug:        "slug",
	Description: "description",
	Content:     "content",
	AuthorID:    "authorid",
	PublishedAt: "publishedat",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}
