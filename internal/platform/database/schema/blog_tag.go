// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package schema

// BlogTagTable represents the 'blog.tag' table
type BlogTagTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	CreatedAt string
}

// BlogTag is the schema definition for blog.tag
var BlogTag = BlogTagTable{
	Table:     "blog.tag",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "createdat",
}

// BlogPostTagTable represents the 'blog.post_tag' relation table
type BlogPostTagTable struct {
	Table  string
	PostID string
	TagID  string
}

// BlogPostTag is the schema definition for blog.post_tag
var BlogPostTag = BlogPostTagTable{
	Table:  "blog.post_tag",
	PostID: "postid",
	TagID:  "tagid",
}
