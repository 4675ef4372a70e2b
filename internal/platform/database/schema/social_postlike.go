// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package schema

// SocialPostLikeTable represents the 'social.post_like' table
type SocialPostLikeTable struct {
	Table     string
	PostID    string
	UserID    string
	Toggle    string
	CreatedAt string
	UpdatedAt string
}

// SocialPostLike is the schema definition for social.post_like
var SocialPostLike = SocialPostLikeTable{
	Table:     "social.post_like",
	PostID:    "postid",
	UserID:    "userid",
	Toggle:    "toggle",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
