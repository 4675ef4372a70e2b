// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

// Package like implements the social reaction domain: per-user post likes
// with a cached per-post counter.
package like

import "time"

// Like records one account's reaction to a post.
//
// A like is never deleted once created; un-liking flips Toggle to false so
// the row keeps its history and the next toggle flips it back.
type Like struct {
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Toggle    bool      `json:"toggle"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
