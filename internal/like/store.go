// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package like

import "context"

// Repository defines the persistent reaction store.
type Repository interface {
	// Toggle upserts the (post, user) row, flipping its flag, and returns
	// the resulting state.
	Toggle(ctx context.Context, postID, userID string) (*Like, error)

	// Find returns the reaction row for (post, user).
	// Returns [apperr.NotFound] if the account never reacted to the post.
	Find(ctx context.Context, postID, userID string) (*Like, error)

	// Count returns the number of active likes for a post.
	Count(ctx context.Context, postID string) (int64, error)
}

// CountCache is the fast-path store for per-post like counters.
//
// A cache error is never fatal to the read path; callers fall back to the
// repository count.
type CountCache interface {
	Get(ctx context.Context, postID string) (int64, bool, error)
	Set(ctx context.Context, postID string, count int64) error
	Invalidate(ctx context.Context, postID string) error
}
