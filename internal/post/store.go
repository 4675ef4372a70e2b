// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package post

import (
	"context"

	"github.com/padrocha/blog-api/pkg/pagination"
)

// Repository defines the data access contract for blog posts.
type Repository interface {
	Create(ctx context.Context, post *Post) error
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Post, error)
	FindBySlug(ctx context.Context, slug string) (*Post, error)
	List(ctx context.Context, params pagination.Params) ([]*Post, int, error)
	// ReplaceTags rewrites the post's tag set in one transaction.
	ReplaceTags(ctx context.Context, postID string, tagIDs []string) error
}
