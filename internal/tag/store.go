// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package tag

import (
	"context"

	"github.com/padrocha/blog-api/pkg/pagination"
)

type Repository interface {
	Create(ctx context.Context, tag *Tag) error
	ListAll(ctx context.Context) ([]*Tag, error)
	ListPage(ctx context.Context, params pagination.Params) ([]*Tag, int, error)
	FindBySlug(ctx context.Context, slug string) (*Tag, error)
}
