// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package post

import (
	"context"
	"log/slog"
	"time"

	"github.com/padrocha/blog-api/internal/platform/validate"
	"github.com/padrocha/blog-api/pkg/pagination"
	"github.com/padrocha/blog-api/pkg/slug"
	"github.com/padrocha/blog-api/pkg/uuidv7"
)

// Service implements the publishing use cases.
type Service struct {
	repository Repository
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a new [Service]. The clock is injectable for tests.
func NewService(repository Repository, logger *slog.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repository: repository, logger: logger, now: now}
}

// CreateInput holds the data required to publish a new entry.
type CreateInput struct {
	Title       string
	Description *string
	Content     string
	TagIDs      []string
}

// Create validates, slugs, and persists a new entry authored by authorID.
func (service *Service) Create(ctx context.Context, authorID string, input CreateInput) (*Post, error) {
	v := &validate.Validator{}
	err := v.
		Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		Required("content", input.Content).
		Err()
	if err != nil {
		return nil, err
	}

	publishedAt := service.now().UTC()
	entry := &Post{
		ID:          uuidv7.New(),
		Title:       input.Title,
		Slug:        slug.From(input.Title),
		Description: input.Description,
		Content:     input.Content,
		AuthorID:    authorID,
		PublishedAt: &publishedAt,
	}

	if err := service.repository.Create(ctx, entry); err != nil {
		return nil, err
	}

	if len(input.TagIDs) > 0 {
		if err := service.repository.ReplaceTags(ctx, entry.ID, input.TagIDs); err != nil {
			return nil, err
		}
	}

	service.logger.InfoContext(ctx, "post_created",
		slog.String("post_id", entry.ID),
		slog.String("slug", entry.Slug),
	)

	return service.repository.FindByID(ctx, entry.ID)
}

// UpdateInput holds the mutable fields of an entry. Nil pointers mean
// "leave unchanged".
type UpdateInput struct {
	Title       *string
	Description *string
	Content     *string
	TagIDs      []string
}

// Update applies a partial edit to an existing entry.
//
// A title change regenerates the slug: external links to the old slug go
// stale, which is accepted over serving a slug that no longer matches the
// title.
func (service *Service) Update(ctx context.Context, id string, input UpdateInput) (*Post, error) {
	entry, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		v := &validate.Validator{}
		if err := v.Required("title", *input.Title).MaxLen("title", *input.Title, 200).Err(); err != nil {
			return nil, err
		}
		entry.Title = *input.Title
		entry.Slug = slug.From(*input.Title)
	}
	if input.Description != nil {
		entry.Description = input.Description
	}
	if input.Content != nil {
		if err := (&validate.Validator{}).Required("content", *input.Content).Err(); err != nil {
			return nil, err
		}
		entry.Content = *input.Content
	}

	if err := service.repository.Update(ctx, entry); err != nil {
		return nil, err
	}

	if input.TagIDs != nil {
		if err := service.repository.ReplaceTags(ctx, entry.ID, input.TagIDs); err != nil {
			return nil, err
		}
	}

	return service.repository.FindByID(ctx, entry.ID)
}

// Delete removes an entry permanently. Likes and tag relations cascade at the
// database layer.
func (service *Service) Delete(ctx context.Context, id string) error {
	if err := service.repository.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "post_deleted", slog.String("post_id", id))
	return nil
}

// GetBySlug returns the entry published under the given slug.
func (service *Service) GetBySlug(ctx context.Context, entrySlug string) (*Post, error) {
	return service.repository.FindBySlug(ctx, entrySlug)
}

// List returns a page of entries, newest first.
func (service *Service) List(ctx context.Context, params pagination.Params) ([]*Post, pagination.Meta, error) {
	posts, total, err := service.repository.List(ctx, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return posts, pagination.NewMeta(params.Page, params.Limit, total), nil
}
