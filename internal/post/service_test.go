// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package post

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padrocha/blog-api/internal/platform/apperr"
	"github.com/padrocha/blog-api/pkg/pagination"
	"github.com/padrocha/blog-api/pkg/pointer"
)

// memoryRepository is an in-memory Repository preserving insertion order.
type memoryRepository struct {
	posts []*Post
	tags  map[string][]string
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{tags: make(map[string][]string)}
}

func (r *memoryRepository) Create(_ context.Context, post *Post) error {
	for _, existing := range r.posts {
		if existing.Slug == post.Slug {
			return apperr.Conflict("Slug already exists")
		}
	}
	clone := *post
	r.posts = append(r.posts, &clone)
	return nil
}

func (r *memoryRepository) Update(_ context.Context, post *Post) error {
	for i, existing := range r.posts {
		if existing.ID == post.ID {
			clone := *post
			r.posts[i] = &clone
			return nil
		}
	}
	return apperr.NotFound("Post")
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	for i, existing := range r.posts {
		if existing.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Post")
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*Post, error) {
	for _, existing := range r.posts {
		if existing.ID == id {
			clone := *existing
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("Post")
}

func (r *memoryRepository) FindBySlug(_ context.Context, slug string) (*Post, error) {
	for _, existing := range r.posts {
		if existing.Slug == slug {
			clone := *existing
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("Post")
}

func (r *memoryRepository) List(_ context.Context, params pagination.Params) ([]*Post, int, error) {
	total := len(r.posts)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return r.posts[start:end], total, nil
}

func (r *memoryRepository) ReplaceTags(_ context.Context, postID string, tagIDs []string) error {
	r.tags[postID] = tagIDs
	return nil
}

func newServiceFixture() (*Service, *memoryRepository) {
	repository := newMemoryRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }
	return NewService(repository, logger, clock), repository
}

/*
TestCreate_GeneratesSlugAndID verifies a new entry gets a UUID, a slug derived
from the title, and a publish timestamp from the injected clock.
*/
func TestCreate_GeneratesSlugAndID(t *testing.T) {
	service, repository := newServiceFixture()

	entry, err := service.Create(context.Background(), "author-1", CreateInput{
		Title:   "Hello, Wörld of Go!",
		Content: "body",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "hello-world-of-go", entry.Slug)
	assert.Equal(t, "author-1", entry.AuthorID)
	require.NotNil(t, entry.PublishedAt)
	assert.Equal(t, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC), *entry.PublishedAt)
	assert.Len(t, repository.posts, 1)
}

/*
TestCreate_ValidatesInput verifies empty and oversized fields are rejected
before persistence.
*/
func TestCreate_ValidatesInput(t *testing.T) {
	testCases := []struct {
		name  string
		input CreateInput
	}{
		{name: "missing title", input: CreateInput{Content: "body"}},
		{name: "missing content", input: CreateInput{Title: "A title"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			service, repository := newServiceFixture()

			_, err := service.Create(context.Background(), "author-1", testCase.input)

			require.Error(t, err)
			assert.Empty(t, repository.posts)
		})
	}
}

/*
TestCreate_AttachesTags verifies supplied tag IDs are written through the
relation rewrite.
*/
func TestCreate_AttachesTags(t *testing.T) {
	service, repository := newServiceFixture()

	entry, err := service.Create(context.Background(), "author-1", CreateInput{
		Title:   "Tagged entry",
		Content: "body",
		TagIDs:  []string{"tag-1", "tag-2"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"tag-1", "tag-2"}, repository.tags[entry.ID])
}

/*
TestUpdate_RegeneratesSlugOnTitleChange verifies a title edit rewrites the
slug while an untouched title leaves it alone.
*/
func TestUpdate_RegeneratesSlugOnTitleChange(t *testing.T) {
	service, _ := newServiceFixture()

	entry, err := service.Create(context.Background(), "author-1", CreateInput{
		Title:   "Original title",
		Content: "body",
	})
	require.NoError(t, err)

	// Content-only edit keeps the slug.
	updated, err := service.Update(context.Background(), entry.ID, UpdateInput{
		Content: pointer.To("new body"),
	})
	require.NoError(t, err)
	assert.Equal(t, "original-title", updated.Slug)
	assert.Equal(t, "new body", updated.Content)

	// Title edit regenerates it.
	updated, err = service.Update(context.Background(), entry.ID, UpdateInput{
		Title: pointer.To("Renamed entry"),
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed-entry", updated.Slug)
}

/*
TestUpdate_UnknownEntry verifies an edit against a missing ID maps to 404.
*/
func TestUpdate_UnknownEntry(t *testing.T) {
	service, _ := newServiceFixture()

	_, err := service.Update(context.Background(), "missing", UpdateInput{
		Content: pointer.To("body"),
	})

	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

/*
TestDelete_RemovesEntry verifies deletion and the 404 on a second attempt.
*/
func TestDelete_RemovesEntry(t *testing.T) {
	service, repository := newServiceFixture()

	entry, err := service.Create(context.Background(), "author-1", CreateInput{
		Title:   "Doomed entry",
		Content: "body",
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), entry.ID))
	assert.Empty(t, repository.posts)

	err = service.Delete(context.Background(), entry.ID)
	require.Error(t, err)
}

/*
TestList_PaginatesWithMeta verifies page math over a small fixture set.
*/
func TestList_PaginatesWithMeta(t *testing.T) {
	service, _ := newServiceFixture()

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		_, err := service.Create(context.Background(), "author-1", CreateInput{
			Title:   title,
			Content: "body",
		})
		require.NoError(t, err)
	}

	posts, meta, err := service.List(context.Background(), pagination.Params{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)
}
