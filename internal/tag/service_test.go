// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package tag

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padrocha/blog-api/internal/platform/apperr"
	"github.com/padrocha/blog-api/pkg/pagination"
)

type memoryRepository struct {
	tags []*Tag
}

func (r *memoryRepository) Create(_ context.Context, tag *Tag) error {
	for _, existing := range r.tags {
		if existing.Slug == tag.Slug {
			return apperr.Conflict("Tag already exists")
		}
	}
	clone := *tag
	r.tags = append(r.tags, &clone)
	return nil
}

func (r *memoryRepository) ListAll(_ context.Context) ([]*Tag, error) {
	sorted := make([]*Tag, len(r.tags))
	copy(sorted, r.tags)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return sorted, nil
}

func (r *memoryRepository) ListPage(ctx context.Context, params pagination.Params) ([]*Tag, int, error) {
	sorted, _ := r.ListAll(ctx)
	total := len(sorted)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return sorted[start:end], total, nil
}

func (r *memoryRepository) FindBySlug(_ context.Context, slug string) (*Tag, error) {
	for _, existing := range r.tags {
		if existing.Slug == slug {
			return existing, nil
		}
	}
	return nil, apperr.NotFound("Tag")
}

/*
TestCreate_SlugsAndTrims verifies names are trimmed and slugged on creation.
*/
func TestCreate_SlugsAndTrims(t *testing.T) {
	service := NewService(&memoryRepository{})

	label, err := service.Create(context.Background(), "  Distributed Systems  ")

	require.NoError(t, err)
	assert.Equal(t, "Distributed Systems", label.Name)
	assert.Equal(t, "distributed-systems", label.Slug)
	assert.NotEmpty(t, label.ID)
}

/*
TestCreate_RejectsEmptyName verifies validation fires before persistence.
*/
func TestCreate_RejectsEmptyName(t *testing.T) {
	repository := &memoryRepository{}
	service := NewService(repository)

	_, err := service.Create(context.Background(), "   ")

	require.Error(t, err)
	assert.Empty(t, repository.tags)
}

/*
TestListAll_SortsByName verifies the name-sorted contract of the full listing.
*/
func TestListAll_SortsByName(t *testing.T) {
	service := NewService(&memoryRepository{})

	for _, name := range []string{"Zig", "Ada", "Go"} {
		_, err := service.Create(context.Background(), name)
		require.NoError(t, err)
	}

	tags, err := service.ListAll(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(tags))
	for _, label := range tags {
		names = append(names, label.Name)
	}
	assert.Equal(t, []string{"Ada", "Go", "Zig"}, names)
}

/*
TestListPage_PaginatesWithMeta verifies page math over the sorted listing.
*/
func TestListPage_PaginatesWithMeta(t *testing.T) {
	service := NewService(&memoryRepository{})

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		_, err := service.Create(context.Background(), name)
		require.NoError(t, err)
	}

	tags, meta, err := service.ListPage(context.Background(), pagination.Params{Page: 2, Limit: 2})

	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "Gamma", tags[0].Name)
	assert.Equal(t, 3, meta.Total)
	assert.True(t, meta.HasPrevPage)
	assert.False(t, meta.HasNextPage)
}
