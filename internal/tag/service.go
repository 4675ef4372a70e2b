// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package tag

import (
	"context"
	"strings"

	"github.com/padrocha/blog-api/internal/platform/validate"
	"github.com/padrocha/blog-api/pkg/pagination"
	"github.com/padrocha/blog-api/pkg/slug"
	"github.com/padrocha/blog-api/pkg/uuidv7"
)

type Service struct {
	repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// Create registers a new label. Names are trimmed and slugged; uniqueness is
// enforced at the store.
func (service *Service) Create(ctx context.Context, name string) (*Tag, error) {
	name = strings.TrimSpace(name)

	v := &validate.Validator{}
	if err := v.Required("name", name).MaxLen("name", name, 64).Err(); err != nil {
		return nil, err
	}

	label := &Tag{
		ID:   uuidv7.New(),
		Name: name,
		Slug: slug.From(name),
	}

	if err := service.repository.Create(ctx, label); err != nil {
		return nil, err
	}

	return label, nil
}

func (service *Service) ListAll(ctx context.Context) ([]*Tag, error) {
	return service.repository.ListAll(ctx)
}

func (service *Service) ListPage(ctx context.Context, params pagination.Params) ([]*Tag, pagination.Meta, error) {
	tags, total, err := service.repository.ListPage(ctx, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return tags, pagination.NewMeta(params.Page, params.Limit, total), nil
}

func (service *Service) GetBySlug(ctx context.Context, labelSlug string) (*Tag, error) {
	return service.repository.FindBySlug(ctx, labelSlug)
}
