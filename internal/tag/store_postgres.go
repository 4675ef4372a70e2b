// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package tag

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/padrocha/blog-api/internal/platform/database/schema"
	"github.com/padrocha/blog-api/internal/platform/dberr"
	"github.com/padrocha/blog-api/pkg/pagination"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var tagColumns = fmt.Sprintf("%s, %s, %s, %s",
	schema.BlogTag.ID, schema.BlogTag.Name, schema.BlogTag.Slug, schema.BlogTag.CreatedAt)

func (repository *PostgresRepository) Create(ctx context.Context, tag *Tag) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s`,
		schema.BlogTag.Table,
		schema.BlogTag.ID, schema.BlogTag.Name, schema.BlogTag.Slug,
		schema.BlogTag.CreatedAt,
	)

	err := repository.db.QueryRow(ctx, query, tag.ID, tag.Name, tag.Slug).
		Scan(&tag.CreatedAt)

	return dberr.Wrap(err, "create_tag")
}

func (repository *PostgresRepository) ListAll(ctx context.Context) ([]*Tag, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		tagColumns, schema.BlogTag.Table, schema.BlogTag.Name)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}

	return tags, dberr.Wrap(rows.Err(), "list_tags")
}

func (repository *PostgresRepository) ListPage(ctx context.Context, params pagination.Params) ([]*Tag, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.BlogTag.Table)
	if err := repository.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_tags")
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2`,
		tagColumns, schema.BlogTag.Table, schema.BlogTag.Name)

	rows, err := repository.db.Query(ctx, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_tags_page")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}

	return tags, total, dberr.Wrap(rows.Err(), "list_tags_page")
}

func (repository *PostgresRepository) FindBySlug(ctx context.Context, slug string) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		tagColumns, schema.BlogTag.Table, schema.BlogTag.Slug)

	t := &Tag{}
	err := repository.db.QueryRow(ctx, query, slug).
		Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tag_by_slug")
	}
	return t, nil
}
