// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package post

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/padrocha/blog-api/internal/platform/database/schema"
	"github.com/padrocha/blog-api/internal/platform/dberr"
	"github.com/padrocha/blog-api/pkg/pagination"
)

// PostgresRepository is the canonical [Repository] backed by pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var postColumns = fmt.Sprintf(
	`p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, a.%s, a.%s, a.%s`,
	schema.BlogPost.ID, schema.BlogPost.Title, schema.BlogPost.Slug,
	schema.BlogPost.Description, schema.BlogPost.Content, schema.BlogPost.AuthorID,
	schema.BlogPost.PublishedAt, schema.BlogPost.CreatedAt, schema.BlogPost.UpdatedAt,
	schema.UserAccount.ID, schema.UserAccount.Nickname, schema.UserAccount.ImageURL,
)

var postFrom = fmt.Sprintf(`%s p JOIN %s a ON p.%s = a.%s`,
	schema.BlogPost.Table, schema.UserAccount.Table,
	schema.BlogPost.AuthorID, schema.UserAccount.ID,
)

func (repository *PostgresRepository) Create(ctx context.Context, post *Post) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s, %s`,
		schema.BlogPost.Table,
		schema.BlogPost.ID, schema.BlogPost.Title, schema.BlogPost.Slug,
		schema.BlogPost.Description, schema.BlogPost.Content, schema.BlogPost.AuthorID,
		schema.BlogPost.PublishedAt,
		schema.BlogPost.CreatedAt, schema.BlogPost.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		post.ID, post.Title, post.Slug, post.Description, post.Content,
		post.AuthorID, post.PublishedAt,
	).Scan(&post.CreatedAt, &post.UpdatedAt)

	return dberr.Wrap(err, "create_post")
}

func (repository *PostgresRepository) Update(ctx context.Context, post *Post) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = now()
		WHERE %s = $1
		RETURNING %s`,
		schema.BlogPost.Table,
		schema.BlogPost.Title, schema.BlogPost.Slug, schema.BlogPost.Description,
		schema.BlogPost.Content, schema.BlogPost.UpdatedAt,
		schema.BlogPost.ID,
		schema.BlogPost.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		post.ID, post.Title, post.Slug, post.Description, post.Content,
	).Scan(&post.UpdatedAt)

	return dberr.Wrap(err, "update_post")
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.BlogPost.Table, schema.BlogPost.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_post")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE p.id = $1`, postColumns, postFrom)
	return repository.queryOne(ctx, query, id)
}

func (repository *PostgresRepository) FindBySlug(ctx context.Context, slug string) (*Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE p.slug = $1`, postColumns, postFrom)
	return repository.queryOne(ctx, query, slug)
}

func (repository *PostgresRepository) List(ctx context.Context, params pagination.Params) ([]*Post, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.BlogPost.Table)
	if err := repository.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_posts")
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		ORDER BY p.%s DESC
		LIMIT $1 OFFSET $2`, postColumns, postFrom, schema.BlogPost.CreatedAt)

	rows, err := repository.db.Query(ctx, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_posts")
	}
	defer rows.Close()

	posts := make([]*Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_posts")
	}

	return posts, total, nil
}

// ReplaceTags rewrites the m:n tag relation for a post inside a transaction so
// a partial rewrite can never be observed.
func (repository *PostgresRepository) ReplaceTags(ctx context.Context, postID string, tagIDs []string) error {
	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "replace_tags_begin")
	}
	defer tx.Rollback(ctx)

	clearQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.BlogPostTag.Table, schema.BlogPostTag.PostID)
	if _, err := tx.Exec(ctx, clearQuery, postID); err != nil {
		return dberr.Wrap(err, "replace_tags_clear")
	}

	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.BlogPostTag.Table, schema.BlogPostTag.PostID, schema.BlogPostTag.TagID)
	for _, tagID := range tagIDs {
		if _, err := tx.Exec(ctx, insertQuery, postID, tagID); err != nil {
			return dberr.Wrap(err, "replace_tags_insert")
		}
	}

	return dberr.Wrap(tx.Commit(ctx), "replace_tags_commit")
}

// queryOne fetches a single post with its author and attached tags.
func (repository *PostgresRepository) queryOne(ctx context.Context, query string, arg any) (*Post, error) {
	row := repository.db.QueryRow(ctx, query, arg)

	post, err := scanPost(row)
	if err != nil {
		return nil, dberr.Wrap(err, "get_post")
	}

	if err := repository.attachTags(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (repository *PostgresRepository) attachTags(ctx context.Context, post *Post) error {
	query := fmt.Sprintf(`
		SELECT t.%s, t.%s, t.%s
		FROM %s t
		JOIN %s pt ON pt.%s = t.%s
		WHERE pt.%s = $1
		ORDER BY t.%s ASC`,
		schema.BlogTag.ID, schema.BlogTag.Name, schema.BlogTag.Slug,
		schema.BlogTag.Table, schema.BlogPostTag.Table,
		schema.BlogPostTag.TagID, schema.BlogTag.ID,
		schema.BlogPostTag.PostID,
		schema.BlogTag.Name,
	)

	rows, err := repository.db.Query(ctx, query, post.ID)
	if err != nil {
		return dberr.Wrap(err, "attach_tags")
	}
	defer rows.Close()

	for rows.Next() {
		var ref TagRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Slug); err != nil {
			return dberr.Wrap(err, "scan_tag_ref")
		}
		post.Tags = append(post.Tags, ref)
	}
	return dberr.Wrap(rows.Err(), "attach_tags")
}

func scanPost(row pgx.Row) (*Post, error) {
	post := &Post{Author: &Author{}}
	err := row.Scan(
		&post.ID, &post.Title, &post.Slug, &post.Description, &post.Content,
		&post.AuthorID, &post.PublishedAt, &post.CreatedAt, &post.UpdatedAt,
		&post.Author.ID, &post.Author.Nickname, &post.Author.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}
