// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package like

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/padrocha/blog-api/internal/platform/database/schema"
	"github.com/padrocha/blog-api/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var likeColumns = fmt.Sprintf("%s, %s, %s, %s, %s",
	schema.SocialPostLike.PostID, schema.SocialPostLike.UserID, schema.SocialPostLike.Toggle,
	schema.SocialPostLike.CreatedAt, schema.SocialPostLike.UpdatedAt)

// Toggle upserts the reaction row in a single statement so concurrent toggles
// for the same (post, user) pair serialize on the row lock.
func (repository *PostgresRepository) Toggle(ctx context.Context, postID, userID string) (*Like, error) {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s)
		VALUES ($1, $2, true)
		ON CONFLICT (%[2]s, %[3]s)
		DO UPDATE SET %[4]s = NOT %[1]s.%[4]s, %[5]s = now()
		RETURNING %[6]s`,
		schema.SocialPostLike.Table,
		schema.SocialPostLike.PostID, schema.SocialPostLike.UserID,
		schema.SocialPostLike.Toggle, schema.SocialPostLike.UpdatedAt,
		likeColumns,
	)

	reaction := &Like{}
	err := repository.db.QueryRow(ctx, query, postID, userID).Scan(
		&reaction.PostID, &reaction.UserID, &reaction.Toggle,
		&reaction.CreatedAt, &reaction.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "toggle_like")
	}
	return reaction, nil
}

func (repository *PostgresRepository) Find(ctx context.Context, postID, userID string) (*Like, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1 AND %s = $2`,
		likeColumns, schema.SocialPostLike.Table,
		schema.SocialPostLike.PostID, schema.SocialPostLike.UserID)

	reaction := &Like{}
	err := repository.db.QueryRow(ctx, query, postID, userID).Scan(
		&reaction.PostID, &reaction.UserID, &reaction.Toggle,
		&reaction.CreatedAt, &reaction.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_like")
	}
	return reaction, nil
}

func (repository *PostgresRepository) Count(ctx context.Context, postID string) (int64, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1 AND %s = true`,
		schema.SocialPostLike.Table,
		schema.SocialPostLike.PostID, schema.SocialPostLike.Toggle)

	var count int64
	if err := repository.db.QueryRow(ctx, query, postID).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count_likes")
	}
	return count, nil
}
