// Copyright (c) 2026 Randfin. All rights reserved.

package comment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/randfin/randfin/internal/platform/database/schema"
	"github.com/randfin/randfin/internal/platform/dberr"
	"github.com/randfin/randfin/pkg/uuidv7"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func commentColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentComment.ID, schema.ContentComment.PostSlug, schema.ContentComment.ParentID,
		schema.ContentComment.AuthorName, schema.ContentComment.Body, schema.ContentComment.Likes,
		schema.ContentComment.IsDeleted, schema.ContentComment.CreatedAt, schema.ContentComment.UpdatedAt,
	)
}

func (repository *PostgresRepository) ListByPost(context context.Context, postSlug string) ([]*Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		commentColumns(), schema.ContentComment.Table,
		schema.ContentComment.PostSlug, schema.ContentComment.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, postSlug)
	if err != nil {
		return nil, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	var comments []*Comment
	for rows.Next() {
		c := &Comment{}
		if err := rows.Scan(
			&c.ID, &c.PostSlug, &c.ParentID, &c.AuthorName, &c.Body,
			&c.Likes, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, c)
	}

	return comments, nil
}

func (repository *PostgresRepository) Get(context context.Context, id string) (*Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		commentColumns(), schema.ContentComment.Table, schema.ContentComment.ID,
	)
	c := &Comment{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&c.ID, &c.PostSlug, &c.ParentID, &c.AuthorName, &c.Body,
		&c.Likes, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
	)

	return c, dberr.Wrap(err, "get_comment")
}

func (repository *PostgresRepository) Create(context context.Context, c *Comment) error {
	c.ID = uuidv7.New()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, 0, FALSE, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.ContentComment.Table,
		schema.ContentComment.ID, schema.ContentComment.PostSlug, schema.ContentComment.ParentID,
		schema.ContentComment.AuthorName, schema.ContentComment.Body, schema.ContentComment.Likes,
		schema.ContentComment.IsDeleted, schema.ContentComment.CreatedAt, schema.ContentComment.UpdatedAt,
		schema.ContentComment.Likes, schema.ContentComment.CreatedAt, schema.ContentComment.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.PostSlug, c.ParentID, c.AuthorName, c.Body,
	).Scan(&c.Likes, &c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, "create_comment")
}

func (repository *PostgresRepository) IncrementLikes(context context.Context, id string) (int, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = %s + 1, %s = NOW()
		WHERE %s = $1 AND %s = FALSE
		RETURNING %s
	`,
		schema.ContentComment.Table,
		schema.ContentComment.Likes, schema.ContentComment.Likes, schema.ContentComment.UpdatedAt,
		schema.ContentComment.ID, schema.ContentComment.IsDeleted,
		schema.ContentComment.Likes,
	)

	var total int
	if err := repository.db.QueryRow(context, query, id).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "like_comment")
	}
	return total, nil
}

func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = TRUE, %s = NOW()
		WHERE %s = $1 AND %s = FALSE
	`,
		schema.ContentComment.Table,
		schema.ContentComment.IsDeleted, schema.ContentComment.UpdatedAt,
		schema.ContentComment.ID, schema.ContentComment.IsDeleted,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_comment")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
