// Copyright (c) 2026 Randfin. All rights reserved.

package category

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

func (repository *PostgresRepository) ListCategories(context context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.ContentCategory.ID, schema.ContentCategory.Name, schema.ContentCategory.Slug,
		schema.ContentCategory.Description, schema.ContentCategory.CreatedAt, schema.ContentCategory.UpdatedAt,
		schema.ContentCategory.Table, schema.ContentCategory.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	return categories, nil
}

func (repository *PostgresRepository) GetCategory(context context.Context, id string) (*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.ContentCategory.ID, schema.ContentCategory.Name, schema.ContentCategory.Slug,
		schema.ContentCategory.Description, schema.ContentCategory.CreatedAt, schema.ContentCategory.UpdatedAt,
		schema.ContentCategory.Table, schema.ContentCategory.ID,
	)
	c := &Category{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)

	return c, dberr.Wrap(err, "get_category")
}

func (repository *PostgresRepository) CreateCategory(context context.Context, c *Category) error {
	c.ID = uuidv7.New()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.ContentCategory.Table, schema.ContentCategory.ID, schema.ContentCategory.Name,
		schema.ContentCategory.Slug, schema.ContentCategory.Description,
		schema.ContentCategory.CreatedAt, schema.ContentCategory.UpdatedAt,
		schema.ContentCategory.CreatedAt, schema.ContentCategory.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, c.ID, c.Name, c.Slug, c.Description).Scan(&c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, "create_category")
}

func (repository *PostgresRepository) UpdateCategory(context context.Context, c *Category) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.ContentCategory.Table,
		schema.ContentCategory.Name, schema.ContentCategory.Slug, schema.ContentCategory.Description,
		schema.ContentCategory.UpdatedAt,
		schema.ContentCategory.ID,
		schema.ContentCategory.CreatedAt, schema.ContentCategory.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, c.ID, c.Name, c.Slug, c.Description).Scan(&c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, "update_category")
}

func (repository *PostgresRepository) DeleteCategory(context context.Context, id string) (string, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		schema.ContentCategory.Table, schema.ContentCategory.ID, schema.ContentCategory.Slug,
	)

	var slug string
	if err := repository.db.QueryRow(context, query, id).Scan(&slug); err != nil {
		return "", dberr.Wrap(err, "delete_category")
	}
	return slug, nil
}

func (repository *PostgresRepository) CountArticlesByCategorySlug(context context.Context, slug string) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.ContentArticle.Table, schema.ContentArticle.Category,
	)

	var total int
	if err := repository.db.QueryRow(context, query, slug).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_articles_by_category")
	}
	return total, nil
}
