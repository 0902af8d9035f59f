// Copyright (c) 2026 Randfin. All rights reserved.

package article

import (
	"context"
	"fmt"
	"strconv"

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

func articleColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentArticle.ID, schema.ContentArticle.Title, schema.ContentArticle.Slug,
		schema.ContentArticle.Excerpt, schema.ContentArticle.Content, schema.ContentArticle.Category,
		schema.ContentArticle.Author, schema.ContentArticle.IsPublished, schema.ContentArticle.FeaturedImage,
		schema.ContentArticle.CreatedAt, schema.ContentArticle.UpdatedAt,
	)
}

func scanArticle(row interface{ Scan(...any) error }) (*Article, error) {
	a := &Article{}
	err := row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content, &a.Category,
		&a.Author, &a.IsPublished, &a.FeaturedImage, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (repository *PostgresRepository) ListArticles(context context.Context, f Filter, limit, offset int) ([]*Article, int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE 1=1`, articleColumns(), schema.ContentArticle.Table)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE 1=1`, schema.ContentArticle.Table)

	args := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		args = append(args, searchTerm)
		clause := fmt.Sprintf(" AND (%s ILIKE $%d OR %s ILIKE $%d)",
			schema.ContentArticle.Title, len(args), schema.ContentArticle.Excerpt, len(args))
		query += clause
		countQuery += clause
	}

	if f.Category != "" {
		args = append(args, f.Category)
		clause := fmt.Sprintf(" AND %s = $%d", schema.ContentArticle.Category, len(args))
		query += clause
		countQuery += clause
	}

	if f.Published != nil {
		args = append(args, *f.Published)
		clause := fmt.Sprintf(" AND %s = $%d", schema.ContentArticle.IsPublished, len(args))
		query += clause
		countQuery += clause
	}

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_articles")
	}

	query += fmt.Sprintf(" ORDER BY %s DESC", schema.ContentArticle.CreatedAt)
	query += " LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_articles")
	}
	defer rows.Close()

	var articles []*Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_article")
		}
		articles = append(articles, a)
	}

	return articles, total, nil
}

func (repository *PostgresRepository) GetArticle(context context.Context, id string) (*Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		articleColumns(), schema.ContentArticle.Table, schema.ContentArticle.ID,
	)

	a, err := scanArticle(repository.db.QueryRow(context, query, id))
	return a, dberr.Wrap(err, "get_article")
}

func (repository *PostgresRepository) GetArticleBySlug(context context.Context, slug string) (*Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		articleColumns(), schema.ContentArticle.Table, schema.ContentArticle.Slug,
	)

	a, err := scanArticle(repository.db.QueryRow(context, query, slug))
	return a, dberr.Wrap(err, "get_article_by_slug")
}

func (repository *PostgresRepository) CreateArticle(context context.Context, a *Article) error {
	a.ID = uuidv7.New()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.ContentArticle.Table,
		schema.ContentArticle.ID, schema.ContentArticle.Title, schema.ContentArticle.Slug,
		schema.ContentArticle.Excerpt, schema.ContentArticle.Content, schema.ContentArticle.Category,
		schema.ContentArticle.Author, schema.ContentArticle.IsPublished, schema.ContentArticle.FeaturedImage,
		schema.ContentArticle.CreatedAt, schema.ContentArticle.UpdatedAt,
		schema.ContentArticle.CreatedAt, schema.ContentArticle.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.Title, a.Slug, a.Excerpt, a.Content, a.Category,
		a.Author, a.IsPublished, a.FeaturedImage,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_article")
}

func (repository *PostgresRepository) UpdateArticle(context context.Context, a *Article) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.ContentArticle.Table,
		schema.ContentArticle.Title, schema.ContentArticle.Slug, schema.ContentArticle.Excerpt,
		schema.ContentArticle.Content, schema.ContentArticle.Category, schema.ContentArticle.Author,
		schema.ContentArticle.IsPublished, schema.ContentArticle.FeaturedImage,
		schema.ContentArticle.UpdatedAt,
		schema.ContentArticle.ID,
		schema.ContentArticle.CreatedAt, schema.ContentArticle.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.Title, a.Slug, a.Excerpt, a.Content, a.Category,
		a.Author, a.IsPublished, a.FeaturedImage,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "update_article")
}

func (repository *PostgresRepository) DeleteArticle(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentArticle.Table, schema.ContentArticle.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_article")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
