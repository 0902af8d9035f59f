// Copyright (c) 2026 Randfin. All rights reserved.

package media

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

func mediaColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		schema.ContentMediaFile.ID, schema.ContentMediaFile.Name, schema.ContentMediaFile.ContentType,
		schema.ContentMediaFile.SizeBytes, schema.ContentMediaFile.URLPath,
		schema.ContentMediaFile.UploadedBy, schema.ContentMediaFile.CreatedAt,
	)
}

func (repository *PostgresRepository) ListFiles(context context.Context, limit, offset int) ([]*File, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.ContentMediaFile.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_media")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		mediaColumns(), schema.ContentMediaFile.Table, schema.ContentMediaFile.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_media")
	}
	defer rows.Close()

	var files []*File
	for rows.Next() {
		f := &File{}
		if err := rows.Scan(
			&f.ID, &f.Name, &f.ContentType, &f.SizeBytes, &f.URLPath, &f.UploadedBy, &f.CreatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_media")
		}
		files = append(files, f)
	}

	return files, total, nil
}

func (repository *PostgresRepository) GetFileByName(context context.Context, name string) (*File, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		mediaColumns(), schema.ContentMediaFile.Table, schema.ContentMediaFile.Name,
	)
	f := &File{}

	err := repository.db.QueryRow(context, query, name).Scan(
		&f.ID, &f.Name, &f.ContentType, &f.SizeBytes, &f.URLPath, &f.UploadedBy, &f.CreatedAt,
	)

	return f, dberr.Wrap(err, "get_media")
}

func (repository *PostgresRepository) CreateFile(context context.Context, f *File) error {
	f.ID = uuidv7.New()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s
	`,
		schema.ContentMediaFile.Table,
		schema.ContentMediaFile.ID, schema.ContentMediaFile.Name, schema.ContentMediaFile.ContentType,
		schema.ContentMediaFile.SizeBytes, schema.ContentMediaFile.URLPath,
		schema.ContentMediaFile.UploadedBy, schema.ContentMediaFile.CreatedAt,
		schema.ContentMediaFile.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		f.ID, f.Name, f.ContentType, f.SizeBytes, f.URLPath, f.UploadedBy,
	).Scan(&f.CreatedAt)
	return dberr.Wrap(err, "create_media")
}

func (repository *PostgresRepository) DeleteFileByName(context context.Context, name string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentMediaFile.Table, schema.ContentMediaFile.Name,
	)

	cmd, err := repository.db.Exec(context, query, name)
	if err != nil {
		return dberr.Wrap(err, "delete_media")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
