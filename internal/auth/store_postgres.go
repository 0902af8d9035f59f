// Copyright (c) 2026 Randfin. All rights reserved.

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/randfin/randfin/internal/platform/database/schema"
	"github.com/randfin/randfin/internal/platform/dberr"
)

type PostgresAccountRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAccountRepository(db *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func accountColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.UsersAccount.ID, schema.UsersAccount.Username, schema.UsersAccount.Email,
		schema.UsersAccount.PasswordHash, schema.UsersAccount.DisplayName, schema.UsersAccount.Role,
		schema.UsersAccount.IsActive, schema.UsersAccount.CreatedAt, schema.UsersAccount.UpdatedAt,
	)
}

func (repository *PostgresAccountRepository) GetByUsername(context context.Context, username string) (*Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		accountColumns(), schema.UsersAccount.Table, schema.UsersAccount.Username,
	)

	return repository.scanAccount(context, query, username)
}

func (repository *PostgresAccountRepository) GetByID(context context.Context, id string) (*Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		accountColumns(), schema.UsersAccount.Table, schema.UsersAccount.ID,
	)

	return repository.scanAccount(context, query, id)
}

func (repository *PostgresAccountRepository) scanAccount(context context.Context, query string, arg any) (*Account, error) {
	account := &Account{}

	err := repository.db.QueryRow(context, query, arg).Scan(
		&account.ID, &account.Username, &account.Email, &account.PasswordHash,
		&account.DisplayName, &account.Role, &account.IsActive,
		&account.CreatedAt, &account.UpdatedAt,
	)

	return account, dberr.Wrap(err, "get_account")
}
