// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package admin (Postgres) implements the storage layer for Admin principals.

# Schema Table Mapping
  - users.administrator: Administrator identity, credentials and role tag.
*/
package admin

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/inkpress/internal/platform/database/schema"
	"github.com/taibuivan/inkpress/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres implementation for admin identity storage.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(context context.Context, a *Admin) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.UserAdministrator.Table,
		schema.UserAdministrator.ID, schema.UserAdministrator.Name,
		schema.UserAdministrator.Email, schema.UserAdministrator.PhoneNumber,
		schema.UserAdministrator.Password, schema.UserAdministrator.Role,
		schema.UserAdministrator.CreatedAt, schema.UserAdministrator.UpdatedAt,
		schema.UserAdministrator.CreatedAt, schema.UserAdministrator.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.Name, a.Email, a.PhoneNumber, a.Password, a.Role,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	return dberr.Wrap(err, "create_admin")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Admin, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.UserAdministrator.ID, schema.UserAdministrator.Name,
		schema.UserAdministrator.Email, schema.UserAdministrator.PhoneNumber,
		schema.UserAdministrator.Password, schema.UserAdministrator.Role,
		schema.UserAdministrator.CreatedAt, schema.UserAdministrator.UpdatedAt,
		schema.UserAdministrator.Table, schema.UserAdministrator.ID,
	)

	return repository.scanOne(context, query, id, "get_admin_by_id")
}

func (repository *PostgresRepository) FindByEmailOrPhone(context context.Context, identifier string) (*Admin, error) {
	// Email takes precedence; phone is the fallback. First match wins.
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE lower(%s) = lower($1) OR %s = $1
		ORDER BY (lower(%s) = lower($1)) DESC
		LIMIT 1
	`,
		schema.UserAdministrator.ID, schema.UserAdministrator.Name,
		schema.UserAdministrator.Email, schema.UserAdministrator.PhoneNumber,
		schema.UserAdministrator.Password, schema.UserAdministrator.Role,
		schema.UserAdministrator.CreatedAt, schema.UserAdministrator.UpdatedAt,
		schema.UserAdministrator.Table,
		schema.UserAdministrator.Email, schema.UserAdministrator.PhoneNumber,
		schema.UserAdministrator.Email,
	)

	return repository.scanOne(context, query, identifier, "get_admin_by_login")
}

// scanOne runs a single-row query and hydrates an Admin.
func (repository *PostgresRepository) scanOne(context context.Context, query string, arg any, action string) (*Admin, error) {
	a := &Admin{}

	err := repository.db.QueryRow(context, query, arg).Scan(
		&a.ID, &a.Name, &a.Email, &a.PhoneNumber, &a.Password, &a.Role, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	return a, nil
}
