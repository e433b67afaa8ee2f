// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package user (Postgres) implements the storage layer for User principals.

# Schema Table Mapping
  - users.account: Member identity, credentials and contact data.
*/
package user

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/inkpress/internal/platform/database/schema"
	"github.com/taibuivan/inkpress/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres implementation for user identity storage.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(context context.Context, u *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.Email,
		schema.UserAccount.PhoneNumber, schema.UserAccount.Password,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		u.ID, u.Name, u.Email, u.PhoneNumber, u.Password,
	).Scan(&u.CreatedAt, &u.UpdatedAt)

	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.Email,
		schema.UserAccount.PhoneNumber, schema.UserAccount.Password,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.Table, schema.UserAccount.ID,
	)

	return repository.scanOne(context, query, id, "get_user_by_id")
}

func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE lower(%s) = lower($1)
	`,
		schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.Email,
		schema.UserAccount.PhoneNumber, schema.UserAccount.Password,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.Table, schema.UserAccount.Email,
	)

	return repository.scanOne(context, query, email, "get_user_by_email")
}

func (repository *PostgresRepository) FindByPhoneNumber(context context.Context, phoneNumber string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.Email,
		schema.UserAccount.PhoneNumber, schema.UserAccount.Password,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.Table, schema.UserAccount.PhoneNumber,
	)

	return repository.scanOne(context, query, phoneNumber, "get_user_by_phone")
}

func (repository *PostgresRepository) FindByLogin(context context.Context, identifier string) (*User, error) {
	// Email takes precedence; phone is the fallback. First match wins.
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE lower(%s) = lower($1) OR %s = $1
		ORDER BY (lower(%s) = lower($1)) DESC
		LIMIT 1
	`,
		schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.Email,
		schema.UserAccount.PhoneNumber, schema.UserAccount.Password,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.Table,
		schema.UserAccount.Email, schema.UserAccount.PhoneNumber,
		schema.UserAccount.Email,
	)

	return repository.scanOne(context, query, identifier, "get_user_by_login")
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*User, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE 1=1
	`,
		schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.Email,
		schema.UserAccount.PhoneNumber, schema.UserAccount.Password,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE 1=1`, schema.UserAccount.Table)

	args := []any{}
	countArgs := []any{}

	if filter.Search != "" {
		searchTerm := "%" + filter.Search + "%"
		condition := fmt.Sprintf(` AND (%s ILIKE $1 OR %s ILIKE $1 OR %s ILIKE $1)`,
			schema.UserAccount.Name, schema.UserAccount.Email, schema.UserAccount.PhoneNumber)
		query += condition
		countQuery += condition
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $", schema.UserAccount.CreatedAt) + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_users")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PhoneNumber, &u.Password, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user")
		}
		users = append(users, u)
	}

	return users, total, nil
}

func (repository *PostgresRepository) Update(context context.Context, u *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.Name, schema.UserAccount.Email,
		schema.UserAccount.PhoneNumber, schema.UserAccount.Password,
		schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
		schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		u.ID, u.Name, u.Email, u.PhoneNumber, u.Password,
	).Scan(&u.UpdatedAt)

	return dberr.Wrap(err, "update_user")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_user")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// scanOne runs a single-row query and hydrates a User.
func (repository *PostgresRepository) scanOne(context context.Context, query string, arg any, action string) (*User, error) {
	u := &User{}

	err := repository.db.QueryRow(context, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PhoneNumber, &u.Password, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	return u, nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
