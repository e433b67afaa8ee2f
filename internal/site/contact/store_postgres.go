package contact

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/inkpress/internal/platform/database/schema"
	"github.com/taibuivan/inkpress/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func selectClause() string {
	c := schema.SiteContact

	return fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		c.ID, c.Name, c.Email, c.PhoneNumber, c.Subject, c.Message,
		c.CreatedAt, c.UpdatedAt,
		c.Table,
	)
}

func scanRow(row interface{ Scan(...any) error }) (*Contact, error) {
	co := &Contact{}

	err := row.Scan(
		&co.ID, &co.Name, &co.Email, &co.PhoneNumber, &co.Subject, &co.Message,
		&co.CreatedAt, &co.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return co, nil
}

func (repository *PostgresRepository) Create(context context.Context, co *Contact) error {
	c := schema.SiteContact
	q := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		c.Table,
		c.ID, c.Name, c.Email, c.PhoneNumber, c.Subject, c.Message,
		c.CreatedAt, c.UpdatedAt,
		c.CreatedAt, c.UpdatedAt,
	)

	err := repository.db.QueryRow(context, q,
		co.ID, co.Name, co.Email, co.PhoneNumber, co.Subject, co.Message,
	).Scan(&co.CreatedAt, &co.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_contact")
	}
	return nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Contact, error) {
	q := selectClause() + fmt.Sprintf(` WHERE %s = $1`, schema.SiteContact.ID)

	co, err := scanRow(repository.db.QueryRow(context, q, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_contact_by_id")
	}
	return co, nil
}

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Contact, int, error) {
	c := schema.SiteContact

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, c.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_contacts")
	}

	q := selectClause() + fmt.Sprintf(` ORDER BY %s DESC LIMIT $1 OFFSET $2`, c.CreatedAt)

	rows, err := repository.db.Query(context, q, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_contacts")
	}
	defer rows.Close()

	contacts := make([]*Contact, 0)
	for rows.Next() {
		co, err := scanRow(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_contact")
		}
		contacts = append(contacts, co)
	}

	return contacts, total, nil
}

func (repository *PostgresRepository) Update(context context.Context, co *Contact) error {
	c := schema.SiteContact
	q := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		c.Table,
		c.Name, c.Email, c.PhoneNumber, c.Subject, c.Message, c.UpdatedAt,
		c.ID,
		c.UpdatedAt,
	)

	err := repository.db.QueryRow(context, q,
		co.ID, co.Name, co.Email, co.PhoneNumber, co.Subject, co.Message,
	).Scan(&co.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_contact")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	c := schema.SiteContact
	q := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, c.Table, c.ID)

	cmd, err := repository.db.Exec(context, q, id)
	if err != nil {
		return dberr.Wrap(err, "delete_contact")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
