package category

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

func (repository *PostgresRepository) Create(context context.Context, c *Category) error {
	s := schema.CoreCategory
	q := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s
	`,
		s.Table, s.ID, s.Name, s.Slug, s.CreatedAt, s.UpdatedAt,
		s.CreatedAt, s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, q, c.ID, c.Name, c.Slug).Scan(&c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, "create_category")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Category, error) {
	s := schema.CoreCategory
	q := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1
	`,
		s.ID, s.Name, s.Slug, s.CreatedAt, s.UpdatedAt, s.Table, s.ID,
	)

	c := &Category{}
	err := repository.db.QueryRow(context, q, id).Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_category_by_id")
	}
	return c, nil
}

func (repository *PostgresRepository) FindByName(context context.Context, name string) (*Category, error) {
	s := schema.CoreCategory
	q := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s FROM %s WHERE lower(%s) = lower($1)
	`,
		s.ID, s.Name, s.Slug, s.CreatedAt, s.UpdatedAt, s.Table, s.Name,
	)

	c := &Category{}
	err := repository.db.QueryRow(context, q, name).Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_category_by_name")
	}
	return c, nil
}

func (repository *PostgresRepository) List(context context.Context) ([]*Category, error) {
	s := schema.CoreCategory
	q := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s FROM %s ORDER BY %s DESC
	`,
		s.ID, s.Name, s.Slug, s.CreatedAt, s.UpdatedAt, s.Table, s.CreatedAt,
	)

	rows, err := repository.db.Query(context, q)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	return categories, nil
}

func (repository *PostgresRepository) Update(context context.Context, c *Category) error {
	s := schema.CoreCategory
	q := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		s.Table, s.Name, s.Slug, s.UpdatedAt, s.ID, s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, q, c.ID, c.Name, c.Slug).Scan(&c.UpdatedAt)
	return dberr.Wrap(err, "update_category")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	s := schema.CoreCategory
	q := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, s.Table, s.ID)

	cmd, err := repository.db.Exec(context, q, id)
	if err != nil {
		return dberr.Wrap(err, "delete_category")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
