package blog

import (
	"context"
	"fmt"
	"strconv"

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
	b := schema.CoreBlog
	c := schema.CoreCategory

	return fmt.Sprintf(`
		SELECT b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s,
		       c.%s, c.%s, c.%s
		FROM %s b
		LEFT JOIN %s c ON b.%s = c.%s
	`,
		b.ID, b.Title, b.Description, b.BlogImage, b.BlogImageAlt,
		b.MetaTitle, b.MetaDescription, b.MetaKeywords, b.CategoryID,
		b.CreatedAt, b.UpdatedAt,
		c.ID, c.Name, c.Slug,
		b.Table,
		c.Table, b.CategoryID, c.ID,
	)
}

func scanRow(row interface{ Scan(...any) error }) (*Blog, error) {
	bl := &Blog{}
	var categoryID, categoryName, categorySlug *string

	err := row.Scan(
		&bl.ID, &bl.Title, &bl.Description, &bl.BlogImage, &bl.BlogImageAlt,
		&bl.MetaTitle, &bl.MetaDescription, &bl.MetaKeywords, &bl.CategoryID,
		&bl.CreatedAt, &bl.UpdatedAt,
		&categoryID, &categoryName, &categorySlug,
	)
	if err != nil {
		return nil, err
	}

	if categoryID != nil {
		bl.Category = &CategoryRef{ID: *categoryID, Name: *categoryName, Slug: *categorySlug}
	}

	return bl, nil
}

func (repository *PostgresRepository) Create(context context.Context, bl *Blog) error {
	b := schema.CoreBlog
	q := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s
	`,
		b.Table,
		b.ID, b.Title, b.Description, b.BlogImage, b.BlogImageAlt,
		b.MetaTitle, b.MetaDescription, b.MetaKeywords, b.CategoryID,
		b.CreatedAt, b.UpdatedAt,
		b.CreatedAt, b.UpdatedAt,
	)

	err := repository.db.QueryRow(context, q,
		bl.ID, bl.Title, bl.Description, bl.BlogImage, bl.BlogImageAlt,
		bl.MetaTitle, bl.MetaDescription, bl.MetaKeywords, bl.CategoryID,
	).Scan(&bl.CreatedAt, &bl.UpdatedAt)

	return dberr.Wrap(err, "create_blog")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Blog, error) {
	q := selectClause() + fmt.Sprintf(` WHERE b.%s = $1`, schema.CoreBlog.ID)

	bl, err := scanRow(repository.db.QueryRow(context, q, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_blog_by_id")
	}
	return bl, nil
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Blog, int, error) {
	b := schema.CoreBlog

	conditions := ` WHERE 1=1`
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions += fmt.Sprintf(` AND (b.%s ILIKE $1 OR b.%s ILIKE $1)`, b.Title, b.MetaTitle)
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s b`, b.Table) + conditions

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_blogs")
	}

	q := selectClause() + conditions +
		fmt.Sprintf(` ORDER BY b.%s DESC LIMIT $`, b.CreatedAt) + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, q, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_blogs")
	}
	defer rows.Close()

	blogs := make([]*Blog, 0)
	for rows.Next() {
		bl, err := scanRow(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_blog")
		}
		blogs = append(blogs, bl)
	}

	return blogs, total, nil
}

func (repository *PostgresRepository) Update(context context.Context, bl *Blog) error {
	b := schema.CoreBlog
	q := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		b.Table,
		b.Title, b.Description, b.BlogImage, b.BlogImageAlt,
		b.MetaTitle, b.MetaDescription, b.MetaKeywords, b.CategoryID,
		b.UpdatedAt,
		b.ID,
		b.UpdatedAt,
	)

	err := repository.db.QueryRow(context, q,
		bl.ID, bl.Title, bl.Description, bl.BlogImage, bl.BlogImageAlt,
		bl.MetaTitle, bl.MetaDescription, bl.MetaKeywords, bl.CategoryID,
	).Scan(&bl.UpdatedAt)

	return dberr.Wrap(err, "update_blog")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	b := schema.CoreBlog
	q := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, b.Table, b.ID)

	cmd, err := repository.db.Exec(context, q, id)
	if err != nil {
		return dberr.Wrap(err, "delete_blog")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
