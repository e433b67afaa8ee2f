package story

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/inkpress/internal/platform/database/schema"
	"github.com/taibuivan/inkpress/internal/platform/dberr"
	"github.com/taibuivan/inkpress/pkg/query"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectClause joins the category and both principal stores so every story
// row comes back reference-expanded. The owner id is matched against members
// first and administrators second; COALESCE picks whichever store knows it.
func selectClause() string {
	s := schema.CoreStory
	c := schema.CoreCategory
	u := schema.UserAccount
	a := schema.UserAdministrator

	return fmt.Sprintf(`
		SELECT s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s,
		       c.%s, c.%s, c.%s,
		       COALESCE(u.%s, adm.%s), COALESCE(u.%s, adm.%s)
		FROM %s s
		LEFT JOIN %s c ON s.%s = c.%s
		LEFT JOIN %s u ON s.%s = u.%s
		LEFT JOIN %s adm ON s.%s = adm.%s
	`,
		s.ID, s.Title, s.Description, s.CategoryID, s.OwnerID, s.IsVerified,
		s.IsFeatured, s.StoryImage, s.MetaTitle, s.MetaDescription, s.MetaKeywords,
		s.CreatedAt, s.UpdatedAt,
		c.ID, c.Name, c.Slug,
		u.Name, a.Name, u.Email, a.Email,
		s.Table,
		c.Table, s.CategoryID, c.ID,
		u.Table, s.OwnerID, u.ID,
		a.Table, s.OwnerID, a.ID,
	)
}

// scanRow hydrates a Story from a reference-expanded row.
func scanRow(row interface{ Scan(...any) error }) (*Story, error) {
	st := &Story{}
	var keywords string
	var categoryID, categoryName, categorySlug *string
	var ownerName, ownerEmail *string

	err := row.Scan(
		&st.ID, &st.Title, &st.Description, &st.CategoryID, &st.OwnerID,
		&st.IsVerified, &st.IsFeatured, &st.StoryImage, &st.MetaTitle,
		&st.MetaDescription, &keywords, &st.CreatedAt, &st.UpdatedAt,
		&categoryID, &categoryName, &categorySlug,
		&ownerName, &ownerEmail,
	)
	if err != nil {
		return nil, err
	}

	st.MetaKeywords = query.StringSlice(keywords)
	if st.MetaKeywords == nil {
		st.MetaKeywords = []string{}
	}

	if categoryID != nil {
		st.Category = &CategoryRef{ID: *categoryID, Name: *categoryName, Slug: *categorySlug}
	}
	if ownerName != nil || ownerEmail != nil {
		ref := &OwnerRef{ID: st.OwnerID}
		if ownerName != nil {
			ref.Name = *ownerName
		}
		if ownerEmail != nil {
			ref.Email = *ownerEmail
		}
		st.Owner = ref
	}

	return st, nil
}

func (repository *PostgresRepository) Create(context context.Context, st *Story) error {
	s := schema.CoreStory
	q := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING %s, %s
	`,
		s.Table,
		s.ID, s.Title, s.Description, s.CategoryID, s.OwnerID, s.IsVerified,
		s.IsFeatured, s.StoryImage, s.MetaTitle, s.MetaDescription, s.MetaKeywords,
		s.CreatedAt, s.UpdatedAt,
		s.CreatedAt, s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, q,
		st.ID, st.Title, st.Description, st.CategoryID, st.OwnerID, st.IsVerified,
		st.IsFeatured, st.StoryImage, st.MetaTitle, st.MetaDescription,
		query.JoinStrings(st.MetaKeywords),
	).Scan(&st.CreatedAt, &st.UpdatedAt)

	return dberr.Wrap(err, "create_story")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Story, error) {
	q := selectClause() + fmt.Sprintf(` WHERE s.%s = $1`, schema.CoreStory.ID)

	st, err := scanRow(repository.db.QueryRow(context, q, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_story_by_id")
	}
	return st, nil
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Story, int, error) {
	s := schema.CoreStory

	conditions := ` WHERE 1=1`
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions += fmt.Sprintf(` AND s.%s ILIKE $%d`, s.Title, len(args))
	}
	if filter.OwnerID != "" {
		args = append(args, filter.OwnerID)
		conditions += fmt.Sprintf(` AND s.%s = $%d`, s.OwnerID, len(args))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conditions += fmt.Sprintf(` AND s.%s = $%d`, s.CategoryID, len(args))
	}
	if filter.ExcludeCategoryID != "" {
		args = append(args, filter.ExcludeCategoryID)
		conditions += fmt.Sprintf(` AND s.%s <> $%d`, s.CategoryID, len(args))
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s s`, s.Table) + conditions

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_stories")
	}

	q := selectClause() + conditions +
		fmt.Sprintf(` ORDER BY s.%s DESC LIMIT $`, s.CreatedAt) + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, q, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_stories")
	}
	defer rows.Close()

	stories := make([]*Story, 0)
	for rows.Next() {
		st, err := scanRow(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_story")
		}
		stories = append(stories, st)
	}

	return stories, total, nil
}

func (repository *PostgresRepository) Update(context context.Context, st *Story) error {
	s := schema.CoreStory
	q := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		s.Table,
		s.Title, s.Description, s.CategoryID, s.StoryImage,
		s.MetaTitle, s.MetaDescription, s.MetaKeywords, s.IsFeatured,
		s.UpdatedAt,
		s.ID,
		s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, q,
		st.ID, st.Title, st.Description, st.CategoryID, st.StoryImage,
		st.MetaTitle, st.MetaDescription, query.JoinStrings(st.MetaKeywords), st.IsFeatured,
	).Scan(&st.UpdatedAt)

	return dberr.Wrap(err, "update_story")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	s := schema.CoreStory
	q := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, s.Table, s.ID)

	cmd, err := repository.db.Exec(context, q, id)
	if err != nil {
		return dberr.Wrap(err, "delete_story")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Verify(context context.Context, id string) error {
	s := schema.CoreStory
	q := fmt.Sprintf(`UPDATE %s SET %s = true, %s = NOW() WHERE %s = $1`,
		s.Table, s.IsVerified, s.UpdatedAt, s.ID,
	)

	cmd, err := repository.db.Exec(context, q, id)
	if err != nil {
		return dberr.Wrap(err, "verify_story")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) FindCategoryIDByName(context context.Context, name string) (string, error) {
	c := schema.CoreCategory
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE lower(%s) = lower($1)`, c.ID, c.Table, c.Name)

	var id string
	if err := repository.db.QueryRow(context, q, name).Scan(&id); err != nil {
		return "", dberr.Wrap(err, "get_category_by_name")
	}
	return id, nil
}
