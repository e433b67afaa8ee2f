package company

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
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

// selectClause expands the category reference and resolves the owner id
// against both principal stores.
func selectClause() string {
	co := schema.CoreCompany
	c := schema.CoreCategory
	u := schema.UserAccount
	a := schema.UserAdministrator

	return fmt.Sprintf(`
		SELECT co.%s, co.%s, co.%s, co.%s, co.%s, co.%s,
		       co.%s, co.%s, co.%s, co.%s, co.%s,
		       co.%s, co.%s, co.%s, co.%s, co.%s, co.%s, co.%s, co.%s,
		       c.%s, c.%s, c.%s,
		       COALESCE(u.%s, adm.%s), COALESCE(u.%s, adm.%s)
		FROM %s co
		LEFT JOIN %s c ON co.%s = c.%s
		LEFT JOIN %s u ON co.%s = u.%s
		LEFT JOIN %s adm ON co.%s = adm.%s
	`,
		co.ID, co.OwnerID, co.Name, co.Logo, co.About, co.CategoryID,
		co.Facebook, co.Instagram, co.LinkedIn, co.Twitter, co.GoogleMyBusiness,
		co.BusinessModel, co.LegalName, co.Headquarter, co.FoundingDate,
		co.NoOfEmployees, co.IsVerified, co.CreatedAt, co.UpdatedAt,
		c.ID, c.Name, c.Slug,
		u.Name, a.Name, u.Email, a.Email,
		co.Table,
		c.Table, co.CategoryID, c.ID,
		u.Table, co.OwnerID, u.ID,
		a.Table, co.OwnerID, a.ID,
	)
}

func scanRow(row interface{ Scan(...any) error }) (*Company, error) {
	co := &Company{CoreTeam: []TeamMember{}}
	var categoryID, categoryName, categorySlug *string
	var ownerName, ownerEmail *string

	err := row.Scan(
		&co.ID, &co.OwnerID, &co.Name, &co.Logo, &co.About, &co.CategoryID,
		&co.SocialMedia.Facebook, &co.SocialMedia.Instagram, &co.SocialMedia.LinkedIn,
		&co.SocialMedia.Twitter, &co.SocialMedia.GoogleMyBusiness,
		&co.BusinessModel, &co.LegalName, &co.Headquarter, &co.FoundingDate,
		&co.NoOfEmployees, &co.IsVerified, &co.CreatedAt, &co.UpdatedAt,
		&categoryID, &categoryName, &categorySlug,
		&ownerName, &ownerEmail,
	)
	if err != nil {
		return nil, err
	}

	if categoryID != nil {
		co.Category = &CategoryRef{ID: *categoryID, Name: *categoryName, Slug: *categorySlug}
	}
	if ownerName != nil || ownerEmail != nil {
		ref := &OwnerRef{ID: co.OwnerID}
		if ownerName != nil {
			ref.Name = *ownerName
		}
		if ownerEmail != nil {
			ref.Email = *ownerEmail
		}
		co.Owner = ref
	}

	return co, nil
}

func (repository *PostgresRepository) Create(context context.Context, co *Company) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	c := schema.CoreCompany
	q := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s, %s, %s, %s
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW(), NOW())
		RETURNING %s, %s
	`,
		c.Table,
		c.ID, c.OwnerID, c.Name, c.Logo, c.About, c.CategoryID,
		c.Facebook, c.Instagram, c.LinkedIn, c.Twitter, c.GoogleMyBusiness,
		c.BusinessModel, c.LegalName, c.Headquarter, c.FoundingDate,
		c.NoOfEmployees, c.IsVerified, c.CreatedAt, c.UpdatedAt,
		c.CreatedAt, c.UpdatedAt,
	)

	err = transaction.QueryRow(context, q,
		co.ID, co.OwnerID, co.Name, co.Logo, co.About, co.CategoryID,
		co.SocialMedia.Facebook, co.SocialMedia.Instagram, co.SocialMedia.LinkedIn,
		co.SocialMedia.Twitter, co.SocialMedia.GoogleMyBusiness,
		co.BusinessModel, co.LegalName, co.Headquarter, co.FoundingDate,
		co.NoOfEmployees, co.IsVerified,
	).Scan(&co.CreatedAt, &co.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_company")
	}

	if err := insertMembers(context, transaction, co.ID, co.CoreTeam); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "create_company_commit")
	}
	return nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Company, error) {
	q := selectClause() + fmt.Sprintf(` WHERE co.%s = $1`, schema.CoreCompany.ID)

	co, err := scanRow(repository.db.QueryRow(context, q, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_company_by_id")
	}

	if err := repository.loadMembers(context, co); err != nil {
		return nil, err
	}
	return co, nil
}

func (repository *PostgresRepository) FindByOwnerID(context context.Context, ownerID string) (*Company, error) {
	q := selectClause() + fmt.Sprintf(` WHERE co.%s = $1`, schema.CoreCompany.OwnerID)

	co, err := scanRow(repository.db.QueryRow(context, q, ownerID))
	if err != nil {
		return nil, dberr.Wrap(err, "get_company_by_owner")
	}

	if err := repository.loadMembers(context, co); err != nil {
		return nil, err
	}
	return co, nil
}

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Company, int, error) {
	c := schema.CoreCompany

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, c.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_companies")
	}

	q := selectClause() + fmt.Sprintf(` ORDER BY co.%s DESC LIMIT $1 OFFSET $2`, c.CreatedAt)

	rows, err := repository.db.Query(context, q, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_companies")
	}
	defer rows.Close()

	companies := make([]*Company, 0)
	for rows.Next() {
		co, err := scanRow(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_company")
		}
		companies = append(companies, co)
	}
	rows.Close()

	for _, co := range companies {
		if err := repository.loadMembers(context, co); err != nil {
			return nil, 0, err
		}
	}

	return companies, total, nil
}

func (repository *PostgresRepository) Update(context context.Context, co *Company) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	c := schema.CoreCompany
	q := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5,
			%s = $6, %s = $7, %s = $8, %s = $9, %s = $10,
			%s = $11, %s = $12, %s = $13, %s = $14, %s = $15,
			%s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		c.Table,
		c.Name, c.Logo, c.About, c.CategoryID,
		c.Facebook, c.Instagram, c.LinkedIn, c.Twitter, c.GoogleMyBusiness,
		c.BusinessModel, c.LegalName, c.Headquarter, c.FoundingDate, c.NoOfEmployees,
		c.UpdatedAt,
		c.ID,
		c.UpdatedAt,
	)

	err = transaction.QueryRow(context, q,
		co.ID, co.Name, co.Logo, co.About, co.CategoryID,
		co.SocialMedia.Facebook, co.SocialMedia.Instagram, co.SocialMedia.LinkedIn,
		co.SocialMedia.Twitter, co.SocialMedia.GoogleMyBusiness,
		co.BusinessModel, co.LegalName, co.Headquarter, co.FoundingDate, co.NoOfEmployees,
	).Scan(&co.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_company")
	}

	// Replace the core team wholesale; entries are few and unkeyed.
	m := schema.CoreCompanyMember
	if _, err := transaction.Exec(context,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, m.Table, m.CompanyID), co.ID); err != nil {
		return dberr.Wrap(err, "clear_company_members")
	}

	if err := insertMembers(context, transaction, co.ID, co.CoreTeam); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "update_company_commit")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	c := schema.CoreCompany
	q := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, c.Table, c.ID)

	cmd, err := repository.db.Exec(context, q, id)
	if err != nil {
		return dberr.Wrap(err, "delete_company")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Verify(context context.Context, id string) error {
	c := schema.CoreCompany
	q := fmt.Sprintf(`UPDATE %s SET %s = true, %s = NOW() WHERE %s = $1`,
		c.Table, c.IsVerified, c.UpdatedAt, c.ID,
	)

	cmd, err := repository.db.Exec(context, q, id)
	if err != nil {
		return dberr.Wrap(err, "verify_company")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// loadMembers hydrates the core team for one company.
func (repository *PostgresRepository) loadMembers(context context.Context, co *Company) error {
	m := schema.CoreCompanyMember
	q := fmt.Sprintf(`
		SELECT %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC
	`, m.MemberName, m.Designation, m.Table, m.CompanyID, m.SortOrder)

	rows, err := repository.db.Query(context, q, co.ID)
	if err != nil {
		return dberr.Wrap(err, "list_company_members")
	}
	defer rows.Close()

	members := make([]TeamMember, 0)
	for rows.Next() {
		member := TeamMember{}
		if err := rows.Scan(&member.MemberName, &member.Designation); err != nil {
			return dberr.Wrap(err, "scan_company_member")
		}
		members = append(members, member)
	}

	co.CoreTeam = members
	return nil
}

// insertMembers writes the core team rows inside the caller's transaction.
func insertMembers(context context.Context, transaction pgx.Tx, companyID string, members []TeamMember) error {
	m := schema.CoreCompanyMember
	q := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)
	`, m.Table, m.CompanyID, m.MemberName, m.Designation, m.SortOrder)

	for index, member := range members {
		if _, err := transaction.Exec(context, q, companyID, member.MemberName, member.Designation, index); err != nil {
			return dberr.Wrap(err, "insert_company_member_"+strconv.Itoa(index))
		}
	}
	return nil
}
