package sitedetail

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

func (repository *PostgresRepository) Find(context context.Context) (*SiteDetail, error) {
	s := schema.SiteDetail
	q := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
		LIMIT 1
	`,
		s.ID, s.AboutTitle, s.AboutContent, s.TermsContent, s.PrivacyContent,
		s.FooterAbout, s.CreatedAt, s.UpdatedAt,
		s.Table,
		s.CreatedAt,
	)

	detail := &SiteDetail{SocialMedia: []SocialLink{}}
	err := repository.db.QueryRow(context, q).Scan(
		&detail.ID, &detail.AboutTitle, &detail.AboutContent, &detail.TermsContent,
		&detail.PrivacyContent, &detail.FooterAbout, &detail.CreatedAt, &detail.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_site_detail")
	}

	if err := repository.loadSocialLinks(context, detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (repository *PostgresRepository) Create(context context.Context, detail *SiteDetail) error {
	s := schema.SiteDetail
	q := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		s.Table,
		s.ID, s.AboutTitle, s.AboutContent, s.TermsContent, s.PrivacyContent,
		s.FooterAbout, s.CreatedAt, s.UpdatedAt,
		s.CreatedAt, s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, q,
		detail.ID, detail.AboutTitle, detail.AboutContent, detail.TermsContent,
		detail.PrivacyContent, detail.FooterAbout,
	).Scan(&detail.CreatedAt, &detail.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_site_detail")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, detail *SiteDetail) error {
	s := schema.SiteDetail
	q := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		s.Table,
		s.AboutTitle, s.AboutContent, s.TermsContent, s.PrivacyContent,
		s.FooterAbout, s.UpdatedAt,
		s.ID,
		s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, q,
		detail.ID, detail.AboutTitle, detail.AboutContent, detail.TermsContent,
		detail.PrivacyContent, detail.FooterAbout,
	).Scan(&detail.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_site_detail")
	}
	return nil
}

func (repository *PostgresRepository) AddSocialLink(context context.Context, detailID string, link *SocialLink) error {
	l := schema.SiteSocialLink
	q := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5,
			(SELECT COALESCE(MAX(%s), -1) + 1 FROM %s WHERE %s = $2))
	`,
		l.Table,
		l.ID, l.SiteDetailID, l.Platform, l.Icon, l.Link, l.SortOrder,
		l.SortOrder, l.Table, l.SiteDetailID,
	)

	if _, err := repository.db.Exec(context, q,
		link.ID, detailID, link.Platform, link.Icon, link.Link); err != nil {
		return dberr.Wrap(err, "add_social_link")
	}
	return nil
}

func (repository *PostgresRepository) RemoveSocialLink(context context.Context, detailID, linkID string) error {
	l := schema.SiteSocialLink
	q := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, l.Table, l.ID, l.SiteDetailID)

	cmd, err := repository.db.Exec(context, q, linkID, detailID)
	if err != nil {
		return dberr.Wrap(err, "remove_social_link")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) loadSocialLinks(context context.Context, detail *SiteDetail) error {
	l := schema.SiteSocialLink
	q := fmt.Sprintf(`
		SELECT %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC
	`, l.ID, l.Platform, l.Icon, l.Link, l.Table, l.SiteDetailID, l.SortOrder)

	rows, err := repository.db.Query(context, q, detail.ID)
	if err != nil {
		return dberr.Wrap(err, "list_social_links")
	}
	defer rows.Close()

	links := make([]SocialLink, 0)
	for rows.Next() {
		link := SocialLink{}
		if err := rows.Scan(&link.ID, &link.Platform, &link.Icon, &link.Link); err != nil {
			return dberr.Wrap(err, "scan_social_link")
		}
		links = append(links, link)
	}

	detail.SocialMedia = links
	return nil
}
