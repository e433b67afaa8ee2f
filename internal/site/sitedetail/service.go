package sitedetail

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/inkpress/internal/platform/dberr"
	"github.com/taibuivan/inkpress/internal/platform/validate"
	"github.com/taibuivan/inkpress/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Input holds the editable site-wide copy sections.
type Input struct {
	AboutTitle     string
	AboutContent   string
	TermsContent   string
	PrivacyContent string
	FooterAbout    string
}

// GetSiteDetail returns the singleton record, creating an empty one on the
// first read so callers never see a missing resource.
func (service *Service) GetSiteDetail(context context.Context) (*SiteDetail, error) {
	detail, err := service.repo.Find(context)
	if err == nil {
		return detail, nil
	}
	if !errors.Is(err, dberr.ErrNotFound) {
		return nil, err
	}

	detail = &SiteDetail{ID: uuidv7.New(), SocialMedia: []SocialLink{}}
	if err := service.repo.Create(context, detail); err != nil {
		return nil, err
	}

	service.logger.Info("site_detail_initialized", slog.String("site_detail_id", detail.ID))
	return detail, nil
}

func (service *Service) UpdateSiteDetail(context context.Context, input Input) (*SiteDetail, error) {
	detail, err := service.GetSiteDetail(context)
	if err != nil {
		return nil, err
	}

	detail.AboutTitle = input.AboutTitle
	detail.AboutContent = input.AboutContent
	detail.TermsContent = input.TermsContent
	detail.PrivacyContent = input.PrivacyContent
	detail.FooterAbout = input.FooterAbout

	if err := service.repo.Update(context, detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (service *Service) AddSocialLink(context context.Context, platform, icon, link string) (*SiteDetail, error) {
	validator := &validate.Validator{}
	validator.Required(FieldPlatform, platform).
		Required(FieldLink, link).
		URL(FieldLink, link)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	detail, err := service.GetSiteDetail(context)
	if err != nil {
		return nil, err
	}

	entry := &SocialLink{ID: uuidv7.New(), Platform: platform, Icon: icon, Link: link}
	if err := service.repo.AddSocialLink(context, detail.ID, entry); err != nil {
		return nil, err
	}

	detail.SocialMedia = append(detail.SocialMedia, *entry)
	return detail, nil
}

func (service *Service) RemoveSocialLink(context context.Context, linkID string) (*SiteDetail, error) {
	detail, err := service.GetSiteDetail(context)
	if err != nil {
		return nil, err
	}

	if err := service.repo.RemoveSocialLink(context, detail.ID, linkID); err != nil {
		return nil, err
	}

	return service.repo.Find(context)
}
