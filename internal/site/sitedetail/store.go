package sitedetail

import "context"

type Repository interface {
	// Find returns the singleton record, or dberr.ErrNotFound before the
	// first write.
	Find(context context.Context) (*SiteDetail, error)
	Create(context context.Context, detail *SiteDetail) error
	Update(context context.Context, detail *SiteDetail) error
	AddSocialLink(context context.Context, detailID string, link *SocialLink) error
	RemoveSocialLink(context context.Context, detailID, linkID string) error
}
