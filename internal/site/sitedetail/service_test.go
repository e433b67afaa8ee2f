package sitedetail_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkpress/internal/platform/apperr"
	"github.com/taibuivan/inkpress/internal/platform/dberr"
	"github.com/taibuivan/inkpress/internal/site/sitedetail"
)

// fakeRepository is an in-memory Repository holding at most one record.
type fakeRepository struct {
	detail *sitedetail.SiteDetail
}

func (f *fakeRepository) Find(_ context.Context) (*sitedetail.SiteDetail, error) {
	if f.detail == nil {
		return nil, dberr.ErrNotFound
	}
	copied := *f.detail
	copied.SocialMedia = append([]sitedetail.SocialLink{}, f.detail.SocialMedia...)
	return &copied, nil
}

func (f *fakeRepository) Create(_ context.Context, detail *sitedetail.SiteDetail) error {
	f.detail = detail
	return nil
}

func (f *fakeRepository) Update(_ context.Context, detail *sitedetail.SiteDetail) error {
	if f.detail == nil {
		return dberr.ErrNotFound
	}
	links := f.detail.SocialMedia
	f.detail = detail
	f.detail.SocialMedia = links
	return nil
}

func (f *fakeRepository) AddSocialLink(_ context.Context, detailID string, link *sitedetail.SocialLink) error {
	if f.detail == nil || f.detail.ID != detailID {
		return dberr.ErrNotFound
	}
	f.detail.SocialMedia = append(f.detail.SocialMedia, *link)
	return nil
}

func (f *fakeRepository) RemoveSocialLink(_ context.Context, detailID, linkID string) error {
	if f.detail == nil || f.detail.ID != detailID {
		return dberr.ErrNotFound
	}
	for index, link := range f.detail.SocialMedia {
		if link.ID == linkID {
			f.detail.SocialMedia = append(f.detail.SocialMedia[:index], f.detail.SocialMedia[index+1:]...)
			return nil
		}
	}
	return dberr.ErrNotFound
}

func newService() (*sitedetail.Service, *fakeRepository) {
	repo := &fakeRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return sitedetail.NewService(repo, logger), repo
}

func TestGetSiteDetail_LazilyCreates(t *testing.T) {
	service, repo := newService()

	detail, err := service.GetSiteDetail(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, detail.ID)
	assert.Empty(t, detail.AboutTitle)
	require.NotNil(t, repo.detail, "first read persists the singleton")

	// A second read returns the same record, not a new one.
	again, err := service.GetSiteDetail(context.Background())
	require.NoError(t, err)
	assert.Equal(t, detail.ID, again.ID)
}

func TestUpdateSiteDetail_OverwritesSections(t *testing.T) {
	service, _ := newService()

	updated, err := service.UpdateSiteDetail(context.Background(), sitedetail.Input{
		AboutTitle:   "About Inkpress",
		AboutContent: "We publish founder stories.",
		FooterAbout:  "Short footer blurb",
	})
	require.NoError(t, err)

	assert.Equal(t, "About Inkpress", updated.AboutTitle)
	assert.Equal(t, "Short footer blurb", updated.FooterAbout)
}

func TestAddSocialLink(t *testing.T) {
	service, _ := newService()

	detail, err := service.AddSocialLink(context.Background(), "twitter", "fa-twitter", "https://twitter.com/inkpress")
	require.NoError(t, err)

	require.Len(t, detail.SocialMedia, 1)
	assert.Equal(t, "twitter", detail.SocialMedia[0].Platform)
	assert.NotEmpty(t, detail.SocialMedia[0].ID)
}

func TestAddSocialLink_InvalidURL(t *testing.T) {
	service, _ := newService()

	_, err := service.AddSocialLink(context.Background(), "twitter", "", "not-a-url")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestRemoveSocialLink(t *testing.T) {
	service, _ := newService()

	detail, err := service.AddSocialLink(context.Background(), "twitter", "", "https://twitter.com/inkpress")
	require.NoError(t, err)
	linkID := detail.SocialMedia[0].ID

	after, err := service.RemoveSocialLink(context.Background(), linkID)
	require.NoError(t, err)
	assert.Empty(t, after.SocialMedia)
}

func TestRemoveSocialLink_Missing(t *testing.T) {
	service, _ := newService()

	_, err := service.RemoveSocialLink(context.Background(), "no-such-link")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
