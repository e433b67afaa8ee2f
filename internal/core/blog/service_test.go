package blog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkpress/internal/core/blog"
	"github.com/taibuivan/inkpress/internal/platform/apperr"
)

const testCategoryID = "018f4e7a-0000-7000-8000-000000000001"

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	blogs map[string]*blog.Blog
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{blogs: map[string]*blog.Blog{}}
}

func (f *fakeRepository) Create(_ context.Context, b *blog.Blog) error {
	f.blogs[b.ID] = b
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*blog.Blog, error) {
	b, ok := f.blogs[id]
	if !ok {
		return nil, apperr.NotFound("Blog")
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepository) List(_ context.Context, filter blog.Filter, limit, offset int) ([]*blog.Blog, int, error) {
	all := make([]*blog.Blog, 0, len(f.blogs))
	for _, b := range f.blogs {
		all = append(all, b)
	}
	return all, len(all), nil
}

func (f *fakeRepository) Update(_ context.Context, b *blog.Blog) error {
	if _, ok := f.blogs[b.ID]; !ok {
		return apperr.NotFound("Blog")
	}
	f.blogs[b.ID] = b
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.blogs[id]; !ok {
		return apperr.NotFound("Blog")
	}
	delete(f.blogs, id)
	return nil
}

// fakeUploader records uploads and can be told to fail.
type fakeUploader struct {
	fail bool
}

func (f *fakeUploader) Upload(_ context.Context, _ []byte, filename, folder string) (string, error) {
	if f.fail {
		return "", errors.New("bucket unreachable")
	}
	return "https://assets.inkpress.app/" + folder + "/" + filename, nil
}

func newService(uploader *fakeUploader) (*blog.Service, *fakeRepository) {
	repo := newFakeRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return blog.NewService(repo, uploader, logger), repo
}

func validInput() blog.CreateInput {
	return blog.CreateInput{
		Title:       "Scaling past a thousand readers",
		Description: "Lessons from our first year",
		CategoryID:  testCategoryID,
		Image:       &blog.Upload{Data: []byte("png"), Filename: "cover.png"},
	}
}

func TestCreateBlog_StoresImageURL(t *testing.T) {
	service, _ := newService(&fakeUploader{})

	created, err := service.CreateBlog(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "https://assets.inkpress.app/blogs/cover.png", created.BlogImage)
}

func TestCreateBlog_RequiresImage(t *testing.T) {
	service, _ := newService(&fakeUploader{})

	input := validInput()
	input.Image = nil

	_, err := service.CreateBlog(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestCreateBlog_UploadFailureAborts(t *testing.T) {
	service, repo := newService(&fakeUploader{fail: true})

	_, err := service.CreateBlog(context.Background(), validInput())
	require.Error(t, err)

	assert.Equal(t, "UPSTREAM_ERROR", apperr.As(err).Code)
	assert.Empty(t, repo.blogs)
}

func TestUpdateBlog_KeepsImageWithoutNewUpload(t *testing.T) {
	service, _ := newService(&fakeUploader{})

	created, err := service.CreateBlog(context.Background(), validInput())
	require.NoError(t, err)

	input := validInput()
	input.Title = "A new title"
	input.Image = nil

	updated, err := service.UpdateBlog(context.Background(), created.ID, input)
	require.NoError(t, err)

	assert.Equal(t, "A new title", updated.Title)
	assert.Equal(t, created.BlogImage, updated.BlogImage, "stored image survives")
}
