package category_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkpress/internal/core/category"
	"github.com/taibuivan/inkpress/internal/platform/apperr"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	categories map[string]*category.Category
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{categories: map[string]*category.Category{}}
}

func (f *fakeRepository) Create(_ context.Context, c *category.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*category.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, apperr.NotFound("Category")
	}
	copied := *c
	return &copied, nil
}

func (f *fakeRepository) FindByName(_ context.Context, name string) (*category.Category, error) {
	for _, c := range f.categories {
		if strings.EqualFold(c.Name, name) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Category")
}

func (f *fakeRepository) List(_ context.Context) ([]*category.Category, error) {
	all := make([]*category.Category, 0, len(f.categories))
	for _, c := range f.categories {
		all = append(all, c)
	}
	return all, nil
}

func (f *fakeRepository) Update(_ context.Context, c *category.Category) error {
	if _, ok := f.categories[c.ID]; !ok {
		return apperr.NotFound("Category")
	}
	f.categories[c.ID] = c
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.categories[id]; !ok {
		return apperr.NotFound("Category")
	}
	delete(f.categories, id)
	return nil
}

func newService() (*category.Service, *fakeRepository) {
	repo := newFakeRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return category.NewService(repo, logger), repo
}

func TestCreateCategory_DerivesSlug(t *testing.T) {
	service, _ := newService()

	created, err := service.CreateCategory(context.Background(), "Product Design")
	require.NoError(t, err)

	assert.Equal(t, "Product Design", created.Name)
	assert.Equal(t, "product-design", created.Slug)
	assert.NotEmpty(t, created.ID)
}

func TestCreateCategory_TrimsName(t *testing.T) {
	service, _ := newService()

	created, err := service.CreateCategory(context.Background(), "  Startup  ")
	require.NoError(t, err)
	assert.Equal(t, "Startup", created.Name)
}

func TestCreateCategory_DuplicateIsCaseInsensitive(t *testing.T) {
	service, _ := newService()

	_, err := service.CreateCategory(context.Background(), "Startup")
	require.NoError(t, err)

	_, err = service.CreateCategory(context.Background(), "startup")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "DUPLICATE", ae.Code)
}

func TestCreateCategory_EmptyName(t *testing.T) {
	service, _ := newService()

	_, err := service.CreateCategory(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestUpdateCategory_SameIDRename(t *testing.T) {
	service, _ := newService()

	created, err := service.CreateCategory(context.Background(), "Startup")
	require.NoError(t, err)

	// Changing only the casing of its own name is not a conflict.
	updated, err := service.UpdateCategory(context.Background(), created.ID, "STARTUP")
	require.NoError(t, err)
	assert.Equal(t, "STARTUP", updated.Name)
	assert.Equal(t, "startup", updated.Slug)
}

func TestUpdateCategory_ConflictWithOther(t *testing.T) {
	service, _ := newService()

	_, err := service.CreateCategory(context.Background(), "Fintech")
	require.NoError(t, err)

	second, err := service.CreateCategory(context.Background(), "Healthtech")
	require.NoError(t, err)

	_, err = service.UpdateCategory(context.Background(), second.ID, "fintech")
	require.Error(t, err)
	assert.Equal(t, "DUPLICATE", apperr.As(err).Code)
}

func TestDeleteCategory_Missing(t *testing.T) {
	service, _ := newService()

	err := service.DeleteCategory(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
