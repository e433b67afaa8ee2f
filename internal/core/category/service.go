package category

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/inkpress/internal/platform/apperr"
	"github.com/taibuivan/inkpress/internal/platform/validate"
	"github.com/taibuivan/inkpress/pkg/slug"
	"github.com/taibuivan/inkpress/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateCategory persists a new category with a slug derived from its name.
//
// Uniqueness is checked case-insensitively before the insert; the slug
// inherits uniqueness from the name since derivation is deterministic.
func (service *Service) CreateCategory(context context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, 100)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if _, err := service.repo.FindByName(context, name); err == nil {
		return nil, apperr.Duplicate("Category already exists")
	}

	newCategory := &Category{
		ID:   uuidv7.New(),
		Name: name,
		Slug: slug.From(name),
	}

	if err := service.repo.Create(context, newCategory); err != nil {
		return nil, err
	}

	service.logger.Info("category_created", slog.String("category_id", newCategory.ID), slog.String("name", name))
	return newCategory, nil
}

func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	return service.repo.List(context)
}

func (service *Service) GetCategory(context context.Context, id string) (*Category, error) {
	return service.repo.FindByID(context, id)
}

// UpdateCategory renames a category, re-deriving the slug and re-running
// the case-insensitive uniqueness check against other categories.
func (service *Service) UpdateCategory(context context.Context, id, name string) (*Category, error) {
	name = strings.TrimSpace(name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, 100)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	current, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if existing, err := service.repo.FindByName(context, name); err == nil && existing.ID != current.ID {
		return nil, apperr.Duplicate("Category already exists")
	}

	current.Name = name
	current.Slug = slug.From(name)

	if err := service.repo.Update(context, current); err != nil {
		return nil, err
	}

	service.logger.Info("category_updated", slog.String("category_id", current.ID))
	return current, nil
}

// DeleteCategory removes a category. Content referencing it keeps the
// dangling reference; there is no cascade.
func (service *Service) DeleteCategory(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("category_deleted", slog.String("category_id", id))
	return nil
}
