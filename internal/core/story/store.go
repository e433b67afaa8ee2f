package story

import "context"

type Repository interface {
	Create(context context.Context, story *Story) error
	FindByID(context context.Context, id string) (*Story, error)
	List(context context.Context, filter Filter, limit, offset int) ([]*Story, int, error)
	Update(context context.Context, story *Story) error
	Delete(context context.Context, id string) error

	// Verify sets the moderation flag. Verifying an already-verified story
	// is a no-op that still succeeds.
	Verify(context context.Context, id string) error

	// FindCategoryIDByName resolves a category id by case-insensitive name
	// match. Used to pin or exclude the reserved "Startup" category.
	FindCategoryIDByName(context context.Context, name string) (string, error)
}
