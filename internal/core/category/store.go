package category

import "context"

type Repository interface {
	Create(context context.Context, category *Category) error
	FindByID(context context.Context, id string) (*Category, error)

	// FindByName matches case-insensitively.
	FindByName(context context.Context, name string) (*Category, error)

	// List returns every category, newest first.
	List(context context.Context) ([]*Category, error)

	Update(context context.Context, category *Category) error
	Delete(context context.Context, id string) error
}
