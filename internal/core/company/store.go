package company

import "context"

type Repository interface {
	Create(context context.Context, company *Company) error
	FindByID(context context.Context, id string) (*Company, error)

	// FindByOwnerID returns the single listing for one principal id.
	FindByOwnerID(context context.Context, ownerID string) (*Company, error)

	List(context context.Context, limit, offset int) ([]*Company, int, error)
	Update(context context.Context, company *Company) error
	Delete(context context.Context, id string) error

	// Verify sets the moderation flag. Idempotent.
	Verify(context context.Context, id string) error
}
