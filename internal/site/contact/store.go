package contact

import "context"

type Repository interface {
	Create(context context.Context, contact *Contact) error
	FindByID(context context.Context, id string) (*Contact, error)
	List(context context.Context, limit, offset int) ([]*Contact, int, error)
	Update(context context.Context, contact *Contact) error
	Delete(context context.Context, id string) error
}
