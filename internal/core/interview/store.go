package interview

import "context"

type Repository interface {
	Create(context context.Context, interview *Interview) error
	FindByID(context context.Context, id string) (*Interview, error)
	List(context context.Context, filter Filter, limit, offset int) ([]*Interview, int, error)
	Update(context context.Context, interview *Interview) error
	Delete(context context.Context, id string) error
}
