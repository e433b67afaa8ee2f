package blog

import "context"

type Repository interface {
	Create(context context.Context, blog *Blog) error
	FindByID(context context.Context, id string) (*Blog, error)
	List(context context.Context, filter Filter, limit, offset int) ([]*Blog, int, error)
	Update(context context.Context, blog *Blog) error
	Delete(context context.Context, id string) error
}
