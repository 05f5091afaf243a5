package employee

import "context"

type Service interface {
	GetByID(ctx context.Context, id string) (Response, error)
	List(ctx context.Context) ([]Response, error)
	ListByDepartment(ctx context.Context, department string) ([]Response, error)
	ListByStatus(ctx context.Context, status Status) ([]Response, error)
}
