package settlement

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Settlement, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Settlement, error)
	ListByStatus(ctx context.Context, status Status) ([]Settlement, error)
	List(ctx context.Context) ([]Settlement, error)
	Insert(ctx context.Context, s Settlement) (Settlement, error)
	Update(ctx context.Context, s Settlement) error
}
