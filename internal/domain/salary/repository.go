package salary

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Structure, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Structure, error)
	List(ctx context.Context) ([]Structure, error)
}
