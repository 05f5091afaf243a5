package memory

import (
	"context"

	"github.com/hrportal/payroll-backend-go/internal/domain/salary"
)

type salaryRepositoryImpl struct {
	structures []salary.Structure
}

func NewSalaryRepository(structures []salary.Structure) salary.Repository {
	return &salaryRepositoryImpl{structures: structures}
}

// GetByID implements salary.Repository.
func (r *salaryRepositoryImpl) GetByID(ctx context.Context, id string) (salary.Structure, error) {
	for _, s := range r.structures {
		if s.ID == id {
			return s, nil
		}
	}
	return salary.Structure{}, salary.ErrStructureNotFound
}

// GetByEmployeeID implements salary.Repository.
func (r *salaryRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (salary.Structure, error) {
	for _, s := range r.structures {
		if s.EmployeeID == employeeID {
			return s, nil
		}
	}
	return salary.Structure{}, salary.ErrStructureNotFound
}

// List implements salary.Repository.
func (r *salaryRepositoryImpl) List(ctx context.Context) ([]salary.Structure, error) {
	out := make([]salary.Structure, len(r.structures))
	copy(out, r.structures)
	return out, nil
}
