package memory

import (
	"context"

	"github.com/hrportal/payroll-backend-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	employees []employee.Employee
}

func NewEmployeeRepository(employees []employee.Employee) employee.Repository {
	return &employeeRepositoryImpl{employees: employees}
}

// GetByID implements employee.Repository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// GetByEmail implements employee.Repository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// List implements employee.Repository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}

// ListByDepartment implements employee.Repository.
func (r *employeeRepositoryImpl) ListByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.Department == department {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListByStatus implements employee.Repository.
func (r *employeeRepositoryImpl) ListByStatus(ctx context.Context, status employee.Status) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out, nil
}
