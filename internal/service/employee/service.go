package employee

import (
	"context"

	"github.com/hrportal/payroll-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// GetByID implements employee.Service.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.Response, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Response{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Response, error) {
	emps, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(emps), nil
}

// ListByDepartment implements employee.Service.
func (s *EmployeeServiceImpl) ListByDepartment(ctx context.Context, department string) ([]employee.Response, error) {
	emps, err := s.employeeRepo.ListByDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	return toResponses(emps), nil
}

// ListByStatus implements employee.Service.
func (s *EmployeeServiceImpl) ListByStatus(ctx context.Context, status employee.Status) ([]employee.Response, error) {
	emps, err := s.employeeRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return toResponses(emps), nil
}

func toResponses(emps []employee.Employee) []employee.Response {
	result := make([]employee.Response, 0, len(emps))
	for _, e := range emps {
		result = append(result, employee.ToResponse(e))
	}
	return result
}
