package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrportal/payroll-backend-go/internal/domain/employee"
	"github.com/hrportal/payroll-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// List implements EmployeeHandler. Optional department and status query
// filters.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	status := r.URL.Query().Get("status")

	var (
		employees []employee.Response
		err       error
	)
	switch {
	case department != "":
		employees, err = h.employeeService.ListByDepartment(r.Context(), department)
	case status != "":
		employees, err = h.employeeService.ListByStatus(r.Context(), employee.Status(status))
	default:
		employees, err = h.employeeService.List(r.Context())
	}
	if err != nil {
		slog.Error("Employee list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// GetByID implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("Employee get service error", "error", err, "employee_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}
