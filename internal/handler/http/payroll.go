package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrportal/payroll-backend-go/internal/domain/payroll"
	"github.com/hrportal/payroll-backend-go/internal/handler/http/response"
	"github.com/hrportal/payroll-backend-go/internal/pkg/validator"
)

type PayrollHandler interface {
	GetPayslip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// GetPayslip implements PayrollHandler. The month query parameter is optional
// and defaults to the current month.
func (h *PayrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	month := r.URL.Query().Get("month")

	if month != "" && !validator.IsValidMonth(month) {
		response.BadRequest(w, "month must be in YYYY-MM format", nil)
		return
	}

	slip, err := h.payrollService.Payslip(r.Context(), id, month)
	if err != nil {
		slog.Error("Payslip service error", "error", err, "employee_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, slip)
}
