package response

import (
	"errors"
	"net/http"

	"github.com/hrportal/payroll-backend-go/internal/domain/attendance"
	"github.com/hrportal/payroll-backend-go/internal/domain/auth"
	"github.com/hrportal/payroll-backend-go/internal/domain/compliance"
	"github.com/hrportal/payroll-backend-go/internal/domain/employee"
	"github.com/hrportal/payroll-backend-go/internal/domain/leave"
	"github.com/hrportal/payroll-backend-go/internal/domain/salary"
	"github.com/hrportal/payroll-backend-go/internal/domain/settlement"
	"github.com/hrportal/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrNoSession):
		Unauthorized(w, "No active session")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, salary.ErrStructureNotFound):
		NotFound(w, "Salary structure not found")

	// Leave and attendance domain errors
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, attendance.ErrSummaryNotFound):
		NotFound(w, "Attendance summary not found")

	// Settlement domain errors
	case errors.Is(err, settlement.ErrSettlementNotFound):
		NotFound(w, "Settlement not found")
	case errors.Is(err, settlement.ErrInvalidStatusTransition):
		Conflict(w, "Settlement status does not allow this operation")
	case errors.Is(err, settlement.ErrSettlementAlreadyExists):
		Conflict(w, "Settlement already exists for this employee")
	case errors.Is(err, settlement.ErrEmployeeNotExited):
		BadRequest(w, "Employee has no exit date", nil)

	// Compliance domain errors
	case errors.Is(err, compliance.ErrSlabNotFound):
		NotFound(w, "Tax slab not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
