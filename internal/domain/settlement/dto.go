package settlement

import (
	"github.com/hrportal/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Response struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	ExitDate        string          `json:"exit_date"`
	RequestDate     string          `json:"request_date"`
	Status          string          `json:"status"`
	PendingSalary   decimal.Decimal `json:"pending_salary"`
	LeaveEncashment decimal.Decimal `json:"leave_encashment"`
	Gratuity        decimal.Decimal `json:"gratuity"`
	OtherBenefits   decimal.Decimal `json:"other_benefits"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalSettlement decimal.Decimal `json:"total_settlement"`
	CalculatedBy    *string         `json:"calculated_by,omitempty"`
	CalculationDate *string         `json:"calculation_date,omitempty"`
	ApprovedBy      *string         `json:"approved_by,omitempty"`
	ApprovalDate    *string         `json:"approval_date,omitempty"`
	PaidDate        *string         `json:"paid_date,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
}

func ToResponse(s Settlement) Response {
	return Response{
		ID:              s.ID,
		EmployeeID:      s.EmployeeID,
		ExitDate:        s.ExitDate,
		RequestDate:     s.RequestDate,
		Status:          string(s.Status),
		PendingSalary:   s.PendingSalary,
		LeaveEncashment: s.LeaveEncashment,
		Gratuity:        s.Gratuity,
		OtherBenefits:   s.OtherBenefits,
		TotalDeductions: s.TotalDeductions,
		TotalSettlement: s.TotalSettlement,
		CalculatedBy:    s.CalculatedBy,
		CalculationDate: s.CalculationDate,
		ApprovedBy:      s.ApprovedBy,
		ApprovalDate:    s.ApprovalDate,
		PaidDate:        s.PaidDate,
		Notes:           s.Notes,
	}
}

func ToResponses(settlements []Settlement) []Response {
	result := make([]Response, 0, len(settlements))
	for _, s := range settlements {
		result = append(result, ToResponse(s))
	}
	return result
}

type CalculateRequest struct {
	EmployeeID      string           `json:"employee_id"`
	ExitDate        string           `json:"exit_date"`
	OtherBenefits   *decimal.Decimal `json:"other_benefits,omitempty"`
	TotalDeductions *decimal.Decimal `json:"total_deductions,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.ExitDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "exit_date", Message: "must be a valid date"})
	}
	if r.OtherBenefits != nil && r.OtherBenefits.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "other_benefits", Message: "must be non-negative"})
	}
	if r.TotalDeductions != nil && r.TotalDeductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "total_deductions", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
