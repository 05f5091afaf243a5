package leave

import (
	"github.com/hrportal/payroll-backend-go/internal/pkg/validator"
)

type BalanceResponse struct {
	EmployeeID       string  `json:"employee_id"`
	LeaveType        string  `json:"leave_type"`
	TotalEntitlement float64 `json:"total_entitlement"`
	Used             float64 `json:"used"`
	Pending          float64 `json:"pending"`
	Available        float64 `json:"available"`
	YearStartDate    string  `json:"year_start_date"`
	YearEndDate      string  `json:"year_end_date"`
}

func ToBalanceResponses(balances []Balance) []BalanceResponse {
	result := make([]BalanceResponse, 0, len(balances))
	for _, b := range balances {
		result = append(result, BalanceResponse{
			EmployeeID:       b.EmployeeID,
			LeaveType:        string(b.LeaveType),
			TotalEntitlement: b.TotalEntitlement,
			Used:             b.Used,
			Pending:          b.Pending,
			Available:        b.Available,
			YearStartDate:    b.YearStartDate,
			YearEndDate:      b.YearEndDate,
		})
	}
	return result
}

type RequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	RequestDate     string  `json:"request_date"`
	Status          string  `json:"status"`
	Reason          *string `json:"reason,omitempty"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovalDate    *string `json:"approval_date,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	NumberOfDays    float64 `json:"number_of_days"`
}

func ToRequestResponses(requests []Request) []RequestResponse {
	result := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, RequestResponse{
			ID:              r.ID,
			EmployeeID:      r.EmployeeID,
			LeaveType:       string(r.LeaveType),
			StartDate:       r.StartDate,
			EndDate:         r.EndDate,
			RequestDate:     r.RequestDate,
			Status:          string(r.Status),
			Reason:          r.Reason,
			ApprovedBy:      r.ApprovedBy,
			ApprovalDate:    r.ApprovalDate,
			RejectionReason: r.RejectionReason,
			NumberOfDays:    r.NumberOfDays,
		})
	}
	return result
}

// Validate checks a leave request: end after start, a reason present, a
// positive day count.
func (r Request) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDateRange(r.StartDate, r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be after start date"})
	}
	if r.Reason == nil || validator.IsEmpty(*r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if r.NumberOfDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "number_of_days", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
