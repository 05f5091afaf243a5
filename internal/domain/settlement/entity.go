package settlement

import "github.com/shopspring/decimal"

// Status enum. The lifecycle is pending → calculated → approved → paid, with
// cancellation allowed at any stage before paid.
type Status string

const (
	StatusPending    Status = "pending"
	StatusCalculated Status = "calculated"
	StatusApproved   Status = "approved"
	StatusPaid       Status = "paid"
	StatusCancelled  Status = "cancelled"
)

// CanTransitionTo reports whether the status machine permits moving from s
// to next.
func (s Status) CanTransitionTo(next Status) bool {
	switch next {
	case StatusCalculated:
		return s == StatusPending
	case StatusApproved:
		return s == StatusCalculated
	case StatusPaid:
		return s == StatusApproved
	case StatusCancelled:
		return s == StatusPending || s == StatusCalculated || s == StatusApproved
	default:
		return false
	}
}

// Settlement is a full-and-final exit computation result.
type Settlement struct {
	ID              string
	EmployeeID      string
	ExitDate        string
	RequestDate     string
	Status          Status
	PendingSalary   decimal.Decimal
	LeaveEncashment decimal.Decimal
	Gratuity        decimal.Decimal
	OtherBenefits   decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalSettlement decimal.Decimal
	CalculatedBy    *string
	CalculationDate *string
	ApprovedBy      *string
	ApprovalDate    *string
	PaidDate        *string
	Notes           *string
}
