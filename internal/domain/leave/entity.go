package leave

// Type enum
type Type string

const (
	TypePaid       Type = "paid"
	TypeSick       Type = "sick"
	TypeCasual     Type = "casual"
	TypeEarned     Type = "earned"
	TypeWithoutPay Type = "without_pay"
)

// Balance tracks entitlement, usage and the derived available count for one
// employee and leave type over a leave year.
type Balance struct {
	EmployeeID       string
	LeaveType        Type
	TotalEntitlement float64
	Used             float64
	Pending          float64
	Available        float64
	YearStartDate    string
	YearEndDate      string
}

// ComputeAvailable derives the available count from the other figures,
// floored at zero. The fixture data carries Available pre-computed; this is
// the invariant it must satisfy.
func (b Balance) ComputeAvailable() float64 {
	available := b.TotalEntitlement - b.Used - b.Pending
	if available < 0 {
		return 0
	}
	return available
}

// RequestStatus enum
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// Request is a leave application over an inclusive date range.
type Request struct {
	ID              string
	EmployeeID      string
	LeaveType       Type
	StartDate       string
	EndDate         string
	RequestDate     string
	Status          RequestStatus
	Reason          *string
	ApprovedBy      *string
	ApprovalDate    *string
	RejectionReason *string
	NumberOfDays    float64
}
