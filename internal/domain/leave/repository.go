package leave

import "context"

type Repository interface {
	// ListBalances returns the balances for an employee, optionally filtered
	// by leave type (nil means all types). Source order is preserved.
	ListBalances(ctx context.Context, employeeID string, leaveType *Type) ([]Balance, error)

	// ListRequests returns the leave requests filed by an employee.
	ListRequests(ctx context.Context, employeeID string) ([]Request, error)
}
