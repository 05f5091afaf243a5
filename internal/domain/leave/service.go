package leave

import "context"

type Service interface {
	// ListBalances returns an employee's balances, optionally filtered by
	// leave type.
	ListBalances(ctx context.Context, employeeID string, leaveType *Type) ([]BalanceResponse, error)

	// TotalAvailable sums the available days across every leave type.
	TotalAvailable(ctx context.Context, employeeID string) (float64, error)

	// ListRequests returns the leave requests filed by an employee.
	ListRequests(ctx context.Context, employeeID string) ([]RequestResponse, error)

	// IsLeaveDay reports whether a date falls inside any approved leave
	// request of the employee.
	IsLeaveDay(ctx context.Context, employeeID, date string) (bool, error)
}
