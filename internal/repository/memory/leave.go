package memory

import (
	"context"

	"github.com/hrportal/payroll-backend-go/internal/domain/leave"
)

type leaveRepositoryImpl struct {
	balances []leave.Balance
	requests []leave.Request
}

func NewLeaveRepository(balances []leave.Balance, requests []leave.Request) leave.Repository {
	return &leaveRepositoryImpl{balances: balances, requests: requests}
}

// ListBalances implements leave.Repository.
func (r *leaveRepositoryImpl) ListBalances(ctx context.Context, employeeID string, leaveType *leave.Type) ([]leave.Balance, error) {
	var out []leave.Balance
	for _, b := range r.balances {
		if b.EmployeeID != employeeID {
			continue
		}
		if leaveType != nil && b.LeaveType != *leaveType {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// ListRequests implements leave.Repository.
func (r *leaveRepositoryImpl) ListRequests(ctx context.Context, employeeID string) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range r.requests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, nil
}
