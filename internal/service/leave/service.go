package leave

import (
	"context"

	"github.com/hrportal/payroll-backend-go/internal/domain/attendance"
	"github.com/hrportal/payroll-backend-go/internal/domain/leave"
	"github.com/hrportal/payroll-backend-go/internal/pkg/dateutil"
)

type LeaveServiceImpl struct {
	leaveRepo      leave.Repository
	attendanceRepo attendance.Repository
}

func NewLeaveService(leaveRepo leave.Repository, attendanceRepo attendance.Repository) leave.Service {
	return &LeaveServiceImpl{leaveRepo: leaveRepo, attendanceRepo: attendanceRepo}
}

// ListBalances implements leave.Service.
func (s *LeaveServiceImpl) ListBalances(ctx context.Context, employeeID string, leaveType *leave.Type) ([]leave.BalanceResponse, error) {
	balances, err := s.leaveRepo.ListBalances(ctx, employeeID, leaveType)
	if err != nil {
		return nil, err
	}
	return leave.ToBalanceResponses(balances), nil
}

// TotalAvailable implements leave.Service.
func (s *LeaveServiceImpl) TotalAvailable(ctx context.Context, employeeID string) (float64, error) {
	balances, err := s.leaveRepo.ListBalances(ctx, employeeID, nil)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, b := range balances {
		total += b.Available
	}
	return total, nil
}

// ListRequests implements leave.Service.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context, employeeID string) ([]leave.RequestResponse, error) {
	requests, err := s.leaveRepo.ListRequests(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return leave.ToRequestResponses(requests), nil
}

// IsLeaveDay implements leave.Service. A date counts when an approved request
// covers it or the day's attendance record is marked leave; pending and
// rejected requests never block a date.
func (s *LeaveServiceImpl) IsLeaveDay(ctx context.Context, employeeID, date string) (bool, error) {
	d, err := dateutil.ParseDate(date)
	if err != nil {
		return false, err
	}

	requests, err := s.leaveRepo.ListRequests(ctx, employeeID)
	if err != nil {
		return false, err
	}
	records, err := s.attendanceRepo.ListRecords(ctx, employeeID, dateutil.CurrentMonth(d))
	if err != nil {
		return false, err
	}

	return dateutil.IsLeaveDay(date, requests, records)
}
