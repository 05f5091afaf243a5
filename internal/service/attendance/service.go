package attendance

import (
	"context"
	"math"

	"github.com/hrportal/payroll-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
}

func NewAttendanceService(attendanceRepo attendance.Repository) attendance.Service {
	return &AttendanceServiceImpl{attendanceRepo: attendanceRepo}
}

// ListRecords implements attendance.Service.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, employeeID, month string) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.ListRecords(ctx, employeeID, month)
	if err != nil {
		return nil, err
	}
	return attendance.ToRecordResponses(records), nil
}

// GetSummary implements attendance.Service.
func (s *AttendanceServiceImpl) GetSummary(ctx context.Context, employeeID, month string) (attendance.SummaryResponse, error) {
	summary, err := s.attendanceRepo.GetSummary(ctx, employeeID, month)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}
	return attendance.ToSummaryResponse(summary), nil
}

// RecomputeSummary implements attendance.Service. Weekends and holidays do
// not count as working days; a half day counts as half a present day in the
// percentage.
func (s *AttendanceServiceImpl) RecomputeSummary(ctx context.Context, employeeID, month string) (attendance.SummaryResponse, error) {
	records, err := s.attendanceRepo.ListRecords(ctx, employeeID, month)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	summary := attendance.Summary{
		EmployeeID: employeeID,
		Month:      month,
	}
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		case attendance.StatusHalfDay:
			summary.HalfDays++
		case attendance.StatusLeave:
			summary.LeaveDays++
		case attendance.StatusHoliday, attendance.StatusWeekend:
			continue
		}
		summary.TotalWorkingDays++
	}

	if summary.TotalWorkingDays > 0 {
		attended := float64(summary.PresentDays) + 0.5*float64(summary.HalfDays)
		pct := attended / float64(summary.TotalWorkingDays) * 100
		summary.AttendancePercentage = math.Round(pct*100) / 100
	}

	return attendance.ToSummaryResponse(summary), nil
}
