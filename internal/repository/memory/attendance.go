package memory

import (
	"context"
	"strings"

	"github.com/hrportal/payroll-backend-go/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	records   []attendance.Record
	summaries []attendance.Summary
}

func NewAttendanceRepository(records []attendance.Record, summaries []attendance.Summary) attendance.Repository {
	return &attendanceRepositoryImpl{records: records, summaries: summaries}
}

// ListRecords implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListRecords(ctx context.Context, employeeID string, month string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range r.records {
		if rec.EmployeeID != employeeID {
			continue
		}
		if month != "" && !strings.HasPrefix(rec.Date, month+"-") {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// GetSummary implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetSummary(ctx context.Context, employeeID string, month string) (attendance.Summary, error) {
	for _, s := range r.summaries {
		if s.EmployeeID == employeeID && s.Month == month {
			return s, nil
		}
	}
	return attendance.Summary{}, attendance.ErrSummaryNotFound
}

// ListSummaries implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListSummaries(ctx context.Context, employeeID string) ([]attendance.Summary, error) {
	var out []attendance.Summary
	for _, s := range r.summaries {
		if s.EmployeeID == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}
