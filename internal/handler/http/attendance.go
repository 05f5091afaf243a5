package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrportal/payroll-backend-go/internal/domain/attendance"
	"github.com/hrportal/payroll-backend-go/internal/handler/http/response"
	"github.com/hrportal/payroll-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	ListRecords(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ListRecords implements AttendanceHandler. Month is optional; without it all
// records for the employee are returned.
func (h *AttendanceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	month := r.URL.Query().Get("month")

	if month != "" && !validator.IsValidMonth(month) {
		response.BadRequest(w, "month must be in YYYY-MM format", nil)
		return
	}

	records, err := h.attendanceService.ListRecords(r.Context(), id, month)
	if err != nil {
		slog.Error("Attendance records service error", "error", err, "employee_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// GetSummary implements AttendanceHandler. With recompute=true the rollup is
// derived from the month's records instead of the stored figures.
func (h *AttendanceHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	month := r.URL.Query().Get("month")

	if !validator.IsValidMonth(month) {
		response.BadRequest(w, "month must be in YYYY-MM format", nil)
		return
	}

	var (
		summary attendance.SummaryResponse
		err     error
	)
	if r.URL.Query().Get("recompute") == "true" {
		summary, err = h.attendanceService.RecomputeSummary(r.Context(), id, month)
	} else {
		summary, err = h.attendanceService.GetSummary(r.Context(), id, month)
	}
	if err != nil {
		slog.Error("Attendance summary service error", "error", err, "employee_id", id, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
