package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrportal/payroll-backend-go/internal/domain/leave"
	"github.com/hrportal/payroll-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	ListBalances(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// ListBalances implements LeaveHandler. Optional type query filter.
func (h *LeaveHandlerImpl) ListBalances(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var leaveType *leave.Type
	if t := r.URL.Query().Get("type"); t != "" {
		lt := leave.Type(t)
		leaveType = &lt
	}

	balances, err := h.leaveService.ListBalances(r.Context(), id, leaveType)
	if err != nil {
		slog.Error("Leave balances service error", "error", err, "employee_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

// ListRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	requests, err := h.leaveService.ListRequests(r.Context(), id)
	if err != nil {
		slog.Error("Leave requests service error", "error", err, "employee_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}
