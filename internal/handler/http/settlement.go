package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrportal/payroll-backend-go/internal/domain/settlement"
	"github.com/hrportal/payroll-backend-go/internal/handler/http/middleware"
	"github.com/hrportal/payroll-backend-go/internal/handler/http/response"
)

type SettlementHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Calculate(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type SettlementHandlerImpl struct {
	settlementService settlement.Service
}

func NewSettlementHandler(settlementService settlement.Service) SettlementHandler {
	return &SettlementHandlerImpl{settlementService: settlementService}
}

// List implements SettlementHandler. Optional status query filter.
func (h *SettlementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var status *settlement.Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := settlement.Status(s)
		status = &st
	}

	settlements, err := h.settlementService.List(r.Context(), status)
	if err != nil {
		slog.Error("Settlement list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, settlements)
}

// GetByID implements SettlementHandler.
func (h *SettlementHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	stl, err := h.settlementService.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("Settlement get service error", "error", err, "settlement_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stl)
}

// Calculate implements SettlementHandler.
func (h *SettlementHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var calculateReq settlement.CalculateRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&calculateReq); err != nil {
		slog.Error("Settlement calculate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := calculateReq.Validate(); err != nil {
		slog.Error("Settlement calculate validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	actor, _ := middleware.UserFromContext(r.Context())

	// Call service
	stl, err := h.settlementService.Calculate(r.Context(), calculateReq, actor.ID)
	if err != nil {
		slog.Error("Settlement calculate service error", "error", err, "employee_id", calculateReq.EmployeeID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Settlement calculated", "settlement_id", stl.ID, "calculated_by", actor.ID)
	response.Created(w, "Settlement calculated", stl)
}

// Approve implements SettlementHandler.
func (h *SettlementHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	actor, _ := middleware.UserFromContext(r.Context())

	stl, err := h.settlementService.Approve(r.Context(), id, actor.ID)
	if err != nil {
		slog.Error("Settlement approve service error", "error", err, "settlement_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Settlement approved", "settlement_id", id, "approved_by", actor.ID)
	response.SuccessWithMessage(w, "Settlement approved", stl)
}

// Pay implements SettlementHandler.
func (h *SettlementHandlerImpl) Pay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	stl, err := h.settlementService.MarkPaid(r.Context(), id)
	if err != nil {
		slog.Error("Settlement pay service error", "error", err, "settlement_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Settlement paid", "settlement_id", id)
	response.SuccessWithMessage(w, "Settlement marked as paid", stl)
}

// Cancel implements SettlementHandler.
func (h *SettlementHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	stl, err := h.settlementService.Cancel(r.Context(), id)
	if err != nil {
		slog.Error("Settlement cancel service error", "error", err, "settlement_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Settlement cancelled", "settlement_id", id)
	response.SuccessWithMessage(w, "Settlement cancelled", stl)
}
