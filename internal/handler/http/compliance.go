package http

import (
	"log/slog"
	"net/http"

	"github.com/hrportal/payroll-backend-go/internal/domain/compliance"
	"github.com/hrportal/payroll-backend-go/internal/handler/http/response"
)

type ComplianceHandler interface {
	ListRules(w http.ResponseWriter, r *http.Request)
	GetTaxSlab(w http.ResponseWriter, r *http.Request)
}

type ComplianceHandlerImpl struct {
	complianceService compliance.Service
}

func NewComplianceHandler(complianceService compliance.Service) ComplianceHandler {
	return &ComplianceHandlerImpl{complianceService: complianceService}
}

// ListRules implements ComplianceHandler. Optional type query filter.
func (h *ComplianceHandlerImpl) ListRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.complianceService.ListRules(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		slog.Error("Compliance rules service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rules)
}

// GetTaxSlab implements ComplianceHandler.
func (h *ComplianceHandlerImpl) GetTaxSlab(w http.ResponseWriter, r *http.Request) {
	slab, err := h.complianceService.GetTaxSlab(r.Context())
	if err != nil {
		slog.Error("Tax slab service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, slab)
}
