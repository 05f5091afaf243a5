package http

import (
	"log/slog"
	"net/http"

	"github.com/hrportal/payroll-backend-go/internal/domain/faq"
	"github.com/hrportal/payroll-backend-go/internal/handler/http/response"
)

type FAQHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Categories(w http.ResponseWriter, r *http.Request)
}

type FAQHandlerImpl struct {
	faqService faq.Service
}

func NewFAQHandler(faqService faq.Service) FAQHandler {
	return &FAQHandlerImpl{faqService: faqService}
}

// List implements FAQHandler. Supports category and free-text q filters.
func (h *FAQHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	faqs, err := h.faqService.List(r.Context(), category, query)
	if err != nil {
		slog.Error("FAQ list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, faqs)
}

// Categories implements FAQHandler.
func (h *FAQHandlerImpl) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.faqService.Categories(r.Context())
	if err != nil {
		slog.Error("FAQ categories service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, categories)
}
