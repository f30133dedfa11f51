package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Erudhir101/Tabela-Particular/internal/application/services"
)

// QuoteHandler handles quote computation and PDF export requests
type QuoteHandler struct {
	service *services.QuoteService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(service *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

func decodeQuoteRequest(w http.ResponseWriter, r *http.Request) (services.QuoteRequest, bool) {
	var req services.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	return req, true
}

// CreateQuote handles POST /api/quotes
func (h *QuoteHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeQuoteRequest(w, r)
	if !ok {
		return
	}

	quote, err := h.service.ComputeQuote(r.Context(), req)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, quote)
}

// QuotePDF handles POST /api/quotes/pdf
func (h *QuoteHandler) QuotePDF(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeQuoteRequest(w, r)
	if !ok {
		return
	}

	// Validate before committing to the PDF content type
	if _, err := h.service.ComputeQuote(r.Context(), req); err != nil {
		respondWithAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="orcamento.pdf"`)
	if err := h.service.RenderQuotePDF(r.Context(), req, w); err != nil {
		// Headers are already out; nothing useful left to send
		return
	}
}
