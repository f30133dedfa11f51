package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Erudhir101/Tabela-Particular/internal/application/services"
)

// PriceListHandler handles price list reading and editing requests
type PriceListHandler struct {
	service *services.PriceListService
}

// NewPriceListHandler creates a new price list handler
func NewPriceListHandler(service *services.PriceListService) *PriceListHandler {
	return &PriceListHandler{
		service: service,
	}
}

// GetPriceList handles GET /api/price-list
func (h *PriceListHandler) GetPriceList(w http.ResponseWriter, r *http.Request) {
	grid, err := h.service.Grid(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"grid": grid,
		"rows": len(grid),
	})
}

// SavePriceList handles PUT /api/price-list
func (h *PriceListHandler) SavePriceList(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Grid [][]string `json:"grid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.SaveGrid(r.Context(), payload.Grid); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// AppendRow handles POST /api/price-list/rows. An empty body appends a blank
// row for in-place editing.
func (h *PriceListHandler) AppendRow(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Row []string `json:"row"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	if err := h.service.AppendRow(r.Context(), payload.Row); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{"status": "appended"})
}

// DeleteRows handles DELETE /api/price-list/rows
func (h *PriceListHandler) DeleteRows(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Indexes []int `json:"indexes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.DeleteRows(r.Context(), payload.Indexes); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListProcedures handles GET /api/procedures
func (h *PriceListHandler) ListProcedures(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	records, err := h.service.SearchRecords(r.Context(), query)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"procedures": records,
		"count":      len(records),
	})
}
