package handlers

import (
	"io"
	"net/http"

	"github.com/Erudhir101/Tabela-Particular/internal/application/services"
	"github.com/Erudhir101/Tabela-Particular/internal/domain/providers"
)

// Uploaded order pages are photos or scans; one form can carry several.
const maxAnalyzeUploadBytes = 20 << 20

// AnalyzeHandler handles doctor's order analysis requests
type AnalyzeHandler struct {
	service *services.AnalysisService
}

// NewAnalyzeHandler creates a new analyze handler. A nil service means the
// AI backend is not configured; requests get a 503.
func NewAnalyzeHandler(service *services.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{
		service: service,
	}
}

// Analyze handles POST /api/analyze with multipart "files" parts
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		respondWithError(w, http.StatusServiceUnavailable, "order analysis is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxAnalyzeUploadBytes); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	parts := r.MultipartForm.File["files"]
	if len(parts) == 0 {
		respondWithError(w, http.StatusBadRequest, "at least one file is required")
		return
	}

	files := make([]providers.OrderFile, 0, len(parts))
	for _, part := range parts {
		file, err := part.Open()
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "failed to read uploaded file")
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "failed to read uploaded file")
			return
		}

		mimeType := part.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		files = append(files, providers.OrderFile{
			MIMEType: mimeType,
			Data:     data,
		})
	}

	report, err := h.service.AnalyzeOrder(r.Context(), files)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}
