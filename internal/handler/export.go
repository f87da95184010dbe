package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/planora/planora-go/internal/service"
)

// ExportHandler handles event plan export routes.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Export handles GET /events/{eventId}/export/{format}.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	result, err := h.exports.Export(r.Context(), userID(r), chi.URLParam(r, "eventId"), chi.URLParam(r, "format"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.Write(result.Data)
}
