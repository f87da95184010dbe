package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/planora/planora-go/internal/middleware"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/service"
)

// ChecklistHandler handles checklist routes.
type ChecklistHandler struct {
	checklists *service.ChecklistService
}

// NewChecklistHandler creates a new ChecklistHandler.
func NewChecklistHandler(checklists *service.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{checklists: checklists}
}

// Create handles POST /events/{eventId}/checklist.
func (h *ChecklistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateChecklistItemRequest
	if !decode(w, r, &req) {
		return
	}

	item, err := h.checklists.Create(r.Context(), userID(r), chi.URLParam(r, "eventId"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// List handles GET /events/{eventId}/checklist.
func (h *ChecklistHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.checklists.List(r.Context(), userID(r), chi.URLParam(r, "eventId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// GenerateTemplate handles POST /events/{eventId}/checklist/template.
func (h *ChecklistHandler) GenerateTemplate(w http.ResponseWriter, r *http.Request) {
	lang := middleware.LanguageFromContext(r.Context())
	items, err := h.checklists.GenerateTemplate(r.Context(), userID(r), chi.URLParam(r, "eventId"), lang)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, items)
}

// Update handles PUT /checklist/{id}.
func (h *ChecklistHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateChecklistItemRequest
	if !decode(w, r, &req) {
		return
	}

	item, err := h.checklists.Update(r.Context(), userID(r), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Toggle handles PATCH /checklist/{id}/toggle.
func (h *ChecklistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	item, err := h.checklists.Toggle(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /checklist/{id}.
func (h *ChecklistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.checklists.Delete(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
