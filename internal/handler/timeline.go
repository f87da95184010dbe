package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/service"
)

// TimelineHandler handles day-of programme routes.
type TimelineHandler struct {
	timelines *service.TimelineService
}

// NewTimelineHandler creates a new TimelineHandler.
func NewTimelineHandler(timelines *service.TimelineService) *TimelineHandler {
	return &TimelineHandler{timelines: timelines}
}

// Create handles POST /events/{eventId}/timeline.
func (h *TimelineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTimelineEntryRequest
	if !decode(w, r, &req) {
		return
	}

	entry, err := h.timelines.Create(r.Context(), userID(r), chi.URLParam(r, "eventId"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// List handles GET /events/{eventId}/timeline.
func (h *TimelineHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.timelines.List(r.Context(), userID(r), chi.URLParam(r, "eventId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Update handles PUT /timeline/{id}.
func (h *TimelineHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateTimelineEntryRequest
	if !decode(w, r, &req) {
		return
	}

	entry, err := h.timelines.Update(r.Context(), userID(r), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /timeline/{id}.
func (h *TimelineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.timelines.Delete(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
