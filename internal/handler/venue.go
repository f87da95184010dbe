package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/service"
)

// VenueHandler handles venue routes.
type VenueHandler struct {
	venues *service.VenueService
}

// NewVenueHandler creates a new VenueHandler.
func NewVenueHandler(venues *service.VenueService) *VenueHandler {
	return &VenueHandler{venues: venues}
}

// Create handles POST /events/{eventId}/venue.
func (h *VenueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateVenueRequest
	if !decode(w, r, &req) {
		return
	}

	venue, err := h.venues.Create(r.Context(), userID(r), chi.URLParam(r, "eventId"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, venue)
}

// Get handles GET /events/{eventId}/venue.
func (h *VenueHandler) Get(w http.ResponseWriter, r *http.Request) {
	venue, err := h.venues.Get(r.Context(), userID(r), chi.URLParam(r, "eventId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, venue)
}

// Update handles PUT /venues/{id}.
func (h *VenueHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateVenueRequest
	if !decode(w, r, &req) {
		return
	}

	venue, err := h.venues.Update(r.Context(), userID(r), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, venue)
}

// Delete handles DELETE /venues/{id}.
func (h *VenueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.venues.Delete(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
