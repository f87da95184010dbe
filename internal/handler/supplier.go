package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/service"
)

// SupplierHandler handles vendor contact routes.
type SupplierHandler struct {
	suppliers *service.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(suppliers *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// Create handles POST /suppliers.
func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSupplierRequest
	if !decode(w, r, &req) {
		return
	}

	supplier, err := h.suppliers.Create(r.Context(), userID(r), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, supplier)
}

// List handles GET /suppliers.
func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.suppliers.List(r.Context(), userID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, suppliers)
}

// Get handles GET /suppliers/{id}.
func (h *SupplierHandler) Get(w http.ResponseWriter, r *http.Request) {
	supplier, err := h.suppliers.Get(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, supplier)
}

// Update handles PUT /suppliers/{id}.
func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateSupplierRequest
	if !decode(w, r, &req) {
		return
	}

	supplier, err := h.suppliers.Update(r.Context(), userID(r), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, supplier)
}

// Delete handles DELETE /suppliers/{id}.
func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.suppliers.Delete(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
