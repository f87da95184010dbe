package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/planora/planora-go/internal/middleware"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/service"
)

// BudgetHandler handles budget category, item and summary routes.
type BudgetHandler struct {
	budgets *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgets *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

// CreateCategory handles POST /events/{eventId}/budget/categories.
func (h *BudgetHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBudgetCategoryRequest
	if !decode(w, r, &req) {
		return
	}

	category, err := h.budgets.CreateCategory(r.Context(), userID(r), chi.URLParam(r, "eventId"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

// ListCategories handles GET /events/{eventId}/budget/categories.
func (h *BudgetHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.budgets.ListCategories(r.Context(), userID(r), chi.URLParam(r, "eventId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// GenerateDefaultCategories handles POST /events/{eventId}/budget/categories/defaults.
func (h *BudgetHandler) GenerateDefaultCategories(w http.ResponseWriter, r *http.Request) {
	lang := middleware.LanguageFromContext(r.Context())
	categories, err := h.budgets.GenerateDefaults(r.Context(), userID(r), chi.URLParam(r, "eventId"), lang)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, categories)
}

// UpdateCategory handles PUT /budget/categories/{id}.
func (h *BudgetHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateBudgetCategoryRequest
	if !decode(w, r, &req) {
		return
	}

	category, err := h.budgets.UpdateCategory(r.Context(), userID(r), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE /budget/categories/{id}.
func (h *BudgetHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.budgets.DeleteCategory(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateItem handles POST /budget/categories/{id}/items.
func (h *BudgetHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBudgetItemRequest
	if !decode(w, r, &req) {
		return
	}

	item, err := h.budgets.CreateItem(r.Context(), userID(r), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// UpdateItem handles PUT /budget/items/{id}.
func (h *BudgetHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateBudgetItemRequest
	if !decode(w, r, &req) {
		return
	}

	item, err := h.budgets.UpdateItem(r.Context(), userID(r), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /budget/items/{id}.
func (h *BudgetHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.budgets.DeleteItem(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Summary handles GET /events/{eventId}/budget/summary.
func (h *BudgetHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.budgets.Summary(r.Context(), userID(r), chi.URLParam(r, "eventId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
