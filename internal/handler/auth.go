package handler

import (
	"net/http"

	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/service"
)

// AuthHandler handles registration, login, token refresh and profile routes.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.auth.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.auth.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req model.RefreshRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Logout handles POST /auth/logout. Tokens are stateless so there is
// nothing to revoke; the client drops its pair and gets a confirmation.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, r, http.StatusOK, "auth.loggedOut")
}

// Profile handles GET /auth/me.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Profile(r.Context(), userID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateLanguage handles PUT /auth/language.
func (h *AuthHandler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateLanguageRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.auth.UpdateLanguage(r.Context(), userID(r), req.Language); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeMessage(w, r, http.StatusOK, "auth.languageUpdated")
}
