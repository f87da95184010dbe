package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/planora/planora-go/internal/i18n"
	"github.com/planora/planora-go/internal/middleware"
	"github.com/planora/planora-go/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeMessage sends a {"message": ...} body localized to the request's
// negotiated language.
func writeMessage(w http.ResponseWriter, r *http.Request, status int, key string) {
	lang := middleware.LanguageFromContext(r.Context())
	writeJSON(w, status, map[string]string{"message": i18n.T(lang, key)})
}

// writeServiceError maps service sentinels onto HTTP responses. Anything
// unrecognized is logged and reported as a generic 500 so internals never
// leak to clients.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeMessage(w, r, http.StatusNotFound, "error.notFound")
	case errors.Is(err, service.ErrForbidden):
		writeMessage(w, r, http.StatusForbidden, "error.forbidden")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeMessage(w, r, http.StatusUnauthorized, "auth.invalidCredentials")
	case errors.Is(err, service.ErrInvalidRefreshToken):
		writeMessage(w, r, http.StatusUnauthorized, "auth.invalidToken")
	case errors.Is(err, service.ErrEmailTaken):
		writeMessage(w, r, http.StatusConflict, "auth.emailTaken")
	case errors.Is(err, service.ErrUnsupportedLanguage):
		writeErrors(w, http.StatusBadRequest, "language must be one of en, fr, de")
	case errors.Is(err, service.ErrInvalidEventType):
		writeErrors(w, http.StatusBadRequest, "type must be one of wedding, birthday, company")
	case errors.Is(err, service.ErrInvalidExportFormat):
		writeErrors(w, http.StatusBadRequest, "format must be one of pdf, excel, json")
	case errors.Is(err, service.ErrVenueExists):
		writeErrors(w, http.StatusConflict, "event already has a venue")
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeMessage(w, r, http.StatusInternalServerError, "error.internal")
	}
}

// userID pulls the authenticated user from the context. The auth middleware
// guarantees it is present on protected routes.
func userID(r *http.Request) string {
	id, _ := middleware.UserIDFromContext(r.Context())
	return id
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeErrors(w http.ResponseWriter, status int, errs ...string) {
	writeJSON(w, status, map[string][]string{"errors": errs})
}
