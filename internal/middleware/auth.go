package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/planora/planora-go/internal/crypto"
	"github.com/planora/planora-go/internal/i18n"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	languageKey contextKey = "language"
)

// Authenticate returns middleware that validates a Bearer access token from
// the Authorization header and attaches the resolved user ID plus the
// request's negotiated language to the context.
//
// The guard trusts the signed claims and performs no user lookup; a token
// stays valid until expiry even if the account is deleted. Rejection
// messages are localized from Accept-Language since no user is resolved yet.
func Authenticate(accessSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := i18n.Match(r.Header.Get("Accept-Language"))

			authHeader := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if authHeader == "" || !found || token == "" {
				writeJSONMessage(w, http.StatusUnauthorized, i18n.T(lang, "auth.noToken"))
				return
			}

			userID, err := crypto.VerifyAccessToken(token, accessSecret)
			if err != nil {
				writeJSONMessage(w, http.StatusUnauthorized, i18n.T(lang, "auth.invalidToken"))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, languageKey, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// LanguageFromContext extracts the request language, defaulting to English.
func LanguageFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(languageKey).(string); ok {
		return lang
	}
	return i18n.DefaultLanguage
}

func writeJSONMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
