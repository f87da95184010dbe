package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/planora/planora-go/internal/crypto"
	"github.com/planora/planora-go/internal/i18n"
)

const testSecret = "test-access-secret"

func protected(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		if !ok {
			t.Error("user ID missing from context in protected handler")
		}
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	})
	return Authenticate(testSecret)(next), &gotUserID
}

func TestAuthenticateMissingToken(t *testing.T) {
	h, _ := protected(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["message"] != i18n.T("en", "auth.noToken") {
		t.Errorf("message = %q", body["message"])
	}
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	h, _ := protected(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	h, _ := protected(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["message"] != i18n.T("en", "auth.invalidToken") {
		t.Errorf("message = %q", body["message"])
	}
}

func TestAuthenticateLocalizedRejection(t *testing.T) {
	h, _ := protected(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["message"] != i18n.T("fr", "auth.noToken") {
		t.Errorf("message = %q, want french rejection", body["message"])
	}
}

func TestAuthenticateValidToken(t *testing.T) {
	h, gotUserID := protected(t)

	token, err := crypto.IssueAccessToken("user-42", testSecret)
	if err != nil {
		t.Fatalf("IssueAccessToken() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Language", "de")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if *gotUserID != "user-42" {
		t.Errorf("context userID = %q, want user-42", *gotUserID)
	}
}

func TestAuthenticateTokenFromOtherSecret(t *testing.T) {
	h, _ := protected(t)

	token, err := crypto.IssueAccessToken("user-42", "some-other-secret")
	if err != nil {
		t.Fatalf("IssueAccessToken() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestLanguageFromContextDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := LanguageFromContext(req.Context()); got != "en" {
		t.Errorf("LanguageFromContext = %q, want en", got)
	}
}
