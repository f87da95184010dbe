package i18n

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"en", "en"},
		{"fr", "fr"},
		{"de", "de"},
		{"fr-FR,fr;q=0.9,en;q=0.8", "fr"},
		{"de-DE,de;q=0.9", "de"},
		{"es", "en"},
		{"not a header ;;;", "en"},
	}

	for _, tt := range tests {
		if got := Match(tt.header); got != tt.want {
			t.Errorf("Match(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	if got := T("fr", "auth.noToken"); got != "Un jeton d'authentification est requis" {
		t.Errorf("unexpected french message: %q", got)
	}
	if got := T("de", "error.notFound"); got != "Ressource nicht gefunden" {
		t.Errorf("unexpected german message: %q", got)
	}
}

func TestTranslateFallsBackToEnglish(t *testing.T) {
	if got := T("es", "auth.invalidToken"); got != T("en", "auth.invalidToken") {
		t.Errorf("unsupported language should fall back to english, got %q", got)
	}
}

func TestTranslateUnknownKeyReturnsKey(t *testing.T) {
	if got := T("en", "no.such.key"); got != "no.such.key" {
		t.Errorf("unknown key should be returned verbatim, got %q", got)
	}
}

func TestListFallsBackToEnglish(t *testing.T) {
	en := List("en", "templates.wedding.checklist")
	if len(en) == 0 {
		t.Fatal("expected non-empty wedding template")
	}
	if got := List("es", "templates.wedding.checklist"); len(got) != len(en) {
		t.Errorf("fallback list length = %d, want %d", len(got), len(en))
	}
}

func TestEveryLanguageHasEveryKey(t *testing.T) {
	for key := range messages["en"] {
		for _, lang := range []string{"fr", "de"} {
			if _, ok := messages[lang][key]; !ok {
				t.Errorf("catalog %q is missing key %q", lang, key)
			}
		}
	}
}
