package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is the fallback for unsupported or absent Accept-Language values.
const DefaultLanguage = "en"

var supported = []language.Tag{
	language.English, // en, must stay first: matcher falls back to it
	language.French,  // fr
	language.German,  // de
}

var matcher = language.NewMatcher(supported)

var codes = map[language.Tag]string{
	language.English: "en",
	language.French:  "fr",
	language.German:  "de",
}

// Match resolves an Accept-Language header value to a supported language code.
func Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, idx, _ := matcher.Match(tags...)
	return codes[supported[idx]]
}

// IsSupported reports whether lang is one of the supported language codes.
func IsSupported(lang string) bool {
	_, ok := messages[lang]
	return ok
}

// T returns the message for key in the given language, falling back to
// English and finally to the key itself.
func T(lang, key string) string {
	if m, ok := messages[lang]; ok {
		if msg, ok := m[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// List returns the string list for key (checklist templates, default budget
// categories), falling back to English.
func List(lang, key string) []string {
	if m, ok := lists[lang]; ok {
		if l, ok := m[key]; ok {
			return l
		}
	}
	return lists[DefaultLanguage][key]
}
