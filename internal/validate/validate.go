package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

// Type tags the expected JSON type of a validated field.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeEmail   Type = "email"
	TypeDate    Type = "date"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Rule is one declarative constraint on a request body field.
type Rule struct {
	Field     string
	Type      Type
	Required  bool
	MinLength int
	MaxLength int
	Min       *float64
	Max       *float64
	Pattern   *regexp.Regexp
	Custom    func(value any) bool
	Message   string
}

// Num is a convenience for Min/Max bounds.
func Num(v float64) *float64 { return &v }

// Check evaluates rules against a decoded JSON body and returns every
// violated constraint. An empty slice means the body is valid.
func Check(body map[string]any, rules []Rule) []string {
	var errs []string

	for _, rule := range rules {
		value, present := body[rule.Field]

		if rule.Required && (!present || value == nil || value == "") {
			errs = append(errs, orDefault(rule.Message, rule.Field+" is required"))
			continue
		}
		if !present || value == nil {
			continue
		}

		switch rule.Type {
		case TypeString:
			if _, ok := value.(string); !ok {
				errs = append(errs, rule.Field+" must be a string")
			}
		case TypeNumber:
			if _, ok := value.(float64); !ok {
				errs = append(errs, rule.Field+" must be a number")
			}
		case TypeEmail:
			s, ok := value.(string)
			if !ok || !emailPattern.MatchString(s) {
				errs = append(errs, rule.Field+" must be a valid email")
			}
		case TypeDate:
			s, ok := value.(string)
			if !ok || !parseableDate(s) {
				errs = append(errs, rule.Field+" must be a valid date")
			}
		case TypeBoolean:
			if _, ok := value.(bool); !ok {
				errs = append(errs, rule.Field+" must be a boolean")
			}
		case TypeArray:
			if _, ok := value.([]any); !ok {
				errs = append(errs, rule.Field+" must be an array")
			}
		}

		if s, ok := value.(string); ok {
			if rule.MinLength > 0 && len(s) < rule.MinLength {
				errs = append(errs, fmt.Sprintf("%s must be at least %d characters", rule.Field, rule.MinLength))
			}
			if rule.MaxLength > 0 && len(s) > rule.MaxLength {
				errs = append(errs, fmt.Sprintf("%s must be at most %d characters", rule.Field, rule.MaxLength))
			}
			if rule.Pattern != nil && !rule.Pattern.MatchString(s) {
				errs = append(errs, orDefault(rule.Message, rule.Field+" has invalid format"))
			}
		}

		if n, ok := value.(float64); ok {
			if rule.Min != nil && n < *rule.Min {
				errs = append(errs, fmt.Sprintf("%s must be at least %v", rule.Field, *rule.Min))
			}
			if rule.Max != nil && n > *rule.Max {
				errs = append(errs, fmt.Sprintf("%s must be at most %v", rule.Field, *rule.Max))
			}
		}

		if rule.Custom != nil && !rule.Custom(value) {
			errs = append(errs, orDefault(rule.Message, rule.Field+" is invalid"))
		}
	}

	return errs
}

// Middleware validates the JSON request body against rules before the
// handler runs. Violations produce 400 with {"errors": [...]}; on success
// the body is restored for the handler to decode.
func Middleware(rules []Rule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

			raw, err := io.ReadAll(r.Body)
			if err != nil {
				if err.Error() == "http: request body too large" {
					writeErrors(w, http.StatusRequestEntityTooLarge, []string{"request body too large"})
					return
				}
				writeErrors(w, http.StatusBadRequest, []string{"invalid request body"})
				return
			}

			var body map[string]any
			if err := json.Unmarshal(raw, &body); err != nil {
				writeErrors(w, http.StatusBadRequest, []string{"invalid request body"})
				return
			}

			if errs := Check(body, rules); len(errs) > 0 {
				writeErrors(w, http.StatusBadRequest, errs)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(raw))
			next.ServeHTTP(w, r)
		})
	}
}

func parseableDate(s string) bool {
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return true
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func orDefault(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}

func writeErrors(w http.ResponseWriter, status int, errs []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string][]string{"errors": errs})
}
