package validate

import "unicode"

// strongPassword requires at least one lowercase letter, one uppercase
// letter and one digit. Length is checked separately by MinLength.
func strongPassword(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// RegisterRules validates registration payloads.
var RegisterRules = []Rule{
	{Field: "email", Type: TypeEmail, Required: true},
	{
		Field: "password", Type: TypeString, Required: true, MinLength: 8,
		Custom:  strongPassword,
		Message: "password must be at least 8 characters with uppercase, lowercase, and number",
	},
	{Field: "name", Type: TypeString, Required: true, MinLength: 2, MaxLength: 100},
}

// LoginRules validates login payloads.
var LoginRules = []Rule{
	{Field: "email", Type: TypeEmail, Required: true},
	{Field: "password", Type: TypeString, Required: true},
}

// RefreshRules validates refresh payloads.
var RefreshRules = []Rule{
	{Field: "refreshToken", Type: TypeString, Required: true},
}

// LanguageRules validates locale-preference updates.
var LanguageRules = []Rule{
	{Field: "language", Type: TypeString, Required: true},
}

// EventRules validates event creation payloads.
var EventRules = []Rule{
	{Field: "name", Type: TypeString, Required: true, MinLength: 1, MaxLength: 200},
	{Field: "type", Type: TypeString, Required: true},
	{Field: "date", Type: TypeDate, Required: true},
	{Field: "guestCount", Type: TypeNumber, Min: Num(1), Max: Num(10000)},
}

// BudgetCategoryRules validates budget category creation payloads.
var BudgetCategoryRules = []Rule{
	{Field: "name", Type: TypeString, Required: true, MaxLength: 200},
	{Field: "order", Type: TypeNumber, Min: Num(0)},
}

// BudgetItemRules validates budget item creation payloads.
var BudgetItemRules = []Rule{
	{Field: "name", Type: TypeString, Required: true, MaxLength: 200},
	{Field: "estimatedCost", Type: TypeNumber, Min: Num(0)},
	{Field: "actualCost", Type: TypeNumber, Min: Num(0)},
}

// ChecklistItemRules validates checklist item creation payloads.
var ChecklistItemRules = []Rule{
	{Field: "title", Type: TypeString, Required: true, MaxLength: 500},
	{Field: "dueDate", Type: TypeDate},
}

// TimelineEntryRules validates timeline entry creation payloads.
var TimelineEntryRules = []Rule{
	{Field: "title", Type: TypeString, Required: true, MaxLength: 200},
	{Field: "startTime", Type: TypeDate, Required: true},
	{Field: "endTime", Type: TypeDate},
}

// SupplierRules validates supplier creation payloads.
var SupplierRules = []Rule{
	{Field: "name", Type: TypeString, Required: true, MaxLength: 200},
	{Field: "email", Type: TypeEmail},
	{Field: "phone", Type: TypeString, MaxLength: 50},
}

// VenueRules validates venue creation payloads.
var VenueRules = []Rule{
	{Field: "name", Type: TypeString, Required: true, MaxLength: 200},
	{Field: "address", Type: TypeString, Required: true},
	{Field: "capacity", Type: TypeNumber, Min: Num(1)},
	{Field: "email", Type: TypeEmail},
}
