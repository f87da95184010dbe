package model

import "time"

// Event types supported by the planner.
const (
	EventTypeWedding  = "wedding"
	EventTypeBirthday = "birthday"
	EventTypeCompany  = "company"
)

// ValidEventType reports whether t is a known event type.
func ValidEventType(t string) bool {
	switch t {
	case EventTypeWedding, EventTypeBirthday, EventTypeCompany:
		return true
	}
	return false
}

// Event is the root resource; every other planning resource hangs off one.
type Event struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	GuestCount  int       `json:"guestCount"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateEventRequest represents an event creation request.
type CreateEventRequest struct {
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	GuestCount  int       `json:"guestCount"`
	Description string    `json:"description,omitempty"`
}

// UpdateEventRequest represents a partial event update; nil fields are untouched.
type UpdateEventRequest struct {
	Name        *string    `json:"name"`
	Type        *string    `json:"type"`
	Date        *time.Time `json:"date"`
	GuestCount  *int       `json:"guestCount"`
	Description *string    `json:"description"`
}
