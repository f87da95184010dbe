package model

import "time"

// ChecklistItem is a single to-do attached to an event.
type ChecklistItem struct {
	ID          string     `json:"id"`
	EventID     string     `json:"eventId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CreateChecklistItemRequest represents a checklist item creation request.
type CreateChecklistItemRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate"`
	Order       int        `json:"order"`
}

// UpdateChecklistItemRequest represents a partial checklist item update.
type UpdateChecklistItemRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	DueDate     *time.Time `json:"dueDate"`
	Order       *int       `json:"order"`
}
