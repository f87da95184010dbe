package model

import "time"

// TimelineEntry is a scheduled slot in an event's day-of programme.
type TimelineEntry struct {
	ID                string     `json:"id"`
	EventID           string     `json:"eventId"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	StartTime         time.Time  `json:"startTime"`
	EndTime           *time.Time `json:"endTime,omitempty"`
	ResponsiblePerson string     `json:"responsiblePerson,omitempty"`
	Order             int        `json:"order"`
}

// CreateTimelineEntryRequest represents a timeline entry creation request.
type CreateTimelineEntryRequest struct {
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	StartTime         time.Time  `json:"startTime"`
	EndTime           *time.Time `json:"endTime"`
	ResponsiblePerson string     `json:"responsiblePerson,omitempty"`
	Order             int        `json:"order"`
}

// UpdateTimelineEntryRequest represents a partial timeline entry update.
type UpdateTimelineEntryRequest struct {
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	StartTime         *time.Time `json:"startTime"`
	EndTime           *time.Time `json:"endTime"`
	ResponsiblePerson *string    `json:"responsiblePerson"`
	Order             *int       `json:"order"`
}
