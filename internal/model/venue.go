package model

// Venue is the location booked for an event; at most one per event.
// It is owned transitively through the event.
type Venue struct {
	ID           string   `json:"id"`
	EventID      string   `json:"eventId"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Capacity     int      `json:"capacity"`
	Contact      string   `json:"contact"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
	OpeningHours string   `json:"openingHours,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// CreateVenueRequest represents a venue creation request.
type CreateVenueRequest struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Capacity     int      `json:"capacity"`
	Contact      string   `json:"contact"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
	OpeningHours string   `json:"openingHours,omitempty"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// UpdateVenueRequest represents a partial venue update.
type UpdateVenueRequest struct {
	Name         *string  `json:"name"`
	Address      *string  `json:"address"`
	Capacity     *int     `json:"capacity"`
	Contact      *string  `json:"contact"`
	Phone        *string  `json:"phone"`
	Email        *string  `json:"email"`
	OpeningHours *string  `json:"openingHours"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}
