package model

// Supplier is a vendor contact owned directly by a user, shared across
// that user's events.
type Supplier struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Contact  string `json:"contact"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Website  string `json:"website,omitempty"`
	Address  string `json:"address,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// CreateSupplierRequest represents a supplier creation request.
type CreateSupplierRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Contact  string `json:"contact"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Website  string `json:"website,omitempty"`
	Address  string `json:"address,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// UpdateSupplierRequest represents a partial supplier update.
type UpdateSupplierRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Contact  *string `json:"contact"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Website  *string `json:"website"`
	Address  *string `json:"address"`
	Notes    *string `json:"notes"`
}
