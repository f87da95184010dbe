package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/planora/planora-go/internal/model"
)

var ErrSupplierNotFound = errors.New("supplier not found")

// SupplierRepository handles supplier persistence.
type SupplierRepository struct {
	db *sql.DB
}

// NewSupplierRepository creates a new SupplierRepository.
func NewSupplierRepository(db *sql.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

// Create inserts a new supplier.
func (r *SupplierRepository) Create(ctx context.Context, s *model.Supplier) error {
	query := `INSERT INTO suppliers (id, user_id, name, category, contact, phone, email, website, address, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.UserID, s.Name, s.Category, s.Contact,
		s.Phone, s.Email, s.Website, s.Address, s.Notes,
	)
	return err
}

// GetByID retrieves a supplier by ID.
func (r *SupplierRepository) GetByID(ctx context.Context, id string) (*model.Supplier, error) {
	query := `SELECT id, user_id, name, category, contact, phone, email, website, address, notes
		FROM suppliers WHERE id = ?`

	s := &model.Supplier{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.Name, &s.Category, &s.Contact,
		&s.Phone, &s.Email, &s.Website, &s.Address, &s.Notes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	return s, nil
}

// ListByUser retrieves a user's suppliers ordered by name.
func (r *SupplierRepository) ListByUser(ctx context.Context, userID string) ([]model.Supplier, error) {
	query := `SELECT id, user_id, name, category, contact, phone, email, website, address, notes
		FROM suppliers WHERE user_id = ? ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []model.Supplier
	for rows.Next() {
		var s model.Supplier
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Name, &s.Category, &s.Contact,
			&s.Phone, &s.Email, &s.Website, &s.Address, &s.Notes,
		); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

// Update writes every mutable supplier field.
func (r *SupplierRepository) Update(ctx context.Context, s *model.Supplier) error {
	query := `UPDATE suppliers SET name = ?, category = ?, contact = ?, phone = ?, email = ?, website = ?, address = ?, notes = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		s.Name, s.Category, s.Contact, s.Phone, s.Email,
		s.Website, s.Address, s.Notes, s.ID,
	)
	return err
}

// Delete removes a supplier.
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSupplierNotFound
	}
	return nil
}
