package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/planora/planora-go/internal/model"
)

var (
	ErrVenueNotFound = errors.New("venue not found")
	ErrVenueExists   = errors.New("event already has a venue")
)

// VenueRepository handles venue persistence. The venues table has a unique
// key on event_id: one venue per event.
type VenueRepository struct {
	db *sql.DB
}

// NewVenueRepository creates a new VenueRepository.
func NewVenueRepository(db *sql.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// Create inserts a new venue for an event.
func (r *VenueRepository) Create(ctx context.Context, v *model.Venue) error {
	query := `INSERT INTO venues (id, event_id, name, address, capacity, contact, phone, email, opening_hours, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		v.ID, v.EventID, v.Name, v.Address, v.Capacity, v.Contact,
		v.Phone, v.Email, v.OpeningHours, v.Latitude, v.Longitude,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrVenueExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a venue by ID.
func (r *VenueRepository) GetByID(ctx context.Context, id string) (*model.Venue, error) {
	query := `SELECT id, event_id, name, address, capacity, contact, phone, email, opening_hours, latitude, longitude
		FROM venues WHERE id = ?`

	return r.scanVenue(r.db.QueryRowContext(ctx, query, id))
}

// GetByEvent retrieves the venue attached to an event.
func (r *VenueRepository) GetByEvent(ctx context.Context, eventID string) (*model.Venue, error) {
	query := `SELECT id, event_id, name, address, capacity, contact, phone, email, opening_hours, latitude, longitude
		FROM venues WHERE event_id = ?`

	return r.scanVenue(r.db.QueryRowContext(ctx, query, eventID))
}

// Update writes every mutable venue field.
func (r *VenueRepository) Update(ctx context.Context, v *model.Venue) error {
	query := `UPDATE venues SET name = ?, address = ?, capacity = ?, contact = ?, phone = ?, email = ?, opening_hours = ?, latitude = ?, longitude = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		v.Name, v.Address, v.Capacity, v.Contact, v.Phone,
		v.Email, v.OpeningHours, v.Latitude, v.Longitude, v.ID,
	)
	return err
}

// Delete removes a venue.
func (r *VenueRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrVenueNotFound
	}
	return nil
}

func (r *VenueRepository) scanVenue(row *sql.Row) (*model.Venue, error) {
	v := &model.Venue{}
	var lat, lng sql.NullFloat64
	err := row.Scan(
		&v.ID, &v.EventID, &v.Name, &v.Address, &v.Capacity, &v.Contact,
		&v.Phone, &v.Email, &v.OpeningHours, &lat, &lng,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	if lat.Valid {
		v.Latitude = &lat.Float64
	}
	if lng.Valid {
		v.Longitude = &lng.Float64
	}
	return v, nil
}
