package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/planora/planora-go/internal/model"
)

var ErrEventNotFound = errors.New("event not found")

// EventRepository handles event persistence operations.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event.
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	query := `INSERT INTO events (id, user_id, name, type, date, guest_count, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		event.ID, event.UserID, event.Name, event.Type,
		event.Date, event.GuestCount, event.Description,
	)
	return err
}

// GetByID retrieves an event by ID, regardless of owner. Ownership is the
// service layer's concern.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	query := `SELECT id, user_id, name, type, date, guest_count, description, created_at, updated_at
		FROM events WHERE id = ?`

	event := &model.Event{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&event.ID, &event.UserID, &event.Name, &event.Type, &event.Date,
		&event.GuestCount, &event.Description, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// ListByUser retrieves all events owned by a user, newest date first.
func (r *EventRepository) ListByUser(ctx context.Context, userID string) ([]model.Event, error) {
	query := `SELECT id, user_id, name, type, date, guest_count, description, created_at, updated_at
		FROM events WHERE user_id = ? ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Name, &e.Type, &e.Date,
			&e.GuestCount, &e.Description, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Update writes every mutable event field.
func (r *EventRepository) Update(ctx context.Context, event *model.Event) error {
	query := `UPDATE events SET name = ?, type = ?, date = ?, guest_count = ?, description = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		event.Name, event.Type, event.Date, event.GuestCount, event.Description, event.ID,
	)
	if err != nil {
		return err
	}
	return requireEvent(ctx, r, result, event.ID)
}

// Delete removes an event.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEventNotFound
	}
	return nil
}

// requireEvent confirms an update touched an existing row; MySQL reports
// zero affected rows for no-op updates, so fall back to a lookup.
func requireEvent(ctx context.Context, r *EventRepository, result sql.Result, id string) error {
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
