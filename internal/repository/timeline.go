package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/planora/planora-go/internal/model"
)

var ErrTimelineEntryNotFound = errors.New("timeline entry not found")

// TimelineRepository handles timeline entry persistence.
type TimelineRepository struct {
	db *sql.DB
}

// NewTimelineRepository creates a new TimelineRepository.
func NewTimelineRepository(db *sql.DB) *TimelineRepository {
	return &TimelineRepository{db: db}
}

// Create inserts a new timeline entry.
func (r *TimelineRepository) Create(ctx context.Context, entry *model.TimelineEntry) error {
	query := `INSERT INTO timeline_entries (id, event_id, title, description, start_time, end_time, responsible_person, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.EventID, entry.Title, entry.Description,
		entry.StartTime, entry.EndTime, entry.ResponsiblePerson, entry.Order,
	)
	return err
}

// GetByID retrieves a timeline entry by ID.
func (r *TimelineRepository) GetByID(ctx context.Context, id string) (*model.TimelineEntry, error) {
	query := `SELECT id, event_id, title, description, start_time, end_time, responsible_person, sort_order
		FROM timeline_entries WHERE id = ?`

	entry := &model.TimelineEntry{}
	var end sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&entry.ID, &entry.EventID, &entry.Title, &entry.Description,
		&entry.StartTime, &end, &entry.ResponsiblePerson, &entry.Order,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTimelineEntryNotFound
		}
		return nil, err
	}
	if end.Valid {
		entry.EndTime = &end.Time
	}
	return entry, nil
}

// ListByEvent retrieves an event's timeline ordered by start time.
func (r *TimelineRepository) ListByEvent(ctx context.Context, eventID string) ([]model.TimelineEntry, error) {
	query := `SELECT id, event_id, title, description, start_time, end_time, responsible_person, sort_order
		FROM timeline_entries WHERE event_id = ? ORDER BY start_time ASC`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.TimelineEntry
	for rows.Next() {
		var entry model.TimelineEntry
		var end sql.NullTime
		if err := rows.Scan(
			&entry.ID, &entry.EventID, &entry.Title, &entry.Description,
			&entry.StartTime, &end, &entry.ResponsiblePerson, &entry.Order,
		); err != nil {
			return nil, err
		}
		if end.Valid {
			entry.EndTime = &end.Time
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Update writes every mutable timeline entry field.
func (r *TimelineRepository) Update(ctx context.Context, entry *model.TimelineEntry) error {
	query := `UPDATE timeline_entries SET title = ?, description = ?, start_time = ?, end_time = ?, responsible_person = ?, sort_order = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		entry.Title, entry.Description, entry.StartTime, entry.EndTime,
		entry.ResponsiblePerson, entry.Order, entry.ID,
	)
	return err
}

// Delete removes a timeline entry.
func (r *TimelineRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM timeline_entries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTimelineEntryNotFound
	}
	return nil
}
