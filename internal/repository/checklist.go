package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/planora/planora-go/internal/model"
)

var ErrChecklistItemNotFound = errors.New("checklist item not found")

// ChecklistRepository handles checklist item persistence.
type ChecklistRepository struct {
	db *sql.DB
}

// NewChecklistRepository creates a new ChecklistRepository.
func NewChecklistRepository(db *sql.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

// Create inserts a new checklist item.
func (r *ChecklistRepository) Create(ctx context.Context, item *model.ChecklistItem) error {
	query := `INSERT INTO checklist_items (id, event_id, title, description, completed, due_date, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.EventID, item.Title, item.Description,
		item.Completed, item.DueDate, item.Order,
	)
	return err
}

// CreateBatch inserts several items in one transaction, used for template
// generation.
func (r *ChecklistRepository) CreateBatch(ctx context.Context, items []model.ChecklistItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO checklist_items (id, event_id, title, description, completed, due_date, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for _, item := range items {
		if _, err := tx.ExecContext(ctx, query,
			item.ID, item.EventID, item.Title, item.Description,
			item.Completed, item.DueDate, item.Order,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetByID retrieves a checklist item by ID.
func (r *ChecklistRepository) GetByID(ctx context.Context, id string) (*model.ChecklistItem, error) {
	query := `SELECT id, event_id, title, description, completed, due_date, sort_order, created_at, updated_at
		FROM checklist_items WHERE id = ?`

	item := &model.ChecklistItem{}
	var due sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.EventID, &item.Title, &item.Description,
		&item.Completed, &due, &item.Order, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChecklistItemNotFound
		}
		return nil, err
	}
	if due.Valid {
		item.DueDate = &due.Time
	}
	return item, nil
}

// ListByEvent retrieves an event's checklist ordered for display.
func (r *ChecklistRepository) ListByEvent(ctx context.Context, eventID string) ([]model.ChecklistItem, error) {
	query := `SELECT id, event_id, title, description, completed, due_date, sort_order, created_at, updated_at
		FROM checklist_items WHERE event_id = ? ORDER BY sort_order ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.ChecklistItem
	for rows.Next() {
		var item model.ChecklistItem
		var due sql.NullTime
		if err := rows.Scan(
			&item.ID, &item.EventID, &item.Title, &item.Description,
			&item.Completed, &due, &item.Order, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if due.Valid {
			item.DueDate = &due.Time
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update writes every mutable checklist item field.
func (r *ChecklistRepository) Update(ctx context.Context, item *model.ChecklistItem) error {
	query := `UPDATE checklist_items SET title = ?, description = ?, completed = ?, due_date = ?, sort_order = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		item.Title, item.Description, item.Completed, item.DueDate, item.Order, item.ID,
	)
	return err
}

// Delete removes a checklist item.
func (r *ChecklistRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM checklist_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrChecklistItemNotFound
	}
	return nil
}
