package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/planora/planora-go/internal/model"
)

var (
	ErrCategoryNotFound   = errors.New("budget category not found")
	ErrBudgetItemNotFound = errors.New("budget item not found")
)

// BudgetRepository handles budget category and item persistence.
type BudgetRepository struct {
	db *sql.DB
}

// NewBudgetRepository creates a new BudgetRepository.
func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// CreateCategory inserts a new budget category.
func (r *BudgetRepository) CreateCategory(ctx context.Context, c *model.BudgetCategory) error {
	query := `INSERT INTO budget_categories (id, event_id, name, sort_order) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.EventID, c.Name, c.Order)
	return err
}

// GetCategoryByID retrieves a budget category by ID.
func (r *BudgetRepository) GetCategoryByID(ctx context.Context, id string) (*model.BudgetCategory, error) {
	query := `SELECT id, event_id, name, sort_order FROM budget_categories WHERE id = ?`

	c := &model.BudgetCategory{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.EventID, &c.Name, &c.Order)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

// ListCategoriesByEvent retrieves an event's categories ordered for display.
func (r *BudgetRepository) ListCategoriesByEvent(ctx context.Context, eventID string) ([]model.BudgetCategory, error) {
	query := `SELECT id, event_id, name, sort_order FROM budget_categories
		WHERE event_id = ? ORDER BY sort_order ASC, name ASC`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.BudgetCategory
	for rows.Next() {
		var c model.BudgetCategory
		if err := rows.Scan(&c.ID, &c.EventID, &c.Name, &c.Order); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// UpdateCategory writes every mutable category field.
func (r *BudgetRepository) UpdateCategory(ctx context.Context, c *model.BudgetCategory) error {
	query := `UPDATE budget_categories SET name = ?, sort_order = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.Order, c.ID)
	return err
}

// DeleteCategory removes a category and its items in one transaction.
func (r *BudgetRepository) DeleteCategory(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM budget_items WHERE category_id = ?`, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM budget_categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCategoryNotFound
	}
	return tx.Commit()
}

// CreateItem inserts a new budget item.
func (r *BudgetRepository) CreateItem(ctx context.Context, item *model.BudgetItem) error {
	query := `INSERT INTO budget_items (id, category_id, name, estimated_cost, actual_cost, notes, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.CategoryID, item.Name, item.EstimatedCost,
		item.ActualCost, item.Notes, item.Order,
	)
	return err
}

// GetItemByID retrieves a budget item by ID.
func (r *BudgetRepository) GetItemByID(ctx context.Context, id string) (*model.BudgetItem, error) {
	query := `SELECT id, category_id, name, estimated_cost, actual_cost, notes, sort_order
		FROM budget_items WHERE id = ?`

	item := &model.BudgetItem{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.CategoryID, &item.Name, &item.EstimatedCost,
		&item.ActualCost, &item.Notes, &item.Order,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBudgetItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// ListItemsByCategory retrieves a category's items ordered for display.
func (r *BudgetRepository) ListItemsByCategory(ctx context.Context, categoryID string) ([]model.BudgetItem, error) {
	query := `SELECT id, category_id, name, estimated_cost, actual_cost, notes, sort_order
		FROM budget_items WHERE category_id = ? ORDER BY sort_order ASC, name ASC`

	rows, err := r.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

// ListItemsByEvent retrieves every budget item under an event's categories.
func (r *BudgetRepository) ListItemsByEvent(ctx context.Context, eventID string) ([]model.BudgetItem, error) {
	query := `SELECT i.id, i.category_id, i.name, i.estimated_cost, i.actual_cost, i.notes, i.sort_order
		FROM budget_items i
		JOIN budget_categories c ON c.id = i.category_id
		WHERE c.event_id = ?
		ORDER BY c.sort_order ASC, i.sort_order ASC`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

// UpdateItem writes every mutable item field.
func (r *BudgetRepository) UpdateItem(ctx context.Context, item *model.BudgetItem) error {
	query := `UPDATE budget_items SET name = ?, estimated_cost = ?, actual_cost = ?, notes = ?, sort_order = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		item.Name, item.EstimatedCost, item.ActualCost, item.Notes, item.Order, item.ID,
	)
	return err
}

// DeleteItem removes a budget item.
func (r *BudgetRepository) DeleteItem(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM budget_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBudgetItemNotFound
	}
	return nil
}

func scanItems(rows *sql.Rows) ([]model.BudgetItem, error) {
	var items []model.BudgetItem
	for rows.Next() {
		var i model.BudgetItem
		if err := rows.Scan(
			&i.ID, &i.CategoryID, &i.Name, &i.EstimatedCost,
			&i.ActualCost, &i.Notes, &i.Order,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
