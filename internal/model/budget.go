package model

// BudgetCategory groups budget items within an event.
type BudgetCategory struct {
	ID      string `json:"id"`
	EventID string `json:"eventId"`
	Name    string `json:"name"`
	Order   int    `json:"order"`
}

// BudgetItem is a single planned expense inside a category.
type BudgetItem struct {
	ID            string  `json:"id"`
	CategoryID    string  `json:"categoryId"`
	Name          string  `json:"name"`
	EstimatedCost float64 `json:"estimatedCost"`
	ActualCost    float64 `json:"actualCost"`
	Notes         string  `json:"notes,omitempty"`
	Order         int     `json:"order"`
}

// CategoryWithItems is a category plus its items, as listed per event.
type CategoryWithItems struct {
	BudgetCategory
	Items []BudgetItem `json:"items"`
}

// CreateBudgetCategoryRequest represents a category creation request.
type CreateBudgetCategoryRequest struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// UpdateBudgetCategoryRequest represents a partial category update.
type UpdateBudgetCategoryRequest struct {
	Name  *string `json:"name"`
	Order *int    `json:"order"`
}

// CreateBudgetItemRequest represents an item creation request.
type CreateBudgetItemRequest struct {
	Name          string  `json:"name"`
	EstimatedCost float64 `json:"estimatedCost"`
	ActualCost    float64 `json:"actualCost"`
	Notes         string  `json:"notes,omitempty"`
	Order         int     `json:"order"`
}

// UpdateBudgetItemRequest represents a partial item update.
type UpdateBudgetItemRequest struct {
	Name          *string  `json:"name"`
	EstimatedCost *float64 `json:"estimatedCost"`
	ActualCost    *float64 `json:"actualCost"`
	Notes         *string  `json:"notes"`
	Order         *int     `json:"order"`
}

// CategorySummary is one category's rollup inside a budget summary.
type CategorySummary struct {
	Name      string  `json:"name"`
	Estimated float64 `json:"estimated"`
	Actual    float64 `json:"actual"`
}

// BudgetSummary aggregates all budget items of an event.
// Variance is actual minus estimated.
type BudgetSummary struct {
	TotalEstimated float64           `json:"totalEstimated"`
	TotalActual    float64           `json:"totalActual"`
	Variance       float64           `json:"variance"`
	Categories     []CategorySummary `json:"categories"`
}
