package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/planora/planora-go/internal/cache"
	"github.com/planora/planora-go/internal/i18n"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/repository"
)

// BudgetStore is the budget persistence surface the budget service needs.
type BudgetStore interface {
	CreateCategory(ctx context.Context, c *model.BudgetCategory) error
	GetCategoryByID(ctx context.Context, id string) (*model.BudgetCategory, error)
	ListCategoriesByEvent(ctx context.Context, eventID string) ([]model.BudgetCategory, error)
	UpdateCategory(ctx context.Context, c *model.BudgetCategory) error
	DeleteCategory(ctx context.Context, id string) error
	CreateItem(ctx context.Context, item *model.BudgetItem) error
	GetItemByID(ctx context.Context, id string) (*model.BudgetItem, error)
	ListItemsByCategory(ctx context.Context, categoryID string) ([]model.BudgetItem, error)
	ListItemsByEvent(ctx context.Context, eventID string) ([]model.BudgetItem, error)
	UpdateItem(ctx context.Context, item *model.BudgetItem) error
	DeleteItem(ctx context.Context, id string) error
}

// BudgetService handles budget categories, items and summaries. Summaries
// are cached per event and invalidated on every budget write.
type BudgetService struct {
	budgets   BudgetStore
	events    eventGetter
	policy    OwnershipPolicy
	summaries *cache.Cache[model.BudgetSummary]
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgets BudgetStore, events eventGetter, policy OwnershipPolicy, summaries *cache.Cache[model.BudgetSummary]) *BudgetService {
	return &BudgetService{budgets: budgets, events: events, policy: policy, summaries: summaries}
}

// CreateCategory adds a category to an owned event.
func (s *BudgetService) CreateCategory(ctx context.Context, userID, eventID string, req model.CreateBudgetCategoryRequest) (*model.BudgetCategory, error) {
	if _, err := authorizeEvent(ctx, s.events, s.policy, eventID, userID); err != nil {
		return nil, err
	}

	category := &model.BudgetCategory{
		ID:      uuid.NewString(),
		EventID: eventID,
		Name:    req.Name,
		Order:   req.Order,
	}
	if err := s.budgets.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	s.invalidate(eventID)
	return category, nil
}

// ListCategories returns an owned event's categories with their items.
func (s *BudgetService) ListCategories(ctx context.Context, userID, eventID string) ([]model.CategoryWithItems, error) {
	if _, err := authorizeEvent(ctx, s.events, s.policy, eventID, userID); err != nil {
		return nil, err
	}

	categories, err := s.budgets.ListCategoriesByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	result := make([]model.CategoryWithItems, 0, len(categories))
	for _, c := range categories {
		items, err := s.budgets.ListItemsByCategory(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []model.BudgetItem{}
		}
		result = append(result, model.CategoryWithItems{BudgetCategory: c, Items: items})
	}
	return result, nil
}

// UpdateCategory applies the non-nil fields of req to an owned category.
func (s *BudgetService) UpdateCategory(ctx context.Context, userID, categoryID string, req model.UpdateBudgetCategoryRequest) (*model.BudgetCategory, error) {
	category, err := s.authorizeCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Order != nil {
		category.Order = *req.Order
	}

	if err := s.budgets.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	s.invalidate(category.EventID)
	return category, nil
}

// DeleteCategory removes an owned category and all of its items.
func (s *BudgetService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	category, err := s.authorizeCategory(ctx, userID, categoryID)
	if err != nil {
		return err
	}
	if err := s.budgets.DeleteCategory(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.invalidate(category.EventID)
	return nil
}

// CreateItem adds an item to an owned category.
func (s *BudgetService) CreateItem(ctx context.Context, userID, categoryID string, req model.CreateBudgetItemRequest) (*model.BudgetItem, error) {
	category, err := s.authorizeCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	item := &model.BudgetItem{
		ID:            uuid.NewString(),
		CategoryID:    categoryID,
		Name:          req.Name,
		EstimatedCost: req.EstimatedCost,
		ActualCost:    req.ActualCost,
		Notes:         req.Notes,
		Order:         req.Order,
	}
	if err := s.budgets.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(category.EventID)
	return item, nil
}

// UpdateItem applies the non-nil fields of req to an owned item.
func (s *BudgetService) UpdateItem(ctx context.Context, userID, itemID string, req model.UpdateBudgetItemRequest) (*model.BudgetItem, error) {
	item, category, err := s.authorizeItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.EstimatedCost != nil {
		item.EstimatedCost = *req.EstimatedCost
	}
	if req.ActualCost != nil {
		item.ActualCost = *req.ActualCost
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	if req.Order != nil {
		item.Order = *req.Order
	}

	if err := s.budgets.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(category.EventID)
	return item, nil
}

// DeleteItem removes an owned item.
func (s *BudgetService) DeleteItem(ctx context.Context, userID, itemID string) error {
	_, category, err := s.authorizeItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if err := s.budgets.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrBudgetItemNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.invalidate(category.EventID)
	return nil
}

// GenerateDefaults creates the localized default category set for an owned
// event, skipping names that already exist.
func (s *BudgetService) GenerateDefaults(ctx context.Context, userID, eventID, language string) ([]model.BudgetCategory, error) {
	if _, err := authorizeEvent(ctx, s.events, s.policy, eventID, userID); err != nil {
		return nil, err
	}

	existing, err := s.budgets.ListCategoriesByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(existing))
	offset := 0
	for _, c := range existing {
		taken[c.Name] = true
		if c.Order >= offset {
			offset = c.Order + 1
		}
	}

	var created []model.BudgetCategory
	for _, name := range i18n.List(language, "categories.defaults") {
		if taken[name] {
			continue
		}
		category := &model.BudgetCategory{
			ID:      uuid.NewString(),
			EventID: eventID,
			Name:    name,
			Order:   offset,
		}
		offset++
		if err := s.budgets.CreateCategory(ctx, category); err != nil {
			return nil, err
		}
		created = append(created, *category)
	}
	if created == nil {
		created = []model.BudgetCategory{}
	}
	s.invalidate(eventID)
	return created, nil
}

// Summary aggregates an owned event's budget. Results are served from the
// cache when present.
func (s *BudgetService) Summary(ctx context.Context, userID, eventID string) (model.BudgetSummary, error) {
	if _, err := authorizeEvent(ctx, s.events, s.policy, eventID, userID); err != nil {
		return model.BudgetSummary{}, err
	}

	key := cache.Key("summary", eventID)
	if summary, ok := s.summaries.Get(key); ok {
		return summary, nil
	}

	categories, err := s.budgets.ListCategoriesByEvent(ctx, eventID)
	if err != nil {
		return model.BudgetSummary{}, err
	}

	summary := model.BudgetSummary{Categories: []model.CategorySummary{}}
	for _, c := range categories {
		items, err := s.budgets.ListItemsByCategory(ctx, c.ID)
		if err != nil {
			return model.BudgetSummary{}, err
		}

		cs := model.CategorySummary{Name: c.Name}
		for _, item := range items {
			cs.Estimated += item.EstimatedCost
			cs.Actual += item.ActualCost
		}
		summary.TotalEstimated += cs.Estimated
		summary.TotalActual += cs.Actual
		summary.Categories = append(summary.Categories, cs)
	}
	summary.Variance = summary.TotalActual - summary.TotalEstimated

	s.summaries.Set(key, summary)
	return summary, nil
}

// authorizeCategory walks category to event to owner.
func (s *BudgetService) authorizeCategory(ctx context.Context, userID, categoryID string) (*model.BudgetCategory, error) {
	category, err := s.budgets.GetCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := authorizeEvent(ctx, s.events, s.policy, category.EventID, userID); err != nil {
		return nil, err
	}
	return category, nil
}

// authorizeItem walks item to category to event to owner.
func (s *BudgetService) authorizeItem(ctx context.Context, userID, itemID string) (*model.BudgetItem, *model.BudgetCategory, error) {
	item, err := s.budgets.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrBudgetItemNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	category, err := s.authorizeCategory(ctx, userID, item.CategoryID)
	if err != nil {
		return nil, nil, err
	}
	return item, category, nil
}

func (s *BudgetService) invalidate(eventID string) {
	s.summaries.Delete(cache.Key("summary", eventID))
}
