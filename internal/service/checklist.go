package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/planora/planora-go/internal/i18n"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/repository"
)

// ChecklistStore is the checklist persistence surface the service needs.
type ChecklistStore interface {
	Create(ctx context.Context, item *model.ChecklistItem) error
	CreateBatch(ctx context.Context, items []model.ChecklistItem) error
	GetByID(ctx context.Context, id string) (*model.ChecklistItem, error)
	ListByEvent(ctx context.Context, eventID string) ([]model.ChecklistItem, error)
	Update(ctx context.Context, item *model.ChecklistItem) error
	Delete(ctx context.Context, id string) error
}

// ChecklistService handles checklist items and template generation.
type ChecklistService struct {
	checklists ChecklistStore
	events     eventGetter
	policy     OwnershipPolicy
}

// NewChecklistService creates a new ChecklistService.
func NewChecklistService(checklists ChecklistStore, events eventGetter, policy OwnershipPolicy) *ChecklistService {
	return &ChecklistService{checklists: checklists, events: events, policy: policy}
}

// Create adds a checklist item to an owned event.
func (s *ChecklistService) Create(ctx context.Context, userID, eventID string, req model.CreateChecklistItemRequest) (*model.ChecklistItem, error) {
	if _, err := authorizeEvent(ctx, s.events, s.policy, eventID, userID); err != nil {
		return nil, err
	}

	item := &model.ChecklistItem{
		ID:          uuid.NewString(),
		EventID:     eventID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Order:       req.Order,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.checklists.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List returns an owned event's checklist.
func (s *ChecklistService) List(ctx context.Context, userID, eventID string) ([]model.ChecklistItem, error) {
	if _, err := authorizeEvent(ctx, s.events, s.policy, eventID, userID); err != nil {
		return nil, err
	}

	items, err := s.checklists.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.ChecklistItem{}
	}
	return items, nil
}

// Update applies the non-nil fields of req to an owned checklist item.
func (s *ChecklistService) Update(ctx context.Context, userID, itemID string, req model.UpdateChecklistItemRequest) (*model.ChecklistItem, error) {
	item, err := s.authorizeItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Completed != nil {
		item.Completed = *req.Completed
	}
	if req.DueDate != nil {
		item.DueDate = req.DueDate
	}
	if req.Order != nil {
		item.Order = *req.Order
	}

	if err := s.checklists.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Toggle flips an owned checklist item's completed flag.
func (s *ChecklistService) Toggle(ctx context.Context, userID, itemID string) (*model.ChecklistItem, error) {
	item, err := s.authorizeItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	item.Completed = !item.Completed
	if err := s.checklists.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an owned checklist item.
func (s *ChecklistService) Delete(ctx context.Context, userID, itemID string) error {
	if _, err := s.authorizeItem(ctx, userID, itemID); err != nil {
		return err
	}
	err := s.checklists.Delete(ctx, itemID)
	if errors.Is(err, repository.ErrChecklistItemNotFound) {
		return ErrNotFound
	}
	return err
}

// GenerateTemplate appends the localized starter checklist for the event's
// type. New items are ordered after any existing ones.
func (s *ChecklistService) GenerateTemplate(ctx context.Context, userID, eventID, language string) ([]model.ChecklistItem, error) {
	event, err := authorizeEvent(ctx, s.events, s.policy, eventID, userID)
	if err != nil {
		return nil, err
	}

	titles := i18n.List(language, "templates."+event.Type+".checklist")
	if len(titles) == 0 {
		return nil, ErrInvalidEventType
	}

	existing, err := s.checklists.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	offset := 0
	for _, item := range existing {
		if item.Order >= offset {
			offset = item.Order + 1
		}
	}

	now := time.Now().UTC()
	items := make([]model.ChecklistItem, 0, len(titles))
	for i, title := range titles {
		items = append(items, model.ChecklistItem{
			ID:        uuid.NewString(),
			EventID:   eventID,
			Title:     title,
			Order:     offset + i,
			CreatedAt: now,
		})
	}
	if err := s.checklists.CreateBatch(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ChecklistService) authorizeItem(ctx context.Context, userID, itemID string) (*model.ChecklistItem, error) {
	item, err := s.checklists.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrChecklistItemNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := authorizeEvent(ctx, s.events, s.policy, item.EventID, userID); err != nil {
		return nil, err
	}
	return item, nil
}
