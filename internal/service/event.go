package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/repository"
)

// EventStore is the event persistence surface the event service needs.
type EventStore interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	ListByUser(ctx context.Context, userID string) ([]model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id string) error
}

// EventService handles event business logic.
type EventService struct {
	events EventStore
	policy OwnershipPolicy
}

// NewEventService creates a new EventService.
func NewEventService(events EventStore, policy OwnershipPolicy) *EventService {
	return &EventService{events: events, policy: policy}
}

// Create stores a new event owned by the caller.
func (s *EventService) Create(ctx context.Context, userID string, req model.CreateEventRequest) (*model.Event, error) {
	if !model.ValidEventType(req.Type) {
		return nil, ErrInvalidEventType
	}

	event := &model.Event{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Type:        req.Type,
		Date:        req.Date,
		GuestCount:  req.GuestCount,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Get returns one event after an ownership check.
func (s *EventService) Get(ctx context.Context, userID, eventID string) (*model.Event, error) {
	return authorizeEvent(ctx, s.events, s.policy, eventID, userID)
}

// List returns the caller's events, newest date first.
func (s *EventService) List(ctx context.Context, userID string) ([]model.Event, error) {
	events, err := s.events.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []model.Event{}
	}
	return events, nil
}

// Update applies the non-nil fields of req to an owned event.
func (s *EventService) Update(ctx context.Context, userID, eventID string, req model.UpdateEventRequest) (*model.Event, error) {
	event, err := authorizeEvent(ctx, s.events, s.policy, eventID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Type != nil {
		if !model.ValidEventType(*req.Type) {
			return nil, ErrInvalidEventType
		}
		event.Type = *req.Type
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.GuestCount != nil {
		event.GuestCount = *req.GuestCount
	}
	if req.Description != nil {
		event.Description = *req.Description
	}

	if err := s.events.Update(ctx, event); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

// Delete removes an owned event. Dependent rows are cleaned up by the
// database's ON DELETE CASCADE constraints.
func (s *EventService) Delete(ctx context.Context, userID, eventID string) error {
	if _, err := authorizeEvent(ctx, s.events, s.policy, eventID, userID); err != nil {
		return err
	}
	err := s.events.Delete(ctx, eventID)
	if errors.Is(err, repository.ErrEventNotFound) {
		return ErrNotFound
	}
	return err
}

// Duplicate copies an owned event under a new ID with " (Copy)" appended
// to the name. Child resources are not copied.
func (s *EventService) Duplicate(ctx context.Context, userID, eventID string) (*model.Event, error) {
	src, err := authorizeEvent(ctx, s.events, s.policy, eventID, userID)
	if err != nil {
		return nil, err
	}

	copy := &model.Event{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        src.Name + " (Copy)",
		Type:        src.Type,
		Date:        src.Date,
		GuestCount:  src.GuestCount,
		Description: src.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.events.Create(ctx, copy); err != nil {
		return nil, err
	}
	return copy, nil
}
