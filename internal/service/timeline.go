package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/repository"
)

// TimelineStore is the timeline persistence surface the service needs.
type TimelineStore interface {
	Create(ctx context.Context, entry *model.TimelineEntry) error
	GetByID(ctx context.Context, id string) (*model.TimelineEntry, error)
	ListByEvent(ctx context.Context, eventID string) ([]model.TimelineEntry, error)
	Update(ctx context.Context, entry *model.TimelineEntry) error
	Delete(ctx context.Context, id string) error
}

// TimelineService handles day-of programme entries.
type TimelineService struct {
	timelines TimelineStore
	events    eventGetter
	policy    OwnershipPolicy
}

// NewTimelineService creates a new TimelineService.
func NewTimelineService(timelines TimelineStore, events eventGetter, policy OwnershipPolicy) *TimelineService {
	return &TimelineService{timelines: timelines, events: events, policy: policy}
}

// Create adds a timeline entry to an owned event.
func (s *TimelineService) Create(ctx context.Context, userID, eventID string, req model.CreateTimelineEntryRequest) (*model.TimelineEntry, error) {
	if _, err := authorizeEvent(ctx, s.events, s.policy, eventID, userID); err != nil {
		return nil, err
	}

	entry := &model.TimelineEntry{
		ID:                uuid.NewString(),
		EventID:           eventID,
		Title:             req.Title,
		Description:       req.Description,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		ResponsiblePerson: req.ResponsiblePerson,
		Order:             req.Order,
	}
	if err := s.timelines.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns an owned event's timeline in start time order.
func (s *TimelineService) List(ctx context.Context, userID, eventID string) ([]model.TimelineEntry, error) {
	if _, err := authorizeEvent(ctx, s.events, s.policy, eventID, userID); err != nil {
		return nil, err
	}

	entries, err := s.timelines.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.TimelineEntry{}
	}
	return entries, nil
}

// Update applies the non-nil fields of req to an owned timeline entry.
func (s *TimelineService) Update(ctx context.Context, userID, entryID string, req model.UpdateTimelineEntryRequest) (*model.TimelineEntry, error) {
	entry, err := s.authorizeEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.StartTime != nil {
		entry.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		entry.EndTime = req.EndTime
	}
	if req.ResponsiblePerson != nil {
		entry.ResponsiblePerson = *req.ResponsiblePerson
	}
	if req.Order != nil {
		entry.Order = *req.Order
	}

	if err := s.timelines.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes an owned timeline entry.
func (s *TimelineService) Delete(ctx context.Context, userID, entryID string) error {
	if _, err := s.authorizeEntry(ctx, userID, entryID); err != nil {
		return err
	}
	err := s.timelines.Delete(ctx, entryID)
	if errors.Is(err, repository.ErrTimelineEntryNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *TimelineService) authorizeEntry(ctx context.Context, userID, entryID string) (*model.TimelineEntry, error) {
	entry, err := s.timelines.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrTimelineEntryNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := authorizeEvent(ctx, s.events, s.policy, entry.EventID, userID); err != nil {
		return nil, err
	}
	return entry, nil
}
