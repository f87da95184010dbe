package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/repository"
)

// VenueStore is the venue persistence surface the service needs.
type VenueStore interface {
	Create(ctx context.Context, venue *model.Venue) error
	GetByID(ctx context.Context, id string) (*model.Venue, error)
	GetByEvent(ctx context.Context, eventID string) (*model.Venue, error)
	Update(ctx context.Context, venue *model.Venue) error
	Delete(ctx context.Context, id string) error
}

// VenueService handles the one venue an event may have.
type VenueService struct {
	venues VenueStore
	events eventGetter
	policy OwnershipPolicy
}

// NewVenueService creates a new VenueService.
func NewVenueService(venues VenueStore, events eventGetter, policy OwnershipPolicy) *VenueService {
	return &VenueService{venues: venues, events: events, policy: policy}
}

// Create books a venue for an owned event. An event holds at most one
// venue; a second create fails with ErrVenueExists.
func (s *VenueService) Create(ctx context.Context, userID, eventID string, req model.CreateVenueRequest) (*model.Venue, error) {
	if _, err := authorizeEvent(ctx, s.events, s.policy, eventID, userID); err != nil {
		return nil, err
	}

	venue := &model.Venue{
		ID:           uuid.NewString(),
		EventID:      eventID,
		Name:         req.Name,
		Address:      req.Address,
		Capacity:     req.Capacity,
		Contact:      req.Contact,
		Phone:        req.Phone,
		Email:        req.Email,
		OpeningHours: req.OpeningHours,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}
	if err := s.venues.Create(ctx, venue); err != nil {
		if errors.Is(err, repository.ErrVenueExists) {
			return nil, ErrVenueExists
		}
		return nil, err
	}
	return venue, nil
}

// Get returns an owned event's venue.
func (s *VenueService) Get(ctx context.Context, userID, eventID string) (*model.Venue, error) {
	if _, err := authorizeEvent(ctx, s.events, s.policy, eventID, userID); err != nil {
		return nil, err
	}

	venue, err := s.venues.GetByEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return venue, nil
}

// Update applies the non-nil fields of req to an owned venue.
func (s *VenueService) Update(ctx context.Context, userID, venueID string, req model.UpdateVenueRequest) (*model.Venue, error) {
	venue, err := s.authorize(ctx, userID, venueID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.Capacity != nil {
		venue.Capacity = *req.Capacity
	}
	if req.Contact != nil {
		venue.Contact = *req.Contact
	}
	if req.Phone != nil {
		venue.Phone = *req.Phone
	}
	if req.Email != nil {
		venue.Email = *req.Email
	}
	if req.OpeningHours != nil {
		venue.OpeningHours = *req.OpeningHours
	}
	if req.Latitude != nil {
		venue.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		venue.Longitude = req.Longitude
	}

	if err := s.venues.Update(ctx, venue); err != nil {
		return nil, err
	}
	return venue, nil
}

// Delete removes an owned venue.
func (s *VenueService) Delete(ctx context.Context, userID, venueID string) error {
	if _, err := s.authorize(ctx, userID, venueID); err != nil {
		return err
	}
	err := s.venues.Delete(ctx, venueID)
	if errors.Is(err, repository.ErrVenueNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *VenueService) authorize(ctx context.Context, userID, venueID string) (*model.Venue, error) {
	venue, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := authorizeEvent(ctx, s.events, s.policy, venue.EventID, userID); err != nil {
		return nil, err
	}
	return venue, nil
}
