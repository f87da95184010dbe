package service

import (
	"context"
	"errors"

	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/repository"
)

// eventGetter is the minimal event lookup used for ownership checks by
// every service whose resources hang off an event.
type eventGetter interface {
	GetByID(ctx context.Context, id string) (*model.Event, error)
}

// authorizeEvent loads an event and verifies the caller owns it. A missing
// event and one owned by someone else both map through the ownership
// policy, so callers cannot probe for foreign resource IDs.
func authorizeEvent(ctx context.Context, events eventGetter, policy OwnershipPolicy, eventID, userID string) (*model.Event, error) {
	event, err := events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if event.UserID != userID {
		return nil, policy.Denied()
	}
	return event, nil
}
