package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/planora/planora-go/internal/model"
)

func newVenueFixture(t *testing.T) (*VenueService, *model.Event) {
	t.Helper()
	events := newMemEvents()
	event := &model.Event{
		ID:     "ev1",
		UserID: "owner",
		Name:   "Gala",
		Type:   model.EventTypeCompany,
		Date:   time.Date(2027, 9, 4, 0, 0, 0, 0, time.UTC),
	}
	if err := events.Create(context.Background(), event); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return NewVenueService(newMemVenues(), events, OwnershipNotFound), event
}

func TestVenueOnePerEvent(t *testing.T) {
	svc, event := newVenueFixture(t)

	req := model.CreateVenueRequest{Name: "Grand Hall", Address: "1 Main St", Capacity: 300}
	if _, err := svc.Create(context.Background(), "owner", event.ID, req); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "owner", event.ID, req); !errors.Is(err, ErrVenueExists) {
		t.Fatalf("second create err = %v, want ErrVenueExists", err)
	}
}

func TestVenueGet(t *testing.T) {
	svc, event := newVenueFixture(t)

	if _, err := svc.Get(context.Background(), "owner", event.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get without venue err = %v, want ErrNotFound", err)
	}

	created, err := svc.Create(context.Background(), "owner", event.ID, model.CreateVenueRequest{
		Name: "Grand Hall", Address: "1 Main St", Capacity: 300,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	venue, err := svc.Get(context.Background(), "owner", event.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if venue.ID != created.ID {
		t.Errorf("venue = %q, want %q", venue.ID, created.ID)
	}

	if _, err := svc.Get(context.Background(), "intruder", event.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("intruder get err = %v, want ErrNotFound", err)
	}
}

func TestVenueUpdateOwnership(t *testing.T) {
	svc, event := newVenueFixture(t)
	venue, err := svc.Create(context.Background(), "owner", event.ID, model.CreateVenueRequest{
		Name: "Grand Hall", Address: "1 Main St", Capacity: 300,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	capacity := 500
	updated, err := svc.Update(context.Background(), "owner", venue.ID, model.UpdateVenueRequest{Capacity: &capacity})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Capacity != 500 || updated.Name != "Grand Hall" {
		t.Errorf("update result = %+v", updated)
	}

	if _, err := svc.Update(context.Background(), "intruder", venue.ID, model.UpdateVenueRequest{Capacity: &capacity}); !errors.Is(err, ErrNotFound) {
		t.Errorf("intruder update err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), "intruder", venue.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("intruder delete err = %v, want ErrNotFound", err)
	}
}
