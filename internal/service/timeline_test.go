package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/planora/planora-go/internal/model"
)

func newTimelineFixture(t *testing.T) (*TimelineService, *model.Event) {
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
	return NewTimelineService(newMemTimelines(), events, OwnershipNotFound), event
}

func TestTimelineListSortedByStart(t *testing.T) {
	svc, event := newTimelineFixture(t)
	ctx := context.Background()

	for _, tc := range []struct {
		title string
		hour  int
	}{
		{"Dinner", 19},
		{"Reception", 17},
		{"Speeches", 21},
	} {
		_, err := svc.Create(ctx, "owner", event.ID, model.CreateTimelineEntryRequest{
			Title:     tc.title,
			StartTime: time.Date(2027, 9, 4, tc.hour, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("Create %s: %v", tc.title, err)
		}
	}

	entries, err := svc.List(ctx, "owner", event.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"Reception", "Dinner", "Speeches"}
	for i, w := range want {
		if entries[i].Title != w {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Title, w)
		}
	}
}

func TestTimelineOwnership(t *testing.T) {
	svc, event := newTimelineFixture(t)
	ctx := context.Background()

	entry, err := svc.Create(ctx, "owner", event.ID, model.CreateTimelineEntryRequest{
		Title:     "Ceremony",
		StartTime: time.Date(2027, 9, 4, 14, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	title := "Hijacked"
	if _, err := svc.Update(ctx, "intruder", entry.ID, model.UpdateTimelineEntryRequest{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Errorf("intruder update err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, "intruder", entry.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("intruder delete err = %v, want ErrNotFound", err)
	}
	if _, err := svc.List(ctx, "intruder", event.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("intruder list err = %v, want ErrNotFound", err)
	}
}

func TestTimelinePartialUpdateClearsNothing(t *testing.T) {
	svc, event := newTimelineFixture(t)
	ctx := context.Background()

	end := time.Date(2027, 9, 4, 15, 0, 0, 0, time.UTC)
	entry, err := svc.Create(ctx, "owner", event.ID, model.CreateTimelineEntryRequest{
		Title:             "Ceremony",
		StartTime:         time.Date(2027, 9, 4, 14, 0, 0, 0, time.UTC),
		EndTime:           &end,
		ResponsiblePerson: "Max",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	title := "Opening"
	updated, err := svc.Update(ctx, "owner", entry.ID, model.UpdateTimelineEntryRequest{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Opening" {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.EndTime == nil || updated.ResponsiblePerson != "Max" {
		t.Error("untouched fields were cleared")
	}
}
