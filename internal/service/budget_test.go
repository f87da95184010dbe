package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/planora/planora-go/internal/cache"
	"github.com/planora/planora-go/internal/model"
)

type budgetFixture struct {
	svc     *BudgetService
	budgets *memBudgets
	event   *model.Event
}

func newBudgetFixture(t *testing.T) *budgetFixture {
	t.Helper()
	events := newMemEvents()
	event := &model.Event{
		ID:     "ev1",
		UserID: "owner",
		Name:   "Launch Party",
		Type:   model.EventTypeCompany,
		Date:   time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := events.Create(context.Background(), event); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	budgets := newMemBudgets()
	svc := NewBudgetService(budgets, events, OwnershipNotFound, cache.New[model.BudgetSummary](cache.DefaultTTL))
	return &budgetFixture{svc: svc, budgets: budgets, event: event}
}

func (f *budgetFixture) category(t *testing.T, name string) *model.BudgetCategory {
	t.Helper()
	c, err := f.svc.CreateCategory(context.Background(), "owner", f.event.ID, model.CreateBudgetCategoryRequest{Name: name})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	return c
}

func (f *budgetFixture) item(t *testing.T, categoryID, name string, estimated, actual float64) *model.BudgetItem {
	t.Helper()
	item, err := f.svc.CreateItem(context.Background(), "owner", categoryID, model.CreateBudgetItemRequest{
		Name: name, EstimatedCost: estimated, ActualCost: actual,
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	return item
}

func TestBudgetCategoryOwnership(t *testing.T) {
	f := newBudgetFixture(t)
	c := f.category(t, "Catering")

	if _, err := f.svc.CreateCategory(context.Background(), "intruder", f.event.ID, model.CreateBudgetCategoryRequest{Name: "X"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("intruder create err = %v, want ErrNotFound", err)
	}
	name := "Hijacked"
	if _, err := f.svc.UpdateCategory(context.Background(), "intruder", c.ID, model.UpdateBudgetCategoryRequest{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Errorf("intruder update err = %v, want ErrNotFound", err)
	}
	if err := f.svc.DeleteCategory(context.Background(), "intruder", c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("intruder delete err = %v, want ErrNotFound", err)
	}
}

func TestBudgetItemOwnershipWalksChain(t *testing.T) {
	f := newBudgetFixture(t)
	c := f.category(t, "Catering")
	item := f.item(t, c.ID, "Buffet", 2000, 0)

	cost := 99.0
	if _, err := f.svc.UpdateItem(context.Background(), "intruder", item.ID, model.UpdateBudgetItemRequest{ActualCost: &cost}); !errors.Is(err, ErrNotFound) {
		t.Errorf("intruder item update err = %v, want ErrNotFound", err)
	}
	if err := f.svc.DeleteItem(context.Background(), "intruder", item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("intruder item delete err = %v, want ErrNotFound", err)
	}
}

func TestBudgetListCategoriesIncludesItems(t *testing.T) {
	f := newBudgetFixture(t)
	c1 := f.category(t, "Catering")
	f.category(t, "Venue")
	f.item(t, c1.ID, "Buffet", 2000, 1800)

	listed, err := f.svc.ListCategories(context.Background(), "owner", f.event.ID)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("len = %d, want 2", len(listed))
	}
	for _, c := range listed {
		if c.Items == nil {
			t.Errorf("category %q has nil items", c.Name)
		}
	}
}

func TestBudgetSummary(t *testing.T) {
	f := newBudgetFixture(t)
	catering := f.category(t, "Catering")
	music := f.category(t, "Music")
	f.item(t, catering.ID, "Buffet", 2000, 2300)
	f.item(t, catering.ID, "Drinks", 500, 450)
	f.item(t, music.ID, "DJ", 800, 800)

	summary, err := f.svc.Summary(context.Background(), "owner", f.event.ID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.TotalEstimated != 3300 || summary.TotalActual != 3550 {
		t.Errorf("totals = %.0f/%.0f, want 3300/3550", summary.TotalEstimated, summary.TotalActual)
	}
	if summary.Variance != 250 {
		t.Errorf("variance = %.0f, want 250", summary.Variance)
	}
	if len(summary.Categories) != 2 {
		t.Fatalf("category count = %d, want 2", len(summary.Categories))
	}
}

func TestBudgetSummaryCacheInvalidation(t *testing.T) {
	f := newBudgetFixture(t)
	c := f.category(t, "Catering")
	f.item(t, c.ID, "Buffet", 1000, 0)

	first, err := f.svc.Summary(context.Background(), "owner", f.event.ID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if first.TotalEstimated != 1000 {
		t.Fatalf("estimated = %.0f, want 1000", first.TotalEstimated)
	}

	f.item(t, c.ID, "Drinks", 500, 0)
	second, err := f.svc.Summary(context.Background(), "owner", f.event.ID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if second.TotalEstimated != 1500 {
		t.Errorf("estimated after write = %.0f, want 1500 (stale cache)", second.TotalEstimated)
	}
}

func TestBudgetSummaryForbiddenForNonOwner(t *testing.T) {
	f := newBudgetFixture(t)
	if _, err := f.svc.Summary(context.Background(), "intruder", f.event.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestBudgetGenerateDefaults(t *testing.T) {
	f := newBudgetFixture(t)
	f.category(t, "Venue")

	created, err := f.svc.GenerateDefaults(context.Background(), "owner", f.event.ID, "en")
	if err != nil {
		t.Fatalf("GenerateDefaults: %v", err)
	}
	for _, c := range created {
		if c.Name == "Venue" {
			t.Error("default generation duplicated an existing category")
		}
	}
	if len(created) == 0 {
		t.Fatal("expected default categories to be created")
	}

	again, err := f.svc.GenerateDefaults(context.Background(), "owner", f.event.ID, "en")
	if err != nil {
		t.Fatalf("GenerateDefaults: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("second run created %d categories, want 0", len(again))
	}
}

func TestBudgetDeleteCategoryRemovesItems(t *testing.T) {
	f := newBudgetFixture(t)
	c := f.category(t, "Catering")
	item := f.item(t, c.ID, "Buffet", 1000, 0)

	if err := f.svc.DeleteCategory(context.Background(), "owner", c.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if _, err := f.budgets.GetItemByID(context.Background(), item.ID); err == nil {
		t.Error("items survived category deletion")
	}
}
