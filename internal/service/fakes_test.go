package service

import (
	"context"
	"sort"

	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/repository"
)

// In-memory stores backing the service tests. They return the same
// sentinel errors as the real repositories.

type memUsers struct {
	byID    map[string]*model.User
	getByID int
}

func newMemUsers() *memUsers {
	return &memUsers{byID: make(map[string]*model.User)}
}

func (m *memUsers) Create(_ context.Context, user *model.User) error {
	for _, u := range m.byID {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	clone := *user
	m.byID[user.ID] = &clone
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUsers) GetByID(_ context.Context, id string) (*model.User, error) {
	m.getByID++
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (m *memUsers) UpdateLanguage(_ context.Context, id, language string) error {
	u, ok := m.byID[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Language = language
	return nil
}

type memEvents struct {
	byID map[string]*model.Event
}

func newMemEvents() *memEvents {
	return &memEvents{byID: make(map[string]*model.Event)}
}

func (m *memEvents) Create(_ context.Context, event *model.Event) error {
	clone := *event
	m.byID[event.ID] = &clone
	return nil
}

func (m *memEvents) GetByID(_ context.Context, id string) (*model.Event, error) {
	e, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	clone := *e
	return &clone, nil
}

func (m *memEvents) ListByUser(_ context.Context, userID string) ([]model.Event, error) {
	var events []model.Event
	for _, e := range m.byID {
		if e.UserID == userID {
			events = append(events, *e)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date.After(events[j].Date) })
	return events, nil
}

func (m *memEvents) Update(_ context.Context, event *model.Event) error {
	if _, ok := m.byID[event.ID]; !ok {
		return repository.ErrEventNotFound
	}
	clone := *event
	m.byID[event.ID] = &clone
	return nil
}

func (m *memEvents) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrEventNotFound
	}
	delete(m.byID, id)
	return nil
}

type memBudgets struct {
	categories map[string]*model.BudgetCategory
	items      map[string]*model.BudgetItem
}

func newMemBudgets() *memBudgets {
	return &memBudgets{
		categories: make(map[string]*model.BudgetCategory),
		items:      make(map[string]*model.BudgetItem),
	}
}

func (m *memBudgets) CreateCategory(_ context.Context, c *model.BudgetCategory) error {
	clone := *c
	m.categories[c.ID] = &clone
	return nil
}

func (m *memBudgets) GetCategoryByID(_ context.Context, id string) (*model.BudgetCategory, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (m *memBudgets) ListCategoriesByEvent(_ context.Context, eventID string) ([]model.BudgetCategory, error) {
	var categories []model.BudgetCategory
	for _, c := range m.categories {
		if c.EventID == eventID {
			categories = append(categories, *c)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Order != categories[j].Order {
			return categories[i].Order < categories[j].Order
		}
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (m *memBudgets) UpdateCategory(_ context.Context, c *model.BudgetCategory) error {
	if _, ok := m.categories[c.ID]; !ok {
		return repository.ErrCategoryNotFound
	}
	clone := *c
	m.categories[c.ID] = &clone
	return nil
}

func (m *memBudgets) DeleteCategory(_ context.Context, id string) error {
	if _, ok := m.categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	for itemID, item := range m.items {
		if item.CategoryID == id {
			delete(m.items, itemID)
		}
	}
	delete(m.categories, id)
	return nil
}

func (m *memBudgets) CreateItem(_ context.Context, item *model.BudgetItem) error {
	clone := *item
	m.items[item.ID] = &clone
	return nil
}

func (m *memBudgets) GetItemByID(_ context.Context, id string) (*model.BudgetItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, repository.ErrBudgetItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (m *memBudgets) ListItemsByCategory(_ context.Context, categoryID string) ([]model.BudgetItem, error) {
	var items []model.BudgetItem
	for _, item := range m.items {
		if item.CategoryID == categoryID {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return items, nil
}

func (m *memBudgets) ListItemsByEvent(ctx context.Context, eventID string) ([]model.BudgetItem, error) {
	var items []model.BudgetItem
	for _, c := range m.categories {
		if c.EventID != eventID {
			continue
		}
		inCategory, _ := m.ListItemsByCategory(ctx, c.ID)
		items = append(items, inCategory...)
	}
	return items, nil
}

func (m *memBudgets) UpdateItem(_ context.Context, item *model.BudgetItem) error {
	if _, ok := m.items[item.ID]; !ok {
		return repository.ErrBudgetItemNotFound
	}
	clone := *item
	m.items[item.ID] = &clone
	return nil
}

func (m *memBudgets) DeleteItem(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrBudgetItemNotFound
	}
	delete(m.items, id)
	return nil
}

type memChecklists struct {
	byID map[string]*model.ChecklistItem
}

func newMemChecklists() *memChecklists {
	return &memChecklists{byID: make(map[string]*model.ChecklistItem)}
}

func (m *memChecklists) Create(_ context.Context, item *model.ChecklistItem) error {
	clone := *item
	m.byID[item.ID] = &clone
	return nil
}

func (m *memChecklists) CreateBatch(ctx context.Context, items []model.ChecklistItem) error {
	for i := range items {
		if err := m.Create(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *memChecklists) GetByID(_ context.Context, id string) (*model.ChecklistItem, error) {
	item, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrChecklistItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (m *memChecklists) ListByEvent(_ context.Context, eventID string) ([]model.ChecklistItem, error) {
	var items []model.ChecklistItem
	for _, item := range m.byID {
		if item.EventID == eventID {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return items, nil
}

func (m *memChecklists) Update(_ context.Context, item *model.ChecklistItem) error {
	if _, ok := m.byID[item.ID]; !ok {
		return repository.ErrChecklistItemNotFound
	}
	clone := *item
	m.byID[item.ID] = &clone
	return nil
}

func (m *memChecklists) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrChecklistItemNotFound
	}
	delete(m.byID, id)
	return nil
}

type memTimelines struct {
	byID map[string]*model.TimelineEntry
}

func newMemTimelines() *memTimelines {
	return &memTimelines{byID: make(map[string]*model.TimelineEntry)}
}

func (m *memTimelines) Create(_ context.Context, entry *model.TimelineEntry) error {
	clone := *entry
	m.byID[entry.ID] = &clone
	return nil
}

func (m *memTimelines) GetByID(_ context.Context, id string) (*model.TimelineEntry, error) {
	entry, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrTimelineEntryNotFound
	}
	clone := *entry
	return &clone, nil
}

func (m *memTimelines) ListByEvent(_ context.Context, eventID string) ([]model.TimelineEntry, error) {
	var entries []model.TimelineEntry
	for _, entry := range m.byID {
		if entry.EventID == eventID {
			entries = append(entries, *entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].StartTime.Before(entries[j].StartTime) })
	return entries, nil
}

func (m *memTimelines) Update(_ context.Context, entry *model.TimelineEntry) error {
	if _, ok := m.byID[entry.ID]; !ok {
		return repository.ErrTimelineEntryNotFound
	}
	clone := *entry
	m.byID[entry.ID] = &clone
	return nil
}

func (m *memTimelines) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrTimelineEntryNotFound
	}
	delete(m.byID, id)
	return nil
}

type memSuppliers struct {
	byID map[string]*model.Supplier
}

func newMemSuppliers() *memSuppliers {
	return &memSuppliers{byID: make(map[string]*model.Supplier)}
}

func (m *memSuppliers) Create(_ context.Context, supplier *model.Supplier) error {
	clone := *supplier
	m.byID[supplier.ID] = &clone
	return nil
}

func (m *memSuppliers) GetByID(_ context.Context, id string) (*model.Supplier, error) {
	s, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrSupplierNotFound
	}
	clone := *s
	return &clone, nil
}

func (m *memSuppliers) ListByUser(_ context.Context, userID string) ([]model.Supplier, error) {
	suppliers := []model.Supplier{}
	for _, s := range m.byID {
		if s.UserID == userID {
			suppliers = append(suppliers, *s)
		}
	}
	sort.Slice(suppliers, func(i, j int) bool { return suppliers[i].Name < suppliers[j].Name })
	return suppliers, nil
}

func (m *memSuppliers) Update(_ context.Context, supplier *model.Supplier) error {
	if _, ok := m.byID[supplier.ID]; !ok {
		return repository.ErrSupplierNotFound
	}
	clone := *supplier
	m.byID[supplier.ID] = &clone
	return nil
}

func (m *memSuppliers) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrSupplierNotFound
	}
	delete(m.byID, id)
	return nil
}

type memVenues struct {
	byID map[string]*model.Venue
}

func newMemVenues() *memVenues {
	return &memVenues{byID: make(map[string]*model.Venue)}
}

func (m *memVenues) Create(_ context.Context, venue *model.Venue) error {
	for _, v := range m.byID {
		if v.EventID == venue.EventID {
			return repository.ErrVenueExists
		}
	}
	clone := *venue
	m.byID[venue.ID] = &clone
	return nil
}

func (m *memVenues) GetByID(_ context.Context, id string) (*model.Venue, error) {
	v, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrVenueNotFound
	}
	clone := *v
	return &clone, nil
}

func (m *memVenues) GetByEvent(_ context.Context, eventID string) (*model.Venue, error) {
	for _, v := range m.byID {
		if v.EventID == eventID {
			clone := *v
			return &clone, nil
		}
	}
	return nil, repository.ErrVenueNotFound
}

func (m *memVenues) Update(_ context.Context, venue *model.Venue) error {
	if _, ok := m.byID[venue.ID]; !ok {
		return repository.ErrVenueNotFound
	}
	clone := *venue
	m.byID[venue.ID] = &clone
	return nil
}

func (m *memVenues) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrVenueNotFound
	}
	delete(m.byID, id)
	return nil
}
