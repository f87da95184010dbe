package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/planora/planora-go/internal/middleware"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/repository"
	"github.com/planora/planora-go/internal/service"
)

const (
	testAccessSecret  = "handler-access-secret"
	testRefreshSecret = "handler-refresh-secret"
)

// fakeUsers counts lookups so tests can assert the guard rejects
// requests before any store access.
type fakeUsers struct {
	byID    map[string]*model.User
	queries int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: make(map[string]*model.User)}
}

func (f *fakeUsers) Create(_ context.Context, user *model.User) error {
	f.queries++
	for _, u := range f.byID {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	clone := *user
	f.byID[user.ID] = &clone
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.queries++
	for _, u := range f.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*model.User, error) {
	f.queries++
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUsers) UpdateLanguage(_ context.Context, id, language string) error {
	f.queries++
	u, ok := f.byID[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Language = language
	return nil
}

type fakeEvents struct {
	byID map[string]*model.Event
}

func newFakeEvents() *fakeEvents {
	return &fakeEvents{byID: make(map[string]*model.Event)}
}

func (f *fakeEvents) Create(_ context.Context, event *model.Event) error {
	clone := *event
	f.byID[event.ID] = &clone
	return nil
}

func (f *fakeEvents) GetByID(_ context.Context, id string) (*model.Event, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	clone := *e
	return &clone, nil
}

func (f *fakeEvents) ListByUser(_ context.Context, userID string) ([]model.Event, error) {
	var events []model.Event
	for _, e := range f.byID {
		if e.UserID == userID {
			events = append(events, *e)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date.After(events[j].Date) })
	return events, nil
}

func (f *fakeEvents) Update(_ context.Context, event *model.Event) error {
	if _, ok := f.byID[event.ID]; !ok {
		return repository.ErrEventNotFound
	}
	clone := *event
	f.byID[event.ID] = &clone
	return nil
}

func (f *fakeEvents) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrEventNotFound
	}
	delete(f.byID, id)
	return nil
}

type harness struct {
	router *chi.Mux
	users  *fakeUsers
	events *fakeEvents
}

func newHarness(t *testing.T, policy service.OwnershipPolicy) *harness {
	t.Helper()

	users := newFakeUsers()
	events := newFakeEvents()

	authHandler := NewAuthHandler(service.NewAuthService(users, testAccessSecret, testRefreshSecret))
	eventHandler := NewEventHandler(service.NewEventService(events, policy))

	r := chi.NewRouter()
	r.Post("/api/v1/auth/register", authHandler.Register)
	r.Post("/api/v1/auth/login", authHandler.Login)
	r.Post("/api/v1/auth/refresh", authHandler.Refresh)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(testAccessSecret))
		r.Get("/api/v1/auth/me", authHandler.Profile)
		r.Post("/api/v1/auth/logout", authHandler.Logout)
		r.Put("/api/v1/auth/language", authHandler.UpdateLanguage)
		r.Get("/api/v1/events", eventHandler.List)
		r.Post("/api/v1/events", eventHandler.Create)
		r.Get("/api/v1/events/{id}", eventHandler.Get)
		r.Put("/api/v1/events/{id}", eventHandler.Update)
		r.Delete("/api/v1/events/{id}", eventHandler.Delete)
		r.Post("/api/v1/events/{id}/duplicate", eventHandler.Duplicate)
	})

	return &harness{router: r, users: users, events: events}
}

func (h *harness) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func (h *harness) register(t *testing.T, email string) model.AuthResponse {
	t.Helper()
	rec := h.do(t, http.MethodPost, "/api/v1/auth/register", "", model.RegisterRequest{
		Email:    email,
		Password: "Sup3rSecret",
		Name:     "Test User",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body)
	}
	var resp model.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal register response: %v", err)
	}
	return resp
}
