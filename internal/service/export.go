package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/planora/planora-go/internal/export"
	"github.com/planora/planora-go/internal/i18n"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/repository"
)

// Export formats.
const (
	FormatPDF   = "pdf"
	FormatExcel = "excel"
	FormatJSON  = "json"
)

// ErrInvalidExportFormat rejects unknown export formats.
var ErrInvalidExportFormat = errors.New("invalid export format")

// ExportResult is a rendered document ready to send.
type ExportResult struct {
	Data        []byte
	ContentType string
	Filename    string
}

// userGetter is the user lookup used to resolve the owner's locale.
type userGetter interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// ExportService assembles an event snapshot and renders it. Documents are
// localized to the owner's stored language, not the request's.
type ExportService struct {
	users      userGetter
	events     eventGetter
	budgets    BudgetStore
	checklists ChecklistStore
	timelines  TimelineStore
	venues     VenueStore
	policy     OwnershipPolicy
}

// NewExportService creates a new ExportService.
func NewExportService(users userGetter, events eventGetter, budgets BudgetStore, checklists ChecklistStore, timelines TimelineStore, venues VenueStore, policy OwnershipPolicy) *ExportService {
	return &ExportService{
		users:      users,
		events:     events,
		budgets:    budgets,
		checklists: checklists,
		timelines:  timelines,
		venues:     venues,
		policy:     policy,
	}
}

// Export renders an owned event in the given format.
func (s *ExportService) Export(ctx context.Context, userID, eventID, format string) (*ExportResult, error) {
	event, err := authorizeEvent(ctx, s.events, s.policy, eventID, userID)
	if err != nil {
		return nil, err
	}

	snap, err := s.snapshot(ctx, event)
	if err != nil {
		return nil, err
	}

	lang := i18n.DefaultLanguage
	if user, err := s.users.GetByID(ctx, userID); err == nil && i18n.IsSupported(user.Language) {
		lang = user.Language
	}

	base := filenameBase(event.Name)
	switch format {
	case FormatPDF:
		data, err := export.RenderPDF(*snap, lang)
		if err != nil {
			return nil, err
		}
		return &ExportResult{Data: data, ContentType: "application/pdf", Filename: base + ".pdf"}, nil
	case FormatExcel:
		data, err := export.RenderExcel(*snap, lang)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			Data:        data,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Filename:    base + ".xlsx",
		}, nil
	case FormatJSON:
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return nil, err
		}
		return &ExportResult{Data: data, ContentType: "application/json", Filename: base + ".json"}, nil
	default:
		return nil, ErrInvalidExportFormat
	}
}

func (s *ExportService) snapshot(ctx context.Context, event *model.Event) (*export.Snapshot, error) {
	snap := &export.Snapshot{Event: *event}

	venue, err := s.venues.GetByEvent(ctx, event.ID)
	switch {
	case err == nil:
		snap.Venue = venue
	case !errors.Is(err, repository.ErrVenueNotFound):
		return nil, err
	}

	categories, err := s.budgets.ListCategoriesByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	snap.Budget = make([]model.CategoryWithItems, 0, len(categories))
	for _, c := range categories {
		items, err := s.budgets.ListItemsByCategory(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []model.BudgetItem{}
		}

		cs := model.CategorySummary{Name: c.Name}
		for _, item := range items {
			cs.Estimated += item.EstimatedCost
			cs.Actual += item.ActualCost
		}
		snap.Summary.TotalEstimated += cs.Estimated
		snap.Summary.TotalActual += cs.Actual
		snap.Summary.Categories = append(snap.Summary.Categories, cs)
		snap.Budget = append(snap.Budget, model.CategoryWithItems{BudgetCategory: c, Items: items})
	}
	snap.Summary.Variance = snap.Summary.TotalActual - snap.Summary.TotalEstimated
	if snap.Summary.Categories == nil {
		snap.Summary.Categories = []model.CategorySummary{}
	}

	if snap.Checklist, err = s.checklists.ListByEvent(ctx, event.ID); err != nil {
		return nil, err
	}
	if snap.Checklist == nil {
		snap.Checklist = []model.ChecklistItem{}
	}
	if snap.Timeline, err = s.timelines.ListByEvent(ctx, event.ID); err != nil {
		return nil, err
	}
	if snap.Timeline == nil {
		snap.Timeline = []model.TimelineEntry{}
	}
	return snap, nil
}

// filenameBase turns an event name into a safe attachment filename stem.
func filenameBase(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	stem := strings.Trim(b.String(), "-")
	if stem == "" {
		stem = "event"
	}
	return fmt.Sprintf("%s-plan", stem)
}
