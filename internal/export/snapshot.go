// Package export renders a full event plan as PDF, Excel or JSON.
package export

import "github.com/planora/planora-go/internal/model"

// Snapshot is everything that goes into an export, collected up front so
// the renderers never touch storage.
type Snapshot struct {
	Event     model.Event               `json:"event"`
	Venue     *model.Venue              `json:"venue,omitempty"`
	Budget    []model.CategoryWithItems `json:"budget"`
	Summary   model.BudgetSummary       `json:"summary"`
	Checklist []model.ChecklistItem     `json:"checklist"`
	Timeline  []model.TimelineEntry     `json:"timeline"`
}
