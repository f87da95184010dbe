package export

import (
	"bytes"
	"fmt"

	"github.com/planora/planora-go/internal/i18n"
	"github.com/xuri/excelize/v2"
)

// RenderExcel produces a workbook with one sheet per planning resource,
// with sheet names and headers localized to lang.
func RenderExcel(snap Snapshot, lang string) ([]byte, error) {
	t := func(key string) string { return i18n.T(lang, key) }

	f := excelize.NewFile()
	defer f.Close()

	overview := t("export.eventPlan")
	f.SetSheetName("Sheet1", overview)
	setRows(f, overview, [][]any{
		{snap.Event.Name},
		{t("export.date"), snap.Event.Date.Format(dateLayout)},
		{t("export.guests"), snap.Event.GuestCount},
		{snap.Event.Description},
	})

	if snap.Venue != nil {
		sheet := t("export.venue")
		f.NewSheet(sheet)
		setRows(f, sheet, [][]any{
			{snap.Venue.Name},
			{t("export.address"), snap.Venue.Address},
			{t("export.capacity"), snap.Venue.Capacity},
			{t("export.contact"), snap.Venue.Contact},
		})
	}

	budget := t("export.budget")
	f.NewSheet(budget)
	rows := [][]any{{
		t("export.category"), t("export.item"),
		t("export.estimated"), t("export.actual"),
	}}
	for _, category := range snap.Budget {
		for _, item := range category.Items {
			rows = append(rows, []any{category.Name, item.Name, item.EstimatedCost, item.ActualCost})
		}
	}
	rows = append(rows, []any{t("export.total"), "", snap.Summary.TotalEstimated, snap.Summary.TotalActual})
	rows = append(rows, []any{t("export.variance"), "", "", snap.Summary.Variance})
	setRows(f, budget, rows)

	checklist := t("export.checklist")
	f.NewSheet(checklist)
	rows = [][]any{{t("export.task"), t("export.done"), t("export.dueDate")}}
	for _, item := range snap.Checklist {
		done := t("export.no")
		if item.Completed {
			done = t("export.yes")
		}
		rows = append(rows, []any{item.Title, done, formatDate(item.DueDate)})
	}
	setRows(f, checklist, rows)

	timeline := t("export.timeline")
	f.NewSheet(timeline)
	rows = [][]any{{
		t("export.startTime"), t("export.endTime"),
		t("export.task"), t("export.responsible"),
	}}
	for _, entry := range snap.Timeline {
		end := ""
		if entry.EndTime != nil {
			end = entry.EndTime.Format(timeLayout)
		}
		rows = append(rows, []any{entry.StartTime.Format(timeLayout), end, entry.Title, entry.ResponsiblePerson})
	}
	setRows(f, timeline, rows)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRows(f *excelize.File, sheet string, rows [][]any) {
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		// SetSheetRow only fails on malformed references, which these are not.
		_ = f.SetSheetRow(sheet, cell, &row)
	}
}
