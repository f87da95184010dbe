package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/planora/planora-go/internal/i18n"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// RenderPDF lays out the snapshot as an A4 document with one section per
// planning resource, with headings localized to lang.
func RenderPDF(snap Snapshot, lang string) ([]byte, error) {
	t := func(key string) string { return i18n.T(lang, key) }

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(t("export.eventPlan")), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(snap.Event.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %s", t("export.date"), snap.Event.Date.Format(dateLayout))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %d", t("export.guests"), snap.Event.GuestCount)), "", 1, "L", false, 0, "")
	if snap.Event.Description != "" {
		pdf.MultiCell(0, 6, tr(snap.Event.Description), "", "L", false)
	}
	pdf.Ln(4)

	if snap.Venue != nil {
		sectionTitle(pdf, tr(t("export.venue")))
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, tr(snap.Venue.Name), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %s", t("export.address"), snap.Venue.Address)), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %d", t("export.capacity"), snap.Venue.Capacity)), "", 1, "L", false, 0, "")
		if snap.Venue.Contact != "" {
			pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %s", t("export.contact"), snap.Venue.Contact)), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	if len(snap.Budget) > 0 {
		sectionTitle(pdf, tr(t("export.budget")))
		tableHeader(pdf, tr, []col{
			{t("export.item"), 90},
			{t("export.estimated"), 35},
			{t("export.actual"), 35},
		})
		pdf.SetFont("Helvetica", "", 9)
		for _, category := range snap.Budget {
			pdf.SetFont("Helvetica", "B", 9)
			pdf.CellFormat(160, 6, tr(category.Name), "B", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			for _, item := range category.Items {
				pdf.CellFormat(90, 6, tr(item.Name), "", 0, "L", false, 0, "")
				pdf.CellFormat(35, 6, amount(item.EstimatedCost), "", 0, "R", false, 0, "")
				pdf.CellFormat(35, 6, amount(item.ActualCost), "", 1, "R", false, 0, "")
			}
		}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(90, 7, tr(t("export.total")), "T", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, amount(snap.Summary.TotalEstimated), "T", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, amount(snap.Summary.TotalActual), "T", 1, "R", false, 0, "")
		pdf.CellFormat(90, 7, tr(t("export.variance")), "", 0, "L", false, 0, "")
		pdf.CellFormat(70, 7, amount(snap.Summary.Variance), "", 1, "R", false, 0, "")
		pdf.Ln(4)
	}

	if len(snap.Checklist) > 0 {
		sectionTitle(pdf, tr(t("export.checklist")))
		tableHeader(pdf, tr, []col{
			{t("export.task"), 100},
			{t("export.done"), 25},
			{t("export.dueDate"), 35},
		})
		pdf.SetFont("Helvetica", "", 9)
		for _, item := range snap.Checklist {
			done := t("export.no")
			if item.Completed {
				done = t("export.yes")
			}
			pdf.CellFormat(100, 6, tr(item.Title), "", 0, "L", false, 0, "")
			pdf.CellFormat(25, 6, tr(done), "", 0, "C", false, 0, "")
			pdf.CellFormat(35, 6, formatDate(item.DueDate), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	if len(snap.Timeline) > 0 {
		sectionTitle(pdf, tr(t("export.timeline")))
		tableHeader(pdf, tr, []col{
			{t("export.startTime"), 25},
			{t("export.endTime"), 25},
			{"", 70},
			{t("export.responsible"), 40},
		})
		pdf.SetFont("Helvetica", "", 9)
		for _, entry := range snap.Timeline {
			end := ""
			if entry.EndTime != nil {
				end = entry.EndTime.Format(timeLayout)
			}
			pdf.CellFormat(25, 6, entry.StartTime.Format(timeLayout), "", 0, "L", false, 0, "")
			pdf.CellFormat(25, 6, end, "", 0, "L", false, 0, "")
			pdf.CellFormat(70, 6, tr(entry.Title), "", 0, "L", false, 0, "")
			pdf.CellFormat(40, 6, tr(entry.ResponsiblePerson), "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type col struct {
	title string
	width float64
}

func sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func tableHeader(pdf *fpdf.Fpdf, tr func(string) string, cols []col) {
	pdf.SetFont("Helvetica", "B", 9)
	for i, c := range cols {
		ln := 0
		if i == len(cols)-1 {
			ln = 1
		}
		pdf.CellFormat(c.width, 6, tr(c.title), "B", ln, "L", false, 0, "")
	}
}

func amount(v float64) string {
	return fmt.Sprintf("%.2f EUR", v)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
