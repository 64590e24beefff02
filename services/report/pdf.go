// File: services/report/pdf.go
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"salonapi/config"
	"salonapi/models"
)

// RenderPDF produces the management report as a PDF in memory: summary
// totals, revenue and stylist bar charts, the service ranking table,
// the booking status breakdown and the ratings table.
func RenderPDF(summary *models.ReportSummary) ([]byte, error) {
	cfg := config.AppConfig

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()
	// Core fonts are cp1252; accented Spanish text must go through the
	// translator.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, tr(cfg.ShopName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 9, tr("Reporte de gestión"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Periodo: %s", summary.Range.Label)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generado: %s", time.Now().Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Resumen", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Ingresos totales: $%.2f", summary.Totals.TotalRevenue), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Citas pagadas: %d", summary.Totals.TotalBookings), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Revenue per bucket as a bar chart, falling back to a note when the
	// window produced no rows.
	sectionTitle(pdf, "Ingresos por periodo")
	if len(summary.RevenueByPeriod) == 0 {
		emptyNote(pdf)
	} else {
		bars := make([]bar, 0, len(summary.RevenueByPeriod))
		for _, b := range summary.RevenueByPeriod {
			bars = append(bars, bar{label: b.Period, value: b.Total})
		}
		drawBarChart(pdf, bars)
	}

	sectionTitle(pdf, "Ingresos por estilista")
	if len(summary.RevenueByStylist) == 0 {
		emptyNote(pdf)
	} else {
		bars := make([]bar, 0, len(summary.RevenueByStylist))
		for _, r := range summary.RevenueByStylist {
			bars = append(bars, bar{label: tr(r.StylistName), value: r.TotalRevenue})
		}
		drawBarChart(pdf, bars)
	}

	sectionTitle(pdf, tr("Servicios más vendidos"))
	if len(summary.TopServices) == 0 {
		emptyNote(pdf)
	} else {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(95, 7, "Servicio", "B", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, "Citas", "B", 0, "C", false, 0, "")
		pdf.CellFormat(0, 7, "Ingresos", "B", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, s := range summary.TopServices {
			pdf.CellFormat(95, 7, tr(s.ServiceName), "", 0, "L", false, 0, "")
			pdf.CellFormat(40, 7, fmt.Sprintf("%d", s.BookingsCount), "", 0, "C", false, 0, "")
			pdf.CellFormat(0, 7, fmt.Sprintf("$%.2f", s.TotalRevenue), "", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	sectionTitle(pdf, "Citas por estado")
	if len(summary.BookingsByStatus) == 0 {
		emptyNote(pdf)
	} else {
		total := 0
		for _, sc := range summary.BookingsByStatus {
			total += sc.Count
		}
		pdf.SetFont("Helvetica", "", 11)
		for _, sc := range summary.BookingsByStatus {
			pct := 0.0
			if total > 0 {
				pct = float64(sc.Count) * 100 / float64(total)
			}
			pdf.CellFormat(0, 6, fmt.Sprintf("%s: %d (%.1f%%)", sc.Status, sc.Count, pct), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	sectionTitle(pdf, "Calificaciones por estilista")
	if len(summary.RatingsByStylist) == 0 {
		emptyNote(pdf)
	} else {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(95, 7, "Estilista", "B", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, tr("Reseñas"), "B", 0, "C", false, 0, "")
		pdf.CellFormat(0, 7, "Promedio", "B", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, r := range summary.RatingsByStylist {
			pdf.CellFormat(95, 7, tr(r.StylistName), "", 0, "L", false, 0, "")
			pdf.CellFormat(40, 7, fmt.Sprintf("%d", r.RatingsCount), "", 0, "C", false, 0, "")
			pdf.CellFormat(0, 7, fmt.Sprintf("%.2f / 5", r.AvgRating), "", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type bar struct {
	label string
	value float64
}

const maxBars = 8

// drawBarChart draws up to maxBars vertical bars with axes, the value
// above each bar and a truncated label under it.
func drawBarChart(pdf *gofpdf.Fpdf, bars []bar) {
	if len(bars) > maxBars {
		bars = bars[:maxBars]
	}

	const chartH = 55.0
	const chartW = 170.0

	if pdf.GetY()+chartH+20 > 270 {
		pdf.AddPage()
	}

	originX := pdf.GetX()
	topY := pdf.GetY() + 6
	baseY := topY + chartH

	maxVal := 0.0
	for _, b := range bars {
		if b.value > maxVal {
			maxVal = b.value
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Axes.
	pdf.SetDrawColor(60, 60, 60)
	pdf.Line(originX, topY, originX, baseY)
	pdf.Line(originX, baseY, originX+chartW, baseY)

	slot := chartW / float64(len(bars))
	barW := slot * 0.6

	pdf.SetFillColor(13, 110, 253)
	pdf.SetFont("Helvetica", "", 8)
	for i, b := range bars {
		h := chartH * (b.value / maxVal)
		x := originX + float64(i)*slot + (slot-barW)/2
		pdf.Rect(x, baseY-h, barW, h, "F")

		pdf.SetXY(x-3, baseY-h-4)
		pdf.CellFormat(barW+6, 4, fmt.Sprintf("$%.0f", b.value), "", 0, "C", false, 0, "")

		label := b.label
		if len(label) > 14 {
			label = label[:14]
		}
		pdf.SetXY(x-3, baseY+1)
		pdf.CellFormat(barW+6, 4, label, "", 0, "C", false, 0, "")
	}

	pdf.SetY(baseY + 8)
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	if pdf.GetY() > 245 {
		pdf.AddPage()
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func emptyNote(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "I", 11)
	pdf.CellFormat(0, 7, "Sin datos en el periodo seleccionado.", "", 1, "L", false, 0, "")
	pdf.Ln(2)
}
