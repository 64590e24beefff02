// File: services/invoice/pdf.go
package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"salonapi/config"
	"salonapi/models"
)

// Data carries everything printed on an invoice (or transfer order) PDF.
type Data struct {
	InvoiceNumber string
	Method        models.PaymentMethod
	IssuedAt      time.Time
	Amount        float64

	BookingID string
	StartsAt  time.Time

	Client  *models.User
	Stylist *models.User

	ServiceName string
	DurationMin int
	Price       float64
}

func methodLabel(m models.PaymentMethod) string {
	if m == models.PaymentMethodCard {
		return "Tarjeta"
	}
	return "Transferencia Banco Pichincha"
}

// Render produces the invoice PDF in memory.
func Render(d Data) ([]byte, error) {
	cfg := config.AppConfig

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()
	// Core fonts are cp1252; accented Spanish text must go through the
	// translator.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header: shop identity on the left, invoice number on the right.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(110, 10, tr(cfg.ShopName))
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("FACTURA #%s", d.InvoiceNumber), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr(cfg.ShopAddress), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, cfg.ShopTaxID, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Fecha de emisión: %s", d.IssuedAt.Format("02/01/2006 15:04"))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Método de pago: %s", methodLabel(d.Method))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("ID de reserva: %s", d.BookingID), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeParty(pdf, tr, "Datos del cliente", d.Client, "Cliente")
	writeParty(pdf, tr, "Datos del estilista", d.Stylist, "")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Detalle de la cita", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, fmt.Sprintf("Fecha y hora: %s", d.StartsAt.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Duración: %d minutos", d.DurationMin)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Single-row service table: one service per booking.
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(90, 7, "Servicio", "B", 0, "L", false, 0, "")
	pdf.CellFormat(45, 7, tr("Duración (min)"), "B", 0, "C", false, 0, "")
	pdf.CellFormat(0, 7, "Precio", "B", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(90, 7, tr(d.ServiceName), "", 0, "L", false, 0, "")
	pdf.CellFormat(45, 7, fmt.Sprintf("%d", d.DurationMin), "", 0, "C", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("$%.2f", d.Price), "", 1, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("TOTAL: $%.2f", d.Amount), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeParty(pdf *gofpdf.Fpdf, tr func(string) string, title string, u *models.User, fallback string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	if u != nil {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Nombre: %s", u.FullName())), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("Email: %s", u.Email), "", 1, "L", false, 0, "")
	} else if fallback != "" {
		// The account may have been deleted since the booking was made.
		pdf.CellFormat(0, 6, fmt.Sprintf("Nombre: %s", fallback), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}
