package booking

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mehndi-service/internal/domain/booking"

	"github.com/phpdave11/gofpdf"
)

// Invoice renders a PDF invoice for the booking and returns it with a
// download file name.
func (s *BookingService) Invoice(ctx context.Context, idOrRef string) ([]byte, string, error) {
	b, err := s.GetBooking(ctx, idOrRef)
	if err != nil {
		return nil, "", err
	}

	data, err := renderInvoice(b, time.Now())
	if err != nil {
		return nil, "", fmt.Errorf("failed to render invoice: %w", err)
	}
	return data, "invoice-" + b.BookingID + ".pdf", nil
}

func renderInvoice(b *booking.Booking, issued time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+b.BookingID, false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+b.BookingID)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+issued.Format("02 Jan 2006"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Status     : "+b.Status)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range []string{b.Name, b.Phone, b.Email, b.Location} {
		if strings.TrimSpace(line) == "" {
			continue
		}
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(80, 8, "Service", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "Date & time", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Guests", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(80, 8, tr(b.Service), "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, b.Date.Format("02 Jan 2006")+" "+b.Time, "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, strconv.Itoa(b.Guests), "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, formatAmount(b.Amount), "1", 1, "R", false, 0, "")
	pdf.Ln(4)

	totals := [][2]string{
		{"Total", formatAmount(b.Amount)},
		{"Advance paid", formatAmount(b.Advance)},
		{"Balance due", formatAmount(b.Balance())},
	}
	for i, row := range totals {
		style := ""
		if i == len(totals)-1 {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 12)
		pdf.CellFormat(150, 8, row[0], "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, row[1], "", 1, "R", false, 0, "")
	}

	if notes := strings.TrimSpace(b.Notes); notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, tr("Notes: "+notes), "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatAmount renders an amount in rupees with Indian digit grouping.
func formatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	whole, frac := s[:len(s)-3], s[len(s)-2:]

	var grouped string
	if len(whole) <= 3 {
		grouped = whole
	} else {
		head, tail := whole[:len(whole)-3], whole[len(whole)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		grouped = strings.Join(parts, ",") + "," + tail
	}

	out := "Rs. " + grouped + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
