package services

import (
	"bytes"
	"fmt"
	"strings"

	"bennyevents/internal/domain/models"
	"bennyevents/internal/repositories"
	"bennyevents/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders a booking record as a printable summary PDF for the
// operator console.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
}

func (s DocsService) GenerateBookingSummary(id string) ([]byte, string, error) {
	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_summary", "booking_id="+id)
	return buildBookingSummaryPDF(b)
}

func buildBookingSummaryPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Summary", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BENNY EVENTS - BOOKING SUMMARY")
	pdf.Ln(12)

	created := "-"
	if b.CreatedAt != nil {
		created = utils.FormatDateTime(*b.CreatedAt)
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID     : %s", b.ID),
		fmt.Sprintf("Client         : %s", safe(b.ClientName, "-")),
		fmt.Sprintf("Phone          : %s", safe(b.ClientPhone, "-")),
		fmt.Sprintf("Email          : %s", safe(b.ClientEmail, "-")),
		fmt.Sprintf("Category       : %s", safe(b.EventCategory, "-")),
		fmt.Sprintf("Event Date     : %s", safe(b.EventDate, "-")),
		fmt.Sprintf("Location       : %s", safe(b.EventLocation, "-")),
		fmt.Sprintf("Status         : %s", safe(b.Status, "-")),
		fmt.Sprintf("Payment        : %s", safe(b.PaymentStatus, "-")),
		fmt.Sprintf("Contract Value : %s", utils.FormatMoney(b.Amount)),
		fmt.Sprintf("Received       : %s", utils.FormatMoney(b.EffectivePaid())),
		fmt.Sprintf("Balance Due    : %s", utils.FormatMoney(b.BalanceDue())),
		fmt.Sprintf("Booked At      : %s", created),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if strings.TrimSpace(b.Requirements) != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Requirements")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, b.Requirements, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("booking-%s.pdf", b.ID)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
