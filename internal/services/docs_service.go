package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders a booking inquiry as a printable voucher PDF for the
// admin panel.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
	Loader      func(int64) (models.Booking, error)
}

func (s DocsService) GenerateVoucher(bookingID int64) ([]byte, string, error) {
	booking, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_voucher", fmt.Sprintf("booking_id=%d", bookingID))
	return buildVoucherPDF(booking)
}

func (s DocsService) loadBooking(bookingID int64) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	return s.BookingRepo.GetByID(bookingID)
}

func buildVoucherPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID     : #%d", b.ID),
		fmt.Sprintf("Customer       : %s", safe(b.CustomerName, "-")),
		fmt.Sprintf("Email          : %s", safe(b.Email, "-")),
		fmt.Sprintf("Phone          : %s", safe(b.Phone, "-")),
		fmt.Sprintf("Package        : %s", safe(b.PackageTitle, "General Inquiry")),
		fmt.Sprintf("Destination    : %s", safe(b.DestinationName, "-")),
		fmt.Sprintf("Travel Date    : %s", safe(b.TravelDate, "-")),
		fmt.Sprintf("Adults         : %d", b.NumAdults),
		fmt.Sprintf("Children       : %d", b.NumChildren),
		fmt.Sprintf("Status         : %s", strings.ToUpper(string(b.Status))),
		fmt.Sprintf("Submitted      : %s", b.CreatedAt.Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if strings.TrimSpace(b.SpecialRequests) != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Special Requests:")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, b.SpecialRequests, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Generated %s. This voucher confirms receipt of the inquiry, not the reservation.",
		time.Now().Format("2006-01-02 15:04")), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VOUCHER_%d_%s.pdf", b.ID, safeFilenamePart(b.CustomerName))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
