package notify

import (
	"fmt"
	"net/url"
	"strings"

	"backend/internal/domain/models"
)

// BookingSummary renders the human-readable notification for a stored
// booking. Enrichment fields may be empty when the package reference no
// longer resolves; the summary degrades to "General Inquiry" instead.
func BookingSummary(b models.Booking, agencyWhatsApp string) (subject, message string) {
	pkg := strings.TrimSpace(b.PackageTitle)
	if pkg == "" {
		pkg = "General Inquiry"
	}

	subject = fmt.Sprintf("New booking inquiry #%d - %s", b.ID, pkg)

	lines := []string{
		fmt.Sprintf("Booking ID     : %d", b.ID),
		fmt.Sprintf("Customer       : %s", b.CustomerName),
		fmt.Sprintf("Email          : %s", b.Email),
		fmt.Sprintf("Phone          : %s", b.Phone),
		fmt.Sprintf("Package        : %s", pkg),
	}
	if strings.TrimSpace(b.DestinationName) != "" {
		lines = append(lines, fmt.Sprintf("Destination    : %s", b.DestinationName))
	}
	lines = append(lines,
		fmt.Sprintf("Travel Date    : %s", b.TravelDate),
		fmt.Sprintf("Party          : %d adult(s), %d child(ren)", b.NumAdults, b.NumChildren),
		fmt.Sprintf("Status         : %s", b.Status),
	)
	if strings.TrimSpace(b.SpecialRequests) != "" {
		lines = append(lines, fmt.Sprintf("Requests       : %s", b.SpecialRequests))
	}
	if link := WhatsAppLink(agencyWhatsApp, b, pkg); link != "" {
		lines = append(lines, "", "Reply on WhatsApp: "+link)
	}

	return subject, strings.Join(lines, "\n")
}

// WhatsAppLink builds a wa.me deep link prefilled with a short reply text.
// Empty when no agency number is configured.
func WhatsAppLink(number string, b models.Booking, pkg string) string {
	number = strings.NewReplacer("+", "", " ", "", "-", "").Replace(strings.TrimSpace(number))
	if number == "" {
		return ""
	}
	text := fmt.Sprintf("Hello %s, regarding your booking inquiry #%d (%s) for %s.",
		b.CustomerName, b.ID, pkg, b.TravelDate)
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(text)
}
