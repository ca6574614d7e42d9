package notify

import (
	"strings"
	"testing"

	"backend/internal/domain/models"
)

func TestBookingSummaryIncludesCoreFields(t *testing.T) {
	b := models.Booking{
		ID:              12,
		CustomerName:    "Asha",
		Email:           "a@x.com",
		Phone:           "999",
		TravelDate:      "2024-12-01",
		NumAdults:       2,
		NumChildren:     1,
		Status:          models.StatusPending,
		PackageTitle:    "Munnar Tea Gardens",
		DestinationName: "Munnar",
	}

	subject, message := BookingSummary(b, "919876543210")
	if !strings.Contains(subject, "#12") || !strings.Contains(subject, "Munnar Tea Gardens") {
		t.Fatalf("unexpected subject %q", subject)
	}
	for _, want := range []string{"Asha", "a@x.com", "Munnar", "2 adult(s), 1 child(ren)", "wa.me/919876543210"} {
		if !strings.Contains(message, want) {
			t.Fatalf("summary missing %q:\n%s", want, message)
		}
	}
}

func TestBookingSummaryGeneralInquiryFallback(t *testing.T) {
	b := models.Booking{ID: 3, CustomerName: "Ravi", Status: models.StatusPending}

	subject, message := BookingSummary(b, "")
	if !strings.Contains(subject, "General Inquiry") {
		t.Fatalf("subject missing fallback: %q", subject)
	}
	if strings.Contains(message, "wa.me") {
		t.Fatalf("unexpected WhatsApp link without configured number")
	}
}

func TestWhatsAppLinkEscapesText(t *testing.T) {
	b := models.Booking{ID: 1, CustomerName: "A & B", TravelDate: "2024-12-01"}
	link := WhatsAppLink("+91 98765", b, "Coorg Nature Escape")
	if !strings.HasPrefix(link, "https://wa.me/9198765?text=") {
		t.Fatalf("unexpected link prefix: %q", link)
	}
	if strings.Contains(link, " ") {
		t.Fatalf("link not escaped: %q", link)
	}
}
