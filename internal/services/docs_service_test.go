package services

import (
	"strings"
	"testing"
	"time"

	"backend/internal/domain/models"
)

func TestDocsServiceGenerateVoucher(t *testing.T) {
	pkgID := int64(1)
	loader := func(id int64) (models.Booking, error) {
		return models.Booking{
			ID:              id,
			PackageID:       &pkgID,
			CustomerName:    "Asha",
			Email:           "a@x.com",
			Phone:           "999",
			TravelDate:      "2024-12-01",
			NumAdults:       2,
			NumChildren:     1,
			SpecialRequests: "Vegetarian meals",
			Status:          models.StatusPending,
			CreatedAt:       time.Now(),
			PackageTitle:    "Valparai Tea Estate Tour",
			DestinationName: "Valparai",
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateVoucher(5)
	if err != nil {
		t.Fatalf("GenerateVoucher returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateVoucher returned empty data")
	}
	if !strings.HasPrefix(filename, "VOUCHER_5_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}
