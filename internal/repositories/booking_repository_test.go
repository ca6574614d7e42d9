package repositories

import (
	"testing"
	"time"

	"backend/internal/domain"
	"backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestBookingCreateInsertsPendingWithDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	adults := 2
	pkgID := int64(1)

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(pkgID, "Asha", "a@x.com", "999", "2024-12-01", adults, 0, "", "pending").
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := BookingRepository{DB: db}
	id, err := repo.Create(models.BookingInput{
		PackageID:    &pkgID,
		CustomerName: "Asha",
		Email:        "a@x.com",
		Phone:        "999",
		TravelDate:   "2024-12-01",
		NumAdults:    &adults,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateGeneralInquiryInsertsNullPackage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	adults := 1
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(nil, "Ravi", "r@x.com", "888", "2025-01-15", adults, 0, "", "pending").
		WillReturnResult(sqlmock.NewResult(3, 1))

	repo := BookingRepository{DB: db}
	id, err := repo.Create(models.BookingInput{
		CustomerName: "Ravi",
		Email:        "r@x.com",
		Phone:        "888",
		TravelDate:   "2025-01-15",
		NumAdults:    &adults,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if id != 3 {
		t.Fatalf("expected id 3, got %d", id)
	}
}

func TestBookingListEnrichmentDegradesForDanglingPackage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	cols := []string{
		"id", "package_id", "customer_name", "email", "phone", "travel_date",
		"num_adults", "num_children", "special_requests", "status", "created_at",
		"package_title", "destination_name",
	}
	rows := sqlmock.NewRows(cols).
		AddRow(2, 99, "Ravi", "r@x.com", "888", "2025-01-15", 1, 0, "", "pending", now, "", "").
		AddRow(1, 1, "Asha", "a@x.com", "999", "2024-12-01", 2, 1, "window seat", "confirmed", now.Add(-time.Hour), "Valparai Tea Estate Tour", "Valparai")

	mock.ExpectQuery("FROM bookings b").WillReturnRows(rows)

	repo := BookingRepository{DB: db}
	list, err := repo.List()
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(list))
	}

	// Newest first; booking 2 references a deleted package.
	if list[0].ID != 2 || list[0].PackageTitle != "" || list[0].DestinationName != "" {
		t.Fatalf("dangling booking not degraded: %+v", list[0])
	}
	if list[1].PackageTitle != "Valparai Tea Estate Tour" || list[1].Status != models.StatusConfirmed {
		t.Fatalf("enriched booking wrong: %+v", list[1])
	}
}

func TestBookingGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings b").WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := BookingRepository{DB: db}
	_, err = repo.GetByID(42)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBookingUpdateStatusAndDeleteAreIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// Zero rows affected must still succeed for both operations.
	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs("confirmed", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM bookings").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := BookingRepository{DB: db}
	if err := repo.UpdateStatus(5, models.StatusConfirmed); err != nil {
		t.Fatalf("update status error: %v", err)
	}
	if err := repo.Delete(5); err != nil {
		t.Fatalf("delete error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
