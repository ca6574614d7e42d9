package repositories

import (
	"testing"
	"time"

	"backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDestinationListOrdersByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "state", "description", "image_url", "popular_attractions", "created_at"}).
		AddRow(9, "Chikkamagaluru", "Karnataka", "Coffee land", "/images/chikkamagaluru.jpg", "Mullayanagiri Peak", now).
		AddRow(10, "Coorg", "Karnataka", "Scotland of India", "/images/coorg.jpg", "Abbey Falls", now)

	mock.ExpectQuery("ORDER BY name ASC").WillReturnRows(rows)

	repo := DestinationRepository{DB: db}
	list, err := repo.List()
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Chikkamagaluru" {
		t.Fatalf("unexpected destinations: %+v", list)
	}
}

func TestDestinationGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM destinations").WithArgs(int64(77)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := DestinationRepository{DB: db}
	_, err = repo.GetByID(77)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDestinationUpdateImageZeroRowsStillSucceeds(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE destinations SET image_url").
		WithArgs("/images/new.jpg", int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := DestinationRepository{DB: db}
	if err := repo.UpdateImage(123, "/images/new.jpg"); err != nil {
		t.Fatalf("update image error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
