package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSeedCatalogSkipsWhenDestinationsExist(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

	if err := SeedCatalog(conn); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("seed inserted into non-empty catalog: %v", err)
	}
}

func TestSeedCatalogInsertsFullCatalogOnce(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	destPrep := mock.ExpectPrepare("INSERT INTO destinations")
	for i := range seedDestinations {
		destPrep.ExpectExec().WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}

	pkgPrep := mock.ExpectPrepare("INSERT INTO packages")
	for i := range seedPackages {
		pkgPrep.ExpectExec().WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}

	if err := SeedCatalog(conn); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
