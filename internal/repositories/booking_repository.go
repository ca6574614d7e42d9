package repositories

import (
	"database/sql"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingSelect = `
	SELECT b.id, b.package_id, b.customer_name, b.email, b.phone, b.travel_date,
	       b.num_adults, COALESCE(b.num_children, 0),
	       COALESCE(b.special_requests, ''),
	       COALESCE(b.status, 'pending'),
	       b.created_at,
	       COALESCE(p.title, '') AS package_title,
	       COALESCE(d.name, '') AS destination_name
	FROM bookings b
	LEFT JOIN packages p ON b.package_id = p.id
	LEFT JOIN destinations d ON p.destination_id = d.id
`

// Create inserts a validated booking with status pending and returns the
// new id. Defaults (num_children 0, empty special_requests) are applied
// here so a partial payload never produces NULL columns.
func (r BookingRepository) Create(in models.BookingInput) (int64, error) {
	numChildren := 0
	if in.NumChildren != nil {
		numChildren = *in.NumChildren
	}
	numAdults := 0
	if in.NumAdults != nil {
		numAdults = *in.NumAdults
	}

	var packageID any
	if in.PackageID != nil {
		packageID = *in.PackageID
	}

	res, err := r.db().Exec(`
		INSERT INTO bookings
			(package_id, customer_name, email, phone, travel_date, num_adults, num_children, special_requests, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, packageID, in.CustomerName, in.Email, in.Phone, in.TravelDate,
		numAdults, numChildren, in.SpecialRequests, string(models.StatusPending))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns every booking enriched with package title and destination
// name, newest first. Both joins are left-outer so bookings survive a
// deleted package or destination.
func (r BookingRepository) List() ([]models.Booking, error) {
	rows, err := r.db().Query(bookingSelect + ` ORDER BY b.created_at DESC, b.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	b, err := scanBooking(r.db().QueryRow(bookingSelect+` WHERE b.id = ?`, id).Scan)
	if err == sql.ErrNoRows {
		return b, domain.NotFoundError{Resource: "booking", Err: err}
	}
	return b, err
}

// UpdateStatus overwrites the status column. The value is validated by the
// service; a zero-row update (unknown id) still counts as success.
func (r BookingRepository) UpdateStatus(id int64, status models.Status) error {
	_, err := r.db().Exec(`UPDATE bookings SET status = ? WHERE id = ?`, string(status), id)
	return err
}

// Delete hard-deletes a booking. Deleting an id that no longer exists is
// not an error, which keeps the operation idempotent.
func (r BookingRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM bookings WHERE id = ?`, id)
	return err
}

func scanBooking(scan func(dest ...any) error) (models.Booking, error) {
	var (
		b     models.Booking
		pkgID sql.NullInt64
	)
	err := scan(
		&b.ID, &pkgID, &b.CustomerName, &b.Email, &b.Phone, &b.TravelDate,
		&b.NumAdults, &b.NumChildren, &b.SpecialRequests, &b.Status, &b.CreatedAt,
		&b.PackageTitle, &b.DestinationName,
	)
	if err != nil {
		return b, err
	}
	if pkgID.Valid {
		b.PackageID = &pkgID.Int64
	}
	return b, nil
}
