package repositories

import (
	"database/sql"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type PackageRepository struct {
	DB *sql.DB
}

func (r PackageRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const packageSelect = `
	SELECT p.id, p.destination_id, p.title, p.duration, p.price,
	       COALESCE(p.description, ''),
	       COALESCE(p.inclusions, ''),
	       COALESCE(p.highlights, ''),
	       p.created_at,
	       COALESCE(d.name, '') AS destination_name,
	       COALESCE(d.state, '') AS state
	FROM packages p
	LEFT JOIN destinations d ON p.destination_id = d.id
`

// List returns every package enriched with its destination name and state.
// The join is left-outer: a package whose destination is gone still shows
// up, with empty destination fields.
func (r PackageRepository) List() ([]models.Package, error) {
	rows, err := r.db().Query(packageSelect + ` ORDER BY d.name, p.price`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPackages(rows)
}

// ListByDestination filters the enriched view to one destination.
func (r PackageRepository) ListByDestination(destinationID int64) ([]models.Package, error) {
	rows, err := r.db().Query(packageSelect+` WHERE p.destination_id = ?`, destinationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPackages(rows)
}

func (r PackageRepository) GetByID(id int64) (models.Package, error) {
	var (
		p      models.Package
		destID sql.NullInt64
	)
	err := r.db().QueryRow(`
		SELECT p.id, p.destination_id, p.title, p.duration, p.price,
		       COALESCE(p.description, ''),
		       COALESCE(p.inclusions, ''),
		       COALESCE(p.highlights, ''),
		       p.created_at,
		       COALESCE(d.name, '') AS destination_name,
		       COALESCE(d.state, '') AS state,
		       COALESCE(d.description, '') AS dest_description
		FROM packages p
		LEFT JOIN destinations d ON p.destination_id = d.id
		WHERE p.id = ?
	`, id).Scan(
		&p.ID, &destID, &p.Title, &p.Duration, &p.Price,
		&p.Description, &p.Inclusions, &p.Highlights, &p.CreatedAt,
		&p.DestinationName, &p.State, &p.DestDescription,
	)
	if err == sql.ErrNoRows {
		return p, domain.NotFoundError{Resource: "package", Err: err}
	}
	if err != nil {
		return p, err
	}
	if destID.Valid {
		p.DestinationID = &destID.Int64
	}
	return p, nil
}

func scanPackages(rows *sql.Rows) ([]models.Package, error) {
	out := []models.Package{}
	for rows.Next() {
		var (
			p      models.Package
			destID sql.NullInt64
		)
		if err := rows.Scan(
			&p.ID, &destID, &p.Title, &p.Duration, &p.Price,
			&p.Description, &p.Inclusions, &p.Highlights, &p.CreatedAt,
			&p.DestinationName, &p.State,
		); err != nil {
			return out, err
		}
		if destID.Valid {
			p.DestinationID = &destID.Int64
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
