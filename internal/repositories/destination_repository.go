package repositories

import (
	"database/sql"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type DestinationRepository struct {
	DB *sql.DB
}

func (r DestinationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns every destination ordered by name. No pagination; the
// catalog is a fixed, small set.
func (r DestinationRepository) List() ([]models.Destination, error) {
	rows, err := r.db().Query(`
		SELECT id, name, state,
		       COALESCE(description, ''),
		       COALESCE(image_url, ''),
		       COALESCE(popular_attractions, ''),
		       created_at
		FROM destinations
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Destination{}
	for rows.Next() {
		var d models.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.State, &d.Description, &d.ImageURL, &d.PopularAttractions, &d.CreatedAt); err != nil {
			return out, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r DestinationRepository) GetByID(id int64) (models.Destination, error) {
	var d models.Destination
	err := r.db().QueryRow(`
		SELECT id, name, state,
		       COALESCE(description, ''),
		       COALESCE(image_url, ''),
		       COALESCE(popular_attractions, ''),
		       created_at
		FROM destinations
		WHERE id = ?
	`, id).Scan(&d.ID, &d.Name, &d.State, &d.Description, &d.ImageURL, &d.PopularAttractions, &d.CreatedAt)
	if err == sql.ErrNoRows {
		return d, domain.NotFoundError{Resource: "destination", Err: err}
	}
	return d, err
}

// UpdateImage overwrites image_url. A zero-row update is still a success;
// the admin tool treats the write as best-effort.
func (r DestinationRepository) UpdateImage(id int64, imageURL string) error {
	_, err := r.db().Exec(`UPDATE destinations SET image_url = ? WHERE id = ?`, imageURL, id)
	return err
}
