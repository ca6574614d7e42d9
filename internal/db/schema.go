package db

import "database/sql"

// EnsureSchema creates the three catalog/booking tables when missing.
// No cascade rules: bookings keep their package_id even after the package
// is removed, and listings degrade the join fields instead of failing.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS destinations (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			state VARCHAR(255) NOT NULL,
			description TEXT,
			image_url VARCHAR(512),
			popular_attractions TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS packages (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			destination_id BIGINT NULL,
			title VARCHAR(255) NOT NULL,
			duration VARCHAR(100) NOT NULL,
			price DECIMAL(10,2) NOT NULL,
			description TEXT,
			inclusions TEXT,
			highlights TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			KEY idx_destination (destination_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			package_id BIGINT NULL,
			customer_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(100) NOT NULL,
			travel_date VARCHAR(50) NOT NULL,
			num_adults INT NOT NULL,
			num_children INT DEFAULT 0,
			special_requests TEXT,
			status VARCHAR(20) DEFAULT 'pending',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			KEY idx_package (package_id),
			KEY idx_created (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}

	for _, ddl := range stmts {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
