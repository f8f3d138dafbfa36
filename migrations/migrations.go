package migrations

import "database/sql"

// AutoMigrate creates the application's tables if they do not exist.
//
// The UNIQUE constraint on users.username backs the service-level lookup so
// a racing duplicate insert loses at commit instead of creating two rows.
// The link tables deliberately carry no foreign keys: deleting an event or a
// user leaves its link rows behind, and full views simply stop joining to
// them. The serial link id orders each collection by insertion.
func AutoMigrate(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			date TEXT NOT NULL,
			location TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS event_creator_link (
			id BIGSERIAL PRIMARY KEY,
			event_id BIGINT NOT NULL,
			user_id BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS event_attendee_link (
			id BIGSERIAL PRIMARY KEY,
			event_id BIGINT NOT NULL,
			user_id BIGINT NOT NULL
		)`,
	}
	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}
