package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Table definitions for the three aggregates. Careers hang off institutes,
// blog events reference their owning institute and are soft-deleted via
// is_active.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS institutes (
	id SERIAL PRIMARY KEY,
	acronym VARCHAR(10) NOT NULL,
	name VARCHAR(255) NOT NULL,
	address TEXT NOT NULL,
	email VARCHAR(100) NOT NULL,
	phone VARCHAR(20) NOT NULL,
	student_number INTEGER NOT NULL DEFAULT 0,
	teacher_number INTEGER NOT NULL DEFAULT 0,
	website VARCHAR(255),
	facebook VARCHAR(255),
	instagram VARCHAR(255),
	twitter VARCHAR(255),
	youtube VARCHAR(255)
)`,
	`CREATE TABLE IF NOT EXISTS careers (
	id SERIAL PRIMARY KEY,
	career_id INTEGER NOT NULL,
	name VARCHAR(255) NOT NULL,
	acronym VARCHAR(50) NOT NULL,
	email VARCHAR(100),
	phone VARCHAR(20),
	institute_id INTEGER NOT NULL REFERENCES institutes (id)
)`,
	`CREATE TABLE IF NOT EXISTS blog_events (
	id SERIAL PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	short_description TEXT NOT NULL DEFAULT '',
	long_description TEXT NOT NULL DEFAULT '',
	location VARCHAR(255) NOT NULL DEFAULT '',
	start_date DATE,
	end_date DATE,
	category VARCHAR(50) NOT NULL DEFAULT 'INSTITUTIONAL',
	image_path VARCHAR(500) NOT NULL DEFAULT '',
	institute_id INTEGER NOT NULL REFERENCES institutes (id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	is_active BOOLEAN NOT NULL DEFAULT TRUE
)`,
	`CREATE INDEX IF NOT EXISTS idx_careers_institute ON careers (institute_id)`,
	`CREATE INDEX IF NOT EXISTS idx_blog_events_institute ON blog_events (institute_id)`,
	`CREATE INDEX IF NOT EXISTS idx_blog_events_start_date ON blog_events (start_date)`,
}

// EnsureSchema creates the tables and indexes when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
