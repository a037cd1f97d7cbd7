package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// migrations are executed in order at startup. Each statement is
// idempotent so restarts are safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS properties (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		realtor_name TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		neighborhood TEXT NOT NULL,
		zip_code TEXT NOT NULL,
		description TEXT NOT NULL,
		listing_type TEXT NOT NULL,
		property_type TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		photo_urls TEXT[] NOT NULL DEFAULT '{}',
		photo360_url TEXT NOT NULL DEFAULT '',
		video_embed_code TEXT NOT NULL DEFAULT '',
		map_embed_code TEXT NOT NULL DEFAULT '',
		price DOUBLE PRECISION NOT NULL DEFAULT 0,
		condo_fee DOUBLE PRECISION NOT NULL DEFAULT 0,
		iptu DOUBLE PRECISION NOT NULL DEFAULT 0,
		private_area DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_area DOUBLE PRECISION NOT NULL DEFAULT 0,
		bedrooms INTEGER NOT NULL DEFAULT 0,
		bathrooms INTEGER NOT NULL DEFAULT 0,
		garage_spots INTEGER NOT NULL DEFAULT 0,
		year_built INTEGER NOT NULL DEFAULT 0,
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		show_video BOOLEAN NOT NULL DEFAULT FALSE,
		has_pool BOOLEAN NOT NULL DEFAULT FALSE,
		has_grill BOOLEAN NOT NULL DEFAULT FALSE,
		has_fireplace BOOLEAN NOT NULL DEFAULT FALSE,
		has_balcony BOOLEAN NOT NULL DEFAULT FALSE,
		has_yard BOOLEAN NOT NULL DEFAULT FALSE,
		is_furnished BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_user_id ON properties(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_featured ON properties(featured)`,
	`CREATE TABLE IF NOT EXISTS site_settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		data JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate creates the schema if it does not exist yet.
func (db *Database) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SeedPrincipalAdmin inserts the bootstrap principal admin when no account
// holds the role yet. The password arrives already hashed. Exactly one
// principal admin exists in steady state because no API path can assign
// the role.
func (db *Database) SeedPrincipalAdmin(ctx context.Context, username, passwordHash, fullName string) error {
	var count int
	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = 'principal_admin'`,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count principal admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err = db.Pool.Exec(ctx,
		`INSERT INTO users (id, full_name, phone, username, password_hash, role)
		 VALUES ($1, $2, '', $3, $4, 'principal_admin')`,
		uuid.NewString(), fullName, username, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("failed to seed principal admin: %w", err)
	}
	return nil
}
