package postgres

import (
	"context"

	"synerh/internal/database"
)

// EnsureSchema creates the user tables when they do not exist yet. The
// record store is deliberately schema-light: it plays the role of a
// key-value user-record store for the rest of the platform.
func EnsureSchema(ctx context.Context, db database.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            UUID PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS user_profiles (
			user_id        UUID PRIMARY KEY REFERENCES users(id),
			email          TEXT NOT NULL,
			name           TEXT NOT NULL,
			avatar         TEXT NOT NULL DEFAULT '',
			bio            TEXT NOT NULL DEFAULT '',
			experience     TEXT NOT NULL DEFAULT '',
			skills         TEXT[] NOT NULL DEFAULT '{}',
			certifications TEXT[] NOT NULL DEFAULT '{}',
			reputation     INTEGER NOT NULL DEFAULT 0,
			tokens         INTEGER NOT NULL DEFAULT 0,
			join_date      TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
