// Package database opens the Postgres connection and applies the schema.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const schema = `
CREATE TABLE IF NOT EXISTS resumes (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL,
	title TEXT NOT NULL,
	full_name TEXT,
	email TEXT,
	phone TEXT,
	location TEXT,
	linkedin_url TEXT,
	website_url TEXT,
	personal_summary TEXT,
	work_experience JSONB NOT NULL DEFAULT '[]'::jsonb,
	education JSONB NOT NULL DEFAULT '[]'::jsonb,
	skills JSONB NOT NULL DEFAULT '[]'::jsonb,
	additional_sections JSONB NOT NULL DEFAULT '{}'::jsonb,
	is_active BOOLEAN NOT NULL DEFAULT true,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_resumes_user_active
	ON resumes (user_id, updated_at DESC)
	WHERE is_active = true;
`

// NewPostgresDB opens the pool via the pgx stdlib driver and verifies
// connectivity.
func NewPostgresDB(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// RunMigrations applies the idempotent schema.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
