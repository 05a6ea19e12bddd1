package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq" // register the postgres driver
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

// DB wraps the shared database handle used by all repositories
type DB struct {
	*sql.DB
}

var sqlOpen = sql.Open

// NewDB opens a Postgres connection pool and verifies it is reachable
func NewDB(databaseURL string) (*DB, error) {
	db, err := sqlOpen("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &DB{DB: db}, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS plants (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		location TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS parts (
		id UUID PRIMARY KEY,
		part_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		priority TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'initiated'
			CHECK (status IN ('initiated', 'pending', 'approved', 'completed', 'rejected', 'on_hold')),
		plant_id UUID NOT NULL REFERENCES plants(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS parts_plant_created_idx ON parts (plant_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id UUID PRIMARY KEY,
		task_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		priority TEXT NOT NULL,
		assignee TEXT NOT NULL,
		department TEXT NOT NULL DEFAULT '',
		part_id UUID REFERENCES parts(id),
		status TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'in_progress', 'completed', 'overdue')),
		due_date TIMESTAMPTZ,
		completed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS tasks_assignee_due_idx ON tasks (assignee, due_date)`,
	`CREATE TABLE IF NOT EXISTS kpi_metrics (
		id UUID PRIMARY KEY,
		plant_id UUID NOT NULL REFERENCES plants(id),
		metric_name TEXT NOT NULL,
		metric_value DOUBLE PRECISION NOT NULL DEFAULT 0,
		metric_unit TEXT NOT NULL DEFAULT '',
		recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates the service tables if they do not exist
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
