// Package storage provides SQLite implementations of the storage ports.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/xvierd/stayfocused/internal/ports"
	_ "modernc.org/sqlite"
)

// sqliteStorage implements the ports.Storage interface using SQLite.
type sqliteStorage struct {
	db        *sql.DB
	stateRepo ports.StateRepository
}

// Ensure sqliteStorage implements ports.Storage.
var _ ports.Storage = (*sqliteStorage)(nil)

// New creates a new SQLite storage instance.
func New(dbPath string) (ports.Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps :memory: databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to exec %q: %w", p, err)
		}
	}

	storage := &sqliteStorage{
		db:        db,
		stateRepo: newStateRepository(db),
	}

	if err := storage.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return storage, nil
}

// NewMemory creates a new in-memory SQLite storage instance for testing.
func NewMemory() (ports.Storage, error) {
	return New(":memory:")
}

// State returns the state repository.
func (s *sqliteStorage) State() ports.StateRepository {
	return s.stateRepo
}

// Close closes the database connection.
func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

// Migrate creates the database schema.
func (s *sqliteStorage) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS app_state (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		current_project INTEGER NOT NULL DEFAULT 0,
		view TEXT NOT NULL DEFAULT 'task',
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		note TEXT NOT NULL DEFAULT '',
		current_task INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_projects_position ON projects(position);

	CREATE TABLE IF NOT EXISTS commitments (
		project_id TEXT NOT NULL,
		weekday INTEGER NOT NULL CHECK (weekday BETWEEN 1 AND 7),
		duration_ns INTEGER NOT NULL,
		PRIMARY KEY (project_id, weekday),
		FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		note TEXT NOT NULL DEFAULT '',
		elapsed_ns INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id, position);
	`

	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}
