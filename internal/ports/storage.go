// Package ports defines the interfaces (driven and driving ports)
// for stayfocused following hexagonal architecture principles.
// These interfaces define the contracts between the domain layer and
// external infrastructure.
package ports

import (
	"context"

	"github.com/xvierd/stayfocused/internal/domain"
)

// StateRepository defines persistence for the whole state tree.
// This is a driven port (implemented by adapters).
type StateRepository interface {
	// Load returns the stored state, or an empty application when nothing
	// has been saved yet. Every loaded tracker is idle.
	Load(ctx context.Context) (*domain.App, error)

	// Save replaces the stored state with app. Running trackers are stored
	// with their committed elapsed time only.
	Save(ctx context.Context, app *domain.App) error
}

// Storage is the combined repository interface.
// This is a driven port (implemented by adapters).
type Storage interface {
	// State provides access to the state tree.
	State() StateRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
