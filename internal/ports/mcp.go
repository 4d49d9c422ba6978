package ports

import (
	"context"

	"github.com/xvierd/stayfocused/internal/domain"
)

// MCPHandler defines the interface for MCP server operations.
// This is a driving port (called by the application layer).
type MCPHandler interface {
	// Start begins serving MCP requests.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server.
	Stop() error

	// IsRunning returns true if the server is active.
	IsRunning() bool
}

// MCPStateProvider provides state and commands to the MCP server.
// This is a driven port (implemented by services layer).
type MCPStateProvider interface {
	// GetCurrentState ticks the active task and returns a snapshot.
	GetCurrentState(ctx context.Context) (*domain.CurrentState, error)

	// Execute applies one command.
	Execute(ctx context.Context, cmd Command) error

	// AddNamedTask appends a task to the current project, names it and
	// returns its index.
	AddNamedTask(ctx context.Context, name, description string) (int, error)
}
