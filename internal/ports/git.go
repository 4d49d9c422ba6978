package ports

import (
	"context"
)

// GitDetector defines the interface for git context detection.
// This is a driven port (implemented by adapters).
type GitDetector interface {
	// Branch returns the current branch of the repository containing workingDir.
	Branch(ctx context.Context, workingDir string) (string, error)

	// IsAvailable checks if the working directory is inside a repository.
	IsAvailable() bool
}
