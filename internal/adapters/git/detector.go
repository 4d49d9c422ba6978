// Package git provides git context detection using go-git.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/xvierd/stayfocused/internal/ports"
)

// ErrDetachedHead is returned when HEAD does not point at a branch.
var ErrDetachedHead = errors.New("HEAD is detached")

// Detector implements the ports.GitDetector interface using go-git.
type Detector struct{}

// NewDetector creates a new git detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Ensure Detector implements ports.GitDetector.
var _ ports.GitDetector = (*Detector)(nil)

// Branch returns the short name of the branch checked out in the
// repository containing workingDir. An empty workingDir means the
// current directory.
func (d *Detector) Branch(ctx context.Context, workingDir string) (string, error) {
	repo, err := open(workingDir)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", ErrDetachedHead
	}
	return head.Name().Short(), nil
}

// IsAvailable checks if the current directory is inside a git repository.
func (d *Detector) IsAvailable() bool {
	_, err := open("")
	return err == nil
}

// open finds the repository by walking up from dir.
func open(dir string) (*git.Repository, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("git repository not found: %w", err)
	}
	return repo, nil
}
