package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// initRepo creates a repository with one commit and returns it.
func initRepo(t *testing.T) (string, *git.Repository, plumbing.Hash) {
	t.Helper()
	tmpDir := t.TempDir()

	repo, err := git.PlainInit(tmpDir, false)
	if err != nil {
		t.Fatalf("Failed to init git repo: %v", err)
	}

	testFile := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(testFile, []byte("test content"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	if _, err := worktree.Add("test.txt"); err != nil {
		t.Fatalf("Failed to add file: %v", err)
	}

	commit, err := worktree.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
		},
	})
	if err != nil {
		t.Fatalf("Failed to create commit: %v", err)
	}
	return tmpDir, repo, commit
}

func TestNewDetector(t *testing.T) {
	d := NewDetector()
	if d == nil {
		t.Fatal("NewDetector() returned nil")
	}
	// Depends on where the tests run; it must not panic.
	_ = d.IsAvailable()
}

func TestDetector_Branch(t *testing.T) {
	tmpDir, _, _ := initRepo(t)

	branch, err := NewDetector().Branch(context.Background(), tmpDir)
	if err != nil {
		t.Fatalf("Branch() error = %v", err)
	}
	// go-git defaults to master
	if branch != "master" && branch != "main" {
		t.Errorf("Unexpected branch: %s", branch)
	}
}

func TestDetector_Branch_FeatureFromSubdir(t *testing.T) {
	tmpDir, repo, _ := initRepo(t)

	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	err = worktree.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName("feature/login-form"),
		Create: true,
	})
	if err != nil {
		t.Fatalf("Failed to checkout branch: %v", err)
	}

	subDir := filepath.Join(tmpDir, "level1", "level2")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}

	branch, err := NewDetector().Branch(context.Background(), subDir)
	if err != nil {
		t.Fatalf("Branch() error = %v", err)
	}
	if branch != "feature/login-form" {
		t.Errorf("Branch() = %q, want feature/login-form", branch)
	}
}

func TestDetector_Branch_Detached(t *testing.T) {
	tmpDir, repo, commit := initRepo(t)

	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	if err := worktree.Checkout(&git.CheckoutOptions{Hash: commit}); err != nil {
		t.Fatalf("Failed to detach HEAD: %v", err)
	}

	_, err = NewDetector().Branch(context.Background(), tmpDir)
	if !errors.Is(err, ErrDetachedHead) {
		t.Errorf("Branch() error = %v, want ErrDetachedHead", err)
	}
}

func TestDetector_Branch_NoGitRepo(t *testing.T) {
	_, err := NewDetector().Branch(context.Background(), t.TempDir())
	if err == nil {
		t.Error("Expected error when no git repo exists")
	}
}
