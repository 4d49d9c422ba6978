package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xvierd/stayfocused/internal/ports"
)

// ErrEmptyTaskName is returned when a task is added without a name and no branch fallback.
var ErrEmptyTaskName = errors.New("task name cannot be empty")

// TaskService handles task-related use cases that need more than a single command.
type TaskService struct {
	focus *FocusService
	git   ports.GitDetector
}

// NewTaskService creates a new task service.
func NewTaskService(focus *FocusService, git ports.GitDetector) *TaskService {
	return &TaskService{focus: focus, git: git}
}

// AddTaskRequest contains the data needed to create a new task.
type AddTaskRequest struct {
	Name        string
	Description string
	Note        string
	// FromBranch names the task after the current git branch when Name is empty.
	FromBranch bool
	WorkingDir string
}

// AddTask appends a named task to the current project and returns its index.
func (s *TaskService) AddTask(ctx context.Context, req AddTaskRequest) (int, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" && req.FromBranch {
		branch, err := s.branch(ctx, req.WorkingDir)
		if err != nil {
			return -1, err
		}
		name = branch
	}
	if name == "" {
		return -1, ErrEmptyTaskName
	}

	idx, err := s.focus.AddNamedTask(ctx, name, req.Description)
	if err != nil {
		return -1, err
	}

	if req.Note != "" {
		cmd := ports.Command{Kind: ports.CmdTaskAnnotate, Index: idx, Text: req.Note}
		if err := s.focus.Execute(ctx, cmd); err != nil {
			return idx, err
		}
	}
	return idx, nil
}

func (s *TaskService) branch(ctx context.Context, dir string) (string, error) {
	if s.git == nil {
		return "", fmt.Errorf("git detection is not configured")
	}
	branch, err := s.git.Branch(ctx, dir)
	if err != nil {
		return "", fmt.Errorf("failed to detect branch: %w", err)
	}
	return branch, nil
}

// UseTask selects the task in the current project best matching query.
func (s *TaskService) UseTask(ctx context.Context, query string) (int, error) {
	idx, err := s.focus.FindTask(query)
	if err != nil {
		return -1, err
	}
	return idx, s.focus.Execute(ctx, ports.Command{Kind: ports.CmdTaskSelect, Index: idx})
}

// UseProject selects the project best matching query.
func (s *TaskService) UseProject(ctx context.Context, query string) (int, error) {
	idx, err := s.focus.FindProject(query)
	if err != nil {
		return -1, err
	}
	return idx, s.focus.Execute(ctx, ports.Command{Kind: ports.CmdProjectSelect, Index: idx})
}
