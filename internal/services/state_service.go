package services

import (
	"context"

	"github.com/xvierd/stayfocused/internal/domain"
	"github.com/xvierd/stayfocused/internal/ports"
)

// StateService implements the MCPStateProvider interface.
type StateService struct {
	focus       *FocusService
	taskService *TaskService
}

// NewStateService creates a new state service.
func NewStateService(focus *FocusService) *StateService {
	return &StateService{focus: focus}
}

// SetTaskService sets the task service for named task creation.
func (s *StateService) SetTaskService(taskService *TaskService) {
	s.taskService = taskService
}

// GetCurrentState implements ports.MCPStateProvider.
func (s *StateService) GetCurrentState(ctx context.Context) (*domain.CurrentState, error) {
	return s.focus.Tick(ctx), nil
}

// Execute implements ports.MCPStateProvider.
func (s *StateService) Execute(ctx context.Context, cmd ports.Command) error {
	return s.focus.Execute(ctx, cmd)
}

// AddNamedTask implements ports.MCPStateProvider.
func (s *StateService) AddNamedTask(ctx context.Context, name, description string) (int, error) {
	if s.taskService == nil {
		return s.focus.AddNamedTask(ctx, name, description)
	}
	return s.taskService.AddTask(ctx, AddTaskRequest{Name: name, Description: description})
}

// Ensure StateService implements MCPStateProvider.
var _ ports.MCPStateProvider = (*StateService)(nil)
