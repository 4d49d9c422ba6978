// Package domain contains the core entities for stayfocused.
// These entities model projects, tasks and the time tracked against them,
// and are independent of any storage or presentation framework.
package domain

import "time"

// Task represents a named unit of work with its own time tracker.
type Task struct {
	ID          string
	Name        string
	Description string
	Note        string

	Tracker
}

// NewTask creates a task with empty text and an idle, zeroed tracker.
func NewTask() *Task {
	return &Task{ID: generateID()}
}

// RestoreTask rebuilds a task from persisted fields.
// The tracker is always idle: running state is never restored.
func RestoreTask(id, name, description, note string, elapsed time.Duration) *Task {
	if id == "" {
		id = generateID()
	}
	return &Task{
		ID:          id,
		Name:        name,
		Description: description,
		Note:        note,
		Tracker:     NewTracker(elapsed),
	}
}

// DisplayName returns the task name, or a placeholder for unnamed tasks.
func (t *Task) DisplayName() string {
	if t.Name == "" {
		return "(unnamed task)"
	}
	return t.Name
}
