package domain

import (
	"time"
)

// CurrentState is a read-only snapshot of the application state for
// rendering. It is detached from the live tree.
type CurrentState struct {
	Timestamp      time.Time
	View           View
	CurrentProject int
	Projects       []ProjectState
}

// ProjectState describes one project in a snapshot.
type ProjectState struct {
	Index           int
	ID              string
	Name            string
	Description     string
	Note            string
	Current         bool
	CommitmentToday time.Duration
	Commitment      [7]time.Duration
	TotalTime       time.Duration
	CurrentTask     int
	Tasks           []TaskState
}

// TaskState describes one task in a snapshot.
type TaskState struct {
	Index       int
	ID          string
	Name        string
	Description string
	Note        string
	Current     bool
	Tracking    bool
	Elapsed     time.Duration
	ElapsedHMS  string
}

// Snapshot captures the state of a at now.
func (a *App) Snapshot(now time.Time) *CurrentState {
	state := &CurrentState{
		Timestamp:      now,
		View:           a.View,
		CurrentProject: a.CurrentProjectIndex(),
	}

	for i, p := range a.projects.items {
		ps := ProjectState{
			Index:           i,
			ID:              p.ID,
			Name:            p.Name,
			Description:     p.Description,
			Note:            p.Note,
			Current:         i == state.CurrentProject,
			CommitmentToday: p.TimeCommitment.ForDate(now),
			Commitment:      p.TimeCommitment.Days(),
			TotalTime:       p.TotalTime(),
			CurrentTask:     p.CurrentTaskIndex(),
		}
		for j, t := range p.list().items {
			ps.Tasks = append(ps.Tasks, TaskState{
				Index:       j,
				ID:          t.ID,
				Name:        t.Name,
				Description: t.Description,
				Note:        t.Note,
				Current:     j == ps.CurrentTask,
				Tracking:    t.IsTracking(),
				Elapsed:     t.Elapsed(),
				ElapsedHMS:  t.ElapsedHMS(),
			})
		}
		state.Projects = append(state.Projects, ps)
	}

	return state
}

// ActiveProject returns the current project, or nil.
func (cs *CurrentState) ActiveProject() *ProjectState {
	if cs.CurrentProject < 0 || cs.CurrentProject >= len(cs.Projects) {
		return nil
	}
	return &cs.Projects[cs.CurrentProject]
}

// ActiveTask returns the current task of the current project, or nil.
func (cs *CurrentState) ActiveTask() *TaskState {
	p := cs.ActiveProject()
	if p == nil || p.CurrentTask < 0 || p.CurrentTask >= len(p.Tasks) {
		return nil
	}
	return &p.Tasks[p.CurrentTask]
}

// IsTracking returns true if the active task is running.
func (cs *CurrentState) IsTracking() bool {
	t := cs.ActiveTask()
	return t != nil && t.Tracking
}

// HasTimeCommitment reports whether the project has a commitment today.
func (ps *ProjectState) HasTimeCommitment() bool {
	return ps.CommitmentToday > 0
}

// CommitmentMet reports whether tracked time has reached today's commitment.
func (ps *ProjectState) CommitmentMet() bool {
	return ps.HasTimeCommitment() && ps.TotalTime >= ps.CommitmentToday
}

// DisplayName returns the project name, or a placeholder for unnamed projects.
func (ps *ProjectState) DisplayName() string {
	if ps.Name == "" {
		return "(unnamed project)"
	}
	return ps.Name
}

// DisplayName returns the task name, or a placeholder for unnamed tasks.
func (ts *TaskState) DisplayName() string {
	if ts.Name == "" {
		return "(unnamed task)"
	}
	return ts.Name
}
