package domain

import (
	"fmt"
	"time"
)

// Project is an ordered set of tasks with a current task and an optional
// weekly time commitment.
type Project struct {
	ID             string
	Name           string
	Description    string
	Note           string
	TimeCommitment TimeCommitment

	tasks *List[*Task]
}

// NewProject creates an empty project.
func NewProject() *Project {
	return &Project{
		ID:    generateID(),
		tasks: NewList(NewTask),
	}
}

// RestoreProject rebuilds a project from persisted fields.
func RestoreProject(id, name, description, note string, commitment TimeCommitment, tasks []*Task, currentTask int) *Project {
	if id == "" {
		id = generateID()
	}
	return &Project{
		ID:             id,
		Name:           name,
		Description:    description,
		Note:           note,
		TimeCommitment: commitment,
		tasks:          RestoreList(NewTask, tasks, currentTask),
	}
}

func (p *Project) list() *List[*Task] {
	if p.tasks == nil {
		p.tasks = NewList(NewTask)
	}
	return p.tasks
}

// DisplayName returns the project name, or a placeholder for unnamed projects.
func (p *Project) DisplayName() string {
	if p.Name == "" {
		return "(unnamed project)"
	}
	return p.Name
}

// Tasks returns the project's tasks in order.
func (p *Project) Tasks() []*Task {
	return p.list().Items()
}

// TaskCount returns the number of tasks.
func (p *Project) TaskCount() int {
	return p.list().Len()
}

// AddDefaultTask appends an empty task and returns it.
func (p *Project) AddDefaultTask() *Task {
	return p.list().PushDefault()
}

// AddTask appends an existing task.
func (p *Project) AddTask(t *Task) {
	p.list().Push(t)
}

// RemoveTask deletes the task at idx.
func (p *Project) RemoveTask(idx int) error {
	return p.list().Remove(idx)
}

// Task returns the task at idx.
func (p *Project) Task(idx int) (*Task, error) {
	return p.list().At(idx)
}

// CurrentTask returns the current task.
func (p *Project) CurrentTask() (*Task, error) {
	t, err := p.list().Current()
	if err != nil {
		return nil, fmt.Errorf("project has no current task: %w", err)
	}
	return t, nil
}

// CurrentTaskIndex returns the current task index, or -1 with no tasks.
func (p *Project) CurrentTaskIndex() int {
	return p.list().CurrentIndex()
}

// SetCurrentTask makes the task at idx current.
func (p *Project) SetCurrentTask(idx int) error {
	return p.list().SetCurrent(idx)
}

// FindTask returns the index of the first task matching match, or -1.
func (p *Project) FindTask(match func(*Task) bool) int {
	return p.list().Find(match)
}

// SetTaskName renames the task at idx.
func (p *Project) SetTaskName(idx int, name string) error {
	return p.list().Update(idx, func(t *Task) { t.Name = name })
}

// SetTaskDescription replaces the description of the task at idx.
func (p *Project) SetTaskDescription(idx int, desc string) error {
	return p.list().Update(idx, func(t *Task) { t.Description = desc })
}

// SetTaskNote replaces the note of the task at idx.
func (p *Project) SetTaskNote(idx int, note string) error {
	return p.list().Update(idx, func(t *Task) { t.Note = note })
}

// StartCurrentTask starts tracking the current task at now.
func (p *Project) StartCurrentTask(now time.Time) error {
	t, err := p.CurrentTask()
	if err != nil {
		return err
	}
	t.StartAt(now)
	return nil
}

// StopCurrentTask stops tracking the current task at now.
func (p *Project) StopCurrentTask(now time.Time) error {
	t, err := p.CurrentTask()
	if err != nil {
		return err
	}
	t.StopAt(now)
	return nil
}

// TickCurrentTask commits pending time on the current task.
func (p *Project) TickCurrentTask(now time.Time) error {
	t, err := p.CurrentTask()
	if err != nil {
		return err
	}
	t.TickAt(now)
	return nil
}

// StopAll stops every running task in the project.
func (p *Project) StopAll(now time.Time) {
	for _, t := range p.list().items {
		t.StopAt(now)
	}
}

// IsTracking reports whether any task in the project is running.
func (p *Project) IsTracking() bool {
	return p.list().Find(func(t *Task) bool { return t.IsTracking() }) >= 0
}

// ChooseRandomTask makes a random task other than the current one current.
func (p *Project) ChooseRandomTask(r Rand) (int, error) {
	return p.list().ChooseRandomDistinct(r)
}

// HasTimeCommitment reports whether today's commitment is non-zero.
func (p *Project) HasTimeCommitment() bool {
	return p.HasTimeCommitmentOn(time.Now())
}

// HasTimeCommitmentOn reports whether the commitment for t's weekday is non-zero.
func (p *Project) HasTimeCommitmentOn(t time.Time) bool {
	return p.TimeCommitment.ForDate(t) > 0
}

// TotalTime sums the committed elapsed time of every task.
func (p *Project) TotalTime() time.Duration {
	var total time.Duration
	for _, t := range p.list().items {
		total += t.Elapsed()
	}
	return total
}
