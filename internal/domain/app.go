package domain

import (
	"fmt"
	"time"
)

// View identifies which screen the presentation layer shows.
type View string

const (
	ViewTask        View = "task"
	ViewProject     View = "project"
	ViewProjectList View = "project_list"
)

// ValidViews lists all supported views.
var ValidViews = []View{
	ViewTask,
	ViewProject,
	ViewProjectList,
}

// ValidateView checks if a string is a valid view.
func ValidateView(s string) (View, error) {
	v := View(s)
	for _, valid := range ValidViews {
		if v == valid {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of task, project, project_list", ErrInvalidView, s)
}

// Label returns a human-readable label.
func (v View) Label() string {
	switch v {
	case ViewTask:
		return "Task"
	case ViewProject:
		return "Project"
	case ViewProjectList:
		return "Projects"
	default:
		return "Unknown"
	}
}

// App is the root of the state tree: the project list and the active view.
type App struct {
	View View

	projects *List[*Project]
	// defaultCommitment seeds the commitment of new projects.
	defaultCommitment TimeCommitment
}

// NewApp creates an empty application state.
func NewApp() *App {
	a := &App{View: ViewTask}
	a.projects = NewList(a.newProject)
	return a
}

// RestoreApp rebuilds application state from persisted projects.
func RestoreApp(projects []*Project, currentProject int, view View) *App {
	a := &App{View: view}
	if _, err := ValidateView(string(view)); err != nil {
		a.View = ViewTask
	}
	a.projects = RestoreList(a.newProject, projects, currentProject)
	return a
}

func (a *App) newProject() *Project {
	p := NewProject()
	p.TimeCommitment = a.defaultCommitment
	return p
}

// SetDefaultCommitment sets the commitment given to projects added later.
func (a *App) SetDefaultCommitment(c TimeCommitment) {
	a.defaultCommitment = c
}

// DefaultCommitment returns the commitment given to new projects.
func (a *App) DefaultCommitment() TimeCommitment {
	return a.defaultCommitment
}

// Projects returns the projects in order.
func (a *App) Projects() []*Project {
	return a.projects.Items()
}

// ProjectCount returns the number of projects.
func (a *App) ProjectCount() int {
	return a.projects.Len()
}

// Project returns the project at idx.
func (a *App) Project(idx int) (*Project, error) {
	return a.projects.At(idx)
}

// AddProject appends an empty project and returns it.
func (a *App) AddProject() *Project {
	return a.projects.PushDefault()
}

// RemoveProject deletes the project at idx.
func (a *App) RemoveProject(idx int) error {
	return a.projects.Remove(idx)
}

// CurrentProject returns the current project.
func (a *App) CurrentProject() (*Project, error) {
	p, err := a.projects.Current()
	if err != nil {
		return nil, fmt.Errorf("no current project: %w", err)
	}
	return p, nil
}

// CurrentProjectIndex returns the current project index, or -1 with no projects.
func (a *App) CurrentProjectIndex() int {
	return a.projects.CurrentIndex()
}

// SetCurrentProject makes the project at idx current.
func (a *App) SetCurrentProject(idx int) error {
	return a.projects.SetCurrent(idx)
}

// FindProject returns the index of the first project matching match, or -1.
func (a *App) FindProject(match func(*Project) bool) int {
	return a.projects.Find(match)
}

// SetProjectName renames the project at idx.
func (a *App) SetProjectName(idx int, name string) error {
	return a.projects.Update(idx, func(p *Project) { p.Name = name })
}

// SetProjectDescription replaces the description of the project at idx.
func (a *App) SetProjectDescription(idx int, desc string) error {
	return a.projects.Update(idx, func(p *Project) { p.Description = desc })
}

// SetProjectNote replaces the note of the project at idx.
func (a *App) SetProjectNote(idx int, note string) error {
	return a.projects.Update(idx, func(p *Project) { p.Note = note })
}

// SetProjectCommitment sets one weekday of the commitment of the project at idx.
func (a *App) SetProjectCommitment(idx, weekday int, d time.Duration) error {
	p, err := a.projects.At(idx)
	if err != nil {
		return err
	}
	return p.TimeCommitment.Set(weekday, d)
}

// ChooseRandomProject makes a random project other than the current one current.
func (a *App) ChooseRandomProject(r Rand) (int, error) {
	return a.projects.ChooseRandomDistinct(r)
}

// SetView switches the active view.
func (a *App) SetView(v View) error {
	if _, err := ValidateView(string(v)); err != nil {
		return err
	}
	a.View = v
	return nil
}

// StopAll stops every running task in every project.
func (a *App) StopAll(now time.Time) {
	for _, p := range a.projects.items {
		p.StopAll(now)
	}
}

// IsTracking reports whether any task is running.
func (a *App) IsTracking() bool {
	return a.projects.Find(func(p *Project) bool { return p.IsTracking() }) >= 0
}
