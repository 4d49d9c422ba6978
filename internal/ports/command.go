package ports

import (
	"fmt"
	"time"
)

// CommandKind names a user action against the state tree.
type CommandKind string

const (
	// CmdProjectAdd appends an empty project.
	CmdProjectAdd CommandKind = "project.add"

	// CmdProjectRemove removes the project at Index.
	CmdProjectRemove CommandKind = "project.remove"

	// CmdProjectRename sets the name of the project at Index.
	CmdProjectRename CommandKind = "project.rename"

	// CmdProjectDescribe sets the description of the project at Index.
	CmdProjectDescribe CommandKind = "project.describe"

	// CmdProjectAnnotate sets the note of the project at Index.
	CmdProjectAnnotate CommandKind = "project.annotate"

	// CmdProjectSelect makes the project at Index current.
	CmdProjectSelect CommandKind = "project.select"

	// CmdProjectRandom makes a random other project current.
	CmdProjectRandom CommandKind = "project.random"

	// CmdProjectCommit sets Weekday of the project at Index to Duration.
	CmdProjectCommit CommandKind = "project.commit"

	// CmdTaskAdd appends an empty task to the current project.
	CmdTaskAdd CommandKind = "task.add"

	// CmdTaskRemove removes the task at Index of the current project.
	CmdTaskRemove CommandKind = "task.remove"

	// CmdTaskRename sets the name of the task at Index.
	CmdTaskRename CommandKind = "task.rename"

	// CmdTaskDescribe sets the description of the task at Index.
	CmdTaskDescribe CommandKind = "task.describe"

	// CmdTaskAnnotate sets the note of the task at Index.
	CmdTaskAnnotate CommandKind = "task.annotate"

	// CmdTaskSelect makes the task at Index current.
	CmdTaskSelect CommandKind = "task.select"

	// CmdTaskStart starts tracking the current task.
	CmdTaskStart CommandKind = "task.start"

	// CmdTaskStop stops tracking the current task.
	CmdTaskStop CommandKind = "task.stop"

	// CmdTaskToggle starts or stops the current task.
	CmdTaskToggle CommandKind = "task.toggle"

	// CmdTaskRandom makes a random other task current.
	CmdTaskRandom CommandKind = "task.random"

	// CmdViewSwitch sets the active view to Text.
	CmdViewSwitch CommandKind = "view.switch"
)

// Command is one user action. Only the fields its Kind needs are read.
type Command struct {
	Kind     CommandKind
	Index    int
	Text     string
	Weekday  int
	Duration time.Duration
}

// String returns a short description for logs.
func (c Command) String() string {
	switch c.Kind {
	case CmdProjectAdd, CmdProjectRandom, CmdTaskAdd, CmdTaskStart, CmdTaskStop, CmdTaskToggle, CmdTaskRandom:
		return string(c.Kind)
	case CmdViewSwitch:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Text)
	case CmdProjectCommit:
		return fmt.Sprintf("%s(%d, day %d, %s)", c.Kind, c.Index, c.Weekday, c.Duration)
	default:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Index)
	}
}
