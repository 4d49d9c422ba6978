package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	app := NewApp()

	assert.Equal(t, ViewTask, app.View)
	assert.Equal(t, 0, app.ProjectCount())
	_, err := app.CurrentProject()
	assert.ErrorIs(t, err, ErrNoCurrentItem)
}

func TestApp_ProjectLifecycle(t *testing.T) {
	app := NewApp()
	app.AddProject()
	app.AddProject()

	require.NoError(t, app.SetProjectName(0, "Work"))
	require.NoError(t, app.SetProjectDescription(1, "side"))
	require.NoError(t, app.SetProjectNote(1, "weekends only"))
	require.NoError(t, app.SetCurrentProject(1))

	current, err := app.CurrentProject()
	require.NoError(t, err)
	assert.Equal(t, "side", current.Description)
	assert.Equal(t, "weekends only", current.Note)

	require.NoError(t, app.RemoveProject(0))
	assert.Equal(t, 0, app.CurrentProjectIndex())
	current, _ = app.CurrentProject()
	assert.Equal(t, "side", current.Description)

	assert.ErrorIs(t, app.RemoveProject(3), ErrIndexOutOfRange)
	assert.ErrorIs(t, app.SetProjectName(3, "x"), ErrIndexOutOfRange)
	assert.ErrorIs(t, app.SetCurrentProject(1), ErrIndexOutOfRange)
}

func TestApp_DefaultCommitment(t *testing.T) {
	app := NewApp()
	var c TimeCommitment
	require.NoError(t, c.Set(2, time.Hour))
	app.SetDefaultCommitment(c)

	p := app.AddProject()
	assert.Equal(t, c, p.TimeCommitment)

	require.NoError(t, app.SetProjectCommitment(0, 3, 30*time.Minute))
	assert.Equal(t, 30*time.Minute, p.TimeCommitment.Days()[2])
	assert.ErrorIs(t, app.SetProjectCommitment(0, 9, time.Minute), ErrInvalidWeekday)
	assert.ErrorIs(t, app.SetProjectCommitment(4, 1, time.Minute), ErrIndexOutOfRange)
}

func TestApp_ChooseRandomProject(t *testing.T) {
	app := NewApp()
	_, err := app.ChooseRandomProject(DefaultRand())
	assert.ErrorIs(t, err, ErrNoCurrentItem)

	app.AddProject()
	_, err = app.ChooseRandomProject(DefaultRand())
	assert.ErrorIs(t, err, ErrSelectionNoop)

	app.AddProject()
	idx, err := app.ChooseRandomProject(DefaultRand())
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestApp_SetView(t *testing.T) {
	app := NewApp()

	require.NoError(t, app.SetView(ViewProjectList))
	assert.Equal(t, ViewProjectList, app.View)

	assert.ErrorIs(t, app.SetView("calendar"), ErrInvalidView)
	assert.Equal(t, ViewProjectList, app.View)
}

func TestValidateView(t *testing.T) {
	tests := []struct {
		input   string
		want    View
		wantErr bool
	}{
		{"task", ViewTask, false},
		{"project", ViewProject, false},
		{"project_list", ViewProjectList, false},
		{"invalid", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ValidateView(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidView)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestView_Label(t *testing.T) {
	assert.Equal(t, "Task", ViewTask.Label())
	assert.Equal(t, "Project", ViewProject.Label())
	assert.Equal(t, "Projects", ViewProjectList.Label())
	assert.Equal(t, "Unknown", View("x").Label())
}

func TestRestoreApp(t *testing.T) {
	projects := []*Project{
		RestoreProject("a", "A", "", "", TimeCommitment{}, nil, 0),
		RestoreProject("b", "B", "", "", TimeCommitment{}, nil, 0),
	}

	app := RestoreApp(projects, 1, ViewProject)
	assert.Equal(t, ViewProject, app.View)
	assert.Equal(t, 1, app.CurrentProjectIndex())

	bad := RestoreApp(projects, 5, "bogus")
	assert.Equal(t, ViewTask, bad.View)
	assert.Equal(t, 0, bad.CurrentProjectIndex())
}

func TestApp_StopAll(t *testing.T) {
	app := NewApp()
	p := app.AddProject()
	task := p.AddDefaultTask()
	task.StartAt(epoch)
	require.True(t, app.IsTracking())

	app.StopAll(epoch.Add(2 * time.Second))

	assert.False(t, app.IsTracking())
	assert.Equal(t, 2*time.Second, task.Elapsed())
}
