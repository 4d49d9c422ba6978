package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/stayfocused/internal/domain"
)

// Mock implementations for testing interfaces.

type mockStateRepository struct {
	saved *domain.CurrentState
}

func (m *mockStateRepository) Load(ctx context.Context) (*domain.App, error) {
	if m.saved == nil {
		return domain.NewApp(), nil
	}
	var projects []*domain.Project
	for _, ps := range m.saved.Projects {
		var tasks []*domain.Task
		for _, ts := range ps.Tasks {
			tasks = append(tasks, domain.RestoreTask(ts.ID, ts.Name, ts.Description, ts.Note, ts.Elapsed))
		}
		projects = append(projects, domain.RestoreProject(ps.ID, ps.Name, ps.Description, ps.Note,
			domain.NewTimeCommitment(ps.Commitment), tasks, ps.CurrentTask))
	}
	return domain.RestoreApp(projects, m.saved.CurrentProject, m.saved.View), nil
}

func (m *mockStateRepository) Save(ctx context.Context, app *domain.App) error {
	m.saved = app.Snapshot(time.Now())
	return nil
}

var _ StateRepository = (*mockStateRepository)(nil)

func TestMockStateRepository(t *testing.T) {
	repo := &mockStateRepository{}
	ctx := context.Background()

	t.Run("load empty", func(t *testing.T) {
		app, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, app.ProjectCount())
	})

	t.Run("save and load keeps elapsed but not running state", func(t *testing.T) {
		app := domain.NewApp()
		task := app.AddProject().AddDefaultTask()
		task.Name = "Write"
		start := time.Now().Add(-time.Minute)
		task.StartAt(start)
		task.TickAt(start.Add(30 * time.Second))

		require.NoError(t, repo.Save(ctx, app))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		p, err := loaded.CurrentProject()
		require.NoError(t, err)
		got, err := p.CurrentTask()
		require.NoError(t, err)
		assert.Equal(t, "Write", got.Name)
		assert.Equal(t, 30*time.Second, got.Elapsed())
		assert.False(t, got.IsTracking())
	})
}

func TestCommand_String(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Command{Kind: CmdTaskAdd}, "task.add"},
		{Command{Kind: CmdTaskRemove, Index: 2}, "task.remove(2)"},
		{Command{Kind: CmdViewSwitch, Text: "project"}, "view.switch(project)"},
		{Command{Kind: CmdProjectCommit, Index: 1, Weekday: 2, Duration: time.Hour}, "project.commit(1, day 2, 1h0m0s)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}
