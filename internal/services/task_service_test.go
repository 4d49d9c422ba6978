package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xvierd/stayfocused/internal/ports"
)

var startCmd = ports.Command{Kind: ports.CmdTaskStart}

type fakeGit struct {
	branch string
	err    error
}

func (g *fakeGit) Branch(ctx context.Context, workingDir string) (string, error) {
	return g.branch, g.err
}

func (g *fakeGit) IsAvailable() bool { return g.err == nil }

func TestTaskService_AddTask(t *testing.T) {
	svc, _, _ := newTestService(t)
	seedProject(t, svc, "Work")
	service := NewTaskService(svc, &fakeGit{branch: "feature/login"})
	ctx := context.Background()

	t.Run("add named task with note", func(t *testing.T) {
		idx, err := service.AddTask(ctx, AddTaskRequest{
			Name:        "Write tests",
			Description: "cover the parser",
			Note:        "table driven",
		})
		if err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
		task := svc.State().ActiveProject().Tasks[idx]
		if task.Name != "Write tests" || task.Description != "cover the parser" || task.Note != "table driven" {
			t.Errorf("AddTask() task = %+v", task)
		}
	})

	t.Run("add task with empty name", func(t *testing.T) {
		_, err := service.AddTask(ctx, AddTaskRequest{Name: "  "})
		if !errors.Is(err, ErrEmptyTaskName) {
			t.Errorf("AddTask() error = %v, want ErrEmptyTaskName", err)
		}
	})

	t.Run("add task from branch", func(t *testing.T) {
		idx, err := service.AddTask(ctx, AddTaskRequest{FromBranch: true, WorkingDir: "."})
		if err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
		if got := svc.State().ActiveProject().Tasks[idx].Name; got != "feature/login" {
			t.Errorf("AddTask() name = %q, want feature/login", got)
		}
	})

	t.Run("explicit name wins over branch", func(t *testing.T) {
		idx, err := service.AddTask(ctx, AddTaskRequest{Name: "Ship", FromBranch: true})
		if err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
		if got := svc.State().ActiveProject().Tasks[idx].Name; got != "Ship" {
			t.Errorf("AddTask() name = %q, want Ship", got)
		}
	})
}

func TestTaskService_AddTaskBranchError(t *testing.T) {
	svc, _, _ := newTestService(t)
	seedProject(t, svc, "Work")
	service := NewTaskService(svc, &fakeGit{err: errors.New("not a repository")})

	_, err := service.AddTask(context.Background(), AddTaskRequest{FromBranch: true})
	if err == nil {
		t.Error("AddTask() should fail when the branch cannot be detected")
	}
	if n := len(svc.State().ActiveProject().Tasks); n != 0 {
		t.Errorf("failed AddTask() created %d tasks", n)
	}
}

func TestTaskService_Use(t *testing.T) {
	svc, _, _ := newTestService(t)
	seedProject(t, svc, "Household", "laundry", "groceries")
	seedProject(t, svc, "Thesis", "literature review", "experiments")
	service := NewTaskService(svc, nil)
	ctx := context.Background()

	idx, err := service.UseProject(ctx, "ouseh")
	if err != nil || idx != 0 {
		t.Fatalf("UseProject() = %d, %v; want 0", idx, err)
	}
	idx, err = service.UseTask(ctx, "groc")
	if err != nil || idx != 1 {
		t.Fatalf("UseTask() = %d, %v; want 1", idx, err)
	}

	state := svc.State()
	if state.CurrentProject != 0 || state.ActiveTask().Name != "groceries" {
		t.Errorf("selection = project %d task %q", state.CurrentProject, state.ActiveTask().Name)
	}
}

func TestStateService(t *testing.T) {
	svc, clock, _ := newTestService(t)
	seedProject(t, svc, "Work")
	state := NewStateService(svc)
	state.SetTaskService(NewTaskService(svc, nil))
	ctx := context.Background()

	idx, err := state.AddNamedTask(ctx, "Review", "")
	if err != nil || idx != 0 {
		t.Fatalf("AddNamedTask() = %d, %v", idx, err)
	}

	if _, err := state.AddNamedTask(ctx, "", ""); !errors.Is(err, ErrEmptyTaskName) {
		t.Errorf("AddNamedTask() error = %v, want ErrEmptyTaskName", err)
	}

	if err := state.Execute(ctx, startCmd); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	clock.Advance(2 * time.Second)

	cs, err := state.GetCurrentState(ctx)
	if err != nil {
		t.Fatalf("GetCurrentState() error = %v", err)
	}
	if got := cs.ActiveTask().Elapsed; got != 2*time.Second {
		t.Errorf("Elapsed = %v, want 2s", got)
	}
}
