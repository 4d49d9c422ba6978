// Package services implements the application layer (use cases)
// following hexagonal architecture principles.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/sahilm/fuzzy"
	"github.com/xvierd/stayfocused/internal/domain"
	"github.com/xvierd/stayfocused/internal/ports"
)

// ErrUnknownCommand is returned by Execute for an unrecognized command kind.
var ErrUnknownCommand = errors.New("unknown command")

// ErrNoMatch is returned when a fuzzy lookup finds nothing.
var ErrNoMatch = errors.New("no match")

// FocusService owns the application state and applies commands to it.
//
// It is the single owner of the state tree: hosts never touch domain
// objects directly, they issue commands and read snapshots. Access is
// serialized because hosts poll from timer goroutines.
type FocusService struct {
	mu       sync.Mutex
	storage  ports.Storage
	app      *domain.App
	logger   *log.Logger
	notifier ports.Notifier
	now      func() time.Time
	rng      domain.Rand

	// commitmentNotified holds project IDs already announced this session.
	commitmentNotified map[string]bool
}

// NewFocusService creates a focus service over storage. A nil logger discards output.
func NewFocusService(storage ports.Storage, logger *log.Logger) *FocusService {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &FocusService{
		storage:            storage,
		app:                domain.NewApp(),
		logger:             logger,
		now:                time.Now,
		rng:                domain.DefaultRand(),
		commitmentNotified: make(map[string]bool),
	}
}

// SetNotifier sets the notifier used for random picks and commitments.
func (s *FocusService) SetNotifier(n ports.Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifier = n
}

// SetClock replaces the time source.
func (s *FocusService) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SetRand replaces the random source used for distinct selection.
func (s *FocusService) SetRand(r domain.Rand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = r
}

// SetDefaultCommitment sets the commitment given to new projects.
func (s *FocusService) SetDefaultCommitment(c domain.TimeCommitment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.app.SetDefaultCommitment(c)
}

// Load replaces the in-memory state with the stored one.
func (s *FocusService) Load(ctx context.Context) error {
	app, err := s.storage.State().Load(ctx)
	if err != nil {
		s.logger.Printf("load: %v", err)
		return fmt.Errorf("failed to load state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	app.SetDefaultCommitment(s.app.DefaultCommitment())
	s.app = app

	// Commitments already met before this session are not announced again.
	state := s.app.Snapshot(s.now())
	for i := range state.Projects {
		if state.Projects[i].CommitmentMet() {
			s.commitmentNotified[state.Projects[i].ID] = true
		}
	}
	return nil
}

// State returns a snapshot without ticking.
func (s *FocusService) State() *domain.CurrentState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.app.Snapshot(s.now())
}

// Tick commits pending time on the current task and returns a snapshot.
// Hosts call it before rendering elapsed time.
func (s *FocusService) Tick(ctx context.Context) *domain.CurrentState {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if p, err := s.app.CurrentProject(); err == nil {
		_ = p.TickCurrentTask(now)
	}
	state := s.app.Snapshot(now)
	s.checkCommitment(state)
	return state
}

// checkCommitment announces the current project reaching today's commitment once.
func (s *FocusService) checkCommitment(state *domain.CurrentState) {
	ps := state.ActiveProject()
	if ps == nil || !ps.CommitmentMet() || s.commitmentNotified[ps.ID] {
		return
	}
	s.commitmentNotified[ps.ID] = true
	s.logger.Printf("commitment met: %s (%s)", ps.Name, ps.CommitmentToday)
	if s.notifier != nil {
		if err := s.notifier.NotifyCommitmentMet(ps.Name, ps.CommitmentToday.String()); err != nil {
			s.logger.Printf("notify: %v", err)
		}
	}
}

// Execute applies cmd, persists the result and returns any failure.
// Failures are logged once and leave the state unchanged.
func (s *FocusService) Execute(ctx context.Context, cmd ports.Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.execute(ctx, cmd)
}

func (s *FocusService) execute(ctx context.Context, cmd ports.Command) error {
	if err := s.apply(cmd); err != nil {
		if errors.Is(err, domain.ErrSelectionNoop) {
			s.logger.Printf("%s: notice: %v", cmd, err)
		} else {
			s.logger.Printf("%s: %v", cmd, err)
		}
		return fmt.Errorf("%s: %w", cmd.Kind, err)
	}
	return s.save(ctx)
}

func (s *FocusService) save(ctx context.Context) error {
	if err := s.storage.State().Save(ctx, s.app); err != nil {
		s.logger.Printf("save: %v", err)
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// apply dispatches one command against the state tree.
func (s *FocusService) apply(cmd ports.Command) error {
	now := s.now()

	switch cmd.Kind {
	case ports.CmdProjectAdd:
		s.app.AddProject()
		return nil
	case ports.CmdProjectRemove:
		return s.moveTracking(now, func() error { return s.app.RemoveProject(cmd.Index) })
	case ports.CmdProjectRename:
		return s.app.SetProjectName(cmd.Index, cmd.Text)
	case ports.CmdProjectDescribe:
		return s.app.SetProjectDescription(cmd.Index, cmd.Text)
	case ports.CmdProjectAnnotate:
		return s.app.SetProjectNote(cmd.Index, cmd.Text)
	case ports.CmdProjectCommit:
		return s.app.SetProjectCommitment(cmd.Index, cmd.Weekday, cmd.Duration)
	case ports.CmdProjectSelect:
		return s.moveTracking(now, func() error { return s.app.SetCurrentProject(cmd.Index) })
	case ports.CmdProjectRandom:
		return s.moveTracking(now, func() error {
			_, err := s.app.ChooseRandomProject(s.rng)
			return err
		})
	case ports.CmdViewSwitch:
		return s.app.SetView(domain.View(cmd.Text))
	}

	p, err := s.app.CurrentProject()
	if err != nil {
		if isTaskCommand(cmd.Kind) {
			return err
		}
		return fmt.Errorf("%w %q", ErrUnknownCommand, cmd.Kind)
	}

	switch cmd.Kind {
	case ports.CmdTaskAdd:
		p.AddDefaultTask()
		return nil
	case ports.CmdTaskRemove:
		return s.moveTracking(now, func() error { return p.RemoveTask(cmd.Index) })
	case ports.CmdTaskRename:
		return p.SetTaskName(cmd.Index, cmd.Text)
	case ports.CmdTaskDescribe:
		return p.SetTaskDescription(cmd.Index, cmd.Text)
	case ports.CmdTaskAnnotate:
		return p.SetTaskNote(cmd.Index, cmd.Text)
	case ports.CmdTaskSelect:
		return s.moveTracking(now, func() error { return p.SetCurrentTask(cmd.Index) })
	case ports.CmdTaskStart:
		return p.StartCurrentTask(now)
	case ports.CmdTaskStop:
		return p.StopCurrentTask(now)
	case ports.CmdTaskToggle:
		t, err := p.CurrentTask()
		if err != nil {
			return err
		}
		if t.IsTracking() {
			t.StopAt(now)
		} else {
			t.StartAt(now)
		}
		return nil
	case ports.CmdTaskRandom:
		if err := s.moveTracking(now, func() error {
			_, err := p.ChooseRandomTask(s.rng)
			return err
		}); err != nil {
			return err
		}
		s.announceChoice(p)
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, cmd.Kind)
	}
}

func isTaskCommand(kind ports.CommandKind) bool {
	switch kind {
	case ports.CmdTaskAdd, ports.CmdTaskRemove, ports.CmdTaskRename, ports.CmdTaskDescribe,
		ports.CmdTaskAnnotate, ports.CmdTaskSelect, ports.CmdTaskStart, ports.CmdTaskStop,
		ports.CmdTaskToggle, ports.CmdTaskRandom:
		return true
	}
	return false
}

// activeTask returns the current task of the current project, or nil.
func (s *FocusService) activeTask() *domain.Task {
	p, err := s.app.CurrentProject()
	if err != nil {
		return nil
	}
	t, err := p.CurrentTask()
	if err != nil {
		return nil
	}
	return t
}

// moveTracking runs a change that may move the current task, a selection
// or a removal. If the active task was running, tracking moves with it to
// the newly current task.
func (s *FocusService) moveTracking(now time.Time, change func() error) error {
	before := s.activeTask()
	wasTracking := before != nil && before.IsTracking()

	if err := change(); err != nil {
		return err
	}

	after := s.activeTask()
	if !wasTracking || after == before {
		return nil
	}
	before.StopAt(now)
	if after != nil {
		after.StartAt(now)
	}
	return nil
}

func (s *FocusService) announceChoice(p *domain.Project) {
	t, err := p.CurrentTask()
	if err != nil {
		return
	}
	s.logger.Printf("random pick: %s / %s", p.DisplayName(), t.DisplayName())
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyTaskChosen(p.DisplayName(), t.DisplayName()); err != nil {
		s.logger.Printf("notify: %v", err)
	}
}

// AddNamedTask appends a task to the current project with the given text
// and returns its index.
func (s *FocusService) AddNamedTask(ctx context.Context, name, description string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.app.CurrentProject()
	if err != nil {
		s.logger.Printf("%s: %v", ports.CmdTaskAdd, err)
		return -1, fmt.Errorf("%s: %w", ports.CmdTaskAdd, err)
	}
	t := p.AddDefaultTask()
	t.Name = name
	t.Description = description

	return p.TaskCount() - 1, s.save(ctx)
}

// AddNamedProject appends a project with the given name and returns its index.
func (s *FocusService) AddNamedProject(ctx context.Context, name, description string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.app.AddProject()
	p.Name = name
	p.Description = description

	return s.app.ProjectCount() - 1, s.save(ctx)
}

// FindProject returns the index of the project whose name best matches query.
func (s *FocusService) FindProject(query string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var names []string
	for _, p := range s.app.Projects() {
		names = append(names, p.Name)
	}
	return bestMatch(query, names)
}

// FindTask returns the index of the task in the current project whose name
// best matches query.
func (s *FocusService) FindTask(query string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.app.CurrentProject()
	if err != nil {
		return -1, err
	}
	var names []string
	for _, t := range p.Tasks() {
		names = append(names, t.Name)
	}
	return bestMatch(query, names)
}

// bestMatch does a fuzzy search and returns the highest scoring index.
// An exact name match always wins.
func bestMatch(query string, names []string) (int, error) {
	for i, n := range names {
		if n == query {
			return i, nil
		}
	}
	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return -1, fmt.Errorf("%w for %q", ErrNoMatch, query)
	}
	return matches[0].Index, nil
}

// Shutdown stops every running task, committing its time, and saves.
func (s *FocusService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.app.StopAll(s.now())
	return s.save(ctx)
}
