// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"context"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/stayfocused/internal/config"
	"github.com/xvierd/stayfocused/internal/domain"
	"github.com/xvierd/stayfocused/internal/ports"
)

// Host is the state owner the focus view drives.
type Host interface {
	// Tick commits pending time and returns a fresh snapshot.
	Tick(ctx context.Context) *domain.CurrentState
	Execute(ctx context.Context, cmd ports.Command) error
	Shutdown(ctx context.Context) error
}

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// tickMsg is sent on every timer tick.
type tickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model represents the TUI state.
type Model struct {
	ctx      context.Context
	host     Host
	state    *domain.CurrentState
	interval time.Duration
	keys     keyMap
	help     help.Model
	progress progress.Model
	theme    config.ThemeConfig
	width    int
	height   int
	lastErr  error
	quitting bool
}

// NewModel creates a focus view over host, polling every interval.
func NewModel(ctx context.Context, host Host, interval time.Duration, theme *config.ThemeConfig) Model {
	if interval <= 0 {
		interval = time.Second
	}
	return Model{
		ctx:      ctx,
		host:     host,
		state:    host.Tick(ctx),
		interval: interval,
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		theme:    resolveTheme(theme),
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// execute runs cmd against the host and refreshes the snapshot.
func (m *Model) execute(cmd ports.Command) {
	m.lastErr = m.host.Execute(m.ctx, cmd)
	m.state = m.host.Tick(m.ctx)
}

// stepTask selects the task delta positions away, wrapping around.
func (m *Model) stepTask(delta int) {
	p := m.state.ActiveProject()
	if p == nil || len(p.Tasks) == 0 {
		return
	}
	n := len(p.Tasks)
	next := ((p.CurrentTask+delta)%n + n) % n
	if next == p.CurrentTask {
		return
	}
	m.execute(ports.Command{Kind: ports.CmdTaskSelect, Index: next})
}

// nextView returns the view after v in display order.
func nextView(v domain.View) domain.View {
	views := domain.ValidViews
	for i, candidate := range views {
		if candidate == v {
			return views[(i+1)%len(views)]
		}
	}
	return domain.ViewTask
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.execute(ports.Command{Kind: ports.CmdTaskToggle})
		case key.Matches(msg, m.keys.Random):
			m.execute(ports.Command{Kind: ports.CmdTaskRandom})
		case key.Matches(msg, m.keys.RandomProject):
			m.execute(ports.Command{Kind: ports.CmdProjectRandom})
		case key.Matches(msg, m.keys.Next):
			m.stepTask(1)
		case key.Matches(msg, m.keys.Prev):
			m.stepTask(-1)
		case key.Matches(msg, m.keys.View):
			m.execute(ports.Command{Kind: ports.CmdViewSwitch, Text: string(nextView(m.state.View))})
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(msg.Width-4, 40)
		return m, nil

	case tickMsg:
		m.state = m.host.Tick(m.ctx)
		return m, tickCmd(m.interval)

	case progress.FrameMsg:
		newProgress, cmd := m.progress.Update(msg)
		if p, ok := newProgress.(progress.Model); ok {
			m.progress = p
		}
		return m, cmd
	}

	return m, nil
}

// State returns the last snapshot rendered.
func (m Model) State() *domain.CurrentState {
	return m.state
}
