package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/stayfocused/internal/adapters/storage"
	"github.com/xvierd/stayfocused/internal/config"
	"github.com/xvierd/stayfocused/internal/domain"
	"github.com/xvierd/stayfocused/internal/ports"
	"github.com/xvierd/stayfocused/internal/services"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

type firstOther struct{}

func (firstOther) IntN(n int) int { return 0 }

func newHost(t *testing.T, tasks ...string) (*services.FocusService, *clock) {
	t.Helper()
	store, err := storage.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	c := &clock{now: time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC)}
	svc := services.NewFocusService(store, nil)
	svc.SetClock(c.Now)
	svc.SetRand(firstOther{})

	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))
	_, err = svc.AddNamedProject(ctx, "Work", "")
	require.NoError(t, err)
	require.NoError(t, svc.Execute(ctx, ports.Command{Kind: ports.CmdProjectSelect, Index: 0}))
	for _, name := range tasks {
		_, err := svc.AddNamedTask(ctx, name, "")
		require.NoError(t, err)
	}
	return svc, c
}

func keyPress(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestResolveTheme(t *testing.T) {
	assert.Equal(t, config.DefaultThemeConfig(), resolveTheme(nil))

	custom := &config.ThemeConfig{ColorTracking: "#FFFFFF"}
	resolved := resolveTheme(custom)
	assert.Equal(t, "#FFFFFF", resolved.ColorTracking)
	assert.Equal(t, config.DefaultThemeConfig().ColorHelp, resolved.ColorHelp)
}

func TestModel_ToggleAndTick(t *testing.T) {
	host, c := newHost(t, "review", "deploy")
	m := NewModel(context.Background(), host, time.Second, nil)

	m, _ = update(t, m, keyPress(" "))
	require.True(t, m.State().IsTracking())

	c.now = c.now.Add(3 * time.Second)
	m, cmd := update(t, m, tickMsg(c.now))
	assert.NotNil(t, cmd, "tick must schedule the next tick")
	assert.Equal(t, 3*time.Second, m.State().ActiveTask().Elapsed)

	m, _ = update(t, m, keyPress(" "))
	assert.False(t, m.State().IsTracking())
}

func TestModel_NextPrevWrap(t *testing.T) {
	host, _ := newHost(t, "a", "b", "c")
	m := NewModel(context.Background(), host, time.Second, nil)

	m, _ = update(t, m, keyPress("n"))
	assert.Equal(t, "b", m.State().ActiveTask().Name)

	m, _ = update(t, m, keyPress("p"))
	m, _ = update(t, m, keyPress("p"))
	assert.Equal(t, "c", m.State().ActiveTask().Name, "prev wraps to the last task")

	m, _ = update(t, m, keyPress("n"))
	assert.Equal(t, "a", m.State().ActiveTask().Name, "next wraps to the first task")
}

func TestModel_RandomAndErrors(t *testing.T) {
	host, _ := newHost(t, "a", "b")
	m := NewModel(context.Background(), host, time.Second, nil)

	m, _ = update(t, m, keyPress("r"))
	assert.Equal(t, "b", m.State().ActiveTask().Name)
	assert.NoError(t, m.lastErr)

	// One project only: a random project pick has nothing else to choose.
	m, _ = update(t, m, keyPress("R"))
	assert.ErrorIs(t, m.lastErr, domain.ErrSelectionNoop)
}

func TestModel_ViewSwitchAndRender(t *testing.T) {
	host, _ := newHost(t, "review")
	m := NewModel(context.Background(), host, time.Second, nil)

	assert.Equal(t, "Loading...", m.View())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Contains(t, m.View(), "review")

	m, _ = update(t, m, keyPress("v"))
	assert.Equal(t, domain.ViewProject, m.State().View)
	assert.Contains(t, m.View(), "> ")

	m, _ = update(t, m, keyPress("v"))
	assert.Equal(t, domain.ViewProjectList, m.State().View)
	assert.Contains(t, m.View(), "Work")

	m, _ = update(t, m, keyPress("v"))
	assert.Equal(t, domain.ViewTask, m.State().View)
}

func TestModel_Quit(t *testing.T) {
	host, _ := newHost(t, "review")
	m := NewModel(context.Background(), host, time.Second, nil)

	m, cmd := update(t, m, keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestRenderBigTime(t *testing.T) {
	narrow := renderBigTime("01:02:03", "#FFFFFF", 10)
	assert.NotContains(t, narrow, "\n")

	wide := renderBigTime("01:02:03", "#FFFFFF", 120)
	assert.Equal(t, 5, len(strings.Split(wide, "\n")))
	assert.Contains(t, wide, "██")

	// Six 3-pixel digits, two 1-pixel colons, seven gaps.
	assert.Equal(t, 6*6+2*2+7, bigTimeWidth("01:02:03"))
}

func TestNextView(t *testing.T) {
	assert.Equal(t, domain.ViewProject, nextView(domain.ViewTask))
	assert.Equal(t, domain.ViewTask, nextView(domain.ViewProjectList))
	assert.Equal(t, domain.ViewTask, nextView("bogus"))
}
