package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/xvierd/stayfocused/internal/config"
	"github.com/xvierd/stayfocused/internal/ports"
)

// Options configures a focus session.
type Options struct {
	TickInterval time.Duration
	// Autostart starts the current task before the view opens.
	Autostart bool
	Theme     *config.ThemeConfig
}

// Run opens the focus view and blocks until the user quits or ctx is
// cancelled. Every tracker is stopped and the state saved on the way out.
func Run(ctx context.Context, host Host, opts Options) (err error) {
	defer func() {
		if serr := host.Shutdown(context.WithoutCancel(ctx)); serr != nil && err == nil {
			err = fmt.Errorf("failed to save on exit: %w", serr)
		}
	}()

	if opts.Autostart {
		// A project without tasks simply opens idle.
		_ = host.Execute(ctx, ports.Command{Kind: ports.CmdTaskStart})
	}

	m := NewModel(ctx, host, opts.TickInterval, opts.Theme)
	if w, h, serr := term.GetSize(os.Stdout.Fd()); serr == nil {
		m.width, m.height = w, h
		m.help.Width = w
	}

	program := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
