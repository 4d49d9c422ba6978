package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xvierd/stayfocused/internal/adapters/git"
	"github.com/xvierd/stayfocused/internal/adapters/notification"
	"github.com/xvierd/stayfocused/internal/adapters/storage"
	"github.com/xvierd/stayfocused/internal/config"
	"github.com/xvierd/stayfocused/internal/ports"
	"github.com/xvierd/stayfocused/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	storage  ports.Storage
	focus    *services.FocusService
	tasks    *services.TaskService
	state    *services.StateService
	git      ports.GitDetector
	notifier *notification.Notifier
	config   *config.Config
	logger   *log.Logger
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices(cmd *cobra.Command) error {
	// A failed RunE skips PersistentPostRunE, so close anything left over.
	_ = cleanupServices()
	app = appDeps{}

	var logOut io.Writer = cmd.ErrOrStderr()
	if quiet {
		logOut = io.Discard
	}
	app.logger = log.New(logOut, "stayfocused: ", 0)

	// Load configuration
	var err error
	app.config, err = config.Load(configPath)
	if err != nil {
		// If config loading fails, use defaults
		app.logger.Printf("using default config: %v", err)
		app.config = config.DefaultConfig()
	}

	app.notifier = notification.New(&app.config.Notifications)

	path := dbPath
	if path == "" {
		path = app.config.DBPath()
	}

	// Ensure directory exists
	if err := os.MkdirAll(getDir(path), 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	app.storage, err = storage.New(path)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	app.git = git.NewDetector()

	app.focus = services.NewFocusService(app.storage, app.logger)
	app.focus.SetDefaultCommitment(app.config.DefaultCommitment())
	if app.notifier.IsEnabled() {
		app.focus.SetNotifier(app.notifier)
	}
	if err := app.focus.Load(cmd.Context()); err != nil {
		return err
	}

	app.tasks = services.NewTaskService(app.focus, app.git)
	app.state = services.NewStateService(app.focus)
	app.state.SetTaskService(app.tasks)

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.storage != nil {
		return app.storage.Close()
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
