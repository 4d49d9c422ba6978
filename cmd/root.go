// Package cmd provides the CLI commands for the stayfocused application.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	dbPath     string
	configPath string
	jsonOutput bool
	quiet      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stayfocused",
	Short: "stayfocused - track time across projects and tasks",
	Long: `stayfocused keeps a list of projects, each with its own tasks, and
tracks the time you spend on them against a weekly time commitment.

Run "stayfocused focus" to open the focus view and start tracking.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFocus(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the database file (default: ~/.stayfocused/stayfocused.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.stayfocused/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress log output")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("stayfocused %s (commit %s, built %s)\n", Version, GitCommit, BuildDate))
}

// parseIndex parses a zero-based list index argument.
func parseIndex(s string) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("invalid index %q: must be a non-negative number", s)
	}
	return idx, nil
}

// joinArgs joins the remaining words of a command line into one text value.
func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// getDir returns the directory portion of a file path.
func getDir(path string) string {
	lastSep := 0
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			lastSep = i
			break
		}
	}
	if lastSep == 0 {
		return "."
	}
	return path[:lastSep]
}
