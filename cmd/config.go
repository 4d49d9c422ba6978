package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/stayfocused/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the configuration",
	Long:  `Show the active configuration and where it is read from.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		cfg := app.config

		if jsonOutput {
			commitment := map[string]string{}
			for i, d := range cfg.DefaultCommitment().Days() {
				if d > 0 {
					commitment[weekdayNames[i]] = d.String()
				}
			}
			return printJSON(cmd, map[string]interface{}{
				"path":               path,
				"database":           cfg.DBPath(),
				"tick_interval":      cfg.Tracking.TickInterval.String(),
				"autostart":          cfg.Tracking.Autostart,
				"notifications":      cfg.Notifications.Enabled,
				"notification_sound": cfg.Notifications.Sound,
				"mcp":                cfg.MCP.Enabled,
				"default_commitment": commitment,
			})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "  Config file:    %s\n", path)
		fmt.Fprintf(out, "  Database:       %s\n", cfg.DBPath())
		fmt.Fprintf(out, "  Tick interval:  %s\n", cfg.Tracking.TickInterval)
		fmt.Fprintf(out, "  Autostart:      %v\n", cfg.Tracking.Autostart)

		notifStatus := "off"
		if cfg.Notifications.Enabled {
			notifStatus = "on"
			if cfg.Notifications.Sound {
				notifStatus = "on (with sound)"
			}
		}
		fmt.Fprintf(out, "  Notifications:  %s\n", notifStatus)
		fmt.Fprintf(out, "  MCP server:     %v\n", cfg.MCP.Enabled)

		fmt.Fprintln(out, "  Default commitment for new projects:")
		for i, d := range cfg.DefaultCommitment().Days() {
			fmt.Fprintf(out, "    %-10s %s\n", weekdayNames[i], d)
		}
		return nil
	},
}

var configCommitCmd = &cobra.Command{
	Use:   "commit <weekday> <duration>",
	Short: "Set the default commitment given to new projects",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		weekday, err := parseWeekday(args[0])
		if err != nil {
			return err
		}
		d, err := time.ParseDuration(args[1])
		if err != nil || d < 0 {
			return fmt.Errorf("invalid duration %q", args[1])
		}

		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		cfg := *app.config
		days := []*config.Duration{
			&cfg.Commitment.Sunday, &cfg.Commitment.Monday, &cfg.Commitment.Tuesday,
			&cfg.Commitment.Wednesday, &cfg.Commitment.Thursday, &cfg.Commitment.Friday,
			&cfg.Commitment.Saturday,
		}
		*days[weekday-1] = config.Duration(d)

		if err := config.Save(&cfg, path); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		*app.config = cfg

		fmt.Fprintf(cmd.OutOrStdout(), "🎯 New projects commit %s on %s\n", d, weekdayNames[weekday-1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configCommitCmd)
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}
