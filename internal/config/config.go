// Package config provides configuration management for stayfocused.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/xvierd/stayfocused/internal/domain"
)

const (
	appDir        = ".stayfocused"
	dbFile        = "stayfocused.db"
	envPrefix     = "STAYFOCUSED"
	minTick       = 100 * time.Millisecond
	defaultTick   = time.Second
	defaultDirTag = "~/" + appDir
)

// weekdayKeys are the commitment keys in weekday-number order, Sunday first.
var weekdayKeys = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// Config holds all configuration for the stayfocused application.
type Config struct {
	Storage       StorageConfig      `mapstructure:"storage"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Tracking      TrackingConfig     `mapstructure:"tracking"`
	Commitment    CommitmentConfig   `mapstructure:"commitment"`
	MCP           MCPConfig          `mapstructure:"mcp"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// ThemeConfig holds focus view colors.
type ThemeConfig struct {
	ColorTracking string `mapstructure:"color_tracking"`
	ColorIdle     string `mapstructure:"color_idle"`
	ColorTitle    string `mapstructure:"color_title"`
	ColorTask     string `mapstructure:"color_task"`
	ColorHelp     string `mapstructure:"color_help"`
	ColorMet      string `mapstructure:"color_met"`
	ColorError    string `mapstructure:"color_error"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorTracking: "#7C6FE0",
		ColorIdle:     "#6B7280",
		ColorTitle:    "#6B7280",
		ColorTask:     "#A0AEC0",
		ColorHelp:     "#95A5A6",
		ColorMet:      "#2ECC71",
		ColorError:    "#E74C3C",
	}
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// TrackingConfig controls the focus view.
type TrackingConfig struct {
	// TickInterval is how often the focus view polls the tracker.
	TickInterval Duration `mapstructure:"tick_interval"`
	// Autostart starts the current task when the focus view opens.
	Autostart bool `mapstructure:"autostart"`
}

// CommitmentConfig is the default weekly commitment for new projects.
type CommitmentConfig struct {
	Sunday    Duration `mapstructure:"sunday"`
	Monday    Duration `mapstructure:"monday"`
	Tuesday   Duration `mapstructure:"tuesday"`
	Wednesday Duration `mapstructure:"wednesday"`
	Thursday  Duration `mapstructure:"thursday"`
	Friday    Duration `mapstructure:"friday"`
	Saturday  Duration `mapstructure:"saturday"`
}

func (c CommitmentConfig) days() [7]Duration {
	return [7]Duration{c.Sunday, c.Monday, c.Tuesday, c.Wednesday, c.Thursday, c.Friday, c.Saturday}
}

// MCPConfig holds MCP server settings.
type MCPConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			DataDir: defaultDirTag,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Tracking: TrackingConfig{
			TickInterval: Duration(defaultTick),
			Autostart:    true,
		},
		MCP: MCPConfig{
			Enabled: true,
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load reads the configuration at path, or at the default location when
// path is empty. A missing file is created with defaults.
// Environment variables prefixed with STAYFOCUSED_ override file values.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(DefaultConfig(), path); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	v := newViper(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	// Expand ~ in data directory
	if c.Storage.DataDir == "" || strings.HasPrefix(c.Storage.DataDir, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		rest := strings.TrimPrefix(c.Storage.DataDir, "~/")
		if rest == "" {
			rest = appDir
		}
		c.Storage.DataDir = filepath.Join(homeDir, rest)
	}

	if time.Duration(c.Tracking.TickInterval) < minTick {
		c.Tracking.TickInterval = Duration(minTick)
	}

	for i, d := range c.Commitment.days() {
		if d < 0 {
			return fmt.Errorf("commitment.%s: %w", weekdayKeys[i], domain.ErrInvalidDuration)
		}
	}
	return nil
}

// Save writes cfg to path as TOML.
func Save(cfg *Config, path string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(path)
	v.Set("storage.data_dir", cfg.Storage.DataDir)
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.sound", cfg.Notifications.Sound)
	v.Set("tracking.tick_interval", cfg.Tracking.TickInterval.String())
	v.Set("tracking.autostart", cfg.Tracking.Autostart)
	for i, d := range cfg.Commitment.days() {
		v.Set("commitment."+weekdayKeys[i], d.String())
	}
	v.Set("mcp.enabled", cfg.MCP.Enabled)
	v.Set("theme.color_tracking", cfg.Theme.ColorTracking)
	v.Set("theme.color_idle", cfg.Theme.ColorIdle)
	v.Set("theme.color_title", cfg.Theme.ColorTitle)
	v.Set("theme.color_task", cfg.Theme.ColorTask)
	v.Set("theme.color_help", cfg.Theme.ColorHelp)
	v.Set("theme.color_met", cfg.Theme.ColorMet)
	v.Set("theme.color_error", cfg.Theme.ColorError)

	return v.WriteConfigAs(path)
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, appDir, "config.toml"), nil
}

// DBPath returns the path to the database file.
func (c *Config) DBPath() string {
	return filepath.Join(c.Storage.DataDir, dbFile)
}

// DefaultCommitment converts the configured weekly commitment to the domain type.
func (c *Config) DefaultCommitment() domain.TimeCommitment {
	var days [7]time.Duration
	for i, d := range c.Commitment.days() {
		days[i] = time.Duration(d)
	}
	return domain.NewTimeCommitment(days)
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.data_dir", defaultDirTag)
	v.SetDefault("notifications.enabled", true)
	v.SetDefault("notifications.sound", true)
	v.SetDefault("tracking.tick_interval", defaultTick.String())
	v.SetDefault("tracking.autostart", true)
	for _, day := range weekdayKeys {
		v.SetDefault("commitment."+day, "0s")
	}
	v.SetDefault("mcp.enabled", true)

	// Theme defaults
	defaults := DefaultThemeConfig()
	v.SetDefault("theme.color_tracking", defaults.ColorTracking)
	v.SetDefault("theme.color_idle", defaults.ColorIdle)
	v.SetDefault("theme.color_title", defaults.ColorTitle)
	v.SetDefault("theme.color_task", defaults.ColorTask)
	v.SetDefault("theme.color_help", defaults.ColorHelp)
	v.SetDefault("theme.color_met", defaults.ColorMet)
	v.SetDefault("theme.color_error", defaults.ColorError)
}
