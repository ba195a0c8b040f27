package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all traccia configuration.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Projects ProjectsConfig `toml:"projects"`
	Goals    GoalsConfig    `toml:"goals"`
	Logging  LoggingConfig  `toml:"logging"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DBPath string `toml:"db_path,omitempty"`
}

// ProjectsConfig holds defaults applied to new projects.
type ProjectsConfig struct {
	DefaultBudget int             `toml:"default_budget"`
	StarterTasks  []StarterConfig `toml:"starter_tasks,omitempty"`
}

// StarterConfig describes one task seeded into every new project.
type StarterConfig struct {
	Name  string `toml:"name"`
	Hours int    `toml:"hours"`
}

// GoalsConfig allows overriding the revenue goal ladder.
type GoalsConfig struct {
	Ladder []GoalConfig `toml:"ladder,omitempty"`
}

// GoalConfig is one rung of the ladder.
type GoalConfig struct {
	ID     string `toml:"id"`
	Name   string `toml:"name"`
	Target int    `toml:"target"`
	Reward string `toml:"reward,omitempty"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level string `toml:"level,omitempty"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Projects: ProjectsConfig{
			DefaultBudget: 300,
			StarterTasks: []StarterConfig{
				{Name: "Initial planning", Hours: 5},
				{Name: "Main development", Hours: 10},
			},
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "traccia")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "traccia")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DBPath returns the database location: TRACCIA_DB env var first, then
// the config file, then the default under the config dir.
func DBPath(cfg Config) string {
	if p := os.Getenv("TRACCIA_DB"); p != "" {
		return p
	}
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	return filepath.Join(ConfigDir(), "traccia.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Projects.DefaultBudget < 0 {
		cfg.Projects.DefaultBudget = 0
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
