// Package config handles loading and saving pathdash configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/pathdash/config.yaml
//   - Data:    ~/.local/share/pathdash/ (pathdash.db, chapters/)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/pathdash/internal/viewstate"
)

const appName = "pathdash"

// UIConfig holds dashboard preference settings.
type UIConfig struct {
	Title string   `yaml:"title,omitempty"`
	Flags []string `yaml:"flags,omitempty"` // view flags registered at session start
}

// WatchConfig controls live reload of the data file and chapters directory.
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce,omitempty"`
}

// Config is the top-level configuration for pathdash.
type Config struct {
	DataFile    string      `yaml:"data_file,omitempty"`    // JSON/YAML course table; empty = database or built-in
	ChaptersDir string      `yaml:"chapters_dir,omitempty"` // directory of <skill>.md notes
	DBPath      string      `yaml:"db_path,omitempty"`
	UI          UIConfig    `yaml:"ui,omitempty"`
	Watch       WatchConfig `yaml:"watch,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ChaptersDir: filepath.Join(DataDir(), "chapters"),
		UI: UIConfig{
			Title: "CSE Learning Path Dashboard",
			Flags: viewstate.DefaultFlags(),
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: 200 * time.Millisecond,
		},
	}
}

// ConfigDir returns the XDG config directory for pathdash.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// DataDir returns the XDG data directory for pathdash.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", appName)
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path, then applies environment
// overrides. Returns DefaultConfig (plus overrides) if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	cfg.applyEnv()

	cfg.DataFile = expandHome(cfg.DataFile)
	cfg.ChaptersDir = expandHome(cfg.ChaptersDir)
	cfg.DBPath = expandHome(cfg.DBPath)
	if len(cfg.UI.Flags) == 0 {
		cfg.UI.Flags = viewstate.DefaultFlags()
	}

	return cfg, nil
}

// applyEnv overrides file values with PATHDASH_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("PATHDASH_DATA"); v != "" {
		c.DataFile = v
	}
	if v := os.Getenv("PATHDASH_CHAPTERS"); v != "" {
		c.ChaptersDir = v
	}
	if v := os.Getenv("PATHDASH_DB"); v != "" {
		c.DBPath = v
	}
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ResolveDBPath returns the database path, defaulting to the XDG data dir.
// The parent directory is created if needed.
func (c Config) ResolveDBPath() (string, error) {
	p := c.DBPath
	if p == "" {
		dir := DataDir()
		if dir == "" {
			return "", fmt.Errorf("cannot determine data directory")
		}
		p = filepath.Join(dir, appName+".db")
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("create db dir: %w", err)
	}
	return p, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
