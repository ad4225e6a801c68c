// Package config resolves the storage directory, file paths and settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the storage directory name under the cache dir.
	AppName = "todo_cli"

	// TodoFile is the task storage filename.
	TodoFile = "todo.txt"

	// SettingsFile is the optional settings filename.
	SettingsFile = "config.toml"
)

// Default display glyphs.
const (
	DefaultCompletedGlyph = "🗹"
	DefaultPendingGlyph   = "☐"
)

// Config holds paths and settings.
type Config struct {
	// Dir is the storage directory path.
	Dir string `toml:"-"`

	// Debug enables debug logging.
	Debug bool `toml:"-"`

	// Quiet suppresses informational output.
	Quiet bool `toml:"-"`

	// LogLevel is the diagnostic log level: debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// CompletedGlyph marks completed tasks in the list.
	CompletedGlyph string `toml:"completed_glyph"`

	// PendingGlyph marks tasks that are not completed.
	PendingGlyph string `toml:"pending_glyph"`

	// Color enables styled output when stdout is a terminal.
	Color bool `toml:"color"`
}

// New creates a Config with defaults for the given storage directory.
// If dir is empty, uses $HOME/.cache/todo_cli.
func New(dir string) (*Config, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return &Config{
		Dir:            dir,
		LogLevel:       "warn",
		CompletedGlyph: DefaultCompletedGlyph,
		PendingGlyph:   DefaultPendingGlyph,
		Color:          true,
	}, nil
}

// DefaultDir returns the default storage directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// Load creates a Config for dir and overlays settings from config.toml
// in that directory when the file exists.
func Load(dir string) (*Config, error) {
	cfg, err := New(dir)
	if err != nil {
		return nil, err
	}
	if err := cfg.loadSettings(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadSettings() error {
	path := c.SettingsPath()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("loading config file %s: %w", path, err)
	}
	if c.CompletedGlyph == "" {
		c.CompletedGlyph = DefaultCompletedGlyph
	}
	if c.PendingGlyph == "" {
		c.PendingGlyph = DefaultPendingGlyph
	}
	return nil
}

// TodoPath returns the path to the task storage file.
func (c *Config) TodoPath() string {
	return filepath.Join(c.Dir, TodoFile)
}

// SettingsPath returns the path to the optional settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}
