package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todo/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Dir != dir {
		t.Errorf("expected dir %q, got %q", dir, cfg.Dir)
	}
	if cfg.TodoPath() != filepath.Join(dir, "todo.txt") {
		t.Errorf("unexpected todo path %q", cfg.TodoPath())
	}
	if cfg.CompletedGlyph != "🗹" || cfg.PendingGlyph != "☐" {
		t.Errorf("unexpected glyphs %q %q", cfg.CompletedGlyph, cfg.PendingGlyph)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected log level warn, got %q", cfg.LogLevel)
	}
}

func TestDefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := config.DefaultDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := filepath.Join(home, ".cache", "todo_cli")
	if dir != expected {
		t.Errorf("expected %q, got %q", expected, dir)
	}
}

func TestDefaultDir_NoHome(t *testing.T) {
	t.Setenv("HOME", "")

	if _, err := config.DefaultDir(); err == nil {
		t.Fatal("expected error without a home directory")
	}
	if _, err := config.New(""); err == nil {
		t.Fatal("expected New to fail without a home directory")
	}
}

func TestLoad_NoSettingsFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Color {
		t.Error("color should default to true")
	}
}

func TestLoad_SettingsFile(t *testing.T) {
	dir := t.TempDir()
	settings := `log_level = "debug"
completed_glyph = "[x]"
pending_glyph = ""
color = false
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(settings), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
	if cfg.CompletedGlyph != "[x]" {
		t.Errorf("expected completed glyph [x], got %q", cfg.CompletedGlyph)
	}
	if cfg.PendingGlyph != "☐" {
		t.Errorf("empty glyph should fall back to default, got %q", cfg.PendingGlyph)
	}
	if cfg.Color {
		t.Error("expected color disabled")
	}
	if cfg.Dir != dir {
		t.Errorf("settings must not change dir, got %q", cfg.Dir)
	}
}

func TestLoad_MalformedSettings(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("color = = true"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := config.Load(dir)
	if err == nil {
		t.Fatal("expected error for malformed config.toml")
	}
	if !strings.Contains(err.Error(), "config.toml") {
		t.Errorf("error should name the file, got %v", err)
	}
}
