// Package testutil provides testing utilities.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"todo/internal/config"
	"todo/internal/todo"
)

// NewConfig returns a Config rooted in a fresh temporary directory.
func NewConfig(t *testing.T, quiet bool) *config.Config {
	t.Helper()
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create config: %v", err)
	}
	cfg.Quiet = quiet
	return cfg
}

// WriteTodoFile writes raw storage file content into dir and returns its path.
func WriteTodoFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.TodoFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write todo file: %v", err)
	}
	return path
}

// ReadTodoFile returns the storage file content in dir.
func ReadTodoFile(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, config.TodoFile))
	if err != nil {
		t.Fatalf("failed to read todo file: %v", err)
	}
	return string(data)
}

// NewStore loads a store under cfg.Dir pre-populated with tasks.
// The tasks are only in memory; nothing is flushed.
func NewStore(t *testing.T, cfg *config.Config, tasks ...todo.Task) *todo.Store {
	t.Helper()
	s, err := todo.Load(cfg.TodoPath())
	if err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	for _, task := range tasks {
		s.List().Add(task.Content)
		if task.Completed {
			if err := s.List().Complete(s.List().Len() - 1); err != nil {
				t.Fatalf("failed to complete task: %v", err)
			}
		}
	}
	return s
}

// Pending returns not completed tasks with the given contents.
func Pending(contents ...string) []todo.Task {
	tasks := make([]todo.Task, len(contents))
	for i, c := range contents {
		tasks[i] = todo.Task{Content: c}
	}
	return tasks
}
