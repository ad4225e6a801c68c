package todo

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store couples a List with the file it was loaded from and is flushed to.
type Store struct {
	path    string
	list    *List
	skipped int
}

// Load reads the storage file at path, creating its directory if needed.
// A missing file yields an empty store. Malformed lines are dropped and
// counted, see Skipped.
func Load(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	s := &Store{path: path, list: &List{}}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat todo file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("open todo file: %s is a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open todo file: %w", err)
	}
	defer f.Close()

	tasks, skipped, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read todo file: %w", err)
	}
	s.list.tasks = tasks
	s.skipped = skipped
	return s, nil
}

// Path returns the storage file path.
func (s *Store) Path() string {
	return s.path
}

// List returns the in-memory task list. Changes are not persisted until Flush.
func (s *Store) List() *List {
	return s.list
}

// Skipped returns how many lines were dropped as malformed by Load.
func (s *Store) Skipped() int {
	return s.skipped
}

// Flush truncates the storage file and rewrites it with the current list.
func (s *Store) Flush() error {
	var buf bytes.Buffer
	if err := Encode(&buf, s.list.All()); err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open todo file: %w", err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("write todo file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close todo file: %w", err)
	}
	return nil
}
