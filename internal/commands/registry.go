package commands

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Registry maps command names, aliases and interactive keys to commands.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Command
	byKey  map[rune]Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Command),
		byKey:  make(map[rune]Command),
	}
}

// Register adds c under its name, aliases and key (when non-zero).
// Nothing is registered if any of them is already taken.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := append([]string{c.Name()}, c.Aliases()...)
	for _, n := range names {
		if prev, taken := r.byName[n]; taken {
			return fmt.Errorf("command name %q already registered by %s", n, prev.Name())
		}
	}
	key := c.Key()
	if prev, taken := r.byKey[key]; key != 0 && taken {
		return fmt.Errorf("command key %q already registered by %s", key, prev.Name())
	}

	for _, n := range names {
		r.byName[n] = c
	}
	if key != 0 {
		r.byKey[key] = c
	}
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byName[name]
	return c, ok
}

// FindKey looks up a command by its interactive key.
// Keys are case sensitive: c and C are different commands.
func (r *Registry) FindKey(key rune) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byKey[key]
	return c, ok
}

// All returns each registered command once, sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	unique := make(map[string]Command, len(r.byName))
	for c := range maps.Values(r.byName) {
		unique[c.Name()] = c
	}
	return slices.SortedFunc(maps.Values(unique), func(a, b Command) int {
		return strings.Compare(a.Name(), b.Name())
	})
}

// DefaultRegistry holds the commands registered by this package's init functions.
var DefaultRegistry = NewRegistry()

// Register adds c to DefaultRegistry and panics on conflict.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
