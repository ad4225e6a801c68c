// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/todo"
)

// Prompt is one line of auxiliary input the interactive loop asks for
// before running a command.
type Prompt struct {
	// Text is printed before the line is read.
	Text string

	// Index marks answers that must parse as a task number.
	Index bool
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Key returns the single character that selects the command in the
	// interactive loop, or 0 if the command is not offered there.
	Key() rune

	// Prompts returns the auxiliary inputs the interactive loop reads, in
	// order. The answers become the positional args of Run.
	Prompts() []Prompt

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command operates on the task list.
	// Commands like help and version return false.
	NeedsStore() bool

	// Mutates returns true if a successful run changes the task list.
	// One-shot runs flush the store after a mutating command succeeds.
	Mutates() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided.
	// list is nil if NeedsStore() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, list *todo.List, args []string, out, errOut io.Writer) int
}

// Announcer is implemented by commands that print a notice in the
// interactive loop before they run.
type Announcer interface {
	Announce() string
}
