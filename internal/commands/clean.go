package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/todo"
)

func init() {
	Register(&CleanCmd{})
	Register(&PurgeCmd{})
}

// CleanCmd implements the clean command.
type CleanCmd struct{}

func (c *CleanCmd) Name() string      { return "clean" }
func (c *CleanCmd) Aliases() []string { return nil }
func (c *CleanCmd) Key() rune         { return 'x' }
func (c *CleanCmd) Prompts() []Prompt { return nil }
func (c *CleanCmd) Synopsis() string  { return "Remove completed tasks" }
func (c *CleanCmd) Usage() string     { return "todo clean" }
func (c *CleanCmd) NeedsStore() bool  { return true }
func (c *CleanCmd) Mutates() bool     { return true }
func (c *CleanCmd) Announce() string  { return "Cleaning up all completed tasks..." }

func (c *CleanCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CleanCmd) Run(ctx context.Context, cfg *config.Config, list *todo.List, args []string, out, errOut io.Writer) int {
	n := list.Clean()
	if !cfg.Quiet {
		fmt.Fprintf(out, "removed %d %s\n", n, plural(n, "task", "tasks"))
	}
	return exitcode.Success
}

// PurgeCmd implements the purge command.
type PurgeCmd struct{}

func (c *PurgeCmd) Name() string      { return "purge" }
func (c *PurgeCmd) Aliases() []string { return nil }
func (c *PurgeCmd) Key() rune         { return 'p' }
func (c *PurgeCmd) Prompts() []Prompt { return nil }
func (c *PurgeCmd) Synopsis() string  { return "Remove all tasks" }
func (c *PurgeCmd) Usage() string     { return "todo purge" }
func (c *PurgeCmd) NeedsStore() bool  { return true }
func (c *PurgeCmd) Mutates() bool     { return true }
func (c *PurgeCmd) Announce() string  { return "Purging all tasks..." }

func (c *PurgeCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *PurgeCmd) Run(ctx context.Context, cfg *config.Config, list *todo.List, args []string, out, errOut io.Writer) int {
	n := list.Purge()
	if !cfg.Quiet {
		fmt.Fprintf(out, "removed %d %s\n", n, plural(n, "task", "tasks"))
	}
	return exitcode.Success
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
