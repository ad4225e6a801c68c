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
	Register(&CompleteCmd{})
	Register(&UncompleteCmd{})
}

// CompleteCmd implements the complete command.
type CompleteCmd struct{}

func (c *CompleteCmd) Name() string      { return "complete" }
func (c *CompleteCmd) Aliases() []string { return []string{"done"} }
func (c *CompleteCmd) Key() rune         { return 'c' }
func (c *CompleteCmd) Synopsis() string  { return "Mark a task completed" }
func (c *CompleteCmd) Usage() string     { return "todo complete <index>" }
func (c *CompleteCmd) NeedsStore() bool  { return true }
func (c *CompleteCmd) Mutates() bool     { return true }

func (c *CompleteCmd) Prompts() []Prompt {
	return []Prompt{{Text: "\nEnter the task number you want to mark as complete: ", Index: true}}
}

func (c *CompleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CompleteCmd) Run(ctx context.Context, cfg *config.Config, list *todo.List, args []string, out, errOut io.Writer) int {
	return runSetCompleted(cfg, list, args, true, out, errOut)
}

// UncompleteCmd implements the uncomplete command.
type UncompleteCmd struct{}

func (c *UncompleteCmd) Name() string      { return "uncomplete" }
func (c *UncompleteCmd) Aliases() []string { return []string{"undone"} }
func (c *UncompleteCmd) Key() rune         { return 'C' }
func (c *UncompleteCmd) Synopsis() string  { return "Mark a task not completed" }
func (c *UncompleteCmd) Usage() string     { return "todo uncomplete <index>" }
func (c *UncompleteCmd) NeedsStore() bool  { return true }
func (c *UncompleteCmd) Mutates() bool     { return true }

func (c *UncompleteCmd) Prompts() []Prompt {
	return []Prompt{{Text: "\nEnter the task number you want to mark as not complete: ", Index: true}}
}

func (c *UncompleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UncompleteCmd) Run(ctx context.Context, cfg *config.Config, list *todo.List, args []string, out, errOut io.Writer) int {
	return runSetCompleted(cfg, list, args, false, out, errOut)
}

// runSetCompleted is the shared implementation for complete and uncomplete.
func runSetCompleted(cfg *config.Config, list *todo.List, args []string, completed bool, out, errOut io.Writer) int {
	code := runIndexed(args, errOut, func(i int) error {
		return list.SetCompleted(i, completed)
	})
	if code == exitcode.Success && !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return code
}
