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
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string      { return "delete" }
func (c *DeleteCmd) Aliases() []string { return []string{"rm"} }
func (c *DeleteCmd) Key() rune         { return 'd' }
func (c *DeleteCmd) Synopsis() string  { return "Delete a task" }
func (c *DeleteCmd) Usage() string     { return "todo delete <index>" }
func (c *DeleteCmd) NeedsStore() bool  { return true }
func (c *DeleteCmd) Mutates() bool     { return true }

func (c *DeleteCmd) Prompts() []Prompt {
	return []Prompt{{Text: "\nEnter the task number you want to delete: ", Index: true}}
}

func (c *DeleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DeleteCmd) Run(ctx context.Context, cfg *config.Config, list *todo.List, args []string, out, errOut io.Writer) int {
	code := runIndexed(args, errOut, list.Remove)
	if code == exitcode.Success && !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return code
}
