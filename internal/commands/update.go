package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/todo"
)

func init() {
	Register(&UpdateCmd{})
}

// UpdateCmd implements the update command.
type UpdateCmd struct{}

func (c *UpdateCmd) Name() string      { return "update" }
func (c *UpdateCmd) Aliases() []string { return []string{"edit"} }
func (c *UpdateCmd) Key() rune         { return 'u' }
func (c *UpdateCmd) Synopsis() string  { return "Replace the content of a task" }
func (c *UpdateCmd) Usage() string     { return "todo update <index> <content...>" }
func (c *UpdateCmd) NeedsStore() bool  { return true }
func (c *UpdateCmd) Mutates() bool     { return true }

func (c *UpdateCmd) Prompts() []Prompt {
	return []Prompt{
		{Text: "\nEnter the task number you want to update: ", Index: true},
		{Text: "\nUpdate the task: "},
	}
}

func (c *UpdateCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UpdateCmd) Run(ctx context.Context, cfg *config.Config, list *todo.List, args []string, out, errOut io.Writer) int {
	if len(args) < 2 {
		if len(args) == 0 {
			fmt.Fprintf(errOut, "error: %v\n", ErrIndexRequired)
		} else {
			fmt.Fprintln(errOut, "error: content required")
		}
		return exitcode.UserError
	}

	content := strings.Join(args[1:], " ")
	code := runIndexed(args, errOut, func(i int) error {
		return list.Update(i, content)
	})
	if code == exitcode.Success && !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return code
}
