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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Key() rune         { return 0 }
func (c *HelpCmd) Prompts() []Prompt { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }
func (c *HelpCmd) Mutates() bool     { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, list *todo.List, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText(DefaultRegistry))
	return exitcode.Success
}

// helpText renders usage from the registered commands.
func helpText(r *Registry) string {
	var b strings.Builder
	var aliases, keys []string

	b.WriteString("Usage:\n")
	fmt.Fprintf(&b, "  %-40s %s\n", "todo [common flags]", "Start the interactive task list")
	for _, cmd := range r.All() {
		fmt.Fprintf(&b, "  %-40s %s\n", cmd.Usage(), cmd.Synopsis())
		aliases = append(aliases, cmd.Aliases()...)
		if k := cmd.Key(); k != 0 {
			keys = append(keys, fmt.Sprintf("%c %s", k, cmd.Name()))
		}
	}

	fmt.Fprintf(&b, "\nAliases: %s\n", strings.Join(aliases, ", "))
	fmt.Fprintf(&b, "\nInteractive keys:\n  %s, q quit (saves the list)\n", strings.Join(keys, ", "))
	b.WriteString(`
Common flags (before or after the command):
  --dir <dir>      Override storage directory (default ~/.cache/todo_cli)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`)
	return b.String()
}
