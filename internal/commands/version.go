package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/todo"
)

// Version overrides the reported version when set with -ldflags -X.
var Version string

// fallbackVersion is reported by builds without module version information,
// such as go run or a build inside the source tree.
const fallbackVersion = "0.1.0"

func init() {
	Register(&VersionCmd{})
}

// VersionCmd implements the version command.
type VersionCmd struct{}

func (c *VersionCmd) Name() string      { return "version" }
func (c *VersionCmd) Aliases() []string { return nil }
func (c *VersionCmd) Key() rune         { return 0 }
func (c *VersionCmd) Prompts() []Prompt { return nil }
func (c *VersionCmd) Synopsis() string  { return "Print version" }
func (c *VersionCmd) Usage() string     { return "todo version" }
func (c *VersionCmd) NeedsStore() bool  { return false }
func (c *VersionCmd) Mutates() bool     { return false }

func (c *VersionCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *VersionCmd) Run(ctx context.Context, cfg *config.Config, list *todo.List, args []string, out, errOut io.Writer) int {
	info, ok := debug.ReadBuildInfo()
	fmt.Fprintf(out, "todo %s\n", resolveVersion(Version, info, ok))
	return exitcode.Success
}

// resolveVersion prefers an explicit override, then the main module version
// recorded by go install, then fallbackVersion.
func resolveVersion(override string, info *debug.BuildInfo, ok bool) string {
	if override != "" {
		return override
	}
	if ok && info != nil {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return strings.TrimPrefix(v, "v")
		}
	}
	return fallbackVersion
}
