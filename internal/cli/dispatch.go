// Package cli parses arguments and dispatches to the interactive loop or a
// one-shot command.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/output"
	"todo/internal/repl"
	"todo/internal/todo"
)

// StoreLoader opens the task store for a config.
// Used to inject storage failures in tests.
type StoreLoader func(cfg *config.Config) (*todo.Store, error)

// LoadStore is the default StoreLoader.
func LoadStore(cfg *config.Config) (*todo.Store, error) {
	return todo.Load(cfg.TodoPath())
}

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	in       repl.Input
	load     StoreLoader
}

// NewDispatcher creates a new dispatcher with the given registry and the
// input used by the interactive loop.
func NewDispatcher(registry *commands.Registry, in repl.Input) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		in:       in,
		load:     LoadStore,
	}
}

// SetStoreLoader replaces the store loader (for testing).
func (d *Dispatcher) SetStoreLoader(load StoreLoader) {
	d.load = load
}

// commonFlags holds flags accepted before and after the command name.
type commonFlags struct {
	dir   string
	quiet bool
	debug bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.dir, "dir", c.dir, "")
	fs.BoolVar(&c.quiet, "quiet", c.quiet, "")
	fs.BoolVar(&c.debug, "debug", c.debug, "")
}

// Run parses arguments and dispatches to the appropriate command.
// With no command it runs the interactive loop.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	var common commonFlags

	// Leading common flags, then an optional command name.
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return reportFlagError(errOut, err)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return d.interactive(ctx, common, out, errOut)
	}

	cmdName := rest[0]
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, common, rest[1:], out, errOut)
}

func (d *Dispatcher) interactive(ctx context.Context, common commonFlags, out, errOut io.Writer) int {
	cfg, logger, code := d.setup(common, errOut)
	if code != exitcode.Success {
		return code
	}

	store, code := d.openStore(cfg, logger, errOut)
	if code != exitcode.Success {
		return code
	}

	printer := output.NewPrinter(out, output.OptionsFromConfig(cfg, output.IsTerminal(out)))
	loop := repl.New(d.registry, cfg, store, d.in, printer, errOut, logger)
	return loop.Run(ctx)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, common commonFlags, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	common.register(fs)
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return reportFlagError(errOut, err)
	}

	positionalArgs := fs.Args()

	cfg, logger, code := d.setup(common, errOut)
	if code != exitcode.Success {
		return code
	}

	if !cmd.NeedsStore() {
		return cmd.Run(ctx, cfg, nil, positionalArgs, out, errOut)
	}

	store, code := d.openStore(cfg, logger, errOut)
	if code != exitcode.Success {
		return code
	}

	code = cmd.Run(ctx, cfg, store.List(), positionalArgs, out, errOut)
	if code != exitcode.Success || !cmd.Mutates() {
		return code
	}

	if err := store.Flush(); err != nil {
		logger.Error("flush failed", "path", store.Path(), "err", err)
		fmt.Fprintf(errOut, "error: could not write tasks: %v\n", err)
		return exitcode.StorageError
	}
	logger.Debug("saved tasks", "path", store.Path(), "tasks", store.List().Len())
	return exitcode.Success
}

// setup resolves the config and builds the logger.
func (d *Dispatcher) setup(common commonFlags, errOut io.Writer) (*config.Config, *log.Logger, int) {
	cfg, err := config.Load(common.dir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return nil, nil, exitcode.StorageError
	}
	cfg.Quiet = common.quiet
	cfg.Debug = common.debug

	logger := logging.FromConfig(errOut, cfg.LogLevel, cfg.Debug)
	return cfg, logger, exitcode.Success
}

// openStore loads the task store. Failure is unrecoverable for the process.
func (d *Dispatcher) openStore(cfg *config.Config, logger *log.Logger, errOut io.Writer) (*todo.Store, int) {
	store, err := d.load(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return nil, exitcode.StorageError
	}
	if n := store.Skipped(); n > 0 {
		logger.Warn("skipped malformed lines", "path", store.Path(), "count", n)
	}
	logger.Debug("loaded tasks", "path", store.Path(), "tasks", store.List().Len())
	return store, exitcode.Success
}

// reportFlagError prints a flag parsing error and returns the exit code.
func reportFlagError(errOut io.Writer, err error) int {
	errStr := err.Error()

	// Check for missing flag value
	if strings.Contains(errStr, "flag needs an argument") {
		flagPart := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagPart)
		return exitcode.UserError
	}

	// Check for unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag provided but not defined:"))
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}
