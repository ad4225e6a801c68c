// Package repl runs the interactive single-keystroke command loop.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/terminal"
	"todo/internal/todo"
)

// QuitKey ends the loop and saves the list.
const QuitKey = 'q'

// Input is the user's side of the loop.
type Input interface {
	// ReadKey reads a single keystroke.
	ReadKey() (rune, error)

	// ReadLine reads one line of text.
	ReadLine() (string, error)
}

// Loop drives a store through the commands registered for interactive keys.
// It owns no task state of its own.
type Loop struct {
	registry *commands.Registry
	cfg      *config.Config
	store    *todo.Store
	in       Input
	printer  *output.Printer
	out      io.Writer
	errOut   io.Writer
	logger   *log.Logger
}

// New creates a Loop. Commands run with a quiet copy of cfg, so only the
// reprinted list reports their effect.
func New(registry *commands.Registry, cfg *config.Config, store *todo.Store, in Input, printer *output.Printer, errOut io.Writer, logger *log.Logger) *Loop {
	quiet := *cfg
	quiet.Quiet = true
	return &Loop{
		registry: registry,
		cfg:      &quiet,
		store:    store,
		in:       in,
		printer:  printer,
		out:      printer.Writer(),
		errOut:   errOut,
		logger:   logger,
	}
}

// Run prints the banner and processes keys until quit. Only input ends the
// loop: ctx is handed to commands but does not interrupt a pending read.
// Run flushes the store exactly once, on quit, and always returns
// exitcode.Success.
func (l *Loop) Run(ctx context.Context) int {
	l.printer.FormatBanner()

	for {
		l.printer.FormatList(l.store.List())

		fmt.Fprint(l.out, output.Prompt)
		key, err := l.in.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return l.quit()
			}
			l.logger.Debug("read key failed", "err", err)
			fmt.Fprintln(l.errOut, "\nCould not read operation, try again")
			continue
		}

		switch key {
		case QuitKey, terminal.KeyInterrupt, terminal.KeyEOF:
			return l.quit()
		}

		cmd, ok := l.registry.FindKey(key)
		if !ok {
			fmt.Fprintln(l.errOut, "\nInvalid input try again")
			continue
		}

		args, ok := l.collect(cmd)
		if !ok {
			continue
		}

		if a, ok := cmd.(commands.Announcer); ok {
			fmt.Fprintf(l.out, "\n%s\n", a.Announce())
		}

		code := cmd.Run(ctx, l.cfg, l.store.List(), args, l.out, l.errOut)
		l.logger.Debug("command finished", "command", cmd.Name(), "code", code, "tasks", l.store.List().Len())
	}
}

// collect reads one line per prompt of cmd. An unreadable line or an
// unparseable task number discards the command.
func (l *Loop) collect(cmd commands.Command) ([]string, bool) {
	prompts := cmd.Prompts()
	args := make([]string, 0, len(prompts))
	for _, p := range prompts {
		fmt.Fprint(l.out, p.Text)
		line, err := l.in.ReadLine()
		if err != nil {
			l.logger.Debug("read line failed", "err", err)
			fmt.Fprintln(l.errOut, "Could not read input, try again")
			return nil, false
		}
		line = strings.TrimSpace(line)
		if p.Index {
			if _, err := commands.ParseIndex(line); err != nil {
				fmt.Fprintf(l.errOut, "Could not parse task number %s, try again\n", line)
				return nil, false
			}
		}
		args = append(args, line)
	}
	return args, true
}

func (l *Loop) quit() int {
	if err := l.store.Flush(); err != nil {
		l.logger.Error("flush failed", "path", l.store.Path(), "err", err)
		fmt.Fprintln(l.errOut, "\nCould not write tasks to a file")
	} else {
		l.logger.Debug("saved tasks", "path", l.store.Path(), "tasks", l.store.List().Len())
	}
	fmt.Fprintln(l.out, "\nGoodbye !")
	return exitcode.Success
}
