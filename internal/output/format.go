// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"todo/internal/config"
	"todo/internal/todo"
)

// Banner is printed once when the interactive loop starts.
const Banner = `Welcome to Todo App

a: Add
u: Update
d: Delete
c: Complete
C: Not Complete
x: Clean
p: purge
q: quit

Getting All tasks...
`

// Prompt asks for the next command key.
const Prompt = "\n[a,u,d,c,C,x,p,q]: "

// Options controls how tasks are rendered.
type Options struct {
	CompletedGlyph string
	PendingGlyph   string

	// Color enables lipgloss styling. Callers should only set it when the
	// writer is a terminal.
	Color bool
}

// OptionsFromConfig derives render options from cfg. isTerminal reports
// whether the destination writer is a terminal.
func OptionsFromConfig(cfg *config.Config, isTerminal bool) Options {
	return Options{
		CompletedGlyph: cfg.CompletedGlyph,
		PendingGlyph:   cfg.PendingGlyph,
		Color:          cfg.Color && isTerminal,
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Printer renders tasks to a writer.
type Printer struct {
	w       io.Writer
	opts    Options
	done    lipgloss.Style
	pending lipgloss.Style
	index   lipgloss.Style
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, opts Options) *Printer {
	if opts.CompletedGlyph == "" {
		opts.CompletedGlyph = config.DefaultCompletedGlyph
	}
	if opts.PendingGlyph == "" {
		opts.PendingGlyph = config.DefaultPendingGlyph
	}

	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		opts:    opts,
		done:    r.NewStyle().Faint(true).Strikethrough(true),
		pending: r.NewStyle().Bold(true),
		index:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// FormatTask formats a task line.
// Format: "{INDEX} {GLYPH}  {CONTENT}\n"
func (p *Printer) FormatTask(index int, task todo.Task) {
	glyph := p.opts.PendingGlyph
	if task.Completed {
		glyph = p.opts.CompletedGlyph
	}

	idx := fmt.Sprint(index)
	content := task.Content
	if p.opts.Color {
		idx = p.index.Render(idx)
		if task.Completed {
			content = p.done.Render(content)
		} else {
			content = p.pending.Render(content)
		}
	}
	fmt.Fprintf(p.w, "%s %s  %s\n", idx, glyph, content)
}

// FormatList prints a blank line followed by every task in order.
func (p *Printer) FormatList(l *todo.List) {
	fmt.Fprintln(p.w)
	for i, task := range l.All() {
		p.FormatTask(i, task)
	}
}

// FormatBanner prints the start-up banner.
func (p *Printer) FormatBanner() {
	fmt.Fprint(p.w, Banner)
}
