// Package terminal reads single raw keystrokes and whole lines from the user.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Control keys returned by ReadKey.
const (
	KeyInterrupt = '\x03' // Ctrl-C
	KeyEOF       = '\x04' // Ctrl-D
	KeyEscape    = '\x1b'
)

// Terminal reads from the user's input. When the input is a terminal, ReadKey
// switches it to raw mode for exactly one keystroke.
type Terminal struct {
	in    *bufio.Reader
	fd    int
	isTTY bool

	mu    sync.Mutex
	saved *term.State
}

// New creates a Terminal reading from f.
func New(f *os.File) *Terminal {
	fd := int(f.Fd())
	return &Terminal{
		in:    bufio.NewReader(f),
		fd:    fd,
		isTTY: term.IsTerminal(fd),
	}
}

// NewFromReader creates a Terminal over a plain reader, such as a pipe or a
// test script. Keys are read without any mode change.
func NewFromReader(r io.Reader) *Terminal {
	return &Terminal{
		in: bufio.NewReader(r),
		fd: -1,
	}
}

// ReadKey reads a single keystroke. On a terminal the previous mode is
// restored before ReadKey returns, on every path.
// On plain input, line breaks between keys are ignored.
// Escape sequences such as arrow keys are returned as a single KeyEscape.
func (t *Terminal) ReadKey() (rune, error) {
	if !t.isTTY {
		for {
			r, _, err := t.in.ReadRune()
			if err != nil {
				return 0, err
			}
			if r == '\n' || r == '\r' {
				continue
			}
			if r == KeyEscape {
				t.skipEscape(false)
			}
			return r, nil
		}
	}

	if err := t.makeRaw(); err != nil {
		return 0, err
	}
	defer t.Restore()

	r, _, err := t.in.ReadRune()
	if err != nil {
		return 0, err
	}
	if r == KeyEscape {
		// A lone Esc press has nothing buffered behind it; don't wait for more.
		t.skipEscape(true)
	}
	return r, nil
}

// skipEscape discards the rest of a CSI (ESC [ ... final) or SS3 (ESC O x)
// sequence after its ESC has been read. With bufferedOnly set, only bytes
// already read from the input are consumed.
func (t *Terminal) skipEscape(bufferedOnly bool) {
	peek := func() (byte, bool) {
		if bufferedOnly && t.in.Buffered() == 0 {
			return 0, false
		}
		b, err := t.in.Peek(1)
		if err != nil {
			return 0, false
		}
		return b[0], true
	}

	b, ok := peek()
	if !ok {
		return
	}
	switch b {
	case 'O':
		t.in.Discard(1)
		if _, ok := peek(); ok {
			t.in.Discard(1)
		}
	case '[':
		t.in.Discard(1)
		for {
			b, ok := peek()
			if !ok {
				return
			}
			t.in.Discard(1)
			// Parameter and intermediate bytes run up to a final byte in 0x40-0x7e.
			if b >= 0x40 && b <= 0x7e {
				return
			}
		}
	}
}

// ReadLine reads one line of input with the trailing line break removed.
// A final line without a line break is returned as is; io.EOF is returned
// only when nothing was read.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Restore puts the terminal back into the mode it had before raw mode was
// entered. It is safe to call at any time and from another goroutine.
func (t *Terminal) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.saved == nil {
		return nil
	}
	err := term.Restore(t.fd, t.saved)
	t.saved = nil
	if err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

func (t *Terminal) makeRaw() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.saved = state
	return nil
}
