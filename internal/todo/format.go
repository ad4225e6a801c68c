package todo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// Status characters that prefix every line of the storage file.
const (
	StatusCompleted = 'T'
	StatusPending   = 'F'
)

// Encode writes one line per task: the status character immediately followed
// by the trimmed content. Lines are separated by a single newline and the last
// line is not terminated.
func Encode(w io.Writer, tasks iter.Seq2[int, Task]) error {
	bw := bufio.NewWriter(w)
	for i, t := range tasks {
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(EncodeLine(t)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodeLine returns the storage line for t, without a line terminator.
func EncodeLine(t Task) string {
	status := StatusPending
	if t.Completed {
		status = StatusCompleted
	}
	return string(rune(status)) + strings.TrimSpace(t.Content)
}

// DecodeLine parses a single storage line.
// The content after the status character is kept verbatim.
func DecodeLine(line string) (Task, error) {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return Task{}, errors.New("empty line")
	}
	if !utf8.ValidString(line) {
		return Task{}, errors.New("invalid utf-8")
	}
	switch line[0] {
	case StatusCompleted:
		return Task{Content: line[1:], Completed: true}, nil
	case StatusPending:
		return Task{Content: line[1:]}, nil
	default:
		return Task{}, fmt.Errorf("unknown status %q", line[0])
	}
}

// Decode reads tasks from r, one per line. Lines that do not parse are
// skipped and counted rather than failing the whole read. Line length is
// not limited.
// The returned error reports only a failure of r itself.
func Decode(r io.Reader) (tasks []Task, skipped int, err error) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			return tasks, skipped, err
		}
		if line != "" {
			t, perr := DecodeLine(strings.TrimSuffix(line, "\n"))
			if perr != nil {
				skipped++
			} else {
				tasks = append(tasks, t)
			}
		}
		if eof {
			return tasks, skipped, nil
		}
	}
}
