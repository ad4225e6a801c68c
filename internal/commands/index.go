package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"todo/internal/exitcode"
)

// ErrIndexRequired indicates no task number was provided.
var ErrIndexRequired = errors.New("task number required")

// ParseIndex parses a zero-based task number.
// Surrounding whitespace is ignored; signs and non-digits are rejected.
func ParseIndex(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrIndexRequired
	}
	if !isAllDigits(s) {
		return 0, fmt.Errorf("invalid task number: %s", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task number: %s", s)
	}
	return n, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// runIndexed parses the task number in args[0] and applies fn to it,
// reporting parse and range errors on errOut.
func runIndexed(args []string, errOut io.Writer, fn func(i int) error) int {
	if len(args) == 0 {
		fmt.Fprintf(errOut, "error: %v\n", ErrIndexRequired)
		return exitcode.UserError
	}

	i, err := ParseIndex(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// List operations only fail with todo.ErrOutOfRange.
	if err := fn(i); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
