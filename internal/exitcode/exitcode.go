// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	// The interactive loop always exits with Success after quit.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, index out of range).
	UserError = 1

	// StorageError indicates an unusable environment: home directory,
	// storage directory, todo file or config file.
	StorageError = 2

	// Interrupted indicates the process was stopped by SIGINT or SIGTERM
	// while not in raw mode. Unsaved changes are lost.
	Interrupted = 130
)
