// Package exitcode defines exit codes for the CLI.
package exitcode

// Exit codes returned by commands and by the process.
const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, task not found).
	UserError = 1

	// StorageError indicates the backing file could not be read, parsed or written.
	StorageError = 2
)
