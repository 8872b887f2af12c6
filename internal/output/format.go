// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
)

const (
	markDone = "x"
	markOpen = " "
)

// FormatTask formats a task line for the list command.
// Format: "{N}. [{x| }] {DESCRIPTION}\n"
func FormatTask(w io.Writer, entry service.Entry) {
	mark := markOpen
	if entry.Completed {
		mark = markDone
	}
	fmt.Fprintf(w, "%d. [%s] %s\n", entry.Number, mark, normalizeTitle(entry.Description))
}

// FormatBanner prints the welcome box shown when the console starts.
func FormatBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// DisplayTitle returns a description as it is shown in messages.
func DisplayTitle(description string) string {
	return normalizeTitle(description)
}

const banner = `__________________________________________________
|              WELCOME TO TODO CLI               |
|________________________________________________|
| COMMANDS:                                      |
| todo add "<description>"   Add a new task      |
| todo list                  List all tasks      |
| todo complete <number>     Mark task complete  |
| todo delete <number>       Delete a task       |
| help                       Show all commands   |
| quit                       Exit the program    |
|________________________________________________|
`

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	// Replace newlines with spaces
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
