package textfile

import (
	"strings"

	"todo/internal/service"
)

// Delimiter separates a task's description from its completion marker.
const Delimiter = "::completed"

const (
	markerTrue  = "true"
	markerFalse = "false"
)

// EncodeLine formats a task as "<description>::completed<true|false>"
// without a line terminator.
func EncodeLine(task service.Task) string {
	marker := markerFalse
	if task.Completed {
		marker = markerTrue
	}
	return task.Description + Delimiter + marker
}

// DecodeLine parses a line produced by EncodeLine.
// The split happens at the last delimiter, so descriptions that contain
// the delimiter themselves survive a round trip. Only a missing delimiter
// is malformed; any marker other than "true" reads as an open task.
func DecodeLine(line string) (service.Task, error) {
	i := strings.LastIndex(line, Delimiter)
	if i < 0 {
		return service.Task{}, service.ErrMalformedLine
	}

	marker := strings.TrimSpace(line[i+len(Delimiter):])
	return service.Task{
		Description: line[:i],
		Completed:   marker == markerTrue,
	}, nil
}

// validDescription reports whether a description fits on a single line.
func validDescription(description string) bool {
	return !strings.ContainsAny(description, "\r\n")
}
