// Package service defines the backend-agnostic interface for task operations.
package service

// Task represents a single task item.
type Task struct {
	Description string
	Completed   bool
}

// Entry is a task as presented to the user: its 1-based number plus the task.
type Entry struct {
	Number int
	Task
}
