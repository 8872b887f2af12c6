// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// Commands only talk to this interface; the flat-file store lives in
// internal/backend/textfile.
type Service interface {
	// Add appends a new open task and persists it.
	// Returns the entry the task was stored as.
	Add(ctx context.Context, description string) (Entry, error)

	// List returns all tasks in insertion order, numbered from 1.
	List(ctx context.Context) ([]Entry, error)

	// Complete marks the task at the 0-based index as completed and persists.
	// Returns ErrNotFound if index is out of range.
	Complete(ctx context.Context, index int) (Task, error)

	// Delete removes the task at the 0-based index and persists.
	// Returns ErrNotFound if index is out of range.
	Delete(ctx context.Context, index int) (Task, error)

	// Save rewrites the backing store from memory.
	Save(ctx context.Context) error

	// Close releases resources held for the session.
	Close() error
}
