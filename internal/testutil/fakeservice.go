// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"todo/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.RWMutex
	tasks []service.Task

	// Saves counts calls to Save.
	Saves int
	// Closed is set once Close has been called.
	Closed bool

	// Error injection for testing
	AddErr      error
	ListErr     error
	CompleteErr error
	DeleteErr   error
	SaveErr     error
	CloseErr    error
}

// NewFakeService creates a new empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{}
}

// AddTask seeds a task without going through Add.
func (f *FakeService) AddTask(description string, completed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{Description: description, Completed: completed})
}

// Tasks returns a copy of the stored tasks.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result
}

// Add implements service.Service.
func (f *FakeService) Add(ctx context.Context, description string) (service.Entry, error) {
	if f.AddErr != nil {
		return service.Entry{}, f.AddErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	task := service.Task{Description: description}
	f.tasks = append(f.tasks, task)
	return service.Entry{Number: len(f.tasks), Task: task}, nil
}

// List implements service.Service.
func (f *FakeService) List(ctx context.Context) ([]service.Entry, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Entry, len(f.tasks))
	for i, t := range f.tasks {
		result[i] = service.Entry{Number: i + 1, Task: t}
	}
	return result, nil
}

// Complete implements service.Service.
func (f *FakeService) Complete(ctx context.Context, index int) (service.Task, error) {
	if f.CompleteErr != nil {
		return service.Task{}, f.CompleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.tasks) {
		return service.Task{}, service.ErrNotFound
	}
	f.tasks[index].Completed = true
	return f.tasks[index], nil
}

// Delete implements service.Service.
func (f *FakeService) Delete(ctx context.Context, index int) (service.Task, error) {
	if f.DeleteErr != nil {
		return service.Task{}, f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.tasks) {
		return service.Task{}, service.ErrNotFound
	}
	removed := f.tasks[index]
	f.tasks = append(f.tasks[:index], f.tasks[index+1:]...)
	return removed, nil
}

// Save implements service.Service.
func (f *FakeService) Save(ctx context.Context) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Saves++
	return nil
}

// Close implements service.Service.
func (f *FakeService) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
	return f.CloseErr
}
