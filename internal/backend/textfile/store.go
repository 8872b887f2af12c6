// Package textfile implements service.Service on top of a flat text file,
// one task per line.
package textfile

import (
	"bufio"
	"context"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"todo/internal/service"
)

const (
	// filePerm is the mode used when the task file has to be created.
	filePerm = 0600

	// maxLineSize bounds a single encoded task.
	maxLineSize = 1024 * 1024
)

// Store implements service.Service using a text file.
// The whole task list is held in memory and the file is rewritten after
// every mutation. A Store is not safe for concurrent use.
type Store struct {
	fs            afero.Fs
	path          string
	tasks         []service.Task
	log           zerolog.Logger
	skipMalformed bool
	lock          *Lock
}

var _ service.Service = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load/save diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.log = logger
	}
}

// WithSkipMalformed makes Load skip lines it cannot decode, logging a warning
// for each, instead of failing.
func WithSkipMalformed(skip bool) Option {
	return func(s *Store) {
		s.skipMalformed = skip
	}
}

// WithLock hands a session lock to the store; Close releases it.
func WithLock(lock *Lock) Option {
	return func(s *Store) {
		s.lock = lock
	}
}

// New creates an empty store backed by path on fs. Nothing is read until Load.
func New(fs afero.Fs, path string, opts ...Option) *Store {
	s := &Store{
		fs:   fs,
		path: path,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a store and loads it from path.
func Open(ctx context.Context, fs afero.Fs, path string, opts ...Option) (*Store, error) {
	s := New(fs, path, opts...)
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory tasks with the contents of the backing file.
// Blank lines are skipped. A missing file or an undecodable line is a
// *service.StorageError; on error the in-memory tasks are left untouched.
func (s *Store) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := s.fs.Open(s.path)
	if err != nil {
		return s.storageErr("load", 0, err)
	}
	defer f.Close()

	var tasks []service.Task
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		task, err := DecodeLine(line)
		if err != nil {
			if s.skipMalformed {
				s.log.Warn().
					Str("path", s.path).
					Int("line", lineNum).
					Msg("skipping malformed line")
				continue
			}
			return s.storageErr("load", lineNum, err)
		}
		tasks = append(tasks, task)
	}
	if err := scanner.Err(); err != nil {
		return s.storageErr("load", 0, err)
	}

	s.tasks = tasks
	s.log.Debug().Str("path", s.path).Int("tasks", len(tasks)).Msg("loaded tasks")
	return nil
}

// Save truncates the backing file and writes every task to it.
func (s *Store) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.persist()
}

func (s *Store) persist() error {
	f, err := s.fs.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return s.storageErr("save", 0, err)
	}

	w := bufio.NewWriter(f)
	for _, task := range s.tasks {
		w.WriteString(EncodeLine(task))
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return s.storageErr("save", 0, err)
	}
	if err := f.Close(); err != nil {
		return s.storageErr("save", 0, err)
	}

	s.log.Debug().Str("path", s.path).Int("tasks", len(s.tasks)).Msg("saved tasks")
	return nil
}

// Add appends an open task and persists it.
func (s *Store) Add(ctx context.Context, description string) (service.Entry, error) {
	if err := ctx.Err(); err != nil {
		return service.Entry{}, err
	}
	if !validDescription(description) {
		return service.Entry{}, service.ErrInvalidDescription
	}

	n := len(s.tasks)
	task := service.Task{Description: description}
	s.tasks = append(s.tasks, task)
	if err := s.persist(); err != nil {
		s.tasks = s.tasks[:n]
		return service.Entry{}, err
	}
	return service.Entry{Number: n + 1, Task: task}, nil
}

// List returns all tasks numbered from 1. It never touches the file.
func (s *Store) List(ctx context.Context) ([]service.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries := make([]service.Entry, len(s.tasks))
	for i, task := range s.tasks {
		entries[i] = service.Entry{Number: i + 1, Task: task}
	}
	return entries, nil
}

// Complete marks the task at the 0-based index as completed and persists.
func (s *Store) Complete(ctx context.Context, index int) (service.Task, error) {
	if err := ctx.Err(); err != nil {
		return service.Task{}, err
	}
	if !s.inRange(index) {
		return service.Task{}, service.ErrNotFound
	}

	prev := s.tasks[index].Completed
	s.tasks[index].Completed = true
	if err := s.persist(); err != nil {
		s.tasks[index].Completed = prev
		return service.Task{}, err
	}
	return s.tasks[index], nil
}

// Delete removes the task at the 0-based index and persists.
func (s *Store) Delete(ctx context.Context, index int) (service.Task, error) {
	if err := ctx.Err(); err != nil {
		return service.Task{}, err
	}
	if !s.inRange(index) {
		return service.Task{}, service.ErrNotFound
	}

	prev := s.tasks
	removed := s.tasks[index]
	s.tasks = slices.Delete(slices.Clone(s.tasks), index, index+1)
	if err := s.persist(); err != nil {
		s.tasks = prev
		return service.Task{}, err
	}
	return removed, nil
}

// Close releases the session lock, if any.
func (s *Store) Close() error {
	if s.lock == nil {
		return nil
	}
	err := s.lock.Release()
	s.lock = nil
	return err
}

func (s *Store) inRange(index int) bool {
	return index >= 0 && index < len(s.tasks)
}

func (s *Store) storageErr(op string, line int, err error) error {
	return &service.StorageError{Op: op, Path: s.path, Line: line, Err: err}
}
