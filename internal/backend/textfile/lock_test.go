package textfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"todo/internal/backend/textfile"
	"todo/internal/service"
)

func TestAcquireLock_SecondSessionRefused(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")

	first, err := textfile.AcquireLock(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer first.Release()

	_, err = textfile.AcquireLock(path)
	if !errors.Is(err, service.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if !service.IsStorageError(err) {
		t.Errorf("expected StorageError, got %T", err)
	}
}

func TestAcquireLock_AfterRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")

	first, err := textfile.AcquireLock(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := first.Release(); err != nil {
		t.Fatalf("unexpected release error: %v", err)
	}

	second, err := textfile.AcquireLock(path)
	if err != nil {
		t.Fatalf("expected lock after release, got %v", err)
	}
	second.Release()
}

func TestRelease_RemovesLockFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	lockPath := path + textfile.LockSuffix

	lock, err := textfile.AcquireLock(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(lockPath); err != nil {
		t.Fatalf("expected lock file while held: %v", err)
	}

	if err := lock.Release(); err != nil {
		t.Fatalf("unexpected release error: %v", err)
	}
	if _, err := os.Stat(lockPath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected lock file to be removed, got %v", err)
	}
}

func TestStoreClose_ReleasesLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	fs := afero.NewOsFs()
	if err := afero.WriteFile(fs, path, nil, 0600); err != nil {
		t.Fatalf("failed to create task file: %v", err)
	}

	lock, err := textfile.AcquireLock(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := textfile.Open(context.Background(), fs, path, textfile.WithLock(lock))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	// Closing twice is harmless.
	if err := s.Close(); err != nil {
		t.Fatalf("unexpected second close error: %v", err)
	}

	again, err := textfile.AcquireLock(path)
	if err != nil {
		t.Fatalf("expected lock to be free after Close, got %v", err)
	}
	again.Release()
}

func TestRelease_NilLock(t *testing.T) {
	var l *textfile.Lock
	if err := l.Release(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
