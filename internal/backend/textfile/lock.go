package textfile

import (
	"errors"
	"io/fs"
	"os"

	"github.com/gofrs/flock"

	"todo/internal/service"
)

// LockSuffix is appended to the task file path to name its lock file.
const LockSuffix = ".lock"

// Lock is an advisory lock that keeps a second session off the same task file.
type Lock struct {
	flk *flock.Flock
}

// AcquireLock takes the lock for the task file at path without blocking.
// If another session holds it, the error wraps service.ErrLocked.
func AcquireLock(path string) (*Lock, error) {
	flk := flock.New(path + LockSuffix)

	locked, err := flk.TryLock()
	if err != nil {
		return nil, &service.StorageError{Op: "lock", Path: path, Err: err}
	}
	if !locked {
		return nil, &service.StorageError{Op: "lock", Path: path, Err: service.ErrLocked}
	}
	return &Lock{flk: flk}, nil
}

// Release removes the lock file, while still holding it, and unlocks.
// Calling it on a nil Lock is a no-op.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	rmErr := os.Remove(l.flk.Path())
	if errors.Is(rmErr, fs.ErrNotExist) {
		rmErr = nil
	}
	return errors.Join(rmErr, l.flk.Unlock())
}
