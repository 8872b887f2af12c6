package textfile

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"todo/internal/config"
	"todo/internal/service"
)

// NewFromConfig prepares the task file named by cfg, locks it for the session
// and loads it. The returned store must be closed to release the lock.
func NewFromConfig(ctx context.Context, fs afero.Fs, cfg *config.Config, logger zerolog.Logger) (*Store, error) {
	if err := cfg.EnsureDataFile(fs); err != nil {
		return nil, &service.StorageError{Op: "create", Path: cfg.DataFile, Err: err}
	}

	lock, err := AcquireLock(cfg.DataFile)
	if err != nil {
		return nil, err
	}

	s, err := Open(ctx, fs, cfg.DataFile,
		WithLogger(logger),
		WithSkipMalformed(cfg.SkipMalformed),
		WithLock(lock),
	)
	if err != nil {
		lock.Release()
		return nil, err
	}
	return s, nil
}
