package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

const (
	lockSuffix       = ".lock"
	lockTimeout      = 5 * time.Second
	staleLockTimeout = 30 * time.Second
	lockPollInterval = 50 * time.Millisecond
)

// ErrLockTimeout means another process held the config lock for longer
// than lockTimeout.
var ErrLockTimeout = errors.New("config: lock timeout")

// Update loads the config at path, applies fn and saves the result while
// holding path's lock file, so concurrent consoles do not lose writes.
func Update(path string, fn func(*Config) error) (*Config, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.Wrap(err, "create config directory")
	}

	var cfg *Config
	err := withLock(path+lockSuffix, func() error {
		loaded, err := loadFile(path)
		if err != nil {
			return err
		}
		if err := fn(loaded); err != nil {
			return err
		}
		cfg = loaded
		return Save(loaded, path)
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func withLock(lockPath string, fn func() error) error {
	lockFile, err := acquireLock(lockPath)
	if err != nil {
		return err
	}
	defer releaseLock(lockFile, lockPath)

	return fn()
}

// acquireLock creates lockPath exclusively, polling until lockTimeout.
// A lock file older than staleLockTimeout is left over from a crashed
// process and is removed.
func acquireLock(lockPath string) (*os.File, error) {
	deadline := time.Now().Add(lockTimeout)
	for {
		if info, err := os.Stat(lockPath); err == nil && time.Since(info.ModTime()) > staleLockTimeout {
			_ = os.Remove(lockPath)
		}

		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		switch {
		case err == nil:
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return f, nil
		case !os.IsExist(err):
			return nil, errors.Wrap(err, "create lock file")
		case time.Now().After(deadline):
			return nil, ErrLockTimeout
		}
		time.Sleep(lockPollInterval)
	}
}

func releaseLock(f *os.File, lockPath string) {
	_ = f.Close()
	_ = os.Remove(lockPath)
}
