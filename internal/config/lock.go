package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/zWesleyDavid/prototipo-luvr/internal/paths"
)

const (
	lockSuffix       = ".lock"
	lockTimeout      = 5 * time.Second
	staleLockTimeout = 30 * time.Second
	lockPollInterval = 50 * time.Millisecond
)

// ErrLockTimeout is returned when the lock cannot be acquired within lockTimeout.
var ErrLockTimeout = errors.New("config: lock timeout")

// WithLock runs fn while holding the lock file next to the config file.
func WithLock(fn func() error) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}
	return WithLockAt(configPath, fn)
}

// WithLockAt runs fn while holding an exclusive lock file at path+".lock".
// Other processes editing the same file wait up to lockTimeout.
func WithLockAt(path string, fn func() error) error {
	lockPath := path + lockSuffix

	lockFile, err := acquireLock(lockPath)
	if err != nil {
		return err
	}
	defer releaseLock(lockFile, lockPath)

	return fn()
}

func acquireLock(lockPath string) (*os.File, error) {
	deadline := time.Now().Add(lockTimeout)

	for {
		if info, err := os.Stat(lockPath); err == nil && time.Since(info.ModTime()) > staleLockTimeout {
			_ = os.Remove(lockPath)
		}

		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return f, nil
		}
		if !os.IsExist(err) {
			return nil, err
		}

		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}

		time.Sleep(lockPollInterval)
	}
}

func releaseLock(f *os.File, lockPath string) {
	if f != nil {
		_ = f.Close()
	}
	_ = os.Remove(lockPath)
}
