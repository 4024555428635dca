package storage

import (
	"fmt"
	"strings"

	"github.com/zWesleyDavid/prototipo-luvr/internal/config"
	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
)

// File persists items as key=value lines, the same grammar as the config file.
// Every operation re-reads the file, so several processes may share it; writes
// are serialized through a lock file and replaced atomically.
type File struct {
	path string
}

// NewFile returns a File store backed by path. The file is created on first write.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// GetItem returns the value stored under key.
func (f *File) GetItem(key string) (string, bool, error) {
	items, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := items[key]
	return v, ok, nil
}

// SetItem stores value under key.
func (f *File) SetItem(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return f.edit(func(lines []string) []string {
		lines, _ = config.Set(lines, key, value)
		return lines
	})
}

// RemoveItem deletes key.
func (f *File) RemoveItem(key string) error {
	return f.edit(func(lines []string) []string {
		lines, _ = config.Unset(lines, key)
		return lines
	})
}

// Clear removes every key.
func (f *File) Clear() error {
	return f.edit(func([]string) []string {
		return nil
	})
}

func (f *File) read() (map[string]string, error) {
	lines, err := config.ReadLinesAt(f.path)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", f.path, err)
	}
	items, err := config.Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("storage: parse %s: %w", f.path, err)
	}
	return items, nil
}

func (f *File) edit(fn func([]string) []string) error {
	return config.WithLockAt(f.path, func() error {
		lines, err := config.ReadLinesAt(f.path)
		if err != nil {
			return fmt.Errorf("storage: read %s: %w", f.path, err)
		}
		if err := config.WriteLinesAt(f.path, fn(lines)); err != nil {
			return fmt.Errorf("storage: write %s: %w", f.path, err)
		}
		return nil
	})
}

func validateKey(key string) error {
	trimmed := strings.TrimSpace(key)
	switch {
	case trimmed == "":
		return fmt.Errorf("storage: empty key")
	case trimmed != key, strings.ContainsAny(key, "=\r\n"), strings.HasPrefix(key, "#"):
		return fmt.Errorf("storage: invalid key %q", key)
	}
	return nil
}

var _ domain.Storage = (*File)(nil)
