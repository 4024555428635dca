package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zWesleyDavid/prototipo-luvr/internal/usage"
)

func requireKind(t *testing.T, err error, kind usage.ErrorKind) {
	t.Helper()
	var ue *usage.Error
	require.True(t, errors.As(err, &ue), "want *usage.Error, got %v", err)
	require.Equal(t, kind, ue.Kind)
}

// =========== GET TESTS ===========

func TestGet_Success(t *testing.T) {
	var capturedValue string
	deps := Deps{
		Get: func(key string) (string, bool) {
			if key == "theme_default" {
				return "dark", true
			}
			return "", false
		},
		Println: func(a ...any) (int, error) {
			if len(a) > 0 {
				capturedValue, _ = a[0].(string)
			}
			return 0, nil
		},
	}

	err := get([]string{"theme_default"}, deps)

	require.NoError(t, err)
	require.Equal(t, "dark", capturedValue)
}

func TestGet_MissingKey(t *testing.T) {
	err := get([]string{}, Deps{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "key")
	requireKind(t, err, usage.ErrMissingArgument)
}

func TestGet_UnknownKey(t *testing.T) {
	err := get([]string{"nonexistent"}, Deps{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "nonexistent")
	requireKind(t, err, usage.ErrInvalidConfigKey)
}

// =========== SET TESTS ===========

func TestSet_AddNew(t *testing.T) {
	var capturedPrintf string
	var writtenLines []string
	deps := Deps{
		ReadLines: func() ([]string, error) {
			return []string{}, nil
		},
		Set: func(lines []string, key, value string) ([]string, bool) {
			return append(lines, key+"="+value), false // Not updated (new)
		},
		WriteLines: func(lines []string) error {
			writtenLines = lines
			return nil
		},
		Printf: func(format string, a ...any) (int, error) {
			capturedPrintf = fmt.Sprintf(format, a...)
			return 0, nil
		},
	}

	err := set([]string{"theme_default", "dark"}, deps)

	require.NoError(t, err)
	require.Contains(t, capturedPrintf, "added")
	require.Equal(t, []string{"theme_default=dark"}, writtenLines)
}

func TestSet_UpdateExisting(t *testing.T) {
	var capturedPrintf string
	deps := Deps{
		ReadLines: func() ([]string, error) {
			return []string{"log_level=warn"}, nil
		},
		Set: func(lines []string, key, value string) ([]string, bool) {
			return []string{key + "=" + value}, true // Updated
		},
		WriteLines: func(lines []string) error {
			return nil
		},
		Printf: func(format string, a ...any) (int, error) {
			capturedPrintf = fmt.Sprintf(format, a...)
			return 0, nil
		},
	}

	err := set([]string{"log_level", "debug"}, deps)

	require.NoError(t, err)
	require.Equal(t, "updated log_level=debug\n", capturedPrintf)
}

func TestSet_HoldsLock(t *testing.T) {
	var locked, wroteInsideLock bool
	deps := Deps{
		WithLock: func(fn func() error) error {
			locked = true
			defer func() { locked = false }()
			return fn()
		},
		ReadLines: func() ([]string, error) { return nil, nil },
		Set: func(lines []string, key, value string) ([]string, bool) {
			return append(lines, key+"="+value), false
		},
		WriteLines: func([]string) error {
			wroteInsideLock = locked
			return nil
		},
		Printf: func(string, ...any) (int, error) { return 0, nil },
	}

	require.NoError(t, set([]string{"language", "en"}, deps))
	require.True(t, wroteInsideLock)
}

func TestSet_MissingArguments(t *testing.T) {
	deps := Deps{}

	// No arguments
	err := set([]string{}, deps)
	require.Error(t, err)

	// Only key, no value
	err = set([]string{"theme_default"}, deps)
	require.Error(t, err)
}

func TestSet_RejectsUnknownKey(t *testing.T) {
	err := set([]string{"color_theme", "neon"}, Deps{})
	requireKind(t, err, usage.ErrInvalidConfigKey)
}

func TestSet_ValidatesValues(t *testing.T) {
	tests := []struct {
		key, value string
		kind       usage.ErrorKind
	}{
		{"theme_default", "blue", usage.ErrInvalidMode},
		{"preference_poll_interval", "soon", usage.ErrInvalidFlag},
		{"preference_poll_interval", "-1s", usage.ErrInvalidFlag},
		{"storage_backend", "redis", usage.ErrInvalidFlag},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			err := set([]string{tt.key, tt.value}, Deps{})
			requireKind(t, err, tt.kind)
		})
	}
}

func TestSet_ReadLinesError(t *testing.T) {
	deps := Deps{
		ReadLines: func() ([]string, error) {
			return nil, errors.New("cannot read config")
		},
		Printf: func(format string, a ...any) (int, error) {
			return 0, nil
		},
	}

	err := set([]string{"theme_default", "dark"}, deps)

	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot read config")
}

func TestSet_WriteLinesError(t *testing.T) {
	deps := Deps{
		ReadLines: func() ([]string, error) {
			return []string{}, nil
		},
		Set: func(lines []string, key, value string) ([]string, bool) {
			return append(lines, key+"="+value), false
		},
		WriteLines: func(lines []string) error {
			return errors.New("cannot write config")
		},
		Printf: func(format string, a ...any) (int, error) {
			return 0, nil
		},
	}

	err := set([]string{"theme_default", "dark"}, deps)

	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot write config")
}

// =========== UNSET TESTS ===========

func TestUnset_Success(t *testing.T) {
	var capturedPrintf string
	deps := Deps{
		ReadLines: func() ([]string, error) {
			return []string{"theme_default=dark", "language=en"}, nil
		},
		Unset: func(lines []string, key string) ([]string, bool) {
			return []string{"language=en"}, true // Removed
		},
		WriteLines: func(lines []string) error {
			return nil
		},
		Printf: func(format string, a ...any) (int, error) {
			capturedPrintf = format
			return 0, nil
		},
	}

	err := unset([]string{"theme_default"}, UnsetOptions{}, deps)

	require.NoError(t, err)
	require.Contains(t, capturedPrintf, "unset")
}

func TestUnset_KeyNotFound(t *testing.T) {
	var wrote bool
	deps := Deps{
		ReadLines: func() ([]string, error) {
			return []string{"language=en"}, nil
		},
		Unset: func(lines []string, key string) ([]string, bool) {
			return lines, false // Not removed (doesn't exist)
		},
		WriteLines: func([]string) error {
			wrote = true
			return nil
		},
	}

	err := unset([]string{"theme_default"}, UnsetOptions{}, deps)

	require.Error(t, err)
	require.Contains(t, err.Error(), "theme_default")
	require.False(t, wrote)
}

func TestUnset_MissingKey(t *testing.T) {
	err := unset([]string{}, UnsetOptions{}, Deps{})

	require.Error(t, err)
}

func TestUnset_AllFlag(t *testing.T) {
	var capturedPrintln string
	writtenLines := []string{"sentinel"}
	deps := Deps{
		WriteLines: func(lines []string) error {
			writtenLines = lines
			return nil
		},
		Println: func(a ...any) (int, error) {
			if len(a) > 0 {
				capturedPrintln, _ = a[0].(string)
			}
			return 0, nil
		},
	}

	err := unset([]string{}, UnsetOptions{All: true}, deps)

	require.NoError(t, err)
	require.Contains(t, capturedPrintln, "all config entries removed")
	require.Empty(t, writtenLines)
}

func TestUnset_AllFlagWithArgs(t *testing.T) {
	err := unset([]string{"theme_default"}, UnsetOptions{All: true}, Deps{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "--all does not take arguments")
}

func TestUnset_AllFlagWriteError(t *testing.T) {
	deps := Deps{
		WriteLines: func(lines []string) error {
			return errors.New("cannot write config")
		},
	}

	err := unset([]string{}, UnsetOptions{All: true}, deps)

	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot write config")
}

func TestUnset_ReadLinesError(t *testing.T) {
	deps := Deps{
		ReadLines: func() ([]string, error) {
			return nil, errors.New("cannot read config")
		},
	}

	err := unset([]string{"theme_default"}, UnsetOptions{}, deps)

	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot read config")
}

func TestUnset_WriteLinesError(t *testing.T) {
	deps := Deps{
		ReadLines: func() ([]string, error) {
			return []string{"theme_default=dark"}, nil
		},
		Unset: func(lines []string, key string) ([]string, bool) {
			return []string{}, true
		},
		WriteLines: func(lines []string) error {
			return errors.New("cannot write config")
		},
	}

	err := unset([]string{"theme_default"}, UnsetOptions{}, deps)

	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot write config")
}

// =========== LIST TESTS ===========

func TestList_Success(t *testing.T) {
	var printedLines []string
	deps := Deps{
		GetAll: func() (map[string]string, error) {
			return map[string]string{
				"theme_default":   "dark",
				"log_level":       "info",
				"not_a_known_key": "x",
			}, nil
		},
		Printf: func(format string, a ...any) (int, error) {
			printedLines = append(printedLines, fmt.Sprintf(format, a...))
			return 0, nil
		},
	}

	err := list(ListOptions{}, deps)

	require.NoError(t, err)
	require.Equal(t, []string{"theme_default=dark\n", "log_level=info\n"}, printedLines)
}

func TestList_GetAllError(t *testing.T) {
	deps := Deps{
		GetAll: func() (map[string]string, error) {
			return nil, errors.New("cannot read config")
		},
	}

	err := list(ListOptions{}, deps)

	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot read config")
}

func TestList_JSON(t *testing.T) {
	var printedOutput string
	deps := Deps{
		GetAll: func() (map[string]string, error) {
			return map[string]string{
				"theme_default": "light",
			}, nil
		},
		Println: func(a ...any) (int, error) {
			if len(a) > 0 {
				printedOutput, _ = a[0].(string)
			}
			return 0, nil
		},
	}

	err := list(ListOptions{JSON: true}, deps)

	require.NoError(t, err)
	require.Contains(t, printedOutput, `"key": "theme_default"`)
	require.Contains(t, printedOutput, `"value": "light"`)
	require.Contains(t, printedOutput, `"section": "Appearance"`)
}
