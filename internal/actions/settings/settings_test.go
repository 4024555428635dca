package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
	"github.com/zWesleyDavid/prototipo-luvr/internal/notify"
	"github.com/zWesleyDavid/prototipo-luvr/internal/preference"
	"github.com/zWesleyDavid/prototipo-luvr/internal/settings"
	"github.com/zWesleyDavid/prototipo-luvr/internal/storage"
	"github.com/zWesleyDavid/prototipo-luvr/internal/theme"
	"github.com/zWesleyDavid/prototipo-luvr/internal/ui/style"
	"github.com/zWesleyDavid/prototipo-luvr/internal/usage"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

type testEnv struct {
	deps    Deps
	out     *bytes.Buffer
	files   map[string]*bytes.Buffer
	removed []string
	store   *storage.Memory
	engine  *theme.Engine
	svc     *settings.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		out:   &bytes.Buffer{},
		files: map[string]*bytes.Buffer{},
		store: storage.NewMemory(),
	}
	env.engine = theme.New(theme.Options{Storage: env.store, Preference: preference.NewSignal(false)})
	t.Cleanup(func() { _ = env.engine.Close() })
	env.svc = settings.NewService(env.store, env.engine, nil)

	n, err := notify.New(notify.Options{Out: env.out, Styler: style.NopStyler{}, Language: "en"})
	require.NoError(t, err)

	env.deps = Deps{
		Settings: env.svc,
		Notifier: n,
		Styler:   style.NopStyler{},
		Out:      env.out,
		Printf: func(format string, a ...any) (int, error) {
			return fmt.Fprintf(env.out, format, a...)
		},
		Create: func(path string) (io.WriteCloser, error) {
			buf := &bytes.Buffer{}
			env.files[path] = buf
			return nopCloser{buf}, nil
		},
		Open: func(path string) (io.ReadCloser, error) {
			buf, ok := env.files[path]
			if !ok {
				return nil, errors.New("no such file")
			}
			return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
		},
		Remove: func(path string) error {
			env.removed = append(env.removed, path)
			delete(env.files, path)
			return nil
		},
		Now: func() time.Time { return time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC) },
	}
	return env
}

// =========== SHOW TESTS ===========

func TestShow_Text(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, show(ShowOptions{}, env.deps))

	out := env.out.String()
	require.Contains(t, out, "notifications\n  enabled: true\n")
	require.Contains(t, out, "theme\n  mode: system\n")
	require.Contains(t, out, "  currency: BRL\n")
}

func TestShow_UsesPager(t *testing.T) {
	env := newTestEnv(t)
	var paged string
	env.deps.Page = func(content string) { paged = content }

	require.NoError(t, show(ShowOptions{}, env.deps))

	require.Empty(t, env.out.String())
	require.True(t, strings.HasPrefix(paged, "notifications\n"))
	require.Contains(t, paged, "\nbusiness\n")
}

func TestShow_JSON(t *testing.T) {
	env := newTestEnv(t)
	env.engine.SetMode(domain.ModeDark)

	require.NoError(t, show(ShowOptions{JSON: true}, env.deps))

	var got settings.Settings
	require.NoError(t, json.Unmarshal(env.out.Bytes(), &got))
	require.Equal(t, domain.ModeDark, got.Theme.Mode)
	require.Equal(t, 30, got.System.SessionTimeout)
}

// =========== RESET TESTS ===========

func TestReset_RestoresDefaultsAndSystemMode(t *testing.T) {
	env := newTestEnv(t)
	env.svc.Update(func(s *settings.Settings) {
		s.Theme.Mode = domain.ModeDark
		s.Business.Currency = "USD"
	})

	require.NoError(t, reset(env.deps))

	require.Equal(t, settings.Defaults(), env.svc.Current())
	require.Equal(t, domain.ModeSystem, env.engine.Resolved().Mode)
	require.Equal(t, "✓ Settings restored to their defaults.\n", env.out.String())
}

// =========== EXPORT TESTS ===========

func TestExport_DefaultName(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, export(nil, ExportOptions{}, env.deps))

	buf, ok := env.files["luvr-backup-2025-01-15.json"]
	require.True(t, ok)
	require.Contains(t, buf.String(), `"version": "2.0.0"`)
	require.Contains(t, env.out.String(), "Backup exported.")
}

func TestExport_FormatFromExtension(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, export([]string{"backup.yml"}, ExportOptions{}, env.deps))
	require.Contains(t, env.files["backup.yml"].String(), "version: 2.0.0")
}

func TestExport_FormatFlag(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, export(nil, ExportOptions{Format: "yaml"}, env.deps))
	require.Contains(t, env.files, "luvr-backup-2025-01-15.yaml")

	var ue *usage.Error
	err := export(nil, ExportOptions{Format: "xml"}, env.deps)
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrInvalidFlag, ue.Kind)
}

func TestExport_CreateError(t *testing.T) {
	env := newTestEnv(t)
	env.deps.Create = func(string) (io.WriteCloser, error) { return nil, errors.New("read-only") }

	err := export([]string{"out.json"}, ExportOptions{}, env.deps)
	require.ErrorContains(t, err, "read-only")
	require.NotContains(t, env.out.String(), "exported")
}

// =========== IMPORT TESTS ===========

func TestImport_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	env.svc.Update(func(s *settings.Settings) {
		s.Theme.Mode = domain.ModeDark
		s.Business.TaxRate = 5
	})
	require.NoError(t, export([]string{"b.json"}, ExportOptions{}, env.deps))

	_, err := env.svc.Reset()
	require.NoError(t, err)
	env.out.Reset()

	require.NoError(t, importBackup([]string{"b.json"}, env.deps))

	require.Equal(t, domain.ModeDark, env.engine.Resolved().Mode)
	require.Equal(t, 5.0, env.svc.Current().Business.TaxRate)
	require.Equal(t, "✓ Data imported.\n", env.out.String())
}

func TestImport_InvalidBackup(t *testing.T) {
	env := newTestEnv(t)
	env.files["x.json"] = bytes.NewBufferString(`{"version":"2.0.0"}`)

	err := importBackup([]string{"x.json"}, env.deps)

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrInvalidBackup, ue.Kind)
	require.Equal(t, "✗ Invalid backup file\n", env.out.String())
}

func TestImport_Undecodable(t *testing.T) {
	env := newTestEnv(t)
	env.files["x.json"] = bytes.NewBufferString(`not json`)

	err := importBackup([]string{"x.json"}, env.deps)

	require.Error(t, err)
	require.False(t, errors.Is(err, settings.ErrInvalidBackup))
	require.Equal(t, "✗ Could not import data\n", env.out.String())
}

func TestImport_MissingFile(t *testing.T) {
	env := newTestEnv(t)

	require.Error(t, importBackup([]string{"nope.json"}, env.deps))
	require.Contains(t, env.out.String(), "Could not import data")
}

func TestImport_MissingArgument(t *testing.T) {
	env := newTestEnv(t)

	var ue *usage.Error
	require.True(t, errors.As(importBackup(nil, env.deps), &ue))
	require.Equal(t, usage.ErrMissingArgument, ue.Kind)
}

// =========== CLEAR TESTS ===========

func TestClear_RequiresConfirmation(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.store.SetItem(domain.AppDataStorageKey, "{}"))

	var ue *usage.Error
	require.True(t, errors.As(clearAll(ClearOptions{}, env.deps), &ue))
	require.Equal(t, usage.ErrNotConfirmed, ue.Kind)

	_, ok, err := env.store.GetItem(domain.AppDataStorageKey)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestClear_RemovesEverything(t *testing.T) {
	env := newTestEnv(t)
	env.engine.SetMode(domain.ModeDark)
	require.NoError(t, env.store.SetItem(domain.AppDataStorageKey, "{}"))

	require.NoError(t, clearAll(ClearOptions{Yes: true}, env.deps))

	for _, key := range []string{domain.AppDataStorageKey, domain.DefaultThemeStorageKey} {
		_, ok, err := env.store.GetItem(key)
		require.NoError(t, err)
		require.False(t, ok, key)
	}
	require.True(t, strings.HasSuffix(env.out.String(), "All saved data was removed.\n"))
}
