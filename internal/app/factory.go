package app

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/zWesleyDavid/prototipo-luvr/internal/config"
	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
	"github.com/zWesleyDavid/prototipo-luvr/internal/log"
	"github.com/zWesleyDavid/prototipo-luvr/internal/notify"
	"github.com/zWesleyDavid/prototipo-luvr/internal/paths"
	"github.com/zWesleyDavid/prototipo-luvr/internal/preference"
	"github.com/zWesleyDavid/prototipo-luvr/internal/settings"
	"github.com/zWesleyDavid/prototipo-luvr/internal/storage"
	"github.com/zWesleyDavid/prototipo-luvr/internal/store"
	"github.com/zWesleyDavid/prototipo-luvr/internal/theme"
	"github.com/zWesleyDavid/prototipo-luvr/internal/ui/style"
)

// Storage backend names accepted by storage_backend and --storage.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Options configures the application factory.
type Options struct {
	// Log options
	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	// Style options
	StyleEnabled bool

	// Theme options
	DefaultMode  domain.ThemeMode
	StorageKey   string
	PollInterval time.Duration

	// Storage options
	StorageBackend string
	StoragePath    string

	// Language for status messages.
	Language string

	// Detectors overrides the OS preference chain. Nil means preference.DefaultChain.
	Detectors preference.Chain

	Output io.Writer
}

// DefaultOptions returns options read from the config file and defaults.
func DefaultOptions() Options {
	cfg, _ := config.GetAll()

	mode, ok := domain.ParseThemeMode(cfg["theme_default"])
	if !ok {
		mode = domain.ModeSystem
	}

	return Options{
		LogEnabled:     cfg["enable_log"] == "true",
		LogLevel:       log.ParseLevel(cfg["log_level"]),
		StyleEnabled:   true,
		DefaultMode:    mode,
		StorageKey:     cfg["theme_storage_key"],
		PollInterval:   preference.ParseInterval(cfg["preference_poll_interval"]),
		StorageBackend: strings.ToLower(strings.TrimSpace(cfg["storage_backend"])),
		StoragePath:    cfg["storage_path"],
		Language:       cfg["language"],
		Output:         os.Stdout,
	}
}

// App is the wired application. It embeds the domain context and keeps the
// concrete services commands need beyond it.
type App struct {
	*domain.Application

	Engine   *theme.Engine
	Settings *settings.Service
	Signal   *preference.Signal
	Watcher  *preference.Watcher

	// Backend is the storage backend in use after any fallback.
	Backend string

	stopWatch context.CancelFunc
}

// New creates a new App with all dependencies wired up.
// It only fails when the notifier's message catalog cannot be loaded.
func New(opts Options) (*App, error) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	var logger domain.Logger = log.NopLogger{}
	var closers []io.Closer
	if opts.LogEnabled {
		logPath := opts.LogPath
		if logPath == "" {
			logPath = paths.LogFilePath()
		}
		if l, err := log.New(logPath, opts.LogLevel); err == nil {
			log.SetDefault(l)
			logger = l
			closers = append(closers, l)
		}
	}

	kv, backend, closer := openStorage(opts.StorageBackend, opts.StoragePath, logger)
	if closer != nil {
		closers = append(closers, closer)
	}

	sink := style.Init(opts.StyleEnabled)

	chain := opts.Detectors
	if chain == nil {
		chain = preference.DefaultChain()
	}
	signal := preference.NewSignal(false)
	watcher := preference.NewWatcher(chain, signal, opts.PollInterval, logger)
	watcher.Poll()

	engine := theme.New(theme.Options{
		DefaultMode: opts.DefaultMode,
		StorageKey:  opts.StorageKey,
		Storage:     kv,
		Preference:  signal,
		Sink:        sink,
		Logger:      logger,
	})
	closers = append(closers, engine)

	notifier, err := notify.New(notify.Options{
		Out:      out,
		Styler:   sink,
		Logger:   logger,
		Language: opts.Language,
	})
	if err != nil {
		closeAll(closers)
		return nil, err
	}

	svc := settings.NewService(kv, engine, logger)
	if _, err := svc.Load(); err != nil {
		logger.Warn("app: %v", err)
	}

	logger.Debug("app: storage=%s preference=%q mode=%s", backend, watcher.Source(), engine.Resolved().Mode)

	return &App{
		Application: &domain.Application{
			Config:   config.NewProvider(),
			Storage:  kv,
			Theme:    engine,
			Sink:     sink,
			Styler:   sink,
			Notifier: notifier,
			Logger:   logger,
			Output:   out,
			Closers:  closers,
		},
		Engine:   engine,
		Settings: svc,
		Signal:   signal,
		Watcher:  watcher,
		Backend:  backend,
	}, nil
}

// NewForTesting creates an App suitable for testing.
// Uses in-memory storage, a fixed OS preference, NopLogger, and no styling.
func NewForTesting(out io.Writer, prefersDark bool) *App {
	if out == nil {
		out = io.Discard
	}

	kv := storage.NewMemory()
	signal := preference.NewSignal(prefersDark)
	sink := style.NewSink(false)
	engine := theme.New(theme.Options{Storage: kv, Preference: signal, Sink: sink})
	notifier, err := notify.New(notify.Options{Out: out, Styler: style.NopStyler{}, Language: "en"})
	var n domain.Notifier = notify.Discard{}
	if err == nil {
		n = notifier
	}

	return &App{
		Application: &domain.Application{
			Config:   config.NewProvider(),
			Storage:  kv,
			Theme:    engine,
			Sink:     sink,
			Styler:   style.NopStyler{},
			Notifier: n,
			Logger:   log.NopLogger{},
			Output:   out,
			Closers:  []io.Closer{engine},
		},
		Engine:   engine,
		Settings: settings.NewService(kv, engine, nil),
		Signal:   signal,
		Watcher:  preference.NewWatcher(preference.Chain{}, signal, 0, nil),
		Backend:  BackendMemory,
	}
}

// StartWatching polls the OS preference in the background until ctx is done
// or the App is closed.
func (a *App) StartWatching(ctx context.Context) {
	if a.stopWatch != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	a.stopWatch = cancel
	go func() {
		_ = a.Watcher.Run(ctx)
	}()
}

// Close cleans up application resources in reverse order.
func Close(a *App) error {
	if a == nil {
		return nil
	}
	if a.stopWatch != nil {
		a.stopWatch()
		a.stopWatch = nil
	}
	if a.Application != nil {
		closeAll(a.Closers)
		a.Closers = nil
	}
	return nil
}

func closeAll(closers []io.Closer) {
	for i := len(closers) - 1; i >= 0; i-- {
		if closers[i] != nil {
			_ = closers[i].Close()
		}
	}
}

// openStorage opens the configured backend, falling back to memory when the
// backend cannot be opened.
func openStorage(backend, path string, logger domain.Logger) (domain.Storage, string, io.Closer) {
	switch backend {
	case BackendMemory:
		return storage.NewMemory(), BackendMemory, nil
	case BackendFile:
		if path == "" {
			path = paths.FileStorePath()
		}
		return storage.NewFile(path), BackendFile, nil
	case BackendSQLite, "":
	default:
		logger.Warn("app: unknown storage backend %q, using %s", backend, BackendSQLite)
	}

	if path == "" {
		path = paths.SQLiteStorePath()
	}
	s, err := store.New(path)
	if err != nil {
		logger.Warn("app: open %s: %v; preferences will not persist", path, err)
		return storage.NewMemory(), BackendMemory, nil
	}
	return s, BackendSQLite, s
}
