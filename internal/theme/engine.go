package theme

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
	"github.com/zWesleyDavid/prototipo-luvr/internal/log"
	"github.com/zWesleyDavid/prototipo-luvr/internal/storage"
)

// Options configures an Engine. Zero values fall back to safe defaults.
type Options struct {
	// DefaultMode is used when nothing valid is stored. Zero means system.
	DefaultMode domain.ThemeMode

	// StorageKey is the key the mode is persisted under.
	// Empty means domain.DefaultThemeStorageKey.
	StorageKey string

	Storage    domain.Storage
	Preference domain.PreferenceSource
	Sink       domain.StyleSink
	Logger     domain.Logger
}

// Engine resolves and publishes the theme state. Safe for concurrent use.
//
// Subscribers run synchronously after each resolution, outside the state
// lock. They may call Resolved and Close but must not call SetMode on the same
// goroutine; forward to a channel instead.
type Engine struct {
	key     string
	storage domain.Storage
	pref    domain.PreferenceSource
	sink    domain.StyleSink
	logger  domain.Logger

	mu    sync.RWMutex
	state domain.ThemeState

	// publishMu serializes resolve, apply and notify so subscribers observe
	// states in the order they were produced.
	publishMu sync.Mutex

	subsMu  sync.Mutex
	subs    map[uint64]func(domain.ThemeState)
	nextSub uint64

	unlisten  func()
	closed    *atomic.Bool
	closeOnce sync.Once
}

// New loads the stored mode, resolves it, applies it to the sink and starts
// following the OS preference. It never fails: storage problems are logged and
// the default mode is used.
func New(opts Options) *Engine {
	e := &Engine{
		key:     opts.StorageKey,
		storage: opts.Storage,
		pref:    opts.Preference,
		sink:    opts.Sink,
		logger:  opts.Logger,
		subs:    make(map[uint64]func(domain.ThemeState)),
		closed:  atomic.NewBool(false),
	}
	if e.key == "" {
		e.key = domain.DefaultThemeStorageKey
	}
	if e.storage == nil {
		e.storage = storage.NewMemory()
	}
	if e.pref == nil {
		e.pref = noPreference{}
	}
	if e.sink == nil {
		e.sink = &discardSink{}
	}
	if e.logger == nil {
		e.logger = log.NopLogger{}
	}

	fallback := opts.DefaultMode
	if fallback == "" {
		fallback = domain.ModeSystem
	}
	fallback = domain.MustThemeMode(fallback)

	mode := e.load(fallback)
	e.publish(domain.ThemeState{Mode: mode, Applied: Resolve(mode, e.pref.PrefersDark())})
	unlisten := e.pref.Subscribe(e.onPreference)
	e.subsMu.Lock()
	e.unlisten = unlisten
	e.subsMu.Unlock()

	return e
}

// Initialize is New followed by Resolved, for callers that need the first
// state right away.
func Initialize(opts Options) (*Engine, domain.ThemeState) {
	e := New(opts)
	return e, e.Resolved()
}

// Resolved returns the current (mode, applied) pair.
func (e *Engine) Resolved() domain.ThemeState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// StorageKey returns the key the mode is persisted under.
func (e *Engine) StorageKey() string {
	return e.key
}

// SetMode persists mode, resolves it and publishes the result.
// It panics on a mode outside light, dark and system. After Close it only logs.
func (e *Engine) SetMode(mode domain.ThemeMode) {
	mode = domain.MustThemeMode(mode)

	if e.closed.Load() {
		e.logger.Warn("theme: SetMode(%s) after close ignored", mode)
		return
	}

	e.publishMu.Lock()
	defer e.publishMu.Unlock()

	if e.closed.Load() {
		e.logger.Warn("theme: SetMode(%s) after close ignored", mode)
		return
	}

	e.persist(mode)
	e.setAndNotify(domain.ThemeState{Mode: mode, Applied: Resolve(mode, e.pref.PrefersDark())})
}

// Subscribe registers fn for every resolution and returns a cancel func.
// fn is not called with the current state; use Resolved for that.
func (e *Engine) Subscribe(fn func(domain.ThemeState)) func() {
	if fn == nil || e.closed.Load() {
		return func() {}
	}

	e.subsMu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	e.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.subsMu.Lock()
			delete(e.subs, id)
			e.subsMu.Unlock()
		})
	}
}

// Close stops following the OS preference and drops all subscribers.
// It does not wait for an in-flight resolution, so a subscriber may call it.
// Subscribers not yet reached by that resolution are skipped. Calling it again
// is a no-op.
func (e *Engine) Close() error {
	e.closeOnce.Do(func() {
		e.closed.Store(true)

		e.subsMu.Lock()
		unlisten := e.unlisten
		e.unlisten = nil
		e.subs = make(map[uint64]func(domain.ThemeState))
		e.subsMu.Unlock()

		if unlisten != nil {
			unlisten()
		}
	})
	return nil
}

// Closed reports whether Close has been called.
func (e *Engine) Closed() bool {
	return e.closed.Load()
}

func (e *Engine) onPreference(prefersDark bool) {
	if e.closed.Load() {
		return
	}

	e.publishMu.Lock()
	defer e.publishMu.Unlock()

	if e.closed.Load() || e.Resolved().Mode != domain.ModeSystem {
		return
	}

	e.logger.Debug("theme: system preference changed, prefersDark=%t", prefersDark)
	e.setAndNotify(domain.ThemeState{Mode: domain.ModeSystem, Applied: Resolve(domain.ModeSystem, prefersDark)})
}

// persist writes mode to storage. Failures, including a panicking store, are
// logged and otherwise ignored.
func (e *Engine) persist(mode domain.ThemeMode) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("theme: persist %q panicked: %v", e.key, r)
		}
	}()

	if err := e.storage.SetItem(e.key, string(mode)); err != nil {
		e.logger.Warn("theme: persist %q: %v", e.key, err)
	}
}

func (e *Engine) load(fallback domain.ThemeMode) (mode domain.ThemeMode) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("theme: read %q panicked: %v", e.key, r)
			mode = fallback
		}
	}()

	raw, ok, err := e.storage.GetItem(e.key)
	if err != nil {
		e.logger.Warn("theme: read %q: %v", e.key, err)
		return fallback
	}
	if !ok {
		return fallback
	}

	parsed, valid := domain.ParseThemeMode(raw)
	if !valid {
		e.logger.Debug("theme: ignoring stored value %q under %q", raw, e.key)
		return fallback
	}
	return parsed
}

func (e *Engine) publish(s domain.ThemeState) {
	e.publishMu.Lock()
	defer e.publishMu.Unlock()
	e.setAndNotify(s)
}

// setAndNotify must be called with publishMu held.
func (e *Engine) setAndNotify(s domain.ThemeState) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()

	e.sink.Apply(s.Applied)
	e.logger.Debug("theme: mode=%s applied=%s", s.Mode, s.Applied)

	e.subsMu.Lock()
	fns := make([]func(domain.ThemeState), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.subsMu.Unlock()

	for _, fn := range fns {
		if e.closed.Load() {
			return
		}
		fn(s)
	}
}

type noPreference struct{}

func (noPreference) PrefersDark() bool          { return false }
func (noPreference) Subscribe(func(bool)) func() { return func() {} }

type discardSink struct {
	mu      sync.Mutex
	current domain.Appearance
}

func (s *discardSink) Apply(a domain.Appearance) {
	s.mu.Lock()
	s.current = a
	s.mu.Unlock()
}

func (s *discardSink) Current() domain.Appearance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

var _ domain.ThemeController = (*Engine)(nil)
