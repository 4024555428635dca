package domain

import (
	"io"
)

// Storage is a synchronous key/value store that survives restarts.
// It plays the role browser local storage plays for the web front end.
type Storage interface {
	// GetItem returns the value stored under key and whether it exists.
	GetItem(key string) (string, bool, error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(key, value string) error

	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(key string) error

	// Clear removes every key.
	Clear() error
}

// PreferenceSource reports the operating system "prefers dark" signal.
type PreferenceSource interface {
	// PrefersDark returns the current value of the signal.
	PrefersDark() bool

	// Subscribe registers fn to be called whenever the signal changes.
	// The returned func removes the listener; calling it more than once is safe.
	Subscribe(fn func(prefersDark bool)) (unsubscribe func())
}

// StyleSink is the process-wide styling hook downstream views read.
// It holds exactly one applied appearance at a time.
type StyleSink interface {
	// Apply replaces the current appearance. Applying the same value twice
	// leaves the sink in the same state as applying it once.
	Apply(a Appearance)

	// Current returns the applied appearance.
	Current() Appearance
}

// ThemeController is the read/write surface of the theme engine used by
// settings screens and quick-toggle controls.
type ThemeController interface {
	// Resolved returns the current (mode, applied) pair.
	Resolved() ThemeState

	// SetMode persists and applies a new mode.
	SetMode(mode ThemeMode)

	// Subscribe registers fn for every resolution. The returned func cancels it.
	Subscribe(fn func(ThemeState)) (cancel func())
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// Notifier shows short localized status messages (toasts).
type Notifier interface {
	// Success reports a completed action.
	Success(messageID string, data map[string]any)

	// Error reports a failed action.
	Error(messageID string, data map[string]any)

	// ThemeChanged reports a new theme mode.
	ThemeChanged(mode ThemeMode)
}

// Application represents the main application context with all dependencies.
type Application struct {
	Config   ConfigProvider
	Storage  Storage
	Theme    ThemeController
	Sink     StyleSink
	Styler   Styler
	Notifier Notifier
	Logger   Logger
	Output   io.Writer

	// Closers are released in reverse order by app.Close.
	Closers []io.Closer
}
