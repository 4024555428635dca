// Package preference tracks the operating system "prefers dark" signal.
//
// A Signal holds the current value and notifies listeners when it changes.
// Detectors read the value from the environment, the desktop or the terminal;
// a Watcher polls a Chain of detectors and feeds the Signal.
package preference

import (
	"sync"

	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
)

// Signal is a PreferenceSource whose value is set by the caller.
// Listeners run on the goroutine that calls Set, outside the internal lock.
type Signal struct {
	mu        sync.Mutex
	dark      bool
	listeners map[uint64]func(bool)
	next      uint64
}

// NewSignal creates a Signal with an initial value.
func NewSignal(prefersDark bool) *Signal {
	return &Signal{
		dark:      prefersDark,
		listeners: make(map[uint64]func(bool)),
	}
}

// PrefersDark returns the current value.
func (s *Signal) PrefersDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

// Set updates the value and notifies listeners if it changed.
// It returns true when the value changed.
func (s *Signal) Set(prefersDark bool) bool {
	s.mu.Lock()
	if s.dark == prefersDark {
		s.mu.Unlock()
		return false
	}
	s.dark = prefersDark
	fns := make([]func(bool), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(prefersDark)
	}
	return true
}

// Subscribe registers fn for changes. The returned func removes it and is
// safe to call more than once.
func (s *Signal) Subscribe(fn func(bool)) func() {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.next
	s.next++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Listeners returns the number of registered listeners.
func (s *Signal) Listeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

var _ domain.PreferenceSource = (*Signal)(nil)
