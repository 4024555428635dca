package preference

import (
	"context"
	"time"

	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
	"github.com/zWesleyDavid/prototipo-luvr/internal/log"
)

// DefaultPollInterval is used when the configured interval is missing or invalid.
const DefaultPollInterval = 2 * time.Second

// Watcher polls a Chain and feeds the result into a Signal.
// Poll and Source are not safe to call while Run is active.
type Watcher struct {
	chain    Chain
	signal   *Signal
	interval time.Duration
	logger   domain.Logger
	source   string
}

// NewWatcher creates a Watcher. A non-positive interval means DefaultPollInterval.
func NewWatcher(chain Chain, signal *Signal, interval time.Duration, logger domain.Logger) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Watcher{chain: chain, signal: signal, interval: interval, logger: logger}
}

// ParseInterval parses a duration setting, falling back to DefaultPollInterval.
func ParseInterval(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return DefaultPollInterval
	}
	return d
}

// Interval returns the polling interval.
func (w *Watcher) Interval() time.Duration {
	return w.interval
}

// Source returns the name of the detector that answered the last poll.
func (w *Watcher) Source() string {
	return w.source
}

// Poll runs the chain once and updates the signal. It reports whether the
// value changed.
func (w *Watcher) Poll() bool {
	dark, source := w.chain.Detect()
	if source != w.source {
		w.logger.Debug("preference: source %q", source)
		w.source = source
	}
	return w.signal.Set(dark)
}

// Run polls until ctx is done, then returns ctx.Err().
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if w.Poll() {
				w.logger.Info("preference: prefersDark=%t", w.signal.PrefersDark())
			}
		}
	}
}
