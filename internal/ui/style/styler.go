package style

import "github.com/zWesleyDavid/prototipo-luvr/internal/domain"

// NopStyler is a no-op styler that returns text unchanged.
// Useful for testing or when styling is disabled.
type NopStyler struct{}

func (NopStyler) Enabled() bool              { return false }
func (NopStyler) Success(text string) string { return text }
func (NopStyler) Warning(text string) string { return text }
func (NopStyler) Error(text string) string   { return text }
func (NopStyler) Info(text string) string    { return text }
func (NopStyler) Muted(text string) string   { return text }
func (NopStyler) Header(text string) string  { return text }

var (
	_ domain.Styler    = (*Sink)(nil)
	_ domain.StyleSink = (*Sink)(nil)
	_ domain.Styler    = NopStyler{}
)
