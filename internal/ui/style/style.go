// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Success, Occupied, etc.) rather than visual (RedBold, etc.).
//
// A Sink is the process-wide styling hook: it carries a marker list where
// exactly one of "light" or "dark" is present after Apply, and renders with
// the palette that matches it. When disabled, all helpers return the input
// string unchanged with no ANSI codes.
package style

import (
	"os"
	"slices"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
)

// Sink implements domain.StyleSink and domain.Styler.
type Sink struct {
	mu       sync.RWMutex
	enabled  bool
	markers  []string
	palette  Palette
	renderer *lipgloss.Renderer
	styles   styles
}

type styles struct {
	success, warning, error, info, muted, header         lipgloss.Style
	available, occupied, cleaning, maintenance, reserved lipgloss.Style
}

var (
	defaultSink   *Sink
	defaultSinkMu sync.RWMutex
)

// ColorDisabledByEnv reports whether NO_COLOR or LUVR_NO_COLOR is set.
func ColorDisabledByEnv() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv("LUVR_NO_COLOR") != ""
}

// NewSink creates a Sink. Styling is off when enable is false or when
// ColorDisabledByEnv. Extra markers are kept across every Apply.
func NewSink(enable bool, markers ...string) *Sink {
	r := lipgloss.NewRenderer(os.Stdout)
	// ANSI256 regardless of TTY detection, so piped output keeps its colors.
	r.SetColorProfile(termenv.ANSI256)

	s := &Sink{
		enabled:  enable && !ColorDisabledByEnv(),
		renderer: r,
	}
	for _, m := range markers {
		if m != "" && !isAppearanceMarker(m) && !slices.Contains(s.markers, m) {
			s.markers = append(s.markers, m)
		}
	}
	s.palette = PaletteFor(domain.AppearanceLight)
	s.styles = buildStyles(r, s.palette)
	return s
}

// Init creates a Sink and installs it as the package default.
// It should be called once from main before any output.
func Init(enable bool) *Sink {
	s := NewSink(enable)
	SetDefault(s)
	return s
}

// SetDefault installs s as the sink used by the package-level helpers.
func SetDefault(s *Sink) {
	defaultSinkMu.Lock()
	defer defaultSinkMu.Unlock()
	defaultSink = s
}

// Default returns the package default sink, which may be nil.
func Default() *Sink {
	defaultSinkMu.RLock()
	defer defaultSinkMu.RUnlock()
	return defaultSink
}

// Apply removes any previous appearance marker, adds a's marker and rebuilds
// the styles from a's palette.
func (s *Sink) Apply(a domain.Appearance) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.markers = slices.DeleteFunc(s.markers, isAppearanceMarker)
	s.markers = append(s.markers, string(a))

	s.palette = PaletteFor(a)
	s.renderer.SetHasDarkBackground(a == domain.AppearanceDark)
	s.styles = buildStyles(s.renderer, s.palette)
}

// Current returns the applied appearance, or "" before the first Apply.
func (s *Sink) Current() domain.Appearance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.markers {
		if isAppearanceMarker(m) {
			return domain.Appearance(m)
		}
	}
	return ""
}

// Markers returns a copy of the marker list.
func (s *Sink) Markers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.markers)
}

// Palette returns the palette in use.
func (s *Sink) Palette() Palette {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.palette
}

// Enabled returns whether styling is on.
func (s *Sink) Enabled() bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

// SetEnabled turns styling on or off. Environment opt-outs still win.
func (s *Sink) SetEnabled(enable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enable && !ColorDisabledByEnv()
}

func (s *Sink) render(pick func(styles) lipgloss.Style, text string) string {
	if s == nil {
		return text
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.enabled {
		return text
	}
	return pick(s.styles).Render(text)
}

// Success styles text for successful operations.
func (s *Sink) Success(text string) string {
	return s.render(func(st styles) lipgloss.Style { return st.success }, text)
}

// Warning styles text for warning messages.
func (s *Sink) Warning(text string) string {
	return s.render(func(st styles) lipgloss.Style { return st.warning }, text)
}

// Error styles text for error messages.
func (s *Sink) Error(text string) string {
	return s.render(func(st styles) lipgloss.Style { return st.error }, text)
}

// Info styles text for informational messages.
func (s *Sink) Info(text string) string {
	return s.render(func(st styles) lipgloss.Style { return st.info }, text)
}

// Muted styles text for less important or secondary information.
func (s *Sink) Muted(text string) string {
	return s.render(func(st styles) lipgloss.Style { return st.muted }, text)
}

// Header styles text for section headers or titles.
func (s *Sink) Header(text string) string {
	return s.render(func(st styles) lipgloss.Style { return st.header }, text)
}

func (s *Sink) Available(text string) string {
	return s.render(func(st styles) lipgloss.Style { return st.available }, text)
}

func (s *Sink) Occupied(text string) string {
	return s.render(func(st styles) lipgloss.Style { return st.occupied }, text)
}

func (s *Sink) Cleaning(text string) string {
	return s.render(func(st styles) lipgloss.Style { return st.cleaning }, text)
}

func (s *Sink) Maintenance(text string) string {
	return s.render(func(st styles) lipgloss.Style { return st.maintenance }, text)
}

func (s *Sink) Reserved(text string) string {
	return s.render(func(st styles) lipgloss.Style { return st.reserved }, text)
}

// Swatch renders a two-space block in the given palette color, used by the
// theme preview. Returns "" when styling is disabled.
func (s *Sink) Swatch(color string) string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.enabled {
		return ""
	}
	return s.renderer.NewStyle().Background(lipgloss.Color(color)).Render("  ")
}

func buildStyles(r *lipgloss.Renderer, p Palette) styles {
	return styles{
		success:     makeStyle(r, p.Success),
		warning:     makeStyle(r, p.Warning),
		error:       makeStyle(r, p.Error),
		info:        makeStyle(r, p.Info),
		muted:       makeStyle(r, p.Muted),
		header:      makeStyle(r, p.Header),
		available:   makeStyle(r, p.Available),
		occupied:    makeStyle(r, p.Occupied),
		cleaning:    makeStyle(r, p.Cleaning),
		maintenance: makeStyle(r, p.Maintenance),
		reserved:    makeStyle(r, p.Reserved),
	}
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(r *lipgloss.Renderer, value string) lipgloss.Style {
	if value == "bold" {
		return r.NewStyle().Bold(true)
	}
	return r.NewStyle().Foreground(lipgloss.Color(value))
}

func isAppearanceMarker(m string) bool {
	return m == string(domain.AppearanceLight) || m == string(domain.AppearanceDark)
}

// Package-level helpers render with the default sink, or return text
// unchanged when none is installed.

func Enabled() bool              { return Default().Enabled() }
func Success(text string) string { return Default().Success(text) }
func Warning(text string) string { return Default().Warning(text) }
func Error(text string) string   { return Default().Error(text) }
func Info(text string) string    { return Default().Info(text) }
func Muted(text string) string   { return Default().Muted(text) }
func Header(text string) string  { return Default().Header(text) }
