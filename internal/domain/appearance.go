package domain

import (
	"fmt"
	"strings"
)

// ThemeMode is the appearance preference declared by the user.
// It is persisted verbatim.
type ThemeMode string

const (
	ModeLight  ThemeMode = "light"
	ModeDark   ThemeMode = "dark"
	ModeSystem ThemeMode = "system"
)

// ThemeModes lists the modes in cycle order.
var ThemeModes = []ThemeMode{ModeLight, ModeDark, ModeSystem}

// String returns the string representation of the ThemeMode.
func (m ThemeMode) String() string {
	return string(m)
}

// Valid reports whether m is one of the known modes.
func (m ThemeMode) Valid() bool {
	switch m {
	case ModeLight, ModeDark, ModeSystem:
		return true
	}
	return false
}

// ParseThemeMode converts a raw string to a ThemeMode.
// Surrounding whitespace and case are ignored. Returns false for anything
// that is not light, dark or system.
func ParseThemeMode(s string) (ThemeMode, bool) {
	m := ThemeMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", false
	}
	return m, true
}

// MustThemeMode panics if m is not a known mode.
func MustThemeMode(m ThemeMode) ThemeMode {
	if !m.Valid() {
		panic(fmt.Sprintf("domain: invalid theme mode %q", string(m)))
	}
	return m
}

// Appearance is the concrete appearance currently rendered.
// It is always derived, never persisted.
type Appearance string

const (
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

// String returns the string representation of the Appearance.
func (a Appearance) String() string {
	return string(a)
}

// Opposite returns the other appearance.
func (a Appearance) Opposite() Appearance {
	if a == AppearanceDark {
		return AppearanceLight
	}
	return AppearanceDark
}

// Mode returns the explicit ThemeMode that always resolves to a.
func (a Appearance) Mode() ThemeMode {
	if a == AppearanceDark {
		return ModeDark
	}
	return ModeLight
}

// ThemeState is the (mode, applied) pair published by the theme engine.
// It is always replaced as a whole.
type ThemeState struct {
	Mode    ThemeMode
	Applied Appearance
}
