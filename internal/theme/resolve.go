package theme

import "github.com/zWesleyDavid/prototipo-luvr/internal/domain"

// Resolve maps a mode and the OS preference to the appearance to render.
// Explicit modes ignore the OS preference.
func Resolve(mode domain.ThemeMode, osPrefersDark bool) domain.Appearance {
	switch mode {
	case domain.ModeDark:
		return domain.AppearanceDark
	case domain.ModeLight:
		return domain.AppearanceLight
	}
	if osPrefersDark {
		return domain.AppearanceDark
	}
	return domain.AppearanceLight
}
