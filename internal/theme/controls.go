package theme

import "github.com/zWesleyDavid/prototipo-luvr/internal/domain"

// ToggleTarget returns the mode a binary toggle switches to: always the
// explicit opposite of what is applied right now, so the first toggle out of
// system mode lands on light or dark.
func ToggleTarget(s domain.ThemeState) domain.ThemeMode {
	if s.Mode == domain.ModeSystem {
		return s.Applied.Opposite().Mode()
	}
	if s.Mode == domain.ModeDark {
		return domain.ModeLight
	}
	return domain.ModeDark
}

// NextMode returns the mode after m in the order light, dark, system.
// Unknown modes restart the cycle at light.
func NextMode(m domain.ThemeMode) domain.ThemeMode {
	for i, mode := range domain.ThemeModes {
		if mode == m {
			return domain.ThemeModes[(i+1)%len(domain.ThemeModes)]
		}
	}
	return domain.ThemeModes[0]
}

// Toggle flips c to the opposite of the applied appearance and returns the new mode.
func Toggle(c domain.ThemeController) domain.ThemeMode {
	next := ToggleTarget(c.Resolved())
	c.SetMode(next)
	return next
}

// Cycle advances c to the next mode and returns it.
func Cycle(c domain.ThemeController) domain.ThemeMode {
	next := NextMode(c.Resolved().Mode)
	c.SetMode(next)
	return next
}
