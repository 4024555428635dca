package theme

import (
	"github.com/zWesleyDavid/prototipo-luvr/internal/app"
	themeengine "github.com/zWesleyDavid/prototipo-luvr/internal/theme"
)

// Toggle switches to the opposite of the applied appearance.
func Toggle(a *app.App) error {
	return toggle(DefaultDeps(a))
}

// Cycle advances light → dark → system.
func Cycle(a *app.App) error {
	return cycle(DefaultDeps(a))
}

func toggle(deps Deps) error {
	deps.Notifier.ThemeChanged(themeengine.Toggle(deps.Theme))
	return nil
}

func cycle(deps Deps) error {
	deps.Notifier.ThemeChanged(themeengine.Cycle(deps.Theme))
	return nil
}
