package theme

import (
	"github.com/zWesleyDavid/prototipo-luvr/internal/app"
	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
	"github.com/zWesleyDavid/prototipo-luvr/internal/usage"
)

func Set(a *app.App, args []string) error {
	return setMode(args, DefaultDeps(a))
}

func setMode(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("mode")
	}

	mode, ok := domain.ParseThemeMode(args[0])
	if !ok {
		return usage.InvalidMode(args[0])
	}

	// Always write through so the stored value matches the explicit choice.
	already := deps.Theme.Resolved().Mode == mode
	deps.Theme.SetMode(mode)
	if already {
		_, _ = deps.Printf("theme is already %s\n", deps.Sink.Info(string(mode)))
		return nil
	}

	deps.Notifier.ThemeChanged(mode)
	return nil
}
