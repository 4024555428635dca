package settings

import (
	"github.com/zWesleyDavid/prototipo-luvr/internal/app"
	"github.com/zWesleyDavid/prototipo-luvr/internal/notify"
	"github.com/zWesleyDavid/prototipo-luvr/internal/usage"
)

// ClearOptions controls `luvr settings clear`.
type ClearOptions struct {
	Yes bool
}

func Clear(a *app.App, opts ClearOptions) error {
	return clearAll(opts, DefaultDeps(a))
}

func clearAll(opts ClearOptions, deps Deps) error {
	if !opts.Yes {
		return usage.NotConfirmed("settings clear")
	}
	if err := deps.Settings.ClearAll(); err != nil {
		return err
	}
	deps.Notifier.Success(notify.DataCleared, nil)
	return nil
}
