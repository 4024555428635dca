package settings

import (
	"github.com/zWesleyDavid/prototipo-luvr/internal/app"
	"github.com/zWesleyDavid/prototipo-luvr/internal/notify"
)

func Reset(a *app.App) error {
	return reset(DefaultDeps(a))
}

func reset(deps Deps) error {
	if _, err := deps.Settings.Reset(); err != nil {
		return err
	}
	deps.Notifier.Success(notify.SettingsReset, nil)
	return nil
}
