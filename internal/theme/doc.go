// Package theme owns appearance resolution for the whole UI.
//
// An Engine turns the user's ThemeMode (light, dark, system) into the
// Appearance actually rendered, persists the mode under a storage key, and
// while in system mode follows the operating system color-scheme signal.
// Every resolution replaces the (mode, applied) pair as a unit, applies it to
// the style sink and notifies subscribers.
//
// Typical wiring:
//
//	eng := theme.New(theme.Options{
//		DefaultMode: domain.ModeSystem,
//		StorageKey:  domain.DefaultThemeStorageKey,
//		Storage:     kv,
//		Preference:  signal,
//		Sink:        sink,
//		Logger:      logger,
//	})
//	defer eng.Close()
//
//	cancel := eng.Subscribe(func(s domain.ThemeState) { redraw(s.Applied) })
//	defer cancel()
//
//	theme.Toggle(eng)
package theme
