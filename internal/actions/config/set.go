package config

import (
	"time"

	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
	"github.com/zWesleyDavid/prototipo-luvr/internal/usage"
)

func Set(args []string) error {
	return set(args, DefaultDeps())
}

func set(args []string, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("key value")
	}

	key := args[0]
	value := args[1]

	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}
	if err := validate(key, value); err != nil {
		return err
	}

	var updated bool
	err := locked(deps, func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}

		lines, updated = deps.Set(lines, key, value)
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}

	action := "added"
	if updated {
		action = "updated"
	}

	_, _ = deps.Printf("%s %s=%s\n", action, key, value)

	return nil
}

// validate rejects values the app would otherwise silently replace.
func validate(key, value string) error {
	switch key {
	case "theme_default":
		if _, ok := domain.ParseThemeMode(value); !ok {
			return usage.InvalidMode(value)
		}
	case "preference_poll_interval":
		if d, err := time.ParseDuration(value); err != nil || d <= 0 {
			return usage.InvalidFlag("preference_poll_interval=" + value)
		}
	case "storage_backend":
		switch value {
		case "sqlite", "file", "memory":
		default:
			return usage.InvalidFlag("storage_backend=" + value)
		}
	}
	return nil
}
