package config

import (
	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
	"github.com/zWesleyDavid/prototipo-luvr/internal/usage"
)

func Get(args []string) error {
	return get(args, DefaultDeps())
}

func get(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	value, found := deps.Get(key)
	if !found {
		return usage.InvalidConfigKey(key)
	}

	_, _ = deps.Println(value)
	return nil
}
