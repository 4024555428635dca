package config

import (
	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
)

// Defaults holds the in-code default for every key. Values are not persisted
// unless the config file is created from scratch.
var Defaults = map[string]func() string{
	"theme_default":            func() string { return string(domain.ModeSystem) },
	"theme_storage_key":        func() string { return domain.DefaultThemeStorageKey },
	"preference_poll_interval": func() string { return "2s" },
	"language":                 func() string { return "pt-BR" },
	"storage_backend":          func() string { return "sqlite" },
	"storage_path":             func() string { return "" }, // per-backend default under paths.AppLocalDataDir
	"enable_log":               func() string { return "true" },
	"log_level":                func() string { return "warn" },
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	cfg, err := fileValues()
	if err == nil {
		if value, exists := cfg[key]; exists {
			return value, true
		}
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}

	return "", false
}

// GetAll returns all config values (user overrides merged with defaults).
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))

	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	cfg, err := fileValues()
	if err != nil {
		return result, nil // defaults on error
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

func fileValues() (map[string]string, error) {
	lines, err := ReadLines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
