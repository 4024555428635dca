package usage

import (
	"fmt"
	"strings"

	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
)

// InvalidFlag is returned when a flag is not valid in the current context.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("luvr: invalid flag '%s'", flag),
	}
}

// InvalidMode is returned when a theme mode argument is not light, dark or system.
func InvalidMode(value string) *Error {
	names := make([]string, len(domain.ThemeModes))
	for i, m := range domain.ThemeModes {
		names[i] = string(m)
	}
	return &Error{
		Kind:    ErrInvalidMode,
		Message: fmt.Sprintf("luvr: invalid theme mode '%s' (expected %s)", value, strings.Join(names, ", ")),
	}
}

// InvalidConfigKey is returned for keys outside the config registry.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("luvr: unknown config key '%s'. See 'luvr config list'.", key),
	}
}

// InvalidBackup is returned when an imported file has no settings.
func InvalidBackup(path string) *Error {
	return &Error{
		Kind:    ErrInvalidBackup,
		Message: fmt.Sprintf("luvr: '%s' is not a luvr backup", path),
	}
}

// NotConfirmed is returned when a destructive command runs without --yes.
func NotConfirmed(command string) *Error {
	return &Error{
		Kind:    ErrNotConfirmed,
		Message: fmt.Sprintf("luvr: '%s' removes all saved data; re-run with --yes", command),
	}
}

// NotATerminal is returned when an interactive view needs a TTY.
func NotATerminal(command string) *Error {
	return &Error{
		Kind:    ErrNotATerminal,
		Message: fmt.Sprintf("luvr: '%s' needs an interactive terminal", command),
	}
}

// FailedConfigPath is returned when the config file location cannot be resolved.
func FailedConfigPath(err error) *Error {
	return &Error{
		Kind:    ErrFailedConfigPath,
		Message: fmt.Sprintf("luvr: could not resolve config path: %v", err),
	}
}
