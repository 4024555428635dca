package config

import (
	"github.com/zWesleyDavid/prototipo-luvr/internal/usage"
)

// UnsetOptions controls `luvr config unset`.
type UnsetOptions struct {
	All bool
}

func Unset(args []string, opts UnsetOptions) error {
	return unset(args, opts, DefaultDeps())
}

func unset(args []string, opts UnsetOptions, deps Deps) error {
	if opts.All {
		if len(args) > 0 {
			return usage.InvalidFlag("--all does not take arguments")
		}

		if err := locked(deps, func() error { return deps.WriteLines([]string{}) }); err != nil {
			return err
		}

		_, _ = deps.Println("all config entries removed")
		return nil
	}

	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]

	var removed bool
	err := locked(deps, func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}

		lines, removed = deps.Unset(lines, key)
		if !removed {
			return nil
		}
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}
	if !removed {
		return usage.InvalidConfigKey(key)
	}

	_, _ = deps.Printf("unset %s\n", key)
	return nil
}
