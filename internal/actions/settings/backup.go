package settings

import (
	"errors"
	"fmt"

	"github.com/zWesleyDavid/prototipo-luvr/internal/app"
	"github.com/zWesleyDavid/prototipo-luvr/internal/notify"
	"github.com/zWesleyDavid/prototipo-luvr/internal/settings"
	"github.com/zWesleyDavid/prototipo-luvr/internal/usage"
)

// ExportOptions controls `luvr settings export`.
type ExportOptions struct {
	// Format overrides the format picked from the file extension.
	Format string
}

// Export writes a backup to args[0], or to luvr-backup-<date>.json in the
// current directory.
func Export(a *app.App, args []string, opts ExportOptions) error {
	return export(args, opts, DefaultDeps(a))
}

func export(args []string, opts ExportOptions, deps Deps) error {
	format, err := resolveFormat(opts.Format, args)
	if err != nil {
		return err
	}

	path := settings.DefaultBackupName(deps.Now(), format)
	if len(args) > 0 {
		path = args[0]
	}

	f, err := deps.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	b, err := deps.Settings.Export(f, format)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = deps.Remove(path)
		return err
	}

	deps.Notifier.Success(notify.BackupExported, nil)
	_, _ = deps.Printf("%s %s (%s)\n", deps.Styler.Muted("wrote"), path, b.ID)
	return nil
}

// Import restores settings from the backup at args[0].
func Import(a *app.App, args []string) error {
	return importBackup(args, DefaultDeps(a))
}

func importBackup(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("file")
	}
	path := args[0]

	f, err := deps.Open(path)
	if err != nil {
		deps.Notifier.Error(notify.BackupFailed, nil)
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := deps.Settings.Import(f, settings.FormatFromPath(path)); err != nil {
		if errors.Is(err, settings.ErrInvalidBackup) {
			deps.Notifier.Error(notify.BackupInvalid, nil)
			return usage.InvalidBackup(path)
		}
		deps.Notifier.Error(notify.BackupFailed, nil)
		return err
	}

	deps.Notifier.Success(notify.BackupImported, nil)
	return nil
}

func resolveFormat(flag string, args []string) (settings.Format, error) {
	switch flag {
	case "":
		if len(args) > 0 {
			return settings.FormatFromPath(args[0]), nil
		}
		return settings.FormatJSON, nil
	case "json":
		return settings.FormatJSON, nil
	case "yaml", "yml":
		return settings.FormatYAML, nil
	default:
		return "", usage.InvalidFlag("--format=" + flag)
	}
}
