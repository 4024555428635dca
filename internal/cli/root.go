// Package cli builds the luvr command tree.
package cli

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zWesleyDavid/prototipo-luvr/internal/actions"
	"github.com/zWesleyDavid/prototipo-luvr/internal/app"
	"github.com/zWesleyDavid/prototipo-luvr/internal/usage"
)

// Runtime holds the global flags and the lazily built App. Commands that
// only touch the config file never open the preference store.
type Runtime struct {
	NoColor bool
	NoPager bool
	Storage string
	Lang    string

	// Options returns the base options before flags are applied.
	// Nil means app.DefaultOptions.
	Options func() app.Options

	// Out overrides the command output. Nil means stdout.
	Out io.Writer

	app *app.App
}

// App builds the App on first use.
func (r *Runtime) App() (*app.App, error) {
	if r.app != nil {
		return r.app, nil
	}

	optsFn := r.Options
	if optsFn == nil {
		optsFn = app.DefaultOptions
	}
	opts := optsFn()

	if r.Out != nil {
		opts.Output = r.Out
	}
	if r.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		opts.StyleEnabled = false
	}
	if r.Storage != "" {
		switch r.Storage {
		case app.BackendSQLite, app.BackendFile, app.BackendMemory:
			opts.StorageBackend = r.Storage
		default:
			return nil, usage.InvalidFlag("--storage=" + r.Storage)
		}
	}
	if r.Lang != "" {
		opts.Language = r.Lang
	}

	a, err := app.New(opts)
	if err != nil {
		return nil, err
	}
	r.app = a
	return a, nil
}

// Close releases the App if one was built.
func (r *Runtime) Close() error {
	err := app.Close(r.app)
	r.app = nil
	return err
}

func NewRootCmd(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "luvr",
		Short:         "Theme and settings for the luvr motel manager",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Show the current theme
  luvr theme

  # Follow the OS color scheme
  luvr theme set system

  # Flip between light and dark
  luvr theme toggle

  # Back up settings
  luvr settings export backup.json
`),
	}
	cmd.SetVersionTemplate("luvr version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usage.Error{Kind: usage.ErrInvalidFlag, Message: "luvr: " + err.Error()}
	})

	cmd.PersistentFlags().BoolVar(&rt.NoColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(&rt.NoPager, "no-pager", false, "Do not page long output")
	cmd.PersistentFlags().StringVar(&rt.Storage, "storage", "", "Preference storage: sqlite, file, memory")
	cmd.PersistentFlags().StringVar(&rt.Lang, "lang", "", "Language for status messages: pt-BR, en")

	cmd.AddCommand(newThemeCmd(rt))
	cmd.AddCommand(newSettingsCmd(rt))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newLogsCmd(rt))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show luvr version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return actions.ShowVersion()
		},
	})

	return cmd
}

// ExitCode maps an error returned by the command tree to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	if strings.HasPrefix(err.Error(), "unknown command") {
		return usage.UnknownCommand("").GetExitCode()
	}
	return 1
}
