package cli

import (
	"github.com/spf13/cobra"

	settingsactions "github.com/zWesleyDavid/prototipo-luvr/internal/actions/settings"
)

func newSettingsCmd(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage system settings and backups",
		Args:  cobra.NoArgs,
	}

	var showOpts settingsactions.ShowOptions
	show := &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			a, err := rt.App()
			if err != nil {
				return err
			}
			showOpts.NoPager = rt.NoPager
			return settingsactions.Show(a, showOpts)
		},
	}
	show.Flags().BoolVar(&showOpts.JSON, "json", false, "Output as JSON")
	cmd.AddCommand(show)

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore default settings and switch the theme to system",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			a, err := rt.App()
			if err != nil {
				return err
			}
			return settingsactions.Reset(a)
		},
	})

	var exportOpts settingsactions.ExportOptions
	export := &cobra.Command{
		Use:   "export [file]",
		Short: "Write a backup of settings and app data",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := rt.App()
			if err != nil {
				return err
			}
			return settingsactions.Export(a, args, exportOpts)
		},
	}
	export.Flags().StringVar(&exportOpts.Format, "format", "", "Backup format: json, yaml (default from the file extension)")
	cmd.AddCommand(export)

	cmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Restore settings from a backup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := rt.App()
			if err != nil {
				return err
			}
			return settingsactions.Import(a, args)
		},
	})

	var clearOpts settingsactions.ClearOptions
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all saved data",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			a, err := rt.App()
			if err != nil {
				return err
			}
			return settingsactions.Clear(a, clearOpts)
		},
	}
	clearCmd.Flags().BoolVarP(&clearOpts.Yes, "yes", "y", false, "Confirm removal")
	cmd.AddCommand(clearCmd)

	return cmd
}
