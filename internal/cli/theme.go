package cli

import (
	"github.com/spf13/cobra"

	themeactions "github.com/zWesleyDavid/prototipo-luvr/internal/actions/theme"
)

func newThemeCmd(rt *Runtime) *cobra.Command {
	var showOpts themeactions.ShowOptions

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the color theme",
		Long: `The theme mode is light, dark or system. In system mode the applied
appearance follows the operating system color scheme.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			a, err := rt.App()
			if err != nil {
				return err
			}
			return themeactions.Show(a, showOpts)
		},
	}
	cmd.Flags().BoolVar(&showOpts.JSON, "json", false, "Output as JSON")

	cmd.AddCommand(newThemeShowCmd(rt))
	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark|system>",
		Short:     "Set the theme mode",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "system"},
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := rt.App()
			if err != nil {
				return err
			}
			return themeactions.Set(a, args)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch to the opposite of the applied appearance",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			a, err := rt.App()
			if err != nil {
				return err
			}
			return themeactions.Toggle(a)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "cycle",
		Short: "Advance light → dark → system",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			a, err := rt.App()
			if err != nil {
				return err
			}
			return themeactions.Cycle(a)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List theme modes and palettes",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			a, err := rt.App()
			if err != nil {
				return err
			}
			return themeactions.List(a)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "pick",
		Short: "Pick a theme mode interactively",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			a, err := rt.App()
			if err != nil {
				return err
			}
			return themeactions.Pick(a)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Follow the theme as the OS color scheme changes",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			a, err := rt.App()
			if err != nil {
				return err
			}
			return themeactions.Watch(c.Context(), a)
		},
	})

	return cmd
}

func newThemeShowCmd(rt *Runtime) *cobra.Command {
	var opts themeactions.ShowOptions

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the theme mode and applied appearance",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			a, err := rt.App()
			if err != nil {
				return err
			}
			return themeactions.Show(a, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")
	return cmd
}
