package cli

import (
	"github.com/spf13/cobra"

	configactions "github.com/zWesleyDavid/prototipo-luvr/internal/actions/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a config value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return configactions.Get(args)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return configactions.Set(args)
		},
	})

	var unsetOpts configactions.UnsetOptions
	unset := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a config value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return configactions.Unset(args, unsetOpts)
		},
	}
	unset.Flags().BoolVar(&unsetOpts.All, "all", false, "Remove all config entries")
	cmd.AddCommand(unset)

	var listOpts configactions.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List config values",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return configactions.List(listOpts)
		},
	}
	list.Flags().BoolVar(&listOpts.JSON, "json", false, "Output as JSON")
	cmd.AddCommand(list)

	return cmd
}
