package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zWesleyDavid/prototipo-luvr/internal/actions/logs"
	"github.com/zWesleyDavid/prototipo-luvr/internal/ui/style"
)

func newLogsCmd(rt *Runtime) *cobra.Command {
	var opts logs.ViewOptions

	// The log commands do not build the App, so the style default is set here.
	initStyle := func(*cobra.Command, []string) {
		style.Init(!rt.NoColor && term.IsTerminal(int(os.Stdout.Fd())))
	}

	cmd := &cobra.Command{
		Use:    "logs",
		Short:  "Show the last lines of the log file",
		Args:   cobra.NoArgs,
		PreRun: initStyle,
		RunE: func(*cobra.Command, []string) error {
			return logs.View(opts)
		},
	}
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 50, "Number of lines to show")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	cmd.AddCommand(&cobra.Command{
		Use:    "tail",
		Short:  "Follow the log file",
		Args:   cobra.NoArgs,
		PreRun: initStyle,
		RunE: func(c *cobra.Command, _ []string) error {
			return logs.Tail(c.Context())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:    "clear",
		Short:  "Empty the log file",
		Args:   cobra.NoArgs,
		PreRun: initStyle,
		RunE: func(*cobra.Command, []string) error {
			return logs.Clear()
		},
	})

	return cmd
}
