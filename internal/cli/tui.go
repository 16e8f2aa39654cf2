package cli

import (
	"github.com/MKhiriev/go-student-registry/internal/client"
	"github.com/spf13/cobra"
)

// NewTUICommand creates the tui command. It is also what the root command
// runs by default.
func NewTUICommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "tui",
		Short:         "Open the interactive terminal UI",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(rootOpts, cmd)
		},
	}
}

func runTUI(opts *RootOptions, cmd *cobra.Command) error {
	return withApp(opts, cmd, func(a *client.App) error {
		return a.Run(cmd.Context())
	})
}
