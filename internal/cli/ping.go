package cli

import (
	"github.com/MKhiriev/go-student-registry/internal/service"
	"github.com/spf13/cobra"
)

// NewPingCommand creates the ping command.
func NewPingCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "ping",
		Short:         "Check that the collection API is reachable",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(rootOpts, cmd, func(syncService service.StudentSyncService) error {
				return syncService.CheckConnection(cmd.Context())
			})
		},
	}
}
