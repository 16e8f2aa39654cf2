package cli

import (
	"github.com/MKhiriev/go-student-registry/internal/service"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "Print all students",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(rootOpts, cmd, func(syncService service.StudentSyncService) error {
				_, err := syncService.List(cmd.Context())
				return err
			})
		},
	}
}
