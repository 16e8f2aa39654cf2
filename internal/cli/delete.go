package cli

import (
	"github.com/MKhiriev/go-student-registry/internal/service"
	"github.com/MKhiriev/go-student-registry/models"
	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command. The id is passed to the
// server as given; blank ids are rejected before any request.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete a student by id",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := models.StudentID(args[0])
			return withConsole(rootOpts, cmd, func(syncService service.StudentSyncService) error {
				return syncService.Delete(cmd.Context(), id)
			})
		},
	}
}
