package cli

import (
	"github.com/MKhiriev/go-student-registry/internal/service"
	"github.com/MKhiriev/go-student-registry/models"
	"github.com/spf13/cobra"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	NIM   string
	Name  string
	Major string
}

// NewAddCommand creates the add command. On success the refreshed
// collection is printed.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a student",
		Long: `Add a student to the collection.

All three fields are required; surrounding whitespace is trimmed before the
record is sent.`,
		Example:       `  student-sync add --nim 2201001 --name "Budi Santoso" --major Informatika`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := models.StudentDraft{NIM: opts.NIM, Name: opts.Name, Major: opts.Major}
			return withConsole(rootOpts, cmd, func(syncService service.StudentSyncService) error {
				_, err := syncService.Create(cmd.Context(), draft)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&opts.NIM, "nim", "", "student number (unique)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "full name")
	cmd.Flags().StringVar(&opts.Major, "major", "", "study program")

	return cmd
}
