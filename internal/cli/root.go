// Package cli is the command-line front end of the student sync client.
//
// Every subcommand drives the same sync engine as the terminal UI, with a
// console presentation sink in place of the bubbletea program. Tables and
// JSON go to stdout; notifications go to stderr as "[severity] message".
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/MKhiriev/go-student-registry/internal/config"
	"github.com/MKhiriev/go-student-registry/internal/service"
	"github.com/MKhiriev/go-student-registry/models"
	"github.com/spf13/cobra"
)

// Exit codes returned by Execute.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

const (
	formatText = "text"
	formatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{formatText, formatJSON}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string

	flags     *config.Flags
	buildInfo models.AppBuildInfo
}

// NewRootCommand creates the student-sync command tree. Without a
// subcommand it starts the terminal UI.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &RootOptions{buildInfo: buildInfo}

	cmd := &cobra.Command{
		Use:   "student-sync",
		Short: "Student registry sync client",
		Long: `Keeps a local view of the remote /mahasiswa collection in sync.

Run without a subcommand to open the interactive terminal UI, or use one of
the subcommands for scripting.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts, cmd)
		},
	}

	opts.flags = config.BindClientFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().StringVar(&opts.Format, "format", formatText, "output format (json|text)")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewPingCommand(opts))
	cmd.AddCommand(NewTUICommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// Execute runs the command tree against os.Args and returns the process
// exit code. SIGINT and SIGTERM cancel the running command.
func Execute(buildInfo models.AppBuildInfo) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCommand(buildInfo)
	if err := cmd.ExecuteContext(ctx); err != nil {
		// sync errors were already reported by the console sink
		if _, ok := service.KindOf(err); !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %v\n", models.SeverityError, err)
		}
		return ExitFailure
	}
	return ExitSuccess
}
