package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VersionInfo is the JSON shape of the version command.
type VersionInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewVersionCommand creates the version command. It needs no configuration.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "version",
		Short:         "Print build information",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Name:    logRole,
				Version: valueOrNA(rootOpts.buildInfo.BuildVersion()),
				Date:    valueOrNA(rootOpts.buildInfo.BuildDate()),
				Commit:  valueOrNA(rootOpts.buildInfo.BuildCommit()),
			}

			out := cmd.OutOrStdout()
			if rootOpts.Format == formatJSON {
				writeJSON(out, info)
				return nil
			}

			fmt.Fprintln(out, info.Name)
			fmt.Fprintf(out, "Version: %s\n", info.Version)
			fmt.Fprintf(out, "Date:    %s\n", info.Date)
			fmt.Fprintf(out, "Commit:  %s\n", info.Commit)
			return nil
		},
	}
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
