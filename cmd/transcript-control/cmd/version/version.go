package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// set with -ldflags "-X transcript-control/cmd/transcript-control/cmd/version.version=..."
var version = "v0.1.0"

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of transcript-control",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "transcript-control %s (%s)\n", version, runtime.Version())
		return nil
	},
}
