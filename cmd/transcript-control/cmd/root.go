package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"transcript-control/cmd/transcript-control/cmd/calendar"
	"transcript-control/cmd/transcript-control/cmd/cliutil"
	"transcript-control/cmd/transcript-control/cmd/columns"
	"transcript-control/cmd/transcript-control/cmd/health"
	"transcript-control/cmd/transcript-control/cmd/migrate"
	"transcript-control/cmd/transcript-control/cmd/serve"
	"transcript-control/cmd/transcript-control/cmd/settings"
	"transcript-control/cmd/transcript-control/cmd/transcriptions"
	"transcript-control/cmd/transcript-control/cmd/version"
	"transcript-control/cmd/transcript-control/cmd/workflow"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transcript-control",
	Short: "Control panel for meeting transcriptions",
	Long: `Control panel for meeting transcriptions.

- serve runs the REST API over the transcriptions database
- migrate creates the tables the API needs
- the remaining commands talk to a running API`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(migrate.Cmd)
	rootCmd.AddCommand(transcriptions.Cmd)
	rootCmd.AddCommand(calendar.Cmd)
	rootCmd.AddCommand(columns.Cmd)
	rootCmd.AddCommand(settings.Cmd)
	rootCmd.AddCommand(workflow.Cmd)
	rootCmd.AddCommand(health.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().BoolVarP(&cliutil.Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&cliutil.APIURL, "api-url", cliutil.DefaultAPIURL(),
		"base URL of the transcript-control API (env TRANSCRIPT_CONTROL_API_URL)")
	rootCmd.PersistentFlags().DurationVar(&cliutil.Timeout, "timeout", 15*time.Second, "request timeout")
}
