package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"transcript-control/cmd/transcript-control/cmd/cliutil"
	appworkflow "transcript-control/internal/app/workflow"
	"transcript-control/internal/client/cache"
)

var watch bool

func init() {
	statusCmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep polling until interrupted")
	Cmd.AddCommand(startCmd, statusCmd)
}

// Cmd represents the workflow command
var Cmd = &cobra.Command{
	Use:   "workflow",
	Short: "Start the n8n transcription workflow or check its state",
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Trigger the transcription workflow",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := cliutil.Context(cmd)
		defer stop()

		msg, err := cliutil.NewClient().StartWorkflow(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the workflow is active",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := cliutil.Context(cmd)
		defer stop()

		client := cliutil.NewClient()
		if watch {
			c := cliutil.NewCache()
			defer c.Close()
			fetch := func(ctx context.Context) (interface{}, error) { return client.WorkflowStatus(ctx) }
			cliutil.Watch(ctx, c, cache.Key{"workflow-status"}, fetch, cache.WorkflowStatusPollInterval,
				cmd.ErrOrStderr(), func(v interface{}) {
					report := v.(appworkflow.StatusReport)
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", time.Now().Format(time.TimeOnly), report.Status, report.Message)
				})
			return nil
		}

		report, err := client.WorkflowStatus(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", report.Status, report.Message)
		return nil
	},
}
