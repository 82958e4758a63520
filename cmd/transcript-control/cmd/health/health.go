package health

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"transcript-control/cmd/transcript-control/cmd/cliutil"
	"transcript-control/internal/api/v1/dto"
	"transcript-control/internal/client/cache"
)

var watch bool

func init() {
	Cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep polling until interrupted")
}

func state(ok bool) string {
	if ok {
		return "up"
	}
	return "down"
}

func render(w io.Writer, h dto.HealthResponse) {
	fmt.Fprintln(w, cliutil.RenderTable([]string{"Component", "State"}, [][]string{
		{"database", state(h.Database)},
		{"n8n", state(h.N8N)},
	}, nil))
}

// Cmd represents the health command
var Cmd = &cobra.Command{
	Use:   "health",
	Short: "Check the database and n8n through the API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := cliutil.Context(cmd)
		defer stop()

		client := cliutil.NewClient()
		if watch {
			c := cliutil.NewCache()
			defer c.Close()
			fetch := func(ctx context.Context) (interface{}, error) { return client.Health(ctx) }
			cliutil.Watch(ctx, c, cache.Key{"health"}, fetch, cache.HealthPollInterval, cmd.ErrOrStderr(),
				func(v interface{}) { render(cmd.OutOrStdout(), v.(dto.HealthResponse)) })
			return nil
		}

		h, err := client.Health(ctx)
		if err != nil {
			return err
		}
		render(cmd.OutOrStdout(), h)
		if !h.Database {
			return fmt.Errorf("database is down")
		}
		return nil
	},
}
