package settings

import (
	"fmt"

	"github.com/spf13/cobra"

	"transcript-control/cmd/transcript-control/cmd/cliutil"
	"transcript-control/internal/app/model"
)

func init() {
	Cmd.AddCommand(listCmd, getCmd, setCmd, unsetCmd)
}

// Cmd represents the settings command
var Cmd = &cobra.Command{
	Use:   "settings",
	Short: "Read and change transcription settings",
}

func render(settings []model.Setting) string {
	rows := make([][]string, 0, len(settings))
	for _, s := range settings {
		rows = append(rows, []string{s.Parameter, cliutil.Deref(s.Value)})
	}
	return cliutil.RenderTable([]string{"Parameter", "Value"}, rows, nil)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := cliutil.Context(cmd)
		defer stop()

		settings, err := cliutil.NewClient().Settings(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), render(settings))
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <parameter>",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := cliutil.Context(cmd)
		defer stop()

		s, err := cliutil.NewClient().Setting(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), render([]model.Setting{s}))
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <parameter> <value>",
	Short: "Create or change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := cliutil.Context(cmd)
		defer stop()

		s, err := cliutil.NewClient().PutSetting(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", s.Parameter, cliutil.Deref(s.Value))
		return nil
	},
}

var unsetCmd = &cobra.Command{
	Use:   "unset <parameter>",
	Short: "Clear a setting's value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := cliutil.Context(cmd)
		defer stop()

		s, err := cliutil.NewClient().ClearSetting(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s cleared\n", s.Parameter)
		return nil
	},
}
