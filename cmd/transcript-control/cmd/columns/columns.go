package columns

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"transcript-control/cmd/transcript-control/cmd/cliutil"
	"transcript-control/internal/client/tableview"
)

func init() {
	Cmd.AddCommand(showCmd, resizeCmd)
}

// Cmd represents the columns command
var Cmd = &cobra.Command{
	Use:   "columns",
	Short: "Show and change the saved column layout of a table",
}

var showCmd = &cobra.Command{
	Use:   "show <table>",
	Short: "Show the saved column layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := cliutil.Context(cmd)
		defer stop()

		view := tableview.NewView(args[0], cliutil.NewClient(), cliutil.NewCache(), tableview.Options{Logger: cliutil.Logger()})
		cols, err := view.LoadColumns(ctx)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(cols))
		for _, c := range cols {
			rows = append(rows, []string{
				strconv.Itoa(c.ColumnOrder),
				c.ColumnName,
				strconv.Itoa(c.ColumnWidth),
				strconv.FormatBool(c.IsVisible),
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), cliutil.RenderTable(
			[]string{"Order", "Column", "Width", "Visible"}, rows,
			[]cliutil.Alignment{cliutil.AlignRight, cliutil.AlignLeft, cliutil.AlignRight}))
		return nil
	},
}

var resizeCmd = &cobra.Command{
	Use:   "resize <table> <column> <width>",
	Short: "Change the width of one column",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, err := strconv.Atoi(args[2])
		if err != nil || width < 1 {
			return fmt.Errorf("invalid width %q", args[2])
		}

		ctx, stop := cliutil.Context(cmd)
		defer stop()

		view := tableview.NewView(args[0], cliutil.NewClient(), cliutil.NewCache(), tableview.Options{Logger: cliutil.Logger()})
		if _, err := view.LoadColumns(ctx); err != nil {
			return err
		}
		if err := view.ResizeColumn(args[1], width); err != nil {
			return err
		}
		view.Close()
		if err := view.SaveError(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s.%s width set to %d\n", args[0], args[1], width)
		return nil
	},
}
