package calendar

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"transcript-control/cmd/transcript-control/cmd/cliutil"
	"transcript-control/internal/app/csvimport"
	"transcript-control/internal/app/model"
)

var (
	day        string
	merged     bool
	importMode string
)

func init() {
	listCmd.Flags().StringVarP(&day, "day", "d", "", "day to show, YYYY-MM-DD (default today)")
	listCmd.Flags().BoolVar(&merged, "merged", false, "read the merged calendar_data view with to/cc attendees")
	importCmd.Flags().StringVarP(&importMode, "mode", "m", string(csvimport.ModeInternal), "internal or external")

	Cmd.AddCommand(listCmd, importCmd)
}

// Cmd represents the calendar command
var Cmd = &cobra.Command{
	Use:   "calendar",
	Short: "Browse and import calendar meetings",
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	d, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q, want YYYY-MM-DD", s)
	}
	return d, nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the meetings of one day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := parseDay(day)
		if err != nil {
			return err
		}
		ctx, stop := cliutil.Context(cmd)
		defer stop()

		client := cliutil.NewClient()
		var entries []model.CalendarEntry
		if merged {
			entries, err = client.CalendarDay(ctx, d)
		} else {
			entries, err = client.CalendarEntries(ctx, d)
		}
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{
				strconv.FormatInt(e.ID, 10),
				e.StartDate.Local().Format("15:04"),
				e.Subject,
				cliutil.Deref(e.Location),
				cliutil.Deref(e.Attendees),
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), cliutil.RenderTable(
			[]string{"ID", "Start", "Subject", "Location", "Attendees"}, rows,
			[]cliutil.Alignment{cliutil.AlignRight}))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Upload a calendar CSV export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := csvimport.ParseMode(importMode)
		if err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		ctx, stop := cliutil.Context(cmd)
		defer stop()

		if err := cliutil.NewClient().ImportCalendar(ctx, filepath.Base(args[0]), f, mode); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%s)\n", filepath.Base(args[0]), mode)
		return nil
	},
}
