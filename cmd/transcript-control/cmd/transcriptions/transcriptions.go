package transcriptions

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"transcript-control/cmd/transcript-control/cmd/cliutil"
	"transcript-control/internal/api/v1/dto"
	"transcript-control/internal/client/cache"
	"transcript-control/internal/client/tableview"
)

var (
	page        int
	limit       int
	search      string
	status      string
	language    string
	sortBy      []string
	assumeYes   bool
	calendarDay string
	calendarID  int64
	watch       bool
)

func init() {
	listCmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	listCmd.Flags().IntVarP(&limit, "limit", "l", tableview.DefaultPageSize, "rows per page (max 100)")
	listCmd.Flags().StringVarP(&search, "search", "s", "", "search filename or meeting title")
	listCmd.Flags().StringVar(&status, "status", "", "pending, processing, finished or error")
	listCmd.Flags().StringVar(&language, "language", "", "set language")
	listCmd.Flags().StringSliceVar(&sortBy, "sort", nil,
		"sort the page by column, prefix with - for descending (e.g. --sort -created_at)")

	listCmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep refreshing the page until interrupted")

	deleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "delete without asking")

	linkCmd.Flags().StringVar(&calendarDay, "day", "", "day of the meeting, YYYY-MM-DD")
	linkCmd.Flags().Int64Var(&calendarID, "calendar-id", 0, "calendar entry id")
	linkCmd.MarkFlagRequired("day")
	linkCmd.MarkFlagRequired("calendar-id")

	Cmd.AddCommand(listCmd, getCmd, deleteCmd, setLanguageCmd, linkCmd)
}

// Cmd represents the transcriptions command
var Cmd = &cobra.Command{
	Use:     "transcriptions",
	Aliases: []string{"tx"},
	Short:   "List and edit transcription records",
}

func newView() *tableview.View {
	return tableview.NewView("transcriptions", cliutil.NewClient(), cliutil.NewCache(),
		tableview.Options{PageSize: limit, Logger: cliutil.Logger()})
}

// parseSort turns "-created_at" into a descending rule
func parseSort(values []string) ([]tableview.SortRule, error) {
	known := tableview.SortableColumns()
	rules := make([]tableview.SortRule, 0, len(values))
	for _, v := range values {
		rule := tableview.SortRule{Column: strings.TrimPrefix(v, "-"), Desc: strings.HasPrefix(v, "-")}
		if !contains(known, rule.Column) {
			return nil, fmt.Errorf("cannot sort by %q, use one of: %s", rule.Column, strings.Join(known, ", "))
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil || id < 1 {
			return nil, fmt.Errorf("invalid transcription id %q", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transcriptions, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := parseSort(sortBy)
		if err != nil {
			return err
		}

		ctx, stop := cliutil.Context(cmd)
		defer stop()

		view := newView()
		view.SetFilters(tableview.Filters{Search: search, Status: status, Language: language})
		view.SetPage(page)
		view.SetSort(rules...)

		if watch {
			return watchRows(ctx, cmd, view)
		}

		result, err := view.Rows(ctx)
		if err != nil {
			return err
		}
		writePage(cmd.OutOrStdout(), result)
		return nil
	},
}

// watchRows redraws the page after every poll until ctx is done
func watchRows(ctx context.Context, cmd *cobra.Command, view *tableview.View) error {
	sub := view.Subscribe(cache.TranscriptionsPollInterval)
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case u, ok := <-sub.Updates():
			if !ok {
				return nil
			}
			if u.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "refresh failed: %v\n", u.Err)
				continue
			}
			result, err := view.Rows(ctx)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "refresh failed: %v\n", err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", time.Now().Format(time.TimeOnly))
			writePage(cmd.OutOrStdout(), result)
		}
	}
}

func writePage(w io.Writer, result *dto.PaginatedTranscriptionsResponse) {
	rows := make([][]string, 0, len(result.Data))
	for _, t := range result.Data {
		rows = append(rows, []string{
			strconv.FormatInt(t.ID, 10),
			t.Filename,
			string(t.Status),
			cliutil.Deref(t.SetLanguage),
			cliutil.Deref(t.MeetingTitle),
			cliutil.FormatTime(t.MeetingStartDate),
			cliutil.FormatSeconds(t.AudioDuration),
			t.CreatedAt.Local().Format(time.DateTime),
		})
	}
	fmt.Fprintln(w, cliutil.RenderTable(
		[]string{"ID", "Filename", "Status", "Language", "Meeting", "Start", "Audio", "Created"},
		rows,
		[]cliutil.Alignment{cliutil.AlignRight, cliutil.AlignLeft, cliutil.AlignLeft, cliutil.AlignLeft,
			cliutil.AlignLeft, cliutil.AlignLeft, cliutil.AlignRight},
	))
	fmt.Fprintf(w, "page %d of %d, %d total\n", result.Page, result.TotalPages, result.Total)
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one transcription with its transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		ctx, stop := cliutil.Context(cmd)
		defer stop()

		t, err := cliutil.NewClient().GetTranscription(ctx, ids[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, cliutil.RenderTable([]string{"Field", "Value"}, [][]string{
			{"ID", strconv.FormatInt(t.ID, 10)},
			{"Filename", t.Filename},
			{"Status", string(t.Status)},
			{"Language", cliutil.Deref(t.SetLanguage)},
			{"Detected", cliutil.Deref(t.DetectedLanguage)},
			{"Meeting", cliutil.Deref(t.MeetingTitle)},
			{"Start", cliutil.FormatTime(t.MeetingStartDate)},
			{"Participants", cliutil.Deref(t.Participants)},
			{"Audio", cliutil.FormatSeconds(t.AudioDuration)},
			{"Processing", cliutil.FormatSeconds(t.TranscriptionDuration)},
		}, nil))
		text := t.CorrectedText
		if text == nil {
			text = t.TranscriptText
		}
		if text != nil {
			fmt.Fprintln(w)
			fmt.Fprintln(w, *text)
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete transcriptions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		if !assumeYes {
			return fmt.Errorf("refusing to delete %d transcriptions without --yes", len(ids))
		}

		ctx, stop := cliutil.Context(cmd)
		defer stop()

		view := newView()
		view.Select(ids...)
		deleted, err := view.DeleteSelected(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d transcriptions deleted\n", deleted)
		return nil
	},
}

var setLanguageCmd = &cobra.Command{
	Use:   "set-language <id> <language>",
	Short: "Set the language used for the next transcription run",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args[:1])
		if err != nil {
			return err
		}
		ctx, stop := cliutil.Context(cmd)
		defer stop()

		view := newView()
		if err := view.BeginEdit(ids[0], tableview.FieldLanguage, args[1]); err != nil {
			return err
		}
		t, err := view.CommitEdit(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "transcription %d language set to %s\n", t.ID, cliutil.Deref(t.SetLanguage))
		return nil
	},
}

var linkCmd = &cobra.Command{
	Use:   "link <id>",
	Short: "Copy a calendar meeting onto a transcription",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		day, err := time.Parse(time.DateOnly, calendarDay)
		if err != nil {
			return fmt.Errorf("invalid --day %q, want YYYY-MM-DD", calendarDay)
		}

		ctx, stop := cliutil.Context(cmd)
		defer stop()

		client := cliutil.NewClient()
		entries, err := client.CalendarEntries(ctx, day)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if entry.ID != calendarID {
				continue
			}
			view := newView()
			t, err := view.LinkCalendar(ctx, ids[0], entry)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "transcription %d linked to %q\n", t.ID, cliutil.Deref(t.MeetingTitle))
			return nil
		}
		return fmt.Errorf("no calendar entry %d on %s", calendarID, calendarDay)
	},
}
